package entities

import "time"

// TaskStatus 任务状态枚举
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusDispatched TaskStatus = "dispatched"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// GenerationTask 生成任务实体
//
// 只做状态字段层面的记录，不实现任务生命周期引擎。
type GenerationTask struct {
	ID             int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	RequestID      string     `json:"request_id" gorm:"uniqueIndex;not null;size:64"`
	UserID         int64      `json:"user_id" gorm:"not null;index"`
	ModelID        string     `json:"model_id" gorm:"not null;size:100;index"`
	MediaType      MediaType  `json:"media_type" gorm:"not null;size:20"`
	Prompt         string     `json:"prompt" gorm:"type:text;not null"`
	FinalURL       string     `json:"final_url" gorm:"not null;size:500"`
	ProxyAccountID *int64     `json:"proxy_account_id,omitempty"`
	Status         TaskStatus `json:"status" gorm:"not null;size:20;default:'pending';index"`
	StatusCode     *int       `json:"status_code,omitempty"`
	ErrorMessage   *string    `json:"error_message,omitempty" gorm:"type:text"`
	DispatchedAt   *time.Time `json:"dispatched_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"not null;autoUpdateTime"`
}

// TableName 指定表名
func (GenerationTask) TableName() string {
	return "generation_tasks"
}

// IsTerminal 任务是否已到达终态
func (t *GenerationTask) IsTerminal() bool {
	return t.Status == TaskStatusCompleted || t.Status == TaskStatusFailed
}

// MarkDispatched 标记任务已派发
func (t *GenerationTask) MarkDispatched(statusCode int, at time.Time) {
	t.Status = TaskStatusDispatched
	t.StatusCode = &statusCode
	t.DispatchedAt = &at
	if statusCode >= 200 && statusCode < 300 {
		t.Status = TaskStatusCompleted
	}
}

// MarkFailed 标记任务失败
func (t *GenerationTask) MarkFailed(message string, at time.Time) {
	t.Status = TaskStatusFailed
	t.ErrorMessage = &message
	t.DispatchedAt = &at
}
