package entities

import "errors"

// 领域级错误，仓储在记录不存在时返回这些哨兵错误，
// 处理器据此映射为404业务错误而不是500。
var (
	ErrTemplateNotFound     = errors.New("model template not found")
	ErrUserModelNotFound    = errors.New("user model override not found")
	ErrProxyAccountNotFound = errors.New("proxy account not found")
	ErrTaskNotFound         = errors.New("generation task not found")
)

// 业务规则错误，处理器映射为400业务错误。
var (
	ErrBuiltinTemplate  = errors.New("builtin template cannot be deleted")
	ErrInvalidMediaType = errors.New("invalid media type")
	ErrDuplicateModelID = errors.New("model id already exists")
)
