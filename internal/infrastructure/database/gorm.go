package database

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"ai-model-admin/internal/domain/entities"
	appLogger "ai-model-admin/internal/infrastructure/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormConfig GORM数据库配置
type GormConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewGormDB 创建GORM数据库连接
func NewGormDB(config GormConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		config.Host, config.User, config.Password, config.DBName, config.Port, config.SSLMode, config.TimeZone)

	// 配置GORM日志
	gormConfig := &gorm.Config{
		Logger: logger.New(
			log.New(log.Writer(), "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 获取底层sql.DB对象进行连接池配置
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// 设置连接池参数
	maxIdle := config.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = 5
	}
	maxOpen := config.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 25
	}
	maxLifetime := config.ConnMaxLifetime
	if maxLifetime <= 0 {
		maxLifetime = 5 * time.Minute
	}

	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return db, nil
}

// AutoMigrate 自动迁移数据库表结构
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&entities.ModelTemplate{},
		&entities.UserModelOverride{},
		&entities.ProxyAccount{},
		&entities.GenerationTask{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// CreateIndexes 创建额外的索引
func CreateIndexes(db *gorm.DB) error {
	// 覆盖表按(user_id, template_model_id)查询
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_user_model_overrides_user_template ON user_model_overrides(user_id, template_model_id)").Error; err != nil {
		return fmt.Errorf("failed to create user_model_overrides user/template index: %w", err)
	}

	// 任务表按状态与创建时间查询
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_generation_tasks_status ON generation_tasks(status)").Error; err != nil {
		return fmt.Errorf("failed to create generation_tasks status index: %w", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_generation_tasks_created_at ON generation_tasks(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create generation_tasks created_at index: %w", err)
	}

	return nil
}

// InitializeDatabase 初始化数据库（迁移+索引）
func InitializeDatabase(db *gorm.DB, log appLogger.Logger) error {
	// 执行自动迁移
	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	// 创建索引
	if err := CreateIndexes(db); err != nil {
		// 索引创建失败不应该阻止应用启动，只记录警告
		log.WithField("error", err.Error()).Warn("Failed to create indexes, continuing with startup")
	}

	return nil
}

// HealthCheck 数据库健康检查
func HealthCheck(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// ConnectionKeepAliveService 数据库连接保活服务
type ConnectionKeepAliveService struct {
	db       *gorm.DB
	logger   appLogger.Logger
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewConnectionKeepAliveService 创建数据库连接保活服务
func NewConnectionKeepAliveService(db *gorm.DB, logger appLogger.Logger, interval time.Duration) *ConnectionKeepAliveService {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &ConnectionKeepAliveService{
		db:       db,
		logger:   logger,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start 启动连接保活服务
func (s *ConnectionKeepAliveService) Start() {
	s.wg.Add(1)
	go s.keepAliveLoop()
	s.logger.WithField("interval", s.interval).Info("Database connection keep-alive service started")
}

// Stop 停止连接保活服务
func (s *ConnectionKeepAliveService) Stop() {
	s.cancel()
	s.wg.Wait()
	s.logger.Info("Database connection keep-alive service stopped")
}

// keepAliveLoop 保活循环
func (s *ConnectionKeepAliveService) keepAliveLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			var result int
			if err := s.db.Raw("SELECT 1").Scan(&result).Error; err != nil {
				s.logger.WithField("error", err.Error()).Error("Database keep-alive query failed")
			}
		}
	}
}
