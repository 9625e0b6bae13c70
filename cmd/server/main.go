// @title AI Model Admin
// @version 1.0.0
// @description Administrative service for AI model configuration: model templates, per-user overrides, proxy accounts, endpoint resolution and connectivity probing.

// @contact.name API Support
// @contact.url https://example.com/support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-model-admin/internal/application/services"
	"ai-model-admin/internal/infrastructure/cache"
	"ai-model-admin/internal/infrastructure/config"
	"ai-model-admin/internal/infrastructure/database"
	"ai-model-admin/internal/infrastructure/logger"
	"ai-model-admin/internal/infrastructure/redis"
	"ai-model-admin/internal/infrastructure/repositories"
	"ai-model-admin/internal/presentation/handlers"
	"ai-model-admin/internal/presentation/routes"

	"github.com/spf13/viper"

	_ "ai-model-admin/docs" // Import generated docs
)

func main() {
	// 解析命令行参数
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.Parse()

	// 加载配置
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志记录器
	logger.InitGlobalLogger(&cfg.Logging)
	log := logger.GetLogger()

	log.Info("Starting AI Model Admin")
	log.WithField("config", configPath).Info("Configuration loaded")

	// 初始化缓存TTL管理器
	cache.InitCacheTTLManager()

	// 初始化GORM数据库连接
	gormConfig := database.GormConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        "UTC",
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	gormDB, err := database.NewGormDB(gormConfig)
	if err != nil {
		log.WithField("error", err.Error()).Fatal("Failed to connect to PostgreSQL with GORM")
	}

	// 执行数据库自动迁移
	if err := database.InitializeDatabase(gormDB, log); err != nil {
		log.WithField("error", err.Error()).Fatal("Database initialization failed")
	}

	// 进行健康检查
	if err := database.HealthCheck(gormDB); err != nil {
		log.WithField("error", err.Error()).Fatal("Database health check failed")
	}

	log.Info("PostgreSQL connection established with GORM")

	// 创建Redis工厂（可选）
	var cacheService *redis.CacheService
	if viper.GetBool("cache.enabled") {
		redisFactory, err := redis.NewRedisFactory(log)
		if err != nil {
			log.WithFields(map[string]interface{}{
				"error": err.Error(),
			}).Warn("Failed to initialize Redis, continuing without cache")
		} else {
			cacheService = redisFactory.GetCacheService()
		}
	}

	// 创建仓储工厂（全部使用GORM，如果有缓存则使用带缓存的版本）
	var repoFactory *repositories.RepositoryFactory
	if cacheService != nil {
		repoFactory = repositories.NewRepositoryFactoryWithCache(gormDB, cacheService)
	} else {
		repoFactory = repositories.NewRepositoryFactory(gormDB)
	}

	// 创建服务工厂
	serviceFactory := services.NewServiceFactory(repoFactory, cfg, log)

	// 写入内置模板
	if cfg.Seed.Enabled {
		if err := serviceFactory.TemplateService().SeedBuiltinTemplates(context.Background()); err != nil {
			log.WithField("error", err.Error()).Fatal("Failed to seed builtin templates")
		}
	}

	// 启动数据库连接保活服务
	keepAlive := database.NewConnectionKeepAliveService(gormDB, log, cfg.Database.KeepAliveInterval)
	keepAlive.Start()

	// 创建路由器
	healthHandler := handlers.NewHealthHandler(gormDB, log)
	router := routes.NewRouter(cfg, log, serviceFactory, healthHandler)
	router.SetupRoutes()

	// 创建HTTP服务器
	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      router.GetEngine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 启动服务器
	go func() {
		log.WithField("address", server.Addr).Info("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithField("error", err.Error()).Fatal("Failed to start HTTP server")
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// 停止数据库连接保活服务
	keepAlive.Stop()

	// 优雅关闭服务器
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithField("error", err.Error()).Fatal("Server forced to shutdown")
	} else {
		log.Info("Server shutdown complete")
	}
}
