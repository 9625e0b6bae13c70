package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/application/services"
	"ai-model-admin/internal/infrastructure/config"
	"ai-model-admin/internal/infrastructure/logger"
	"ai-model-admin/internal/presentation/handlers"
	"ai-model-admin/internal/presentation/middleware"

	_ "ai-model-admin/docs" // 导入swagger文档
)

// Router 路由器
type Router struct {
	engine         *gin.Engine
	config         *config.Config
	logger         logger.Logger
	serviceFactory *services.ServiceFactory
	healthHandler  *handlers.HealthHandler
}

// NewRouter 创建路由器
func NewRouter(
	cfg *config.Config,
	log logger.Logger,
	serviceFactory *services.ServiceFactory,
	healthHandler *handlers.HealthHandler,
) *Router {
	// 设置Gin模式
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Router{
		engine:         gin.New(),
		config:         cfg,
		logger:         log,
		serviceFactory: serviceFactory,
		healthHandler:  healthHandler,
	}
}

// SetupRoutes 设置路由
func (r *Router) SetupRoutes() {
	// 全局中间件
	r.engine.Use(middleware.RecoveryMiddleware(r.logger))
	r.engine.Use(middleware.LoggingMiddleware(r.logger))
	r.engine.Use(middleware.CORSMiddleware())
	r.engine.Use(middleware.RequestIDMiddleware())

	// 创建处理器
	endpointHandler := handlers.NewEndpointHandler(
		r.serviceFactory.EndpointResolverService(),
		r.serviceFactory.EndpointProber(),
		r.logger,
	)
	templateHandler := handlers.NewTemplateHandler(r.serviceFactory.TemplateService(), r.logger)
	userModelHandler := handlers.NewUserModelHandler(r.serviceFactory.UserModelService(), r.logger)
	proxyAccountHandler := handlers.NewProxyAccountHandler(r.serviceFactory.ProxyAccountService(), r.logger)
	taskHandler := handlers.NewTaskHandler(r.serviceFactory.TaskService(), r.logger)

	// 健康检查
	r.engine.GET("/health", r.healthHandler.Health)

	// Swagger文档
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由
	v1 := r.engine.Group("/api/v1")
	{
		endpoint := v1.Group("/endpoint")
		{
			endpoint.POST("/resolve", endpointHandler.ResolveEndpoint)
			endpoint.POST("/probe", endpointHandler.ProbeEndpoint)
		}

		templates := v1.Group("/templates")
		{
			templates.POST("", templateHandler.CreateTemplate)
			templates.GET("", templateHandler.ListTemplates)
			templates.GET("/model/:model_id", templateHandler.GetTemplateByModelID)
			templates.GET("/:id", templateHandler.GetTemplate)
			templates.PUT("/:id", templateHandler.UpdateTemplate)
			templates.DELETE("/:id", templateHandler.DeleteTemplate)
			templates.POST("/:id/toggle", templateHandler.ToggleTemplate)
		}

		userModels := v1.Group("/user-models")
		{
			userModels.POST("", userModelHandler.CreateUserModel)
			userModels.GET("", userModelHandler.ListUserModels)
			userModels.GET("/:id", userModelHandler.GetUserModel)
			userModels.PUT("/:id", userModelHandler.UpdateUserModel)
			userModels.DELETE("/:id", userModelHandler.DeleteUserModel)
			userModels.POST("/:id/test", userModelHandler.TestUserModel)
		}

		proxyAccounts := v1.Group("/proxy-accounts")
		{
			proxyAccounts.POST("", proxyAccountHandler.CreateAccount)
			proxyAccounts.GET("", proxyAccountHandler.ListAccounts)
			proxyAccounts.POST("/verify", proxyAccountHandler.VerifyAccounts)
			proxyAccounts.GET("/:id", proxyAccountHandler.GetAccount)
			proxyAccounts.PUT("/:id", proxyAccountHandler.UpdateAccount)
			proxyAccounts.DELETE("/:id", proxyAccountHandler.DeleteAccount)
		}

		tasks := v1.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.POST("/:id/dispatch", taskHandler.DispatchTask)
		}
	}

	// 未匹配路由统一返回JSON
	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse(
			"NOT_FOUND",
			"Route not found",
			nil,
		))
	})
	r.engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse(
			"METHOD_NOT_ALLOWED",
			"Method not allowed",
			nil,
		))
	})
}

// GetEngine 获取底层Gin引擎
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
