package services

import (
	"ai-model-admin/internal/infrastructure/clients"
	"ai-model-admin/internal/infrastructure/config"
	"ai-model-admin/internal/infrastructure/logger"
	infraRepos "ai-model-admin/internal/infrastructure/repositories"
)

// ServiceFactory 服务工厂
type ServiceFactory struct {
	repoFactory *infraRepos.RepositoryFactory
	config      *config.Config
	prober      clients.EndpointProber
	genClient   clients.GenerationClient
	logger      logger.Logger
}

// NewServiceFactory 创建服务工厂
func NewServiceFactory(repoFactory *infraRepos.RepositoryFactory, cfg *config.Config, log logger.Logger) *ServiceFactory {
	return &ServiceFactory{
		repoFactory: repoFactory,
		config:      cfg,
		prober:      clients.NewEndpointProber(&cfg.Probe, log),
		genClient:   clients.NewGenerationClient(log),
		logger:      log,
	}
}

// EndpointResolverService 获取端点解析服务
func (f *ServiceFactory) EndpointResolverService() EndpointResolverService {
	return NewEndpointResolverService(
		f.repoFactory.ModelTemplateRepository(),
		f.repoFactory.ProxyAccountRepository(),
		f.config.Upstream.BaseURL,
		f.logger,
	)
}

// EndpointProber 获取端点探测器
func (f *ServiceFactory) EndpointProber() clients.EndpointProber {
	return f.prober
}

// TemplateService 获取模板服务
func (f *ServiceFactory) TemplateService() TemplateService {
	return NewTemplateService(f.repoFactory.ModelTemplateRepository(), f.logger)
}

// UserModelService 获取用户模型覆盖服务
func (f *ServiceFactory) UserModelService() UserModelService {
	return NewUserModelService(
		f.repoFactory.UserModelRepository(),
		f.repoFactory.ModelTemplateRepository(),
		f.repoFactory.ProxyAccountRepository(),
		f.EndpointResolverService(),
		f.prober,
		f.logger,
	)
}

// ProxyAccountService 获取代理账号服务
func (f *ServiceFactory) ProxyAccountService() ProxyAccountService {
	return NewProxyAccountService(
		f.repoFactory.ProxyAccountRepository(),
		f.prober,
		f.config.Upstream.BaseURL,
		f.logger,
	)
}

// TaskService 获取任务服务
func (f *ServiceFactory) TaskService() TaskService {
	return NewTaskService(
		f.repoFactory.GenerationTaskRepository(),
		f.repoFactory.ProxyAccountRepository(),
		f.EndpointResolverService(),
		f.genClient,
		f.logger,
	)
}
