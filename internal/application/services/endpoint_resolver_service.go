package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/domain/entities"
	"ai-model-admin/internal/domain/repositories"
	"ai-model-admin/internal/infrastructure/logger"
)

// EndpointResolverService 端点解析服务接口
type EndpointResolverService interface {
	// Resolve 解析模型的最终请求端点
	Resolve(ctx context.Context, req *dto.ResolveEndpointRequest) (*dto.ResolveEndpointResponse, error)
}

// ProviderAdaptFunc 提供商端点适配函数
type ProviderAdaptFunc func(baseURL string, mediaType entities.MediaType) string

// endpointResolverServiceImpl 端点解析服务实现
type endpointResolverServiceImpl struct {
	templateRepo repositories.ModelTemplateRepository
	accountRepo  repositories.ProxyAccountRepository
	baseURL      string
	// 按稳定的Provider标识注册，不做名称子串匹配
	providerAdaptations map[entities.Provider]ProviderAdaptFunc
	logger              logger.Logger
}

// NewEndpointResolverService 创建端点解析服务
func NewEndpointResolverService(
	templateRepo repositories.ModelTemplateRepository,
	accountRepo repositories.ProxyAccountRepository,
	upstreamBaseURL string,
	logger logger.Logger,
) EndpointResolverService {
	return &endpointResolverServiceImpl{
		templateRepo: templateRepo,
		accountRepo:  accountRepo,
		baseURL:      strings.TrimSuffix(upstreamBaseURL, "/"),
		providerAdaptations: map[entities.Provider]ProviderAdaptFunc{
			// 302ai目录希望与通用默认行为一致，当前委托媒体类型默认表，
			// 保留独立挂载点以便后续提供商覆盖
			entities.Provider302AI: mediaTypeDefaultURL,
		},
		logger: logger,
	}
}

// Resolve 解析模型的最终请求端点
func (s *endpointResolverServiceImpl) Resolve(ctx context.Context, req *dto.ResolveEndpointRequest) (*dto.ResolveEndpointResponse, error) {
	template, err := s.templateRepo.GetByModelID(ctx, req.ModelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get model template: %w", err)
	}

	mediaType := entities.MediaType(req.MediaType)
	defaultURL := s.defaultEndpointURL(template, mediaType)

	finalURL := defaultURL
	isCustom := false
	if req.CustomEndpointURL != "" {
		finalURL = req.CustomEndpointURL
		isCustom = true
	}

	resp := &dto.ResolveEndpointResponse{
		FinalURL:          finalURL,
		ModelName:         template.ModelName,
		MediaType:         req.MediaType,
		CustomEndpointURL: req.CustomEndpointURL,
		DefaultURL:        defaultURL,
		IsCustom:          isCustom,
		Timestamp:         time.Now(),
	}

	if req.ProxyAccountID != nil {
		account, err := s.accountRepo.GetByID(ctx, *req.ProxyAccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to get proxy account: %w", err)
		}
		resp.ProxyAccount = &dto.ProxyAccountSummary{
			ID:        account.ID,
			Name:      account.Name,
			Provider:  string(account.Provider),
			MaskedKey: account.MaskedKey(),
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"model_id":   req.ModelID,
		"media_type": req.MediaType,
		"final_url":  finalURL,
		"is_custom":  isCustom,
	}).Debug("Endpoint resolved")

	return resp, nil
}

// defaultEndpointURL 计算无自定义覆盖时生效的默认端点
//
// 优先级：模板显式默认URL > 提供商适配 > 媒体类型默认表。
func (s *endpointResolverServiceImpl) defaultEndpointURL(template *entities.ModelTemplate, mediaType entities.MediaType) string {
	if template.HasDefaultEndpointURL() {
		return template.GetDefaultEndpointURL()
	}

	if adapt, ok := s.providerAdaptations[template.Provider]; ok {
		return adapt(s.baseURL, mediaType)
	}

	return mediaTypeDefaultURL(s.baseURL, mediaType)
}

// mediaTypeDefaultURL 按媒体类型拼默认端点，未知类型原样返回基础URL
func mediaTypeDefaultURL(baseURL string, mediaType entities.MediaType) string {
	switch mediaType {
	case entities.MediaTypeText:
		return baseURL + "/chat/completions"
	case entities.MediaTypeImage:
		return baseURL + "/images/generations"
	case entities.MediaTypeVideo:
		return baseURL + "/videos/generations"
	default:
		return baseURL
	}
}
