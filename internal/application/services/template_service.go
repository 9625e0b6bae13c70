package services

import (
	"context"
	"errors"
	"fmt"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/domain/entities"
	"ai-model-admin/internal/domain/repositories"
	"ai-model-admin/internal/infrastructure/logger"
)

// TemplateService 模型模板服务接口
type TemplateService interface {
	// CreateTemplate 创建模板
	CreateTemplate(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error)

	// GetTemplate 根据ID获取模板
	GetTemplate(ctx context.Context, id int64) (*dto.TemplateResponse, error)

	// GetTemplateByModelID 根据稳定模型标识获取模板
	GetTemplateByModelID(ctx context.Context, modelID string) (*dto.TemplateResponse, error)

	// ListTemplates 分页获取模板列表
	ListTemplates(ctx context.Context, req *dto.TemplateListRequest) (*dto.PaginatedResponse, error)

	// UpdateTemplate 更新模板
	UpdateTemplate(ctx context.Context, id int64, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error)

	// ToggleTemplate 切换模板启用状态
	ToggleTemplate(ctx context.Context, id int64) (*dto.TemplateResponse, error)

	// DeleteTemplate 删除模板，内置模板拒绝删除
	DeleteTemplate(ctx context.Context, id int64) error

	// SeedBuiltinTemplates 表为空时写入内置模板
	SeedBuiltinTemplates(ctx context.Context) error
}

// templateServiceImpl 模型模板服务实现
type templateServiceImpl struct {
	templateRepo repositories.ModelTemplateRepository
	logger       logger.Logger
}

// NewTemplateService 创建模型模板服务
func NewTemplateService(templateRepo repositories.ModelTemplateRepository, logger logger.Logger) TemplateService {
	return &templateServiceImpl{
		templateRepo: templateRepo,
		logger:       logger,
	}
}

// builtinTemplates 内置预设模板
var builtinTemplates = []entities.ModelTemplate{
	{ModelID: "gpt-4o", ModelName: "GPT-4o", MediaType: entities.MediaTypeText, Provider: entities.ProviderOpenAI, Enabled: true, IsBuiltin: true},
	{ModelID: "gpt-4o-mini", ModelName: "GPT-4o mini", MediaType: entities.MediaTypeText, Provider: entities.ProviderOpenAI, Enabled: true, IsBuiltin: true},
	{ModelID: "dall-e-3", ModelName: "DALL-E 3", MediaType: entities.MediaTypeImage, Provider: entities.ProviderOpenAI, Enabled: true, IsBuiltin: true},
	{ModelID: "302-flux-pro", ModelName: "Flux Pro", MediaType: entities.MediaTypeImage, Provider: entities.Provider302AI, Enabled: true, IsBuiltin: true},
	{ModelID: "302-video-gen", ModelName: "302 Video", MediaType: entities.MediaTypeVideo, Provider: entities.Provider302AI, Enabled: true, IsBuiltin: true},
}

// CreateTemplate 创建模板
func (s *templateServiceImpl) CreateTemplate(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	mediaType := entities.MediaType(req.MediaType)
	if !mediaType.IsValid() {
		return nil, entities.ErrInvalidMediaType
	}

	// ModelID是稳定标识，不允许重复
	if _, err := s.templateRepo.GetByModelID(ctx, req.ModelID); err == nil {
		return nil, entities.ErrDuplicateModelID
	} else if !errors.Is(err, entities.ErrTemplateNotFound) {
		return nil, fmt.Errorf("failed to check model id: %w", err)
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	template := &entities.ModelTemplate{
		ModelID:            req.ModelID,
		ModelName:          req.ModelName,
		MediaType:          mediaType,
		Provider:           entities.Provider(req.Provider),
		CostPerRequest:     req.CostPerRequest,
		DefaultEndpointURL: req.DefaultEndpointURL,
		Enabled:            enabled,
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"template_id": template.ID,
		"model_id":    template.ModelID,
		"media_type":  template.MediaType,
	}).Info("Model template created")

	return s.toTemplateResponse(template), nil
}

// GetTemplate 根据ID获取模板
func (s *templateServiceImpl) GetTemplate(ctx context.Context, id int64) (*dto.TemplateResponse, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return s.toTemplateResponse(template), nil
}

// GetTemplateByModelID 根据稳定模型标识获取模板
func (s *templateServiceImpl) GetTemplateByModelID(ctx context.Context, modelID string) (*dto.TemplateResponse, error) {
	template, err := s.templateRepo.GetByModelID(ctx, modelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return s.toTemplateResponse(template), nil
}

// ListTemplates 分页获取模板列表
func (s *templateServiceImpl) ListTemplates(ctx context.Context, req *dto.TemplateListRequest) (*dto.PaginatedResponse, error) {
	req.SetDefaults()

	// 媒体类型过滤走专用查询，不分页
	if req.MediaType != "" {
		mediaType := entities.MediaType(req.MediaType)
		if !mediaType.IsValid() {
			return nil, entities.ErrInvalidMediaType
		}
		templates, err := s.templateRepo.ListByMediaType(ctx, mediaType)
		if err != nil {
			return nil, fmt.Errorf("failed to list templates: %w", err)
		}
		responses := make([]*dto.TemplateResponse, 0, len(templates))
		for _, t := range templates {
			responses = append(responses, s.toTemplateResponse(t))
		}
		return dto.NewPaginatedResponse(responses, int64(len(responses)), 1, len(responses)), nil
	}

	templates, err := s.templateRepo.List(ctx, req.Enabled, req.Offset(), req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	total, err := s.templateRepo.Count(ctx, req.Enabled)
	if err != nil {
		return nil, fmt.Errorf("failed to count templates: %w", err)
	}

	responses := make([]*dto.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		responses = append(responses, s.toTemplateResponse(t))
	}

	return dto.NewPaginatedResponse(responses, total, req.Page, req.PageSize), nil
}

// UpdateTemplate 更新模板，nil字段保持不变
func (s *templateServiceImpl) UpdateTemplate(ctx context.Context, id int64, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	if req.ModelName != nil {
		template.ModelName = *req.ModelName
	}
	if req.MediaType != nil {
		mediaType := entities.MediaType(*req.MediaType)
		if !mediaType.IsValid() {
			return nil, entities.ErrInvalidMediaType
		}
		template.MediaType = mediaType
	}
	if req.Provider != nil {
		template.Provider = entities.Provider(*req.Provider)
	}
	if req.CostPerRequest != nil {
		template.CostPerRequest = req.CostPerRequest
	}
	if req.DefaultEndpointURL != nil {
		template.DefaultEndpointURL = req.DefaultEndpointURL
	}
	if req.Enabled != nil {
		template.Enabled = *req.Enabled
	}

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}

	s.logger.WithField("template_id", id).Info("Model template updated")

	return s.toTemplateResponse(template), nil
}

// ToggleTemplate 切换模板启用状态
func (s *templateServiceImpl) ToggleTemplate(ctx context.Context, id int64) (*dto.TemplateResponse, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	template.Enabled = !template.Enabled

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to toggle template: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"template_id": id,
		"enabled":     template.Enabled,
	}).Info("Model template toggled")

	return s.toTemplateResponse(template), nil
}

// DeleteTemplate 删除模板，内置模板只能禁用不能删除
func (s *templateServiceImpl) DeleteTemplate(ctx context.Context, id int64) error {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get template: %w", err)
	}

	if template.IsBuiltin {
		return entities.ErrBuiltinTemplate
	}

	if err := s.templateRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	s.logger.WithField("template_id", id).Info("Model template deleted")

	return nil
}

// SeedBuiltinTemplates 表为空时写入内置模板
func (s *templateServiceImpl) SeedBuiltinTemplates(ctx context.Context) error {
	count, err := s.templateRepo.Count(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to count templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range builtinTemplates {
		template := builtinTemplates[i]
		if err := s.templateRepo.Create(ctx, &template); err != nil {
			return fmt.Errorf("failed to seed template %s: %w", template.ModelID, err)
		}
	}

	s.logger.WithField("count", len(builtinTemplates)).Info("Builtin templates seeded")

	return nil
}

// toTemplateResponse 实体转响应DTO
func (s *templateServiceImpl) toTemplateResponse(template *entities.ModelTemplate) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		ID:                 template.ID,
		ModelID:            template.ModelID,
		ModelName:          template.ModelName,
		MediaType:          string(template.MediaType),
		Provider:           string(template.Provider),
		CostPerRequest:     template.CostPerRequest,
		DefaultEndpointURL: template.GetDefaultEndpointURL(),
		Enabled:            template.Enabled,
		IsBuiltin:          template.IsBuiltin,
		CreatedAt:          template.CreatedAt,
		UpdatedAt:          template.UpdatedAt,
	}
}
