package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/domain/entities"
	"ai-model-admin/internal/domain/repositories"
	"ai-model-admin/internal/infrastructure/clients"
	"ai-model-admin/internal/infrastructure/logger"
)

// UserModelService 用户模型覆盖服务接口
type UserModelService interface {
	// CreateUserModel 创建覆盖记录
	CreateUserModel(ctx context.Context, req *dto.CreateUserModelRequest) (*dto.UserModelResponse, error)

	// GetUserModel 根据ID获取覆盖记录
	GetUserModel(ctx context.Context, id int64) (*dto.UserModelResponse, error)

	// ListUserModels 获取用户的全部覆盖记录
	ListUserModels(ctx context.Context, userID int64) ([]*dto.UserModelResponse, error)

	// UpdateUserModel 更新覆盖记录
	UpdateUserModel(ctx context.Context, id int64, req *dto.UpdateUserModelRequest) (*dto.UserModelResponse, error)

	// DeleteUserModel 删除覆盖记录
	DeleteUserModel(ctx context.Context, id int64) error

	// TestUserModel 探测覆盖记录的生效端点并缓存结果
	TestUserModel(ctx context.Context, id int64) (*dto.ProbeResult, error)
}

// userModelServiceImpl 用户模型覆盖服务实现
type userModelServiceImpl struct {
	userModelRepo repositories.UserModelRepository
	templateRepo  repositories.ModelTemplateRepository
	accountRepo   repositories.ProxyAccountRepository
	resolver      EndpointResolverService
	prober        clients.EndpointProber
	logger        logger.Logger
}

// NewUserModelService 创建用户模型覆盖服务
func NewUserModelService(
	userModelRepo repositories.UserModelRepository,
	templateRepo repositories.ModelTemplateRepository,
	accountRepo repositories.ProxyAccountRepository,
	resolver EndpointResolverService,
	prober clients.EndpointProber,
	logger logger.Logger,
) UserModelService {
	return &userModelServiceImpl{
		userModelRepo: userModelRepo,
		templateRepo:  templateRepo,
		accountRepo:   accountRepo,
		resolver:      resolver,
		prober:        prober,
		logger:        logger,
	}
}

// CreateUserModel 创建覆盖记录
func (s *userModelServiceImpl) CreateUserModel(ctx context.Context, req *dto.CreateUserModelRequest) (*dto.UserModelResponse, error) {
	// 覆盖必须挂在已存在的模板上
	if _, err := s.templateRepo.GetByModelID(ctx, req.TemplateModelID); err != nil {
		return nil, fmt.Errorf("failed to get model template: %w", err)
	}

	// 指定了代理账号时校验其存在
	if req.ProxyAccountID != nil {
		if _, err := s.accountRepo.GetByID(ctx, *req.ProxyAccountID); err != nil {
			return nil, fmt.Errorf("failed to get proxy account: %w", err)
		}
	}

	// 同一用户对同一模板只允许一条覆盖
	if _, err := s.userModelRepo.GetByUserAndModel(ctx, req.UserID, req.TemplateModelID); err == nil {
		return nil, fmt.Errorf("override already exists for user %d model %s", req.UserID, req.TemplateModelID)
	} else if !errors.Is(err, entities.ErrUserModelNotFound) {
		return nil, fmt.Errorf("failed to check existing override: %w", err)
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	override := &entities.UserModelOverride{
		UserID:            req.UserID,
		TemplateModelID:   req.TemplateModelID,
		CustomEndpointURL: req.CustomEndpointURL,
		ProxyAccountID:    req.ProxyAccountID,
		Enabled:           enabled,
	}

	if err := s.userModelRepo.Create(ctx, override); err != nil {
		return nil, fmt.Errorf("failed to create user model override: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"override_id":       override.ID,
		"user_id":           override.UserID,
		"template_model_id": override.TemplateModelID,
	}).Info("User model override created")

	return s.toUserModelResponse(override), nil
}

// GetUserModel 根据ID获取覆盖记录
func (s *userModelServiceImpl) GetUserModel(ctx context.Context, id int64) (*dto.UserModelResponse, error) {
	override, err := s.userModelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user model override: %w", err)
	}
	return s.toUserModelResponse(override), nil
}

// ListUserModels 获取用户的全部覆盖记录
func (s *userModelServiceImpl) ListUserModels(ctx context.Context, userID int64) ([]*dto.UserModelResponse, error) {
	overrides, err := s.userModelRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user model overrides: %w", err)
	}

	responses := make([]*dto.UserModelResponse, 0, len(overrides))
	for _, o := range overrides {
		responses = append(responses, s.toUserModelResponse(o))
	}
	return responses, nil
}

// UpdateUserModel 更新覆盖记录，nil字段保持不变
func (s *userModelServiceImpl) UpdateUserModel(ctx context.Context, id int64, req *dto.UpdateUserModelRequest) (*dto.UserModelResponse, error) {
	override, err := s.userModelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user model override: %w", err)
	}

	if req.ProxyAccountID != nil {
		if _, err := s.accountRepo.GetByID(ctx, *req.ProxyAccountID); err != nil {
			return nil, fmt.Errorf("failed to get proxy account: %w", err)
		}
		override.ProxyAccountID = req.ProxyAccountID
	}
	if req.CustomEndpointURL != nil {
		override.CustomEndpointURL = req.CustomEndpointURL
	}
	if req.Enabled != nil {
		override.Enabled = *req.Enabled
	}

	if err := s.userModelRepo.Update(ctx, override); err != nil {
		return nil, fmt.Errorf("failed to update user model override: %w", err)
	}

	s.logger.WithField("override_id", id).Info("User model override updated")

	return s.toUserModelResponse(override), nil
}

// DeleteUserModel 删除覆盖记录
func (s *userModelServiceImpl) DeleteUserModel(ctx context.Context, id int64) error {
	if _, err := s.userModelRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("failed to get user model override: %w", err)
	}

	if err := s.userModelRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user model override: %w", err)
	}

	s.logger.WithField("override_id", id).Info("User model override deleted")

	return nil
}

// TestUserModel 探测覆盖记录的生效端点并缓存结果
//
// 生效端点走与请求路径相同的解析规则，探测结果整体覆盖到记录上。
func (s *userModelServiceImpl) TestUserModel(ctx context.Context, id int64) (*dto.ProbeResult, error) {
	override, err := s.userModelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user model override: %w", err)
	}

	template, err := s.templateRepo.GetByModelID(ctx, override.TemplateModelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get model template: %w", err)
	}

	resolved, err := s.resolver.Resolve(ctx, &dto.ResolveEndpointRequest{
		ModelID:           override.TemplateModelID,
		MediaType:         string(template.MediaType),
		CustomEndpointURL: override.GetCustomEndpointURL(),
		ProxyAccountID:    override.ProxyAccountID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve endpoint: %w", err)
	}

	result := s.prober.Probe(ctx, &dto.ProbeEndpointRequest{URL: resolved.FinalURL})

	serialized, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal probe result: %w", err)
	}

	override.RecordTestResult(string(serialized), time.Now())

	if err := s.userModelRepo.Update(ctx, override); err != nil {
		return nil, fmt.Errorf("failed to record test result: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"override_id": id,
		"url":         result.URL,
		"success":     result.Success,
	}).Info("User model endpoint tested")

	return result, nil
}

// toUserModelResponse 实体转响应DTO
func (s *userModelServiceImpl) toUserModelResponse(override *entities.UserModelOverride) *dto.UserModelResponse {
	resp := &dto.UserModelResponse{
		ID:                override.ID,
		UserID:            override.UserID,
		TemplateModelID:   override.TemplateModelID,
		CustomEndpointURL: override.GetCustomEndpointURL(),
		ProxyAccountID:    override.ProxyAccountID,
		Enabled:           override.Enabled,
		Tested:            override.Tested,
		LastTestedAt:      override.LastTestedAt,
		CreatedAt:         override.CreatedAt,
		UpdatedAt:         override.UpdatedAt,
	}

	if override.TestResult != nil {
		var result dto.ProbeResult
		if err := json.Unmarshal([]byte(*override.TestResult), &result); err == nil {
			resp.TestResult = &result
		}
	}

	return resp
}
