package services

import (
	"context"
	"testing"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTemplateService_DeleteTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("内置模板拒绝删除", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		templateRepo.On("GetByID", ctx, int64(1)).Return(&entities.ModelTemplate{
			ID:        1,
			ModelID:   "gpt-4o",
			IsBuiltin: true,
		}, nil)

		service := NewTemplateService(templateRepo, &MockLogger{})

		err := service.DeleteTemplate(ctx, 1)

		assert.ErrorIs(t, err, entities.ErrBuiltinTemplate)
		templateRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("非内置模板正常删除", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		templateRepo.On("GetByID", ctx, int64(2)).Return(&entities.ModelTemplate{
			ID:      2,
			ModelID: "custom-model",
		}, nil)
		templateRepo.On("Delete", ctx, int64(2)).Return(nil)

		service := NewTemplateService(templateRepo, &MockLogger{})

		err := service.DeleteTemplate(ctx, 2)

		assert.NoError(t, err)
		templateRepo.AssertCalled(t, "Delete", ctx, int64(2))
	})

	t.Run("模板不存在时透传错误", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		templateRepo.On("GetByID", ctx, int64(99)).Return(nil, entities.ErrTemplateNotFound)

		service := NewTemplateService(templateRepo, &MockLogger{})

		err := service.DeleteTemplate(ctx, 99)

		assert.ErrorIs(t, err, entities.ErrTemplateNotFound)
	})
}

func TestTemplateService_CreateTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("非法媒体类型拒绝创建", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		service := NewTemplateService(templateRepo, &MockLogger{})

		resp, err := service.CreateTemplate(ctx, &dto.CreateTemplateRequest{
			ModelID:   "new-model",
			ModelName: "New Model",
			MediaType: "audio",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, entities.ErrInvalidMediaType)
		templateRepo.AssertNotCalled(t, "Create")
	})

	t.Run("重复ModelID拒绝创建", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		templateRepo.On("GetByModelID", ctx, "gpt-4o").Return(&entities.ModelTemplate{
			ID:      1,
			ModelID: "gpt-4o",
		}, nil)

		service := NewTemplateService(templateRepo, &MockLogger{})

		resp, err := service.CreateTemplate(ctx, &dto.CreateTemplateRequest{
			ModelID:   "gpt-4o",
			ModelName: "GPT-4o",
			MediaType: "text",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, entities.ErrDuplicateModelID)
	})

	t.Run("创建成功默认启用", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		templateRepo.On("GetByModelID", ctx, "new-model").Return(nil, entities.ErrTemplateNotFound)
		templateRepo.On("Create", ctx, mock.MatchedBy(func(tpl *entities.ModelTemplate) bool {
			return tpl.ModelID == "new-model" && tpl.Enabled && !tpl.IsBuiltin
		})).Return(nil)

		service := NewTemplateService(templateRepo, &MockLogger{})

		resp, err := service.CreateTemplate(ctx, &dto.CreateTemplateRequest{
			ModelID:   "new-model",
			ModelName: "New Model",
			MediaType: "text",
			Provider:  "openai",
		})

		assert.NoError(t, err)
		assert.True(t, resp.Enabled)
	})
}

func TestTemplateService_ListTemplates(t *testing.T) {
	ctx := context.Background()

	t.Run("启用状态过滤透传到仓储查询", func(t *testing.T) {
		enabled := true
		templateRepo := new(MockModelTemplateRepository)
		templateRepo.On("List", ctx, &enabled, 0, 10).Return([]*entities.ModelTemplate{
			{ID: 1, ModelID: "gpt-4o", Enabled: true},
		}, nil)
		templateRepo.On("Count", ctx, &enabled).Return(int64(1), nil)

		service := NewTemplateService(templateRepo, &MockLogger{})

		result, err := service.ListTemplates(ctx, &dto.TemplateListRequest{Enabled: &enabled})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
		templateRepo.AssertExpectations(t)
	})

	t.Run("非法媒体类型过滤返回错误", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		service := NewTemplateService(templateRepo, &MockLogger{})

		result, err := service.ListTemplates(ctx, &dto.TemplateListRequest{MediaType: "audio"})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, entities.ErrInvalidMediaType)
		templateRepo.AssertNotCalled(t, "List")
	})
}

func TestTemplateService_SeedBuiltinTemplates(t *testing.T) {
	ctx := context.Background()

	t.Run("表非空时不写入", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		templateRepo.On("Count", ctx, (*bool)(nil)).Return(int64(3), nil)

		service := NewTemplateService(templateRepo, &MockLogger{})

		err := service.SeedBuiltinTemplates(ctx)

		assert.NoError(t, err)
		templateRepo.AssertNotCalled(t, "Create")
	})

	t.Run("表为空时写入全部内置模板", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		templateRepo.On("Count", ctx, (*bool)(nil)).Return(int64(0), nil)
		templateRepo.On("Create", ctx, mock.MatchedBy(func(tpl *entities.ModelTemplate) bool {
			return tpl.IsBuiltin
		})).Return(nil)

		service := NewTemplateService(templateRepo, &MockLogger{})

		err := service.SeedBuiltinTemplates(ctx)

		assert.NoError(t, err)
		templateRepo.AssertNumberOfCalls(t, "Create", len(builtinTemplates))
	})
}
