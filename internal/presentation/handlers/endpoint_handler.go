package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/application/services"
	"ai-model-admin/internal/domain/entities"
	"ai-model-admin/internal/infrastructure/clients"
	"ai-model-admin/internal/infrastructure/logger"
)

// EndpointHandler 端点解析与探测处理器
type EndpointHandler struct {
	resolver services.EndpointResolverService
	prober   clients.EndpointProber
	logger   logger.Logger
}

// NewEndpointHandler 创建端点处理器
func NewEndpointHandler(resolver services.EndpointResolverService, prober clients.EndpointProber, logger logger.Logger) *EndpointHandler {
	return &EndpointHandler{
		resolver: resolver,
		prober:   prober,
		logger:   logger,
	}
}

// ResolveEndpoint 解析模型端点
// @Summary 解析模型端点
// @Description 按自定义URL、模板默认、厂商适配、媒体类型默认表的优先级解析最终请求端点
// @Tags endpoint
// @Accept json
// @Produce json
// @Param request body dto.ResolveEndpointRequest true "端点解析请求"
// @Success 200 {object} dto.Response{data=dto.ResolveEndpointResponse} "解析成功"
// @Failure 400 {object} dto.Response "请求参数错误"
// @Failure 404 {object} dto.Response "模板不存在"
// @Router /endpoint/resolve [post]
func (h *EndpointHandler) ResolveEndpoint(c *gin.Context) {
	var req dto.ResolveEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithField("error", err.Error()).Warn("Invalid resolve endpoint request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(
			"INVALID_REQUEST",
			"Invalid request body",
			map[string]interface{}{
				"details": err.Error(),
			},
		))
		return
	}

	result, err := h.resolver.Resolve(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, entities.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"TEMPLATE_NOT_FOUND",
				"Model template not found",
				nil,
			))
			return
		}
		if errors.Is(err, entities.ErrProxyAccountNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"PROXY_ACCOUNT_NOT_FOUND",
				"Proxy account not found",
				nil,
			))
			return
		}

		h.logger.WithFields(map[string]interface{}{
			"model_id": req.ModelID,
			"error":    err.Error(),
		}).Error("Failed to resolve endpoint")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"RESOLVE_ENDPOINT_FAILED",
			"Failed to resolve endpoint",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(result, "Endpoint resolved successfully"))
}

// ProbeEndpoint 探测端点连通性
// @Summary 探测端点连通性
// @Description 对目标URL发起一次有界探测，探测失败也返回200，结果里携带失败分类
// @Tags endpoint
// @Accept json
// @Produce json
// @Param request body dto.ProbeEndpointRequest true "探测请求"
// @Success 200 {object} dto.Response{data=dto.ProbeResult} "探测完成"
// @Failure 400 {object} dto.Response "请求参数错误"
// @Router /endpoint/probe [post]
func (h *EndpointHandler) ProbeEndpoint(c *gin.Context) {
	var req dto.ProbeEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithField("error", err.Error()).Warn("Invalid probe endpoint request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(
			"INVALID_REQUEST",
			"Invalid request body",
			map[string]interface{}{
				"details": err.Error(),
			},
		))
		return
	}

	// 探测失败是正常业务结果，统一走200响应
	result := h.prober.Probe(c.Request.Context(), &req)

	c.JSON(http.StatusOK, dto.SuccessResponse(result, "Probe completed"))
}
