package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/application/services"
	"ai-model-admin/internal/domain/entities"
	"ai-model-admin/internal/infrastructure/logger"
)

// ProxyAccountHandler 代理账号处理器
type ProxyAccountHandler struct {
	accountService services.ProxyAccountService
	logger         logger.Logger
}

// NewProxyAccountHandler 创建代理账号处理器
func NewProxyAccountHandler(accountService services.ProxyAccountService, logger logger.Logger) *ProxyAccountHandler {
	return &ProxyAccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// CreateAccount 创建代理账号
// @Summary 创建代理账号
// @Description 创建一个新的代理账号，响应中凭证只保留掩码后缀
// @Tags proxy-accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateProxyAccountRequest true "创建代理账号请求"
// @Success 201 {object} dto.Response{data=dto.ProxyAccountResponse} "创建成功"
// @Failure 400 {object} dto.Response "请求参数错误"
// @Router /proxy-accounts [post]
func (h *ProxyAccountHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateProxyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(
			"INVALID_REQUEST",
			"Invalid request body",
			map[string]interface{}{
				"details": err.Error(),
			},
		))
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), &req)
	if err != nil {
		h.logger.WithFields(map[string]interface{}{
			"name":  req.Name,
			"error": err.Error(),
		}).Error("Failed to create proxy account")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"CREATE_PROXY_ACCOUNT_FAILED",
			"Failed to create proxy account",
			nil,
		))
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse(account, "Proxy account created successfully"))
}

// GetAccount 获取代理账号
// @Summary 获取代理账号
// @Description 根据代理账号ID获取详细信息
// @Tags proxy-accounts
// @Produce json
// @Param id path int true "代理账号ID"
// @Success 200 {object} dto.Response{data=dto.ProxyAccountResponse} "获取成功"
// @Failure 404 {object} dto.Response "代理账号不存在"
// @Router /proxy-accounts/{id} [get]
func (h *ProxyAccountHandler) GetAccount(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrProxyAccountNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"PROXY_ACCOUNT_NOT_FOUND",
				"Proxy account not found",
				nil,
			))
			return
		}

		h.logger.WithFields(map[string]interface{}{
			"account_id": id,
			"error":      err.Error(),
		}).Error("Failed to get proxy account")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"GET_PROXY_ACCOUNT_FAILED",
			"Failed to get proxy account",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(account, "Proxy account retrieved successfully"))
}

// ListAccounts 获取代理账号列表
// @Summary 获取代理账号列表
// @Description 分页获取代理账号列表
// @Tags proxy-accounts
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} dto.Response{data=dto.PaginatedResponse} "获取成功"
// @Router /proxy-accounts [get]
func (h *ProxyAccountHandler) ListAccounts(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(
			"INVALID_REQUEST",
			"Invalid query parameters",
			nil,
		))
		return
	}

	result, err := h.accountService.ListAccounts(c.Request.Context(), &req)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list proxy accounts")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"LIST_PROXY_ACCOUNTS_FAILED",
			"Failed to list proxy accounts",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(result, "Proxy accounts retrieved successfully"))
}

// UpdateAccount 更新代理账号
// @Summary 更新代理账号
// @Description 根据代理账号ID更新账号信息，未提交的字段保持不变
// @Tags proxy-accounts
// @Accept json
// @Produce json
// @Param id path int true "代理账号ID"
// @Param request body dto.UpdateProxyAccountRequest true "更新代理账号请求"
// @Success 200 {object} dto.Response{data=dto.ProxyAccountResponse} "更新成功"
// @Failure 404 {object} dto.Response "代理账号不存在"
// @Router /proxy-accounts/{id} [put]
func (h *ProxyAccountHandler) UpdateAccount(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateProxyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(
			"INVALID_REQUEST",
			"Invalid request body",
			map[string]interface{}{
				"details": err.Error(),
			},
		))
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, entities.ErrProxyAccountNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"PROXY_ACCOUNT_NOT_FOUND",
				"Proxy account not found",
				nil,
			))
			return
		}

		h.logger.WithFields(map[string]interface{}{
			"account_id": id,
			"error":      err.Error(),
		}).Error("Failed to update proxy account")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"UPDATE_PROXY_ACCOUNT_FAILED",
			"Failed to update proxy account",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(account, "Proxy account updated successfully"))
}

// DeleteAccount 删除代理账号
// @Summary 删除代理账号
// @Description 根据代理账号ID删除账号
// @Tags proxy-accounts
// @Produce json
// @Param id path int true "代理账号ID"
// @Success 200 {object} dto.Response "删除成功"
// @Failure 404 {object} dto.Response "代理账号不存在"
// @Router /proxy-accounts/{id} [delete]
func (h *ProxyAccountHandler) DeleteAccount(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), id); err != nil {
		if errors.Is(err, entities.ErrProxyAccountNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"PROXY_ACCOUNT_NOT_FOUND",
				"Proxy account not found",
				nil,
			))
			return
		}

		h.logger.WithFields(map[string]interface{}{
			"account_id": id,
			"error":      err.Error(),
		}).Error("Failed to delete proxy account")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"DELETE_PROXY_ACCOUNT_FAILED",
			"Failed to delete proxy account",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(nil, "Proxy account deleted successfully"))
}

// VerifyAccounts 批量验证代理账号连通性
// @Summary 批量验证代理账号
// @Description 并发探测全部活跃账号的生效基础地址，返回逐账号结果
// @Tags proxy-accounts
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.AccountProbeResult} "验证完成"
// @Router /proxy-accounts/verify [post]
func (h *ProxyAccountHandler) VerifyAccounts(c *gin.Context) {
	results, err := h.accountService.VerifyAll(c.Request.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to verify proxy accounts")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"VERIFY_PROXY_ACCOUNTS_FAILED",
			"Failed to verify proxy accounts",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(results, "Proxy account verification completed"))
}
