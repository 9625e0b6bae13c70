package clients

import (
	"context"
	"crypto/x509"
	"errors"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/infrastructure/config"
	"ai-model-admin/internal/infrastructure/logger"
)

// EndpointProber 端点连通性探测器接口
type EndpointProber interface {
	// Probe 对目标URL发起一次有界探测，永不返回error，失败信息落在结果里
	Probe(ctx context.Context, req *dto.ProbeEndpointRequest) *dto.ProbeResult
}

// endpointProberImpl 端点连通性探测器实现
type endpointProberImpl struct {
	httpClient     *http.Client
	defaultTimeout time.Duration
	maxTimeout     time.Duration
	userAgent      string
	logger         logger.Logger
}

// NewEndpointProber 创建端点连通性探测器
func NewEndpointProber(cfg *config.ProbeConfig, logger logger.Logger) EndpointProber {
	return NewEndpointProberWithClient(cfg, &http.Client{}, logger)
}

// NewEndpointProberWithClient 使用指定HTTP客户端创建探测器
//
// 超时完全由每次调用的context控制，客户端自身不设Timeout。
func NewEndpointProberWithClient(cfg *config.ProbeConfig, httpClient *http.Client, logger logger.Logger) EndpointProber {
	return &endpointProberImpl{
		httpClient:     httpClient,
		defaultTimeout: cfg.DefaultTimeout,
		maxTimeout:     cfg.MaxTimeout,
		userAgent:      cfg.UserAgent,
		logger:         logger,
	}
}

// Probe 对目标URL发起一次有界探测
func (p *endpointProberImpl) Probe(ctx context.Context, probeReq *dto.ProbeEndpointRequest) *dto.ProbeResult {
	result := &dto.ProbeResult{
		URL:       probeReq.URL,
		Timestamp: time.Now(),
	}

	method := strings.ToUpper(strings.TrimSpace(probeReq.Method))
	if method == "" {
		method = http.MethodHead
	}

	timeout := p.resolveTimeout(probeReq.TimeoutMs)
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()

	req, err := http.NewRequestWithContext(probeCtx, method, probeReq.URL, nil)
	if err != nil {
		result.ResponseTimeMs = time.Since(start).Milliseconds()
		result.Error = dto.ProbeErrorOther
		result.Message = err.Error()
		return result
	}

	// 调用方头部优先，仅在未指定时补充标识性User-Agent
	for key, value := range probeReq.Headers {
		req.Header.Set(key, value)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.httpClient.Do(req)
	result.ResponseTimeMs = time.Since(start).Milliseconds()

	if err != nil {
		result.Error, result.Message = classifyProbeError(err)
		p.logger.WithFields(map[string]interface{}{
			"url":              probeReq.URL,
			"method":           method,
			"error":            result.Error,
			"response_time_ms": result.ResponseTimeMs,
		}).Warn("Endpoint probe failed")
		return result
	}
	defer resp.Body.Close()

	// 任何HTTP状态码都算可达，包括4xx/5xx
	statusCode := resp.StatusCode
	result.Success = true
	result.StatusCode = &statusCode

	p.logger.WithFields(map[string]interface{}{
		"url":              probeReq.URL,
		"method":           method,
		"status_code":      statusCode,
		"response_time_ms": result.ResponseTimeMs,
	}).Debug("Endpoint probe completed")

	return result
}

// resolveTimeout 计算本次探测的超时，非法值回退默认值并封顶
func (p *endpointProberImpl) resolveTimeout(timeoutMs int) time.Duration {
	if timeoutMs <= 0 {
		return p.defaultTimeout
	}
	timeout := time.Duration(timeoutMs) * time.Millisecond
	if timeout > p.maxTimeout {
		return p.maxTimeout
	}
	return timeout
}

// classifyProbeError 把传输层错误映射到闭合的失败分类
func classifyProbeError(err error) (code string, message string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return dto.ProbeErrorTimeout, ""
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return dto.ProbeErrorTimeout, ""
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dto.ProbeErrorHostNotFound, ""
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return dto.ProbeErrorConnectionRefused, ""
	}

	var certErr x509.CertificateInvalidError
	if errors.As(err, &certErr) && certErr.Reason == x509.Expired {
		return dto.ProbeErrorTLSCertExpired, ""
	}

	return dto.ProbeErrorOther, err.Error()
}
