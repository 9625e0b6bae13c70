package services

import (
	"context"
	"fmt"
	"sync"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/domain/entities"
	"ai-model-admin/internal/domain/repositories"
	"ai-model-admin/internal/infrastructure/clients"
	"ai-model-admin/internal/infrastructure/logger"
)

// ProxyAccountService 代理账号服务接口
type ProxyAccountService interface {
	// CreateAccount 创建代理账号
	CreateAccount(ctx context.Context, req *dto.CreateProxyAccountRequest) (*dto.ProxyAccountResponse, error)

	// GetAccount 根据ID获取代理账号
	GetAccount(ctx context.Context, id int64) (*dto.ProxyAccountResponse, error)

	// ListAccounts 分页获取代理账号列表
	ListAccounts(ctx context.Context, req *dto.PaginationRequest) (*dto.PaginatedResponse, error)

	// UpdateAccount 更新代理账号
	UpdateAccount(ctx context.Context, id int64, req *dto.UpdateProxyAccountRequest) (*dto.ProxyAccountResponse, error)

	// DeleteAccount 删除代理账号
	DeleteAccount(ctx context.Context, id int64) error

	// VerifyAll 并发探测全部活跃账号的生效基础地址
	VerifyAll(ctx context.Context) ([]*dto.AccountProbeResult, error)
}

// proxyAccountServiceImpl 代理账号服务实现
type proxyAccountServiceImpl struct {
	accountRepo     repositories.ProxyAccountRepository
	prober          clients.EndpointProber
	upstreamBaseURL string
	logger          logger.Logger
}

// NewProxyAccountService 创建代理账号服务
func NewProxyAccountService(
	accountRepo repositories.ProxyAccountRepository,
	prober clients.EndpointProber,
	upstreamBaseURL string,
	logger logger.Logger,
) ProxyAccountService {
	return &proxyAccountServiceImpl{
		accountRepo:     accountRepo,
		prober:          prober,
		upstreamBaseURL: upstreamBaseURL,
		logger:          logger,
	}
}

// CreateAccount 创建代理账号
func (s *proxyAccountServiceImpl) CreateAccount(ctx context.Context, req *dto.CreateProxyAccountRequest) (*dto.ProxyAccountResponse, error) {
	account := &entities.ProxyAccount{
		Name:     req.Name,
		Provider: entities.Provider(req.Provider),
		APIKey:   req.APIKey,
		BaseURL:  req.BaseURL,
		Status:   entities.ProxyAccountStatusActive,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create proxy account: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"account_id": account.ID,
		"provider":   account.Provider,
	}).Info("Proxy account created")

	return s.toAccountResponse(account), nil
}

// GetAccount 根据ID获取代理账号
func (s *proxyAccountServiceImpl) GetAccount(ctx context.Context, id int64) (*dto.ProxyAccountResponse, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get proxy account: %w", err)
	}
	return s.toAccountResponse(account), nil
}

// ListAccounts 分页获取代理账号列表
func (s *proxyAccountServiceImpl) ListAccounts(ctx context.Context, req *dto.PaginationRequest) (*dto.PaginatedResponse, error) {
	req.SetDefaults()

	accounts, err := s.accountRepo.List(ctx, req.Offset(), req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list proxy accounts: %w", err)
	}

	total, err := s.accountRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count proxy accounts: %w", err)
	}

	responses := make([]*dto.ProxyAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		responses = append(responses, s.toAccountResponse(a))
	}

	return dto.NewPaginatedResponse(responses, total, req.Page, req.PageSize), nil
}

// UpdateAccount 更新代理账号，nil字段保持不变
func (s *proxyAccountServiceImpl) UpdateAccount(ctx context.Context, id int64, req *dto.UpdateProxyAccountRequest) (*dto.ProxyAccountResponse, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get proxy account: %w", err)
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.APIKey != nil {
		account.APIKey = *req.APIKey
	}
	if req.BaseURL != nil {
		account.BaseURL = req.BaseURL
	}
	if req.Status != nil {
		status := entities.ProxyAccountStatus(*req.Status)
		if status != entities.ProxyAccountStatusActive && status != entities.ProxyAccountStatusDisabled {
			return nil, fmt.Errorf("invalid proxy account status: %s", *req.Status)
		}
		account.Status = status
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update proxy account: %w", err)
	}

	s.logger.WithField("account_id", id).Info("Proxy account updated")

	return s.toAccountResponse(account), nil
}

// DeleteAccount 删除代理账号
func (s *proxyAccountServiceImpl) DeleteAccount(ctx context.Context, id int64) error {
	if _, err := s.accountRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("failed to get proxy account: %w", err)
	}

	if err := s.accountRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete proxy account: %w", err)
	}

	s.logger.WithField("account_id", id).Info("Proxy account deleted")

	return nil
}

// VerifyAll 并发探测全部活跃账号的生效基础地址
//
// 每个账号一个goroutine，探测器内部各自持有独立的超时context，
// 单个账号失败不影响其他账号。
func (s *proxyAccountServiceImpl) VerifyAll(ctx context.Context) ([]*dto.AccountProbeResult, error) {
	accounts, err := s.accountRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active proxy accounts: %w", err)
	}

	results := make([]*dto.AccountProbeResult, len(accounts))
	var wg sync.WaitGroup

	for i, account := range accounts {
		wg.Add(1)
		go func(idx int, acc *entities.ProxyAccount) {
			defer wg.Done()

			url := acc.GetBaseURL()
			if url == "" {
				url = s.upstreamBaseURL
			}

			results[idx] = &dto.AccountProbeResult{
				AccountID:   acc.ID,
				AccountName: acc.Name,
				Provider:    string(acc.Provider),
				Result:      s.prober.Probe(ctx, &dto.ProbeEndpointRequest{URL: url}),
			}
		}(i, account)
	}

	wg.Wait()

	s.logger.WithField("count", len(results)).Info("Proxy account batch verification completed")

	return results, nil
}

// toAccountResponse 实体转响应DTO，凭证只保留掩码后缀
func (s *proxyAccountServiceImpl) toAccountResponse(account *entities.ProxyAccount) *dto.ProxyAccountResponse {
	return &dto.ProxyAccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Provider:  string(account.Provider),
		MaskedKey: account.MaskedKey(),
		BaseURL:   account.GetBaseURL(),
		Status:    string(account.Status),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
