// Package application 定价服务应用层，整合命令服务和查询服务
package application

import (
	"context"

	"github.com/wyfcoding/optionpricing/internal/montecarlo/domain"
	"github.com/wyfcoding/optionpricing/pkg/metrics"
)

// PricingApplicationService 定价服务门面
type PricingApplicationService struct {
	commandService *PricingCommandService
	queryService   *PricingQueryService
}

// NewPricingApplicationService 创建定价服务门面实例
func NewPricingApplicationService(
	repo domain.PricingRunRepository,
	publisher domain.ResultPublisher,
	sink domain.ResultSink,
	m *metrics.Metrics,
) *PricingApplicationService {
	return &PricingApplicationService{
		commandService: NewPricingCommandService(repo, publisher, sink, m),
		queryService:   NewPricingQueryService(repo),
	}
}

// Command 返回命令服务，用于测试注入
func (s *PricingApplicationService) Command() *PricingCommandService {
	return s.commandService
}

// RunSimulation 执行一次定价运行
func (s *PricingApplicationService) RunSimulation(ctx context.Context, cmd RunSimulationCommand) (*PricingRunDTO, error) {
	return s.commandService.RunSimulation(ctx, cmd)
}

// GetRun 获取定价运行
func (s *PricingApplicationService) GetRun(ctx context.Context, runID string) (*PricingRunDTO, error) {
	return s.queryService.GetRun(ctx, runID)
}

// ListRuns 列出最近的定价运行
func (s *PricingApplicationService) ListRuns(ctx context.Context, limit int) ([]*PricingRunDTO, error) {
	return s.queryService.ListRuns(ctx, limit)
}
