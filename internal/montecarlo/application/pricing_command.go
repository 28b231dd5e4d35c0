package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wyfcoding/optionpricing/internal/montecarlo/domain"
	"github.com/wyfcoding/optionpricing/pkg/logger"
	"github.com/wyfcoding/optionpricing/pkg/metrics"
)

// PricingCommandService 定价命令服务。
// 仓储、事件发布器和结果交付器都是可选协作方：任何一个缺席或失败
// 都不影响定价结果本身的有效性（结果已经完整算出）。
type PricingCommandService struct {
	repo       domain.PricingRunRepository
	publisher  domain.ResultPublisher
	sink       domain.ResultSink
	metrics    *metrics.Metrics
	newSampler func() domain.NormalSampler
}

// NewPricingCommandService 创建定价命令服务实例
func NewPricingCommandService(
	repo domain.PricingRunRepository,
	publisher domain.ResultPublisher,
	sink domain.ResultSink,
	m *metrics.Metrics,
) *PricingCommandService {
	return &PricingCommandService{
		repo:       repo,
		publisher:  publisher,
		sink:       sink,
		metrics:    m,
		newSampler: func() domain.NormalSampler { return domain.NewGaussianSampler() },
	}
}

// WithSamplerFactory 注入采样器工厂，测试时可换成固定种子采样器
func (s *PricingCommandService) WithSamplerFactory(f func() domain.NormalSampler) *PricingCommandService {
	s.newSampler = f
	return s
}

// RunSimulation 执行一次定价运行：校验参数、定价、记录、交付
func (s *PricingCommandService) RunSimulation(ctx context.Context, cmd RunSimulationCommand) (*PricingRunDTO, error) {
	params := domain.SimulationParameters{
		NumPaths: cmd.NumberOfPaths,
		S:        cmd.UnderlyingPrice,
		K:        cmd.StrikePrice,
		R:        cmd.RiskFreeRate,
		V:        cmd.Volatility,
		T:        cmd.Maturity,
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	runID := cmd.RequestID
	if runID == "" {
		runID = uuid.New().String()
	}
	defer logger.LogDuration(ctx, "pricing simulation finished",
		"run_id", runID, "num_paths", params.NumPaths)()

	start := time.Now()
	if s.metrics != nil {
		s.metrics.ActiveWorkers.Inc()
	}
	worker := domain.NewWorker(0, params, s.newSampler())
	result, err := worker.Run()
	if s.metrics != nil {
		s.metrics.ActiveWorkers.Dec()
	}
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.SimulationsTotal.Inc()
		s.metrics.PathsSimulated.Add(float64(params.NumPaths))
		s.metrics.SimulationDuration.Observe(time.Since(start).Seconds())
	}

	run := &domain.PricingRun{
		RunID:     runID,
		Source:    cmd.Source,
		Params:    params,
		CallPrice: result.CallPrice,
		PutPrice:  result.PutPrice,
		CreatedAt: time.Now(),
	}

	if s.repo != nil {
		if err := s.repo.Save(ctx, run); err != nil {
			logger.Error(ctx, "failed to persist pricing run", "run_id", runID, "error", err)
		}
	}
	if s.sink != nil {
		if err := s.sink.Publish(ctx, runID, result); err != nil {
			logger.Error(ctx, "failed to deliver pricing result", "run_id", runID, "error", err)
			if s.metrics != nil {
				s.metrics.UploadFailuresTotal.Inc()
			}
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishResult(ctx, runID, result); err != nil {
			logger.Error(ctx, "failed to publish pricing event", "run_id", runID, "error", err)
			if s.metrics != nil {
				s.metrics.PublishFailuresTotal.Inc()
			}
		}
	}

	return toDTO(run), nil
}
