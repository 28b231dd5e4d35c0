package application

import (
	"context"

	"github.com/wyfcoding/pkg/xerrors"

	"github.com/wyfcoding/optionpricing/internal/montecarlo/domain"
)

// PricingQueryService 定价查询服务
type PricingQueryService struct {
	repo domain.PricingRunRepository
}

// NewPricingQueryService 创建定价查询服务实例
func NewPricingQueryService(repo domain.PricingRunRepository) *PricingQueryService {
	return &PricingQueryService{repo: repo}
}

// GetRun 根据 RunID 获取定价运行
func (s *PricingQueryService) GetRun(ctx context.Context, runID string) (*PricingRunDTO, error) {
	if s.repo == nil {
		return nil, xerrors.NotFound("run history is not enabled")
	}
	run, err := s.repo.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, xerrors.NotFound("pricing run not found")
	}
	return toDTO(run), nil
}

// ListRuns 列出最近的定价运行
func (s *PricingQueryService) ListRuns(ctx context.Context, limit int) ([]*PricingRunDTO, error) {
	if s.repo == nil {
		return []*PricingRunDTO{}, nil
	}
	runs, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	dtos := make([]*PricingRunDTO, 0, len(runs))
	for _, run := range runs {
		dtos = append(dtos, toDTO(run))
	}
	return dtos, nil
}
