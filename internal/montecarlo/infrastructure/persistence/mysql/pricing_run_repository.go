// Package mysql 提供定价运行仓储接口的 MySQL GORM 实现。
package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wyfcoding/optionpricing/internal/montecarlo/domain"
)

// PricingRunModel 定价运行数据库模型
type PricingRunModel struct {
	gorm.Model
	RunID     string  `gorm:"column:run_id;type:varchar(64);uniqueIndex;not null"`
	Source    string  `gorm:"column:source;type:varchar(16);not null"`
	NumPaths  int     `gorm:"column:num_paths;not null"`
	Spot      float64 `gorm:"column:spot;not null"`
	Strike    float64 `gorm:"column:strike;not null"`
	Rate      float64 `gorm:"column:rate;not null"`
	Vol       float64 `gorm:"column:vol;not null"`
	Maturity  float64 `gorm:"column:maturity;not null"`
	CallPrice float64 `gorm:"column:call_price;not null"`
	PutPrice  float64 `gorm:"column:put_price;not null"`
}

func (PricingRunModel) TableName() string { return "pricing_runs" }

// pricingRunRepositoryImpl 定价运行仓储实现
type pricingRunRepositoryImpl struct {
	db *gorm.DB
}

// NewPricingRunRepository 创建定价运行仓储实例
func NewPricingRunRepository(db *gorm.DB) domain.PricingRunRepository {
	return &pricingRunRepositoryImpl{db: db}
}

func (r *pricingRunRepositoryImpl) Save(ctx context.Context, run *domain.PricingRun) error {
	m := &PricingRunModel{
		RunID:     run.RunID,
		Source:    string(run.Source),
		NumPaths:  run.Params.NumPaths,
		Spot:      run.Params.S,
		Strike:    run.Params.K,
		Rate:      run.Params.R,
		Vol:       run.Params.V,
		Maturity:  run.Params.T,
		CallPrice: run.CallPrice,
		PutPrice:  run.PutPrice,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "run_id"}},
		UpdateAll: true,
	}).Create(m).Error
	if err == nil {
		run.ID = m.ID
		run.CreatedAt = m.CreatedAt
	}
	return err
}

func (r *pricingRunRepositoryImpl) Get(ctx context.Context, runID string) (*domain.PricingRun, error) {
	var m PricingRunModel
	if err := r.db.WithContext(ctx).Where("run_id = ?", runID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *pricingRunRepositoryImpl) List(ctx context.Context, limit int) ([]*domain.PricingRun, error) {
	if limit < 1 {
		limit = 20
	}
	var models []PricingRunModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}
	runs := make([]*domain.PricingRun, 0, len(models))
	for i := range models {
		runs = append(runs, r.toDomain(&models[i]))
	}
	return runs, nil
}

func (r *pricingRunRepositoryImpl) toDomain(m *PricingRunModel) *domain.PricingRun {
	return &domain.PricingRun{
		ID:     m.ID,
		RunID:  m.RunID,
		Source: domain.RunSource(m.Source),
		Params: domain.SimulationParameters{
			NumPaths: m.NumPaths,
			S:        m.Spot,
			K:        m.Strike,
			R:        m.Rate,
			V:        m.Vol,
			T:        m.Maturity,
		},
		CallPrice: m.CallPrice,
		PutPrice:  m.PutPrice,
		CreatedAt: m.CreatedAt,
	}
}
