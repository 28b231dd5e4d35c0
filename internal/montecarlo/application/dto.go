package application

import (
	"time"

	"github.com/wyfcoding/optionpricing/internal/montecarlo/domain"
)

// RunSimulationCommand 触发一次定价运行的命令
type RunSimulationCommand struct {
	// RequestID 调用方请求标识，为空时自动生成
	RequestID string
	// Source 运行来源
	Source domain.RunSource
	// NumberOfPaths 模拟路径数
	NumberOfPaths int
	// UnderlyingPrice 标的资产价格
	UnderlyingPrice float64
	// StrikePrice 执行价格
	StrikePrice float64
	// RiskFreeRate 无风险利率
	RiskFreeRate float64
	// Volatility 波动率
	Volatility float64
	// Maturity 到期时间 (年)
	Maturity float64
}

// PricingRunDTO 对外暴露的定价运行数据
type PricingRunDTO struct {
	RunID        string    `json:"run_id"`
	Source       string    `json:"source"`
	NumPaths     int       `json:"num_paths"`
	Underlying   float64   `json:"underlying"`
	Strike       float64   `json:"strike"`
	RiskFreeRate float64   `json:"risk_free_rate"`
	Volatility   float64   `json:"volatility"`
	Maturity     float64   `json:"maturity"`
	CallPrice    float64   `json:"call_price"`
	PutPrice     float64   `json:"put_price"`
	// 解析基准价，便于调用方对照蒙特卡洛估计
	AnalyticCallPrice string    `json:"analytic_call_price"`
	AnalyticPutPrice  string    `json:"analytic_put_price"`
	CreatedAt         time.Time `json:"created_at"`
}

func toDTO(run *domain.PricingRun) *PricingRunDTO {
	analytic := domain.CalculateBlackScholes(run.Params)
	return &PricingRunDTO{
		RunID:             run.RunID,
		Source:            string(run.Source),
		NumPaths:          run.Params.NumPaths,
		Underlying:        run.Params.S,
		Strike:            run.Params.K,
		RiskFreeRate:      run.Params.R,
		Volatility:        run.Params.V,
		Maturity:          run.Params.T,
		CallPrice:         run.CallPrice,
		PutPrice:          run.PutPrice,
		AnalyticCallPrice: analytic.CallPrice.Round(6).String(),
		AnalyticPutPrice:  analytic.PutPrice.Round(6).String(),
		CreatedAt:         run.CreatedAt,
	}
}
