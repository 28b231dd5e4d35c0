package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// BlackScholesResult Black-Scholes 解析定价输出
type BlackScholesResult struct {
	CallPrice decimal.Decimal
	PutPrice  decimal.Decimal
}

// CalculateBlackScholes 计算欧式看涨/看跌期权的 Black-Scholes 解析价格，
// 作为蒙特卡洛估计的解析基准
func CalculateBlackScholes(p SimulationParameters) *BlackScholesResult {
	discount := math.Exp(-p.R * p.T)

	// v=0 或 T=0 时没有扩散项，价格退化为贴现后的确定性收益
	if p.V*math.Sqrt(p.T) == 0 {
		forward := p.S * math.Exp(p.R*p.T)
		return &BlackScholesResult{
			CallPrice: decimal.NewFromFloat(math.Max(forward-p.K, 0) * discount),
			PutPrice:  decimal.NewFromFloat(math.Max(p.K-forward, 0) * discount),
		}
	}

	d1 := (math.Log(p.S/p.K) + (p.R+0.5*p.V*p.V)*p.T) / (p.V * math.Sqrt(p.T))
	d2 := d1 - p.V*math.Sqrt(p.T)

	call := p.S*normCdf(d1) - p.K*discount*normCdf(d2)
	put := p.K*discount*normCdf(-d2) - p.S*normCdf(-d1)

	return &BlackScholesResult{
		CallPrice: decimal.NewFromFloat(call),
		PutPrice:  decimal.NewFromFloat(put),
	}
}

// normCdf 标准正态分布累积分布函数
func normCdf(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}
