package domain

import (
	"math"
)

// PriceCall 以 GBM 终值蒙特卡洛法计算欧式看涨期权的贴现价格
func PriceCall(p SimulationParameters, sampler NormalSampler) (float64, error) {
	return price(p, sampler, func(sCur, k float64) float64 {
		return math.Max(sCur-k, 0)
	})
}

// PricePut 以 GBM 终值蒙特卡洛法计算欧式看跌期权的贴现价格
func PricePut(p SimulationParameters, sampler NormalSampler) (float64, error) {
	return price(p, sampler, func(sCur, k float64) float64 {
		return math.Max(k-sCur, 0)
	})
}

// price 蒙特卡洛估计 E[payoff] 的贴现值。
// 终值公式: S_T = S * exp(T*(r-0.5*v^2)) * exp(sqrt(v^2*T)*z), z ~ N(0,1)。
// v=0 时退化为确定性远期价格，仍然遍历全部路径并给出精确贴现收益。
func price(p SimulationParameters, sampler NormalSampler, payoff func(sCur, k float64) float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	sAdjust := p.S * math.Exp(p.T*(p.R-0.5*p.V*p.V))
	volTerm := math.Sqrt(p.V * p.V * p.T)

	payoffSum := 0.0
	for i := 0; i < p.NumPaths; i++ {
		z := sampler.Next()
		sCur := sAdjust * math.Exp(volTerm*z)
		payoffSum += payoff(sCur, p.K)
	}

	return (payoffSum / float64(p.NumPaths)) * math.Exp(-p.R*p.T), nil
}
