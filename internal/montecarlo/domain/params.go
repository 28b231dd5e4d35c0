// Package domain 蒙特卡洛期权定价服务的领域模型
package domain

import (
	"time"

	"github.com/wyfcoding/pkg/xerrors"
)

// SimulationParameters 单次定价场景的模拟参数，构造后不可变，
// 每组参数只属于接收它的 Worker
type SimulationParameters struct {
	// NumPaths 模拟路径数
	NumPaths int `json:"num_paths"`
	// S 标的资产价格
	S float64 `json:"underlying"`
	// K 执行价格
	K float64 `json:"strike"`
	// R 无风险利率
	R float64 `json:"risk_free_rate"`
	// V 波动率
	V float64 `json:"volatility"`
	// T 到期时间 (年)
	T float64 `json:"maturity"`
}

// Validate 校验模拟参数，任何模拟工作开始之前快速失败
func (p SimulationParameters) Validate() error {
	if p.NumPaths < 1 {
		return xerrors.InvalidArg("number of paths must be at least 1")
	}
	if p.S <= 0 {
		return xerrors.InvalidArg("underlying price must be positive")
	}
	if p.K <= 0 {
		return xerrors.InvalidArg("strike price must be positive")
	}
	if p.V < 0 {
		return xerrors.InvalidArg("volatility must not be negative")
	}
	if p.T < 0 {
		return xerrors.InvalidArg("time to maturity must not be negative")
	}
	return nil
}

// WithSpot 返回替换标的价格后的参数副本
func (p SimulationParameters) WithSpot(s float64) SimulationParameters {
	p.S = s
	return p
}

// PricingResult 一次 Worker 运行产出的定价结果，回显输入参数用于报告。
// 产出后不再修改，由唯一一个 ResultSink 消费。
type PricingResult struct {
	Params    SimulationParameters `json:"params"`
	CallPrice float64              `json:"call_price"`
	PutPrice  float64              `json:"put_price"`
	// WorkerID 产出该结果的 worker 编号
	WorkerID int `json:"worker_id"`
	// Core 实际绑定的 CPU 核编号，-1 表示未绑定
	Core int `json:"core"`
}

// RunSource 定价运行的触发来源
type RunSource string

const (
	RunSourceHTTP RunSource = "HTTP"
	RunSourceCLI  RunSource = "CLI"
)

// PricingRun 一次定价运行的记录实体，用于运行历史查询
type PricingRun struct {
	ID        uint
	RunID     string
	Source    RunSource
	Params    SimulationParameters
	CallPrice float64
	PutPrice  float64
	CreatedAt time.Time
}
