package domain

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/wyfcoding/pkg/xerrors"
	"golang.org/x/sync/errgroup"

	"github.com/wyfcoding/optionpricing/internal/montecarlo/affinity"
)

// Pool 固定大小的定价线程池。
// 第 t 个 worker 定价的是一个独立场景：标的价格取 S+t，其余参数不变。
// 也就是说增加 worker 数得到的是更多场景的估计，而不是单一价格上
// 更小的统计误差。开启亲和性时 worker t 绑定到 t mod numCores 号核。
type Pool struct {
	numWorkers int
	numCores   int
	affinity   bool
	newSampler func() NormalSampler
}

// PoolOption 线程池配置选项
type PoolOption func(*Pool)

// WithAffinity 启用 CPU 亲和性调度提示
func WithAffinity(enabled bool) PoolOption {
	return func(p *Pool) {
		p.affinity = enabled
	}
}

// WithCores 覆盖检测到的硬件线程数
func WithCores(n int) PoolOption {
	return func(p *Pool) {
		if n > 0 {
			p.numCores = n
		}
	}
}

// WithSamplerFactory 注入采样器工厂，测试时可换成固定种子采样器
func WithSamplerFactory(f func() NormalSampler) PoolOption {
	return func(p *Pool) {
		p.newSampler = f
	}
}

// NewPool 创建定价线程池
func NewPool(numWorkers int, opts ...PoolOption) (*Pool, error) {
	if numWorkers < 1 {
		return nil, xerrors.InvalidArg("number of workers must be at least 1")
	}
	p := &Pool{
		numWorkers: numWorkers,
		numCores:   runtime.NumCPU(),
		newSampler: func() NormalSampler { return NewGaussianSampler() },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// NumWorkers 返回 worker 数量
func (p *Pool) NumWorkers() int { return p.numWorkers }

// NumCores 返回调度用的硬件线程数
func (p *Pool) NumCores() int { return p.numCores }

// CoreFor 返回第 t 个 worker 的目标核编号
func (p *Pool) CoreFor(t int) int { return t % p.numCores }

// Run 并发执行全部 worker 并等待所有 worker 结束。
// worker 之间不共享任何可变状态：每个 worker 拿到自己的参数副本和
// 自己的采样器，结果写入各自独立的切片槽位。
func (p *Pool) Run(ctx context.Context, base SimulationParameters) ([]PricingResult, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}

	results := make([]PricingResult, p.numWorkers)
	var g errgroup.Group

	for t := 0; t < p.numWorkers; t++ {
		worker := NewWorker(t, base.WithSpot(base.S+float64(t)), p.newSampler())
		core := p.CoreFor(t)
		g.Go(func() error {
			pinned := -1
			if p.affinity {
				// 绑定只对当前 OS 线程生效，必须先锁定线程
				runtime.LockOSThread()
				defer runtime.UnlockOSThread()
				if err := affinity.Pin(core); err != nil {
					slog.Warn("cpu affinity hint failed",
						"worker", worker.id, "core", core, "error", err)
				} else if affinity.Supported() {
					pinned = core
				}
			}

			res, err := worker.Run()
			if err != nil {
				return err
			}
			res.Core = pinned
			results[worker.id] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
