package domain

import (
	"context"
)

// PricingRunRepository 定价运行记录仓储接口
type PricingRunRepository interface {
	// Save 保存一次定价运行
	Save(ctx context.Context, run *PricingRun) error
	// Get 根据 RunID 获取定价运行，不存在时返回 (nil, nil)
	Get(ctx context.Context, runID string) (*PricingRun, error)
	// List 按创建时间倒序列出最近的定价运行
	List(ctx context.Context, limit int) ([]*PricingRun, error)
}

// ResultPublisher 定价结果事件发布接口
type ResultPublisher interface {
	// PublishResult 发布一条定价完成事件
	PublishResult(ctx context.Context, runID string, result PricingResult) error
}

// ResultSink 结果交付接口。交付属于下游关心的事情，
// 交付失败不回滚也不重算，定价结果本身已经完整有效。
type ResultSink interface {
	// Publish 将结果交付到 requestID 对应的目标位置
	Publish(ctx context.Context, requestID string, result PricingResult) error
}
