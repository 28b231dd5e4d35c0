// Package publisher 提供定价完成事件的 Kafka 发布实现。
package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/wyfcoding/optionpricing/internal/montecarlo/domain"
	"github.com/wyfcoding/optionpricing/pkg/logger"
)

// KafkaResultPublisher 定价结果事件发布器
type KafkaResultPublisher struct {
	writer *kafka.Writer
	topic  string
}

// NewKafkaResultPublisher 创建 Kafka 发布器
func NewKafkaResultPublisher(brokers []string, topic string) *KafkaResultPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireAll,
	}
	logger.Info(context.Background(), "kafka result publisher created", "brokers", brokers, "topic", topic)
	return &KafkaResultPublisher{writer: writer, topic: topic}
}

// PublishResult 发布一条定价完成事件，key 为 runID
func (p *KafkaResultPublisher) PublishResult(ctx context.Context, runID string, result domain.PricingResult) error {
	msg := map[string]any{
		"run_id":     runID,
		"num_paths":  result.Params.NumPaths,
		"underlying": result.Params.S,
		"strike":     result.Params.K,
		"call_price": result.CallPrice,
		"put_price":  result.PutPrice,
		"timestamp":  time.Now().UnixMilli(),
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(runID),
		Value: data,
	})
}

// Close 关闭底层 writer
func (p *KafkaResultPublisher) Close() error {
	return p.writer.Close()
}
