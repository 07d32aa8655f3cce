package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"utube/internal/config"
	"utube/internal/metrics"
	"utube/pkg/logger"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer 活动事件生产者，异步写入，失败只记日志
type Producer struct {
	writer *kafka.Writer
}

// NewProducer 初始化 Kafka 生产者
func NewProducer(cfg *config.KafkaConfig) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.ActivityTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				metrics.EventsFailed.Add(float64(len(messages)))
				logger.Error("Failed to deliver activity events",
					zap.Int("count", len(messages)),
					zap.Error(err),
				)
			}
		},
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", cfg.ActivityTopic),
	)

	return &Producer{writer: writer}
}

// Publish 发送一条活动事件，不返回错误也不重试
func (p *Producer) Publish(ctx context.Context, eventType, key string, payload any) {
	msg, err := encode(eventType, key, payload)
	if err != nil {
		logger.Error("Failed to encode activity event", zap.String("type", eventType), zap.Error(err))
		return
	}

	// 请求结束后 ctx 会被取消，异步写入不能跟随它
	if err := p.writer.WriteMessages(context.WithoutCancel(ctx), msg); err != nil {
		logger.Error("Failed to send activity event",
			zap.String("type", eventType),
			zap.String("key", key),
			zap.Error(err),
		)
		return
	}
	metrics.EventsPublished.WithLabelValues(eventType).Inc()
}

// Close 关闭生产者，等待缓冲中的消息写出
func (p *Producer) Close() error {
	logger.Info("Kafka producer closed")
	return p.writer.Close()
}

func encode(eventType, key string, payload any) (kafka.Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal payload: %w", err)
	}

	value, err := json.Marshal(Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Key:        key,
		OccurredAt: time.Now().UTC(),
		Payload:    raw,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(eventType)},
		},
	}, nil
}
