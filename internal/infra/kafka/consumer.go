package kafka

import (
	"context"
	"encoding/json"
	"time"

	"utube/internal/config"
	"utube/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventHandler 处理单条活动事件
type EventHandler func(ctx context.Context, event *Event) error

// Consume 启动活动事件消费者（阻塞，需在 goroutine 中运行）
// ctx 取消后会自动停止
func Consume(ctx context.Context, cfg *config.KafkaConfig, handler EventHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.ActivityTopic,
		GroupID:        cfg.IndexerGroup,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka activity consumer stopped")
	}()

	logger.Info("Kafka activity consumer started",
		zap.String("topic", cfg.ActivityTopic),
		zap.String("group", cfg.IndexerGroup),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		event, err := Decode(msg.Value)
		if err != nil {
			logger.Error("Failed to unmarshal activity event",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		logger.Debug("Received activity event",
			zap.String("type", event.Type),
			zap.String("key", event.Key),
		)

		if err := handler(ctx, event); err != nil {
			logger.Error("Failed to handle activity event",
				zap.String("type", event.Type),
				zap.String("key", event.Key),
				zap.Error(err),
			)
		}
	}
}

// Decode 解析消息体
func Decode(value []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(value, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
