package indexer

import (
	"context"
	"fmt"

	infraES "utube/internal/infra/elasticsearch"
	infraKafka "utube/internal/infra/kafka"
	"utube/internal/metrics"
	"utube/internal/model"
	"utube/pkg/logger"

	"go.uber.org/zap"
)

const reindexBatch = 500

// VideoIndex 视频搜索索引的写操作
type VideoIndex interface {
	IndexVideo(ctx context.Context, doc *infraES.VideoDoc) error
	DeleteVideo(ctx context.Context, videoID int64) error
	DeleteVideosByUsername(ctx context.Context, username string) error
	BulkIndexVideos(ctx context.Context, videos []model.Video) (success, failed int, err error)
}

// VideoSource 分批读取数据库中的视频
type VideoSource interface {
	ListAfter(ctx context.Context, afterID int64, limit int) ([]model.Video, error)
}

// Indexer 消费活动事件，保持搜索索引与数据库一致
type Indexer struct {
	index VideoIndex
	log   *zap.Logger
}

func New(index VideoIndex) *Indexer {
	return &Indexer{index: index, log: logger.Named("indexer")}
}

// Handle 处理一条活动事件，与视频无关的事件直接忽略
func (i *Indexer) Handle(ctx context.Context, event *infraKafka.Event) error {
	handled, err := i.apply(ctx, event)
	if !handled {
		return nil
	}
	metrics.RecordIndexed(event.Type, err)
	if err == nil {
		i.log.Debug("Applied activity event", zap.String("type", event.Type), zap.String("key", event.Key))
	}
	return err
}

func (i *Indexer) apply(ctx context.Context, event *infraKafka.Event) (bool, error) {
	switch event.Type {
	case infraKafka.EventVideoCreated, infraKafka.EventVideoUpdated:
		var video model.Video
		if err := event.Decode(&video); err != nil {
			return true, fmt.Errorf("decode video payload: %w", err)
		}
		return true, i.index.IndexVideo(ctx, infraES.NewVideoDoc(&video))

	case infraKafka.EventVideoDeleted:
		var payload struct {
			ID int64 `json:"id"`
		}
		if err := event.Decode(&payload); err != nil {
			return true, fmt.Errorf("decode video payload: %w", err)
		}
		return true, i.index.DeleteVideo(ctx, payload.ID)

	case infraKafka.EventUserDeleted:
		var payload struct {
			Username string `json:"username"`
		}
		if err := event.Decode(&payload); err != nil {
			return true, fmt.Errorf("decode user payload: %w", err)
		}
		return true, i.index.DeleteVideosByUsername(ctx, payload.Username)
	}
	return false, nil
}

// Reindex 全量重建：按 id 顺序分批写入全部视频
func (i *Indexer) Reindex(ctx context.Context, source VideoSource) (int, error) {
	var (
		afterID int64
		total   int
	)
	for {
		videos, err := source.ListAfter(ctx, afterID, reindexBatch)
		if err != nil {
			return total, err
		}
		if len(videos) == 0 {
			break
		}

		success, failed, err := i.index.BulkIndexVideos(ctx, videos)
		if err != nil {
			return total, err
		}
		if failed > 0 {
			i.log.Warn("Some videos failed to index", zap.Int("failed", failed), zap.Int64("after_id", afterID))
		}
		total += success
		afterID = videos[len(videos)-1].ID
	}

	i.log.Info("Reindex completed", zap.Int("indexed", total))
	return total, nil
}
