package service

import (
	"context"
	"strings"

	"utube/internal/apperror"
	"utube/internal/model"
	"utube/internal/repository"
	"utube/pkg/logger"

	"go.uber.org/zap"
)

const searchLimit = 50

// VideoSearcher 全文检索，返回按相关度排序的视频 id
type VideoSearcher interface {
	SearchVideos(ctx context.Context, query string, limit int) ([]int64, error)
}

type SearchService struct {
	videoRepo *repository.VideoRepository
	searcher  VideoSearcher
}

// NewSearchService searcher 为 nil 时只走数据库标题匹配
func NewSearchService(videoRepo *repository.VideoRepository, searcher VideoSearcher) *SearchService {
	return &SearchService{videoRepo: videoRepo, searcher: searcher}
}

// SearchVideos 搜索视频（ES 优先，失败则降级到 DB）
func (s *SearchService) SearchVideos(ctx context.Context, query string) ([]model.Video, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.BadRequest("Search query 'q' is required")
	}

	if s.searcher != nil {
		videos, err := s.searchFromES(ctx, query)
		if err == nil {
			return videos, nil
		}
		logger.Warn("ES search failed, fallback to DB", zap.String("query", query), zap.Error(err))
	}

	return s.videoRepo.List(ctx, repository.VideoByTitle(query))
}

func (s *SearchService) searchFromES(ctx context.Context, query string) ([]model.Video, error) {
	ids, err := s.searcher.SearchVideos(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}
	// 索引可能落后于数据库，以数据库中仍存在的视频为准
	return s.videoRepo.ListByIDs(ctx, ids)
}
