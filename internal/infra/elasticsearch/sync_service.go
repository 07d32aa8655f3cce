package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"utube/internal/model"
	"utube/pkg/logger"

	"go.uber.org/zap"
)

// VideoDoc ES 视频文档结构
type VideoDoc struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	URL            string  `json:"url"`
	Username       string  `json:"username"`
	ThumbnailImage *string `json:"thumbnailImage,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// NewVideoDoc 由视频模型生成文档
func NewVideoDoc(v *model.Video) *VideoDoc {
	return &VideoDoc{
		ID:             v.ID,
		Title:          v.Title,
		Description:    v.Description,
		URL:            v.URL,
		Username:       v.Username,
		ThumbnailImage: v.ThumbnailImage,
		CreatedAt:      v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// IndexVideo 写入或覆盖单个视频文档
func (c *Client) IndexVideo(ctx context.Context, doc *VideoDoc) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := c.es.Index(
		c.index,
		bytes.NewReader(body),
		c.es.Index.WithContext(ctx),
		c.es.Index.WithDocumentID(strconv.FormatInt(doc.ID, 10)),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Video synced to ES", zap.Int64("video_id", doc.ID))
	return nil
}

// DeleteVideo 从 ES 删除视频，文档不存在不算错误
func (c *Client) DeleteVideo(ctx context.Context, videoID int64) error {
	resp, err := c.es.Delete(
		c.index,
		strconv.FormatInt(videoID, 10),
		c.es.Delete.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}

// BulkIndexVideos 批量同步视频到 ES
func (c *Client) BulkIndexVideos(ctx context.Context, videos []model.Video) (success, failed int, err error) {
	body := BulkBody(c.index, videos)
	if body == "" {
		return 0, 0, nil
	}

	resp, err := c.es.Bulk(strings.NewReader(body), c.es.Bulk.WithContext(ctx))
	if err != nil {
		return 0, len(videos), err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return 0, len(videos), fmt.Errorf("bulk failed: %s", resp.String())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
		Items  []struct {
			Index struct {
				Status int `json:"status"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&bulkResp); err != nil {
		return len(videos), 0, nil
	}

	for _, item := range bulkResp.Items {
		if item.Index.Status >= 200 && item.Index.Status < 300 {
			success++
		} else {
			failed++
		}
	}

	logger.Info("Bulk sync to ES completed", zap.Int("success", success), zap.Int("failed", failed))
	return success, failed, nil
}

// BulkBody 生成 _bulk 请求体（NDJSON）
func BulkBody(index string, videos []model.Video) string {
	var buf strings.Builder
	for i := range videos {
		docBody, _ := json.Marshal(NewVideoDoc(&videos[i]))
		buf.WriteString(fmt.Sprintf(`{"index":{"_index":%q,"_id":"%d"}}`, index, videos[i].ID))
		buf.WriteString("\n")
		buf.Write(docBody)
		buf.WriteString("\n")
	}
	return buf.String()
}

// SearchVideos 按标题与描述全文检索，返回按相关度排序的视频 id
func (c *Client) SearchVideos(ctx context.Context, query string, limit int) ([]int64, error) {
	body, err := json.Marshal(SearchQuery(query, limit))
	if err != nil {
		return nil, err
	}

	resp, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("search failed: %s", resp.String())
	}

	var result struct {
		Hits struct {
			Hits []struct {
				Source VideoDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	ids := make([]int64, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		ids = append(ids, hit.Source.ID)
	}
	return ids, nil
}

// SearchQuery 构造检索请求体，用户输入只出现在 JSON 值中
func SearchQuery(query string, limit int) map[string]any {
	return map[string]any{
		"size": limit,
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"title^3", "description"},
				"fuzziness": "AUTO",
			},
		},
		"_source": []string{"id"},
	}
}

// DeleteVideosByUsername 删除某用户的全部视频文档（用户被删除后视频已级联删除）
func (c *Client) DeleteVideosByUsername(ctx context.Context, username string) error {
	body, err := json.Marshal(map[string]any{
		"query": map[string]any{
			"term": map[string]any{"username": username},
		},
	})
	if err != nil {
		return err
	}

	resp, err := c.es.DeleteByQuery(
		[]string{c.index},
		bytes.NewReader(body),
		c.es.DeleteByQuery.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete by query failed: %s", resp.String())
	}
	return nil
}
