package elasticsearch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"utube/internal/config"
	"utube/pkg/logger"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

// Client 视频搜索索引客户端
type Client struct {
	es    *elasticsearch.Client
	index string
}

// New 初始化 Elasticsearch 客户端
func New(cfg *config.ElasticsearchConfig) (*Client, error) {
	hosts := normalizeHosts(cfg.Hosts)
	if len(hosts) == 0 {
		return nil, fmt.Errorf("elasticsearch hosts is empty")
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:     hosts,
		RetryOnStatus: []int{502, 503, 504},
		MaxRetries:    3,
		RetryBackoff:  func(i int) time.Duration { return time.Duration(i) * time.Second },
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := es.Ping(es.Ping.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to ping elasticsearch: %w", err)
	}
	defer resp.Body.Close()
	if resp.IsError() {
		return nil, fmt.Errorf("elasticsearch ping failed: %s", resp.String())
	}

	index := cfg.VideoIndex
	if index == "" {
		index = "utube_videos"
	}

	logger.Info("Elasticsearch connected", zap.Strings("hosts", hosts), zap.String("index", index))
	return &Client{es: es, index: index}, nil
}

// Index 返回视频索引名
func (c *Client) Index() string {
	return c.index
}

func normalizeHosts(raw []string) []string {
	hosts := make([]string, 0, len(raw))
	for _, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if !strings.HasPrefix(h, "http") {
			h = "http://" + h
		}
		hosts = append(hosts, h)
	}
	return hosts
}
