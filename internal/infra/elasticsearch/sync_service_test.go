package elasticsearch

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"utube/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVideoDoc(t *testing.T) {
	thumb := "http://img/1.png"
	v := &model.Video{
		ID:             7,
		Title:          "Go",
		URL:            "https://v/7",
		Username:       "alice",
		ThumbnailImage: &thumb,
		CreatedAt:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	doc := NewVideoDoc(v)
	assert.Equal(t, int64(7), doc.ID)
	assert.Equal(t, "alice", doc.Username)
	assert.Equal(t, "2024-05-01T12:00:00Z", doc.CreatedAt)
	assert.Equal(t, &thumb, doc.ThumbnailImage)
}

func TestBulkBody(t *testing.T) {
	body := BulkBody("utube_videos", []model.Video{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}})
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `{"index":{"_index":"utube_videos","_id":"1"}}`, lines[0])

	var doc VideoDoc
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &doc))
	assert.Equal(t, "b", doc.Title)

	assert.Empty(t, BulkBody("utube_videos", nil))
}

func TestSearchQueryKeepsInputAsValue(t *testing.T) {
	q := SearchQuery(`"}}, "script": {"source": "boom"`, 20)
	raw, err := json.Marshal(q)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "script")
	assert.EqualValues(t, 20, decoded["size"])
}

func TestNormalizeHosts(t *testing.T) {
	assert.Equal(t, []string{"http://es:9200", "https://es2:9200"}, normalizeHosts([]string{" es:9200 ", "", "https://es2:9200"}))
}
