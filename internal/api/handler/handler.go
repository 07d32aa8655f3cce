package handler

import (
	"bytes"
	"encoding/json"
	"strconv"

	"utube/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindJSON 读取并校验请求体，请求体可能已被鉴权中间件缓存
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindBodyWith(obj, binding.JSON); err != nil {
		return bindError(err)
	}
	return nil
}

// bodyKeys 返回请求体顶层字段名，按出现顺序，需在 bindJSON 之后调用
func bodyKeys(c *gin.Context) []string {
	raw, _ := c.Get(gin.BodyBytesKey)
	body, _ := raw.([]byte)
	return topLevelKeys(body)
}

func topLevelKeys(body []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(body))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, ok := tok.(string)
		if !ok {
			return keys
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return keys
		}
	}
	return keys
}

// parseIDParam 解析路径中的 :id，只拒绝非整数；不存在的 id 由 service 返回 404
func parseIDParam(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid id: %s", raw)
	}
	return id, nil
}
