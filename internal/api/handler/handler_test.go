package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"utube/internal/api/dto"
	"utube/internal/apperror"
	"utube/internal/config"
	"utube/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	RegisterValidation()
}

func testContext(method, target, body string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if body == "" {
		c.Request = httptest.NewRequest(method, target, nil)
	} else {
		c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c
}

func TestVideoFilter(t *testing.T) {
	cases := []struct {
		target string
		want   repository.VideoFilter
	}{
		{"/videos", nil},
		{"/videos?username=alice", repository.VideoByUsername("alice")},
		{"/videos?title=Go", repository.VideoByTitle("Go")},
	}
	for _, tc := range cases {
		got, err := videoFilter(testContext(http.MethodGet, tc.target, ""))
		require.NoError(t, err, tc.target)
		assert.Equal(t, tc.want, got, tc.target)
	}
}

func TestVideoFilterRejects(t *testing.T) {
	for _, target := range []string{
		"/videos?videoId=1",
		"/videos?username=alice&title=Go",
		"/videos?username=alice&username=bob",
	} {
		_, err := videoFilter(testContext(http.MethodGet, target, ""))
		require.Error(t, err, target)
		assert.ErrorIs(t, err, apperror.ErrBadRequest)
		assert.Equal(t, "Filter must be either 'username' or 'title'", err.Error())
	}
}

func TestFiltersRejectEmptyValues(t *testing.T) {
	_, err := videoFilter(testContext(http.MethodGet, "/videos?username=", ""))
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.EqualError(t, err, "username must not be empty")

	_, err = videoFilter(testContext(http.MethodGet, "/videos?title=", ""))
	assert.EqualError(t, err, "title must not be empty")

	_, err = subscriptionFilter(testContext(http.MethodGet, "/subscriptions?subscriberUsername=", ""))
	assert.EqualError(t, err, "subscriberUsername must not be empty")

	_, err = commentFilter(testContext(http.MethodGet, "/comments?videoId=", ""))
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
}

func TestVideoIDFilters(t *testing.T) {
	f, err := commentFilter(testContext(http.MethodGet, "/comments?videoId=12", ""))
	require.NoError(t, err)
	assert.Equal(t, repository.CommentByVideo(12), f)

	l, err := likeFilter(testContext(http.MethodGet, "/likes?username=bob", ""))
	require.NoError(t, err)
	assert.Equal(t, repository.LikeByUsername("bob"), l)

	v, err := viewFilter(testContext(http.MethodGet, "/views?videoId=3", ""))
	require.NoError(t, err)
	assert.Equal(t, repository.ViewByVideo(3), v)

	_, err = viewFilter(testContext(http.MethodGet, "/views?videoId=abc", ""))
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	_, err = commentFilter(testContext(http.MethodGet, "/comments?title=x", ""))
	assert.EqualError(t, err, "Filter must be either 'username' or 'videoId'")
}

func TestSubscriptionFilter(t *testing.T) {
	f, err := subscriptionFilter(testContext(http.MethodGet, "/subscriptions?subscribedToUsername=bob", ""))
	require.NoError(t, err)
	assert.Equal(t, repository.BySubscribedTo("bob"), f)

	_, err = subscriptionFilter(testContext(http.MethodGet, "/subscriptions?username=bob", ""))
	assert.EqualError(t, err, "Filter must be either 'subscriberUsername' or 'subscribedToUsername'")
}

func TestBindJSONValidationMessages(t *testing.T) {
	c := testContext(http.MethodPost, "/users", `{"username":"alice","password":"abc","email":"nope"}`)

	var req dto.UserRegisterRequest
	err := bindJSON(c, &req)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.ElementsMatch(t, []string{
		"password must be at least 5 characters",
		"firstName is required",
		"lastName is required",
		"email must be a valid email address",
	}, appErr.Details)
}

func TestBindJSONTypeAndSyntaxErrors(t *testing.T) {
	var req dto.LikeRequest
	err := bindJSON(testContext(http.MethodPost, "/likes", `{"username":"a","videoId":"x"}`), &req)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"videoId must be of type number"}, appErr.Details)

	err = bindJSON(testContext(http.MethodPost, "/likes", `{"username":`), &req)
	assert.EqualError(t, err, "Malformed JSON body")

	err = bindJSON(testContext(http.MethodPost, "/likes", ""), &req)
	assert.EqualError(t, err, "Request body is required")
}

func TestBindJSONRejectsUnknownFields(t *testing.T) {
	var req dto.LikeRequest
	err := bindJSON(testContext(http.MethodPost, "/likes", `{"username":"bob","videoId":2,"otherStuff":"blahhh123"}`), &req)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Equal(t, []string{"otherStuff is not allowed"}, appErr.Details)
}

func TestBodyKeysKeepOrder(t *testing.T) {
	c := testContext(http.MethodPatch, "/users/alice", `{"about":"x","firstName":"A","email":"a@b.io"}`)
	var req dto.UserUpdateRequest
	require.NoError(t, bindJSON(c, &req))
	assert.Equal(t, []string{"about", "firstName", "email"}, bodyKeys(c))

	assert.Equal(t, []string{"a", "nested", "b"}, topLevelKeys([]byte(`{"a":1,"nested":{"x":[1,2]},"b":"c"}`)))
	assert.Nil(t, topLevelKeys([]byte(`[1,2]`)))
}

func TestParseIDParam(t *testing.T) {
	c := testContext(http.MethodGet, "/videos/7", "")
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	id, err := parseIDParam(c)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	c.Params = gin.Params{{Key: "id", Value: "7;DROP"}}
	_, err = parseIDParam(c)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	// 0 与负数交给 service 判定为不存在
	for _, raw := range []string{"0", "-3"} {
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, err = parseIDParam(c)
		assert.NoError(t, err, raw)
	}
}

type stubPinger struct{ err error }

func (s stubPinger) PingContext(context.Context) error { return s.err }

func TestHealthz(t *testing.T) {
	app := &config.AppConfig{Name: "utube", Version: "test", Mode: "test"}

	for _, tc := range []struct {
		err    error
		code   int
		status string
	}{
		{nil, http.StatusOK, "ok"},
		{errors.New("down"), http.StatusServiceUnavailable, "degraded"},
	} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/healthz", nil)

		NewHealthHandler(app, stubPinger{tc.err}).Healthz(c)

		assert.Equal(t, tc.code, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.status, body["status"])
		assert.Equal(t, "utube", body["service"])
	}
}
