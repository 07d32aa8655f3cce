package handler

import (
	"slices"
	"strconv"

	"utube/internal/apperror"
	"utube/internal/repository"

	"github.com/gin-gonic/gin"
)

// singleFilter 查询串中至多允许一个已知过滤键
// 没有查询参数时 key 为空；未知键、多个键、重复键或空值都返回 400
func singleFilter(c *gin.Context, message string, allowed ...string) (key, value string, err error) {
	query := c.Request.URL.Query()
	if len(query) == 0 {
		return "", "", nil
	}
	if len(query) > 1 {
		return "", "", apperror.BadRequest("%s", message)
	}
	for k, values := range query {
		if !slices.Contains(allowed, k) || len(values) != 1 {
			return "", "", apperror.BadRequest("%s", message)
		}
		if values[0] == "" {
			return "", "", apperror.BadRequest("%s must not be empty", k)
		}
		key, value = k, values[0]
	}
	return key, value, nil
}

func parseVideoIDFilter(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("videoId must be an integer")
	}
	return id, nil
}

func videoFilter(c *gin.Context) (repository.VideoFilter, error) {
	key, value, err := singleFilter(c, "Filter must be either 'username' or 'title'", "username", "title")
	if err != nil || key == "" {
		return nil, err
	}
	if key == "username" {
		return repository.VideoByUsername(value), nil
	}
	return repository.VideoByTitle(value), nil
}

func commentFilter(c *gin.Context) (repository.CommentFilter, error) {
	key, value, err := singleFilter(c, "Filter must be either 'username' or 'videoId'", "username", "videoId")
	if err != nil || key == "" {
		return nil, err
	}
	if key == "username" {
		return repository.CommentByUsername(value), nil
	}
	id, err := parseVideoIDFilter(value)
	if err != nil {
		return nil, err
	}
	return repository.CommentByVideo(id), nil
}

func likeFilter(c *gin.Context) (repository.LikeFilter, error) {
	key, value, err := singleFilter(c, "Filter must be either 'username' or 'videoId'", "username", "videoId")
	if err != nil || key == "" {
		return nil, err
	}
	if key == "username" {
		return repository.LikeByUsername(value), nil
	}
	id, err := parseVideoIDFilter(value)
	if err != nil {
		return nil, err
	}
	return repository.LikeByVideo(id), nil
}

func viewFilter(c *gin.Context) (repository.ViewFilter, error) {
	key, value, err := singleFilter(c, "Filter must be either 'username' or 'videoId'", "username", "videoId")
	if err != nil || key == "" {
		return nil, err
	}
	if key == "username" {
		return repository.ViewByUsername(value), nil
	}
	id, err := parseVideoIDFilter(value)
	if err != nil {
		return nil, err
	}
	return repository.ViewByVideo(id), nil
}

func subscriptionFilter(c *gin.Context) (repository.SubscriptionFilter, error) {
	key, value, err := singleFilter(c,
		"Filter must be either 'subscriberUsername' or 'subscribedToUsername'",
		"subscriberUsername", "subscribedToUsername",
	)
	if err != nil || key == "" {
		return nil, err
	}
	if key == "subscriberUsername" {
		return repository.BySubscriber(value), nil
	}
	return repository.BySubscribedTo(value), nil
}
