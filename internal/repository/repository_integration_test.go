package repository

import (
	"context"
	"fmt"
	"testing"

	"utube/internal/apperror"
	"utube/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repos struct {
	users  *UserRepository
	videos *VideoRepository
	comm   *CommentRepository
	likes  *VideoLikeRepository
	subs   *SubscriptionRepository
	views  *ViewRepository
}

func newRepos(t *testing.T) (context.Context, *repos) {
	tx := pgtestTx(t)
	return context.Background(), &repos{
		users:  NewUserRepository(tx),
		videos: NewVideoRepository(tx),
		comm:   NewCommentRepository(tx),
		likes:  NewVideoLikeRepository(tx),
		subs:   NewSubscriptionRepository(tx),
		views:  NewViewRepository(tx),
	}
}

func seedUser(t *testing.T, ctx context.Context, r *repos, username string) *model.User {
	t.Helper()
	u, err := r.users.Create(ctx, &model.User{
		Username:  username,
		Password:  "hash",
		FirstName: "First",
		LastName:  "Last",
		Email:     username + "@example.com",
	})
	require.NoError(t, err)
	return u
}

func seedVideo(t *testing.T, ctx context.Context, r *repos, username, title, url string) *model.Video {
	t.Helper()
	v, err := r.videos.Create(ctx, &model.Video{Title: title, URL: url, Description: "desc", Username: username})
	require.NoError(t, err)
	return v
}

func TestUserRepositoryCRUD(t *testing.T) {
	ctx, r := newRepos(t)

	created := seedUser(t, ctx, r, "alice")
	assert.Equal(t, "alice", created.Username)
	assert.Empty(t, created.Password)
	assert.False(t, created.CreatedAt.IsZero())

	withPw, err := r.users.GetWithPassword(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash", withPw.Password)

	got, err := r.users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, got.Password)
	assert.Equal(t, "alice@example.com", got.Email)

	ok, err := r.users.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	updated, err := r.users.Update(ctx, "alice", Changes{}.Set("firstName", "Aliya").Set("about", "hello"))
	require.NoError(t, err)
	assert.Equal(t, "Aliya", updated.FirstName)
	require.NotNil(t, updated.About)
	assert.Equal(t, "hello", *updated.About)

	_, err = r.users.Update(ctx, "nobody", Changes{}.Set("about", "x"))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = r.users.Update(ctx, "alice", Changes{})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	deleted, err := r.users.Delete(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = r.users.GetByUsername(ctx, "alice")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	deleted, err = r.users.Delete(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUserRepositoryDuplicateTranslated(t *testing.T) {
	ctx, r := newRepos(t)
	seedUser(t, ctx, r, "alice")

	// 嵌套事务中插入，避免冲突让外层事务失效
	err := r.users.db.Transaction(func(tx *gorm.DB) error {
		_, err := NewUserRepository(tx).Create(ctx, &model.User{Username: "alice", Password: "x", FirstName: "a", LastName: "b", Email: "c"})
		return err
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestVideoRepositoryFiltersAndOrdering(t *testing.T) {
	ctx, r := newRepos(t)
	seedUser(t, ctx, r, "alice")
	seedUser(t, ctx, r, "bob")

	v1 := seedVideo(t, ctx, r, "alice", "Go Concurrency", "https://v/1")
	v2 := seedVideo(t, ctx, r, "alice", "Cooking pasta", "https://v/2")
	v3 := seedVideo(t, ctx, r, "bob", "advanced GO tricks", "https://v/3")

	all, err := r.videos.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{v1.ID, v2.ID, v3.ID}, videoIDs(all))

	byUser, err := r.videos.List(ctx, VideoByUsername("alice"))
	require.NoError(t, err)
	assert.Equal(t, []int64{v1.ID, v2.ID}, videoIDs(byUser))

	byTitle, err := r.videos.List(ctx, VideoByTitle("go"))
	require.NoError(t, err)
	assert.Equal(t, []int64{v1.ID, v3.ID}, videoIDs(byTitle))

	none, err := r.videos.List(ctx, VideoByUsername("ghost"))
	require.NoError(t, err)
	assert.Empty(t, none)

	owner, err := r.videos.Owner(ctx, v3.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", owner)

	ids, err := r.videos.IDsByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []int64{v1.ID, v2.ID}, ids)

	byIDs, err := r.videos.ListByIDs(ctx, []int64{v3.ID, 999999, v1.ID})
	require.NoError(t, err)
	assert.Equal(t, []int64{v3.ID, v1.ID}, videoIDs(byIDs))
}

func TestVideoRepositoryUpdateRenamesColumns(t *testing.T) {
	ctx, r := newRepos(t)
	seedUser(t, ctx, r, "alice")
	v := seedVideo(t, ctx, r, "alice", "t", "https://v/1")

	updated, err := r.videos.Update(ctx, v.ID, Changes{}.Set("thumbnailImage", "https://img/1.png").Set("title", "new"))
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	require.NotNil(t, updated.ThumbnailImage)
	assert.Equal(t, "https://img/1.png", *updated.ThumbnailImage)
	assert.Equal(t, v.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

// 过滤值必须作为参数绑定，注入形态的值只会被当作普通字面量
func TestListFiltersTreatInjectionAsLiteral(t *testing.T) {
	ctx, r := newRepos(t)
	seedUser(t, ctx, r, "alice")
	v := seedVideo(t, ctx, r, "alice", "plain title", "https://v/1")
	_, err := r.comm.Create(ctx, &model.Comment{Username: "alice", VideoID: v.ID, Content: "hi"})
	require.NoError(t, err)

	payloads := []string{
		"' OR '1'='1",
		"alice'; DROP TABLE videos; --",
		"%' OR title ILIKE '%",
	}
	for _, p := range payloads {
		videos, err := r.videos.List(ctx, VideoByUsername(p))
		require.NoError(t, err)
		assert.Empty(t, videos, p)

		videos, err = r.videos.List(ctx, VideoByTitle(p))
		require.NoError(t, err)
		assert.Empty(t, videos, p)

		comments, err := r.comm.List(ctx, CommentByUsername(p))
		require.NoError(t, err)
		assert.Empty(t, comments, p)

		subs, err := r.subs.List(ctx, BySubscriber(p))
		require.NoError(t, err)
		assert.Empty(t, subs, p)
	}

	still, err := r.videos.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, still, 1)
}

func TestCommentRepository(t *testing.T) {
	ctx, r := newRepos(t)
	seedUser(t, ctx, r, "alice")
	seedUser(t, ctx, r, "bob")
	v := seedVideo(t, ctx, r, "alice", "t", "https://v/1")

	c1, err := r.comm.Create(ctx, &model.Comment{Username: "bob", VideoID: v.ID, Content: "nice"})
	require.NoError(t, err)
	c2, err := r.comm.Create(ctx, &model.Comment{Username: "alice", VideoID: v.ID, Content: "thanks"})
	require.NoError(t, err)

	byVideo, err := r.comm.List(ctx, CommentByVideo(v.ID))
	require.NoError(t, err)
	require.Len(t, byVideo, 2)
	assert.Equal(t, c1.ID, byVideo[0].ID)

	newest, err := r.comm.ListByVideoNewestFirst(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, newest, 2)
	assert.Equal(t, c2.ID, newest[0].ID)

	updated, err := r.comm.Update(ctx, c1.ID, Changes{}.Set("content", "very nice"))
	require.NoError(t, err)
	assert.Equal(t, "very nice", updated.Content)
	assert.Equal(t, "bob", updated.Username)

	deleted, err := r.comm.Delete(ctx, c1.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	_, err = r.comm.GetByID(ctx, c1.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCommentListCappedAt250(t *testing.T) {
	ctx, r := newRepos(t)
	seedUser(t, ctx, r, "alice")
	v := seedVideo(t, ctx, r, "alice", "t", "https://v/cap")

	for i := 0; i < 251; i++ {
		_, err := r.comm.Create(ctx, &model.Comment{Username: "alice", VideoID: v.ID, Content: fmt.Sprintf("c%d", i)})
		require.NoError(t, err)
	}

	all, err := r.comm.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 250)

	byVideo, err := r.comm.List(ctx, CommentByVideo(v.ID))
	require.NoError(t, err)
	assert.Len(t, byVideo, 250)
}

func TestVideoLikeRepository(t *testing.T) {
	ctx, r := newRepos(t)
	seedUser(t, ctx, r, "alice")
	v := seedVideo(t, ctx, r, "alice", "t", "https://v/1")

	like, err := r.likes.Create(ctx, "alice", v.ID)
	require.NoError(t, err)

	exists, err := r.likes.Exists(ctx, "alice", v.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	ids, err := r.likes.IDsByVideo(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{like.ID}, ids)

	list, err := r.likes.List(ctx, LikeByVideo(v.ID))
	require.NoError(t, err)
	assert.Len(t, list, 1)

	deleted, err := r.likes.Delete(ctx, "alice", v.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = r.likes.Delete(ctx, "alice", v.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSubscriptionRepositoryJoinsImages(t *testing.T) {
	ctx, r := newRepos(t)
	seedUser(t, ctx, r, "alice")
	seedUser(t, ctx, r, "bob")
	seedUser(t, ctx, r, "carol")
	_, err := r.users.Update(ctx, "bob", Changes{}.Set("avatarImage", "https://img/bob.png"))
	require.NoError(t, err)

	_, err = r.subs.Create(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = r.subs.Create(ctx, "carol", "bob")
	require.NoError(t, err)
	_, err = r.subs.Create(ctx, "alice", "carol")
	require.NoError(t, err)

	items, err := r.subs.List(ctx, BySubscriber("alice"))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "bob", items[0].SubscribedToUsername)
	require.NotNil(t, items[0].UserImages.UserAvatar)
	assert.Equal(t, "https://img/bob.png", *items[0].UserImages.UserAvatar)
	assert.Nil(t, items[0].UserImages.UserHeader)

	subscribers, err := r.subs.Subscribers(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "carol"}, subscribers)

	subscribedTo, err := r.subs.SubscribedTo(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "carol"}, subscribedTo)

	deleted, err := r.subs.Delete(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestViewRepositoryAnonymous(t *testing.T) {
	ctx, r := newRepos(t)
	seedUser(t, ctx, r, "alice")
	v := seedVideo(t, ctx, r, "alice", "t", "https://v/1")

	anon, err := r.views.Create(ctx, nil, v.ID)
	require.NoError(t, err)
	assert.Nil(t, anon.Username)

	name := "alice"
	named, err := r.views.Create(ctx, &name, v.ID)
	require.NoError(t, err)
	require.NotNil(t, named.Username)

	byUser, err := r.views.List(ctx, ViewByUsername("alice"))
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	ids, err := r.views.IDsByVideo(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{anon.ID, named.ID}, ids)
}

func videoIDs(videos []model.Video) []int64 {
	ids := make([]int64, len(videos))
	for i, v := range videos {
		ids[i] = v.ID
	}
	return ids
}
