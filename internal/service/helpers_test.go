package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"utube/internal/repository"
	"utube/internal/testutil/pgtest"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type publishedEvent struct {
	Type string
	Key  string
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, eventType, key string, _ any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Type: eventType, Key: key})
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type fakeSearcher struct {
	ids []int64
	err error
}

func (f *fakeSearcher) SearchVideos(context.Context, string, int) ([]int64, error) {
	return f.ids, f.err
}

type fakeStore struct {
	objectName string
	body       string
}

func (f *fakeStore) Upload(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	f.objectName = objectName
	f.body = string(b)
	return "http://minio/thumbnails/" + objectName, nil
}

type suite struct {
	ctx      context.Context
	events   *recordingPublisher
	store    *fakeStore
	searcher *fakeSearcher

	users    *UserService
	auth     *AuthService
	videos   *VideoService
	search   *SearchService
	comments *CommentService
	likes    *VideoLikeService
	subs     *SubscriptionService
	views    *ViewService
}

func newSuite(t *testing.T) *suite {
	t.Helper()
	tx := pgtest.Tx(t)

	userRepo := repository.NewUserRepository(tx)
	videoRepo := repository.NewVideoRepository(tx)
	commentRepo := repository.NewCommentRepository(tx)
	likeRepo := repository.NewVideoLikeRepository(tx)
	subRepo := repository.NewSubscriptionRepository(tx)
	viewRepo := repository.NewViewRepository(tx)

	s := &suite{
		ctx:      context.Background(),
		events:   &recordingPublisher{},
		store:    &fakeStore{},
		searcher: &fakeSearcher{err: errors.New("search disabled")},
	}
	s.users = NewUserService(userRepo, videoRepo, subRepo, s.events, bcrypt.MinCost)
	s.auth = NewAuthService(s.users, nil)
	s.videos = NewVideoService(videoRepo, userRepo, likeRepo, viewRepo, commentRepo, s.events, s.store)
	s.search = NewSearchService(videoRepo, s.searcher)
	s.comments = NewCommentService(commentRepo, userRepo, videoRepo, s.events)
	s.likes = NewVideoLikeService(likeRepo, userRepo, videoRepo, s.events)
	s.subs = NewSubscriptionService(subRepo, userRepo, s.events)
	s.views = NewViewService(viewRepo, userRepo, videoRepo, s.events)
	return s
}

func (s *suite) register(t *testing.T, username string) {
	t.Helper()
	_, err := s.users.Register(s.ctx, RegisterInput{
		Username:  username,
		Password:  "password",
		FirstName: "First",
		LastName:  "Last",
		Email:     username + "@example.com",
	})
	require.NoError(t, err)
}

func (s *suite) video(t *testing.T, username, url string) int64 {
	t.Helper()
	v, err := s.videos.Create(s.ctx, CreateVideoInput{Title: "Video " + url, URL: url, Username: username})
	require.NoError(t, err)
	return v.ID
}
