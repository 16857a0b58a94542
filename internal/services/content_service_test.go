package services_test

import (
	"net/http"
	"testing"

	"fitpath_backend/internal/models"
	"fitpath_backend/internal/repositories"
	"fitpath_backend/internal/services"
	"fitpath_backend/internal/services/dto"
	"fitpath_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeForumRepo struct {
	posts []*models.ForumPost
}

func (r *fakeForumRepo) Create(_ *gorm.DB, post *models.ForumPost) error {
	r.posts = append(r.posts, post)
	return nil
}

func (r *fakeForumRepo) FindPage(_ *gorm.DB, page, limit int) ([]models.ForumPost, int64, error) {
	var out []models.ForumPost
	for _, p := range r.posts {
		out = append(out, *p)
	}
	return out, int64(len(r.posts)), nil
}

func (r *fakeForumRepo) FindLatest(_ *gorm.DB, limit int) ([]models.ForumPost, error) {
	out, _, _ := r.FindPage(nil, 1, limit)
	return out, nil
}

func (r *fakeForumRepo) Vote(_ *gorm.DB, id string, up bool) error {
	for _, p := range r.posts {
		if p.ID == id {
			if up {
				p.Upvotes++
			} else {
				p.Downvotes++
			}
			return nil
		}
	}
	return repositories.ErrForumPostNotFound
}

type fakeNewsletterRepo struct {
	subs map[string]*models.NewsletterSubscriber
}

func (r *fakeNewsletterRepo) Subscribe(_ *gorm.DB, sub *models.NewsletterSubscriber) error {
	if _, ok := r.subs[sub.Email]; ok {
		return repositories.ErrAlreadySubscribed
	}
	r.subs[sub.Email] = sub
	return nil
}

func (r *fakeNewsletterRepo) FindAll(_ *gorm.DB) ([]models.NewsletterSubscriber, error) {
	var out []models.NewsletterSubscriber
	for _, s := range r.subs {
		out = append(out, *s)
	}
	return out, nil
}

func TestForumVote(t *testing.T) {
	repo := &fakeForumRepo{}
	repo.posts = append(repo.posts, &models.ForumPost{
		BaseModel: models.BaseModel{ID: "post-1"},
		Title:     "T",
	})
	svc := services.NewForumService(repo)

	require.NoError(t, svc.Vote(nil, "post-1", "up"))
	require.NoError(t, svc.Vote(nil, "post-1", "down"))
	require.NoError(t, svc.Vote(nil, "post-1", "up"))

	assert.Equal(t, 2, repo.posts[0].Upvotes)
	assert.Equal(t, 1, repo.posts[0].Downvotes)
}

func TestForumVote_InvalidDirection(t *testing.T) {
	repo := &fakeForumRepo{}
	svc := services.NewForumService(repo)

	err := svc.Vote(nil, "post-1", "sideways")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestForumVote_UnknownPost(t *testing.T) {
	repo := &fakeForumRepo{}
	svc := services.NewForumService(repo)

	err := svc.Vote(nil, "missing", "up")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestForumPage_Defaults(t *testing.T) {
	repo := &fakeForumRepo{}
	for i := 0; i < 13; i++ {
		repo.posts = append(repo.posts, &models.ForumPost{Title: "post"})
	}
	svc := services.NewForumService(repo)

	resp, err := svc.Page(nil, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, int64(13), resp.Total)
	// 13 posts at 6 per page.
	assert.Equal(t, 3, resp.TotalPages)
}

func TestNewsletterSubscribe_DuplicateConflicts(t *testing.T) {
	repo := &fakeNewsletterRepo{subs: make(map[string]*models.NewsletterSubscriber)}
	svc := services.NewNewsletterService(repo)

	req := &dto.SubscribeRequest{Name: "Sub", Email: "sub@example.com"}
	require.NoError(t, svc.Subscribe(nil, req))

	err := svc.Subscribe(nil, req)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
	assert.Len(t, repo.subs, 1)
}

func TestClassCreate_CounterStartsAtZero(t *testing.T) {
	repo := newFakeClassRepo()
	svc := services.NewClassService(repo)

	class, err := svc.Create(nil, &dto.CreateClassRequest{Name: "Yoga"})
	require.NoError(t, err)
	assert.Equal(t, 0, class.BookingCount)
}
