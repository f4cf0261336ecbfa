package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/scholarship-go/internal/domain/review"
	"github.com/linskybing/scholarship-go/internal/domain/scholarship"
	"github.com/linskybing/scholarship-go/internal/domain/user"
	"github.com/linskybing/scholarship-go/pkg/cache"
	"github.com/linskybing/scholarship-go/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateReview_Success(t *testing.T) {
	m := setupServiceMocks(t)
	c := cache.NewMemoryCache()
	require.NoError(t, c.SetJSON(context.Background(), topScholarshipsKey, []scholarship.Scholarship{{ID: 7}}, 0))
	svc := NewReviewService(m.repos, c)

	m.scholarship.EXPECT().GetByID(uint(7)).Return(openScholarship(), nil)
	m.application.EXPECT().HasApplied(uint(1), uint(7)).Return(true, nil)
	m.review.EXPECT().Exists(uint(1), uint(7)).Return(false, nil)
	m.user.EXPECT().GetUserByID(uint(1)).Return(user.User{ID: 1, Name: "Jane"}, nil)
	m.review.EXPECT().Create(gomock.Any()).Return(nil)
	m.review.EXPECT().RatingsForScholarship(uint(7)).Return([]int{4, 5}, nil)
	m.scholarship.EXPECT().UpdateRating(uint(7), 4.5, 2).Return(nil)

	rv, err := svc.Create(m.c, 1, review.CreateReviewInput{ScholarshipID: 7, Rating: 5, Comment: " great "})
	require.NoError(t, err)
	assert.Equal(t, "great", rv.Comment)
	assert.Equal(t, "Jane", rv.ReviewerName)

	var cached []scholarship.Scholarship
	assert.ErrorIs(t, c.GetJSON(context.Background(), topScholarshipsKey, &cached), cache.ErrMiss)
}

func TestCreateReview_Rejections(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewReviewService(m.repos, cache.NewMemoryCache())
	input := review.CreateReviewInput{ScholarshipID: 7, Rating: 4, Comment: "ok"}

	m.scholarship.EXPECT().GetByID(uint(7)).Return(openScholarship(), nil)
	m.application.EXPECT().HasApplied(uint(1), uint(7)).Return(false, nil)
	_, err := svc.Create(m.c, 1, input)
	assert.ErrorIs(t, err, ErrNotApplied)

	m.scholarship.EXPECT().GetByID(uint(7)).Return(openScholarship(), nil)
	m.application.EXPECT().HasApplied(uint(1), uint(7)).Return(true, nil)
	m.review.EXPECT().Exists(uint(1), uint(7)).Return(true, nil)
	_, err = svc.Create(m.c, 1, input)
	assert.ErrorIs(t, err, ErrAlreadyReviewed)

	m.scholarship.EXPECT().GetByID(uint(7)).Return(scholarship.Scholarship{}, gorm.ErrRecordNotFound)
	_, err = svc.Create(m.c, 1, input)
	assert.ErrorIs(t, err, ErrScholarshipNotFound)
}

func TestDeleteReview_RecomputesRating(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewReviewService(m.repos, cache.NewMemoryCache())

	m.review.EXPECT().GetByID(uint(9)).Return(review.Review{ID: 9, UserID: 1, ScholarshipID: 7, Rating: 5}, nil)
	m.review.EXPECT().Delete(uint(9)).Return(nil)
	m.review.EXPECT().RatingsForScholarship(uint(7)).Return([]int{}, nil)
	m.scholarship.EXPECT().UpdateRating(uint(7), 0.0, 0).Return(nil)
	m.review.EXPECT().ListByScholarship(uint(7)).Return([]review.Review{}, nil)

	require.NoError(t, svc.Delete(m.c, &types.Claims{UserID: 1, Role: "user"}, 9))

	list, err := svc.ListForScholarship(7)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateReview_Permissions(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewReviewService(m.repos, cache.NewMemoryCache())

	m.review.EXPECT().GetByID(uint(9)).Return(review.Review{ID: 9, UserID: 1, ScholarshipID: 7, Rating: 5}, nil)
	_, err := svc.Update(m.c, &types.Claims{UserID: 2, Role: "user"}, 9, review.UpdateReviewInput{Rating: ptr(1)})
	assert.ErrorIs(t, err, ErrForbidden)

	m.review.EXPECT().GetByID(uint(9)).Return(review.Review{ID: 9, UserID: 1, ScholarshipID: 7, Rating: 5}, nil)
	m.review.EXPECT().Save(gomock.Any()).Return(nil)
	m.review.EXPECT().RatingsForScholarship(uint(7)).Return([]int{2}, nil)
	m.scholarship.EXPECT().UpdateRating(uint(7), 2.0, 1).Return(nil)
	rv, err := svc.Update(m.c, &types.Claims{UserID: 5, Role: "admin"}, 9, review.UpdateReviewInput{Rating: ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, rv.Rating)

	m.review.EXPECT().GetByID(uint(10)).Return(review.Review{}, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.Delete(m.c, &types.Claims{UserID: 1}, 10), ErrReviewNotFound)
}
