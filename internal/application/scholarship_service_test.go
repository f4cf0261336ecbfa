package application

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/scholarship-go/internal/domain/scholarship"
	"github.com/linskybing/scholarship-go/pkg/cache"
	"github.com/linskybing/scholarship-go/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestListScholarships_Page(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewScholarshipService(m.repos, cache.NewMemoryCache())

	m.scholarship.EXPECT().List(gomock.Any()).DoAndReturn(func(f scholarship.Filter) ([]scholarship.Scholarship, int64, error) {
		assert.Equal(t, 1, f.Page)
		assert.Equal(t, 12, f.Limit)
		return []scholarship.Scholarship{{ID: 1}, {ID: 2}}, 25, nil
	})

	page, err := svc.List(scholarship.Filter{})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.TotalPages)
}

func TestTopScholarships_Cached(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewScholarshipService(m.repos, cache.NewMemoryCache())

	top := []scholarship.Scholarship{
		{ID: 1, Name: "A", ApplicationFees: 10, SubjectCategory: "Engineering"},
		{ID: 2, Name: "B", ApplicationFees: 20, SubjectCategory: "Doctor"},
	}
	m.scholarship.EXPECT().ListTop(gomock.Any()).Return(top, nil).Times(1)

	first, err := svc.Top(context.Background(), scholarship.Filter{})
	require.NoError(t, err)
	assert.Len(t, first, 2)

	filtered, err := svc.Top(context.Background(), scholarship.Filter{Subject: "doctor"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, uint(2), filtered[0].ID)
}

func TestCreateScholarship(t *testing.T) {
	m := setupServiceMocks(t)
	c := cache.NewMemoryCache()
	require.NoError(t, c.SetJSON(context.Background(), topScholarshipsKey, []scholarship.Scholarship{}, 0))
	svc := NewScholarshipService(m.repos, c)
	claims := &types.Claims{UserID: 4, Email: "mod@example.com", Role: "moderator"}

	_, err := svc.Create(m.c, claims, scholarship.CreateScholarshipInput{Name: "X", Deadline: fixedNow.Add(-time.Hour)})
	assert.ErrorIs(t, err, ErrInvalidDeadline)

	m.scholarship.EXPECT().Create(gomock.Any()).DoAndReturn(func(sc *scholarship.Scholarship) error {
		sc.ID = 20
		return nil
	})
	sc, err := svc.Create(m.c, claims, scholarship.CreateScholarshipInput{
		Name:           " Global ",
		UniversityName: "Tokyo",
		Deadline:       fixedNow.Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "Global", sc.Name)
	assert.Equal(t, fixedNow, sc.PostDate)
	assert.Equal(t, "mod@example.com", sc.PostedUserEmail)

	var cached []scholarship.Scholarship
	assert.ErrorIs(t, c.GetJSON(context.Background(), topScholarshipsKey, &cached), cache.ErrMiss)
}

func TestUpdateScholarship(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewScholarshipService(m.repos, cache.NewMemoryCache())

	m.scholarship.EXPECT().GetByID(uint(7)).Return(openScholarship(), nil)
	past := fixedNow.Add(-72 * time.Hour)
	_, err := svc.Update(m.c, 7, scholarship.UpdateScholarshipInput{Deadline: &past})
	assert.ErrorIs(t, err, ErrInvalidDeadline)

	m.scholarship.EXPECT().GetByID(uint(7)).Return(openScholarship(), nil)
	m.scholarship.EXPECT().Save(gomock.Any()).Return(nil)
	sc, err := svc.Update(m.c, 7, scholarship.UpdateScholarshipInput{ApplicationFees: ptr(0.0)})
	require.NoError(t, err)
	assert.Zero(t, sc.ApplicationFees)

	m.scholarship.EXPECT().GetByID(uint(8)).Return(scholarship.Scholarship{}, gorm.ErrRecordNotFound)
	_, err = svc.Update(m.c, 8, scholarship.UpdateScholarshipInput{})
	assert.ErrorIs(t, err, ErrScholarshipNotFound)
}

func TestDeleteScholarship(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewScholarshipService(m.repos, cache.NewMemoryCache())

	m.scholarship.EXPECT().GetByID(uint(7)).Return(openScholarship(), nil)
	m.scholarship.EXPECT().Delete(uint(7)).Return(nil)
	assert.NoError(t, svc.Delete(m.c, 7))
}

func TestUpsertScholarship(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewScholarshipService(m.repos, cache.NewMemoryCache())

	in := scholarship.Scholarship{Name: "Global", UniversityName: "Tokyo", ApplicationFees: 30}

	m.scholarship.EXPECT().FindByNameAndUniversity("Global", "Tokyo").Return(scholarship.Scholarship{}, gorm.ErrRecordNotFound)
	m.scholarship.EXPECT().Create(gomock.Any()).Return(nil)
	_, created, err := svc.Upsert(in)
	require.NoError(t, err)
	assert.True(t, created)

	m.scholarship.EXPECT().FindByNameAndUniversity("Global", "Tokyo").Return(scholarship.Scholarship{ID: 3, Rating: 4.5, ReviewCount: 2}, nil)
	m.scholarship.EXPECT().Save(gomock.Any()).DoAndReturn(func(sc *scholarship.Scholarship) error {
		assert.Equal(t, uint(3), sc.ID)
		assert.Equal(t, 4.5, sc.Rating)
		assert.Equal(t, 30.0, sc.ApplicationFees)
		return nil
	})
	_, created, err = svc.Upsert(in)
	require.NoError(t, err)
	assert.False(t, created)
}
