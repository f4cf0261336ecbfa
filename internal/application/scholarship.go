package application

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scholarship-go/internal/config"
	"github.com/linskybing/scholarship-go/internal/domain/audit"
	"github.com/linskybing/scholarship-go/internal/domain/scholarship"
	"github.com/linskybing/scholarship-go/internal/repository"
	"github.com/linskybing/scholarship-go/pkg/cache"
	"github.com/linskybing/scholarship-go/pkg/types"
	"github.com/linskybing/scholarship-go/pkg/utils"
	"gorm.io/gorm"
)

const (
	topScholarshipsKey = "scholarships:top"
	topScholarshipsTTL = 5 * time.Minute
)

// invalidateTop drops the cached top list; failures only cost freshness.
func invalidateTop(ctx context.Context, c cache.Cache) {
	if err := c.Delete(ctx, topScholarshipsKey); err != nil {
		log.Printf("[cache] invalidate %s: %v", topScholarshipsKey, err)
	}
}

type ScholarshipService struct {
	Repos *repository.Repos
	cache cache.Cache
}

func NewScholarshipService(repos *repository.Repos, c cache.Cache) *ScholarshipService {
	return &ScholarshipService{Repos: repos, cache: c}
}

func (s *ScholarshipService) List(f scholarship.Filter) (scholarship.Page, error) {
	f = f.Normalize()
	items, total, err := s.Repos.Scholarship.List(f)
	if err != nil {
		return scholarship.Page{}, err
	}
	return scholarship.NewPage(items, total, f.Page, f.Limit), nil
}

// Top returns the featured scholarships: lowest application fee first, newest
// first among equal fees. The unfiltered list is cached; f narrows and
// reorders it in memory.
func (s *ScholarshipService) Top(ctx context.Context, f scholarship.Filter) ([]scholarship.Scholarship, error) {
	var list []scholarship.Scholarship
	err := s.cache.GetJSON(ctx, topScholarshipsKey, &list)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.Printf("[cache] read %s: %v", topScholarshipsKey, err)
		}
		limit := config.TopScholarshipLimit
		if limit <= 0 {
			limit = 6
		}
		list, err = s.Repos.Scholarship.ListTop(limit)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetJSON(ctx, topScholarshipsKey, list, topScholarshipsTTL); err != nil {
			log.Printf("[cache] write %s: %v", topScholarshipsKey, err)
		}
	}

	if f.Sort == scholarship.SortDefault && f.Search == "" && f.Category == "" && f.Subject == "" && f.Degree == "" {
		return list, nil
	}
	return scholarship.Apply(list, f), nil
}

func (s *ScholarshipService) Get(id uint) (scholarship.Scholarship, error) {
	sc, err := s.Repos.Scholarship.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return scholarship.Scholarship{}, ErrScholarshipNotFound
	}
	return sc, err
}

func (s *ScholarshipService) Create(c *gin.Context, claims *types.Claims, input scholarship.CreateScholarshipInput) (scholarship.Scholarship, error) {
	postDate := timeNow()
	if input.PostDate != nil {
		postDate = *input.PostDate
	}
	if input.Deadline.Before(postDate) {
		return scholarship.Scholarship{}, ErrInvalidDeadline
	}

	sc := scholarship.Scholarship{
		Name:                strings.TrimSpace(input.Name),
		UniversityName:      strings.TrimSpace(input.UniversityName),
		UniversityImage:     input.UniversityImage,
		UniversityRank:      input.UniversityRank,
		Country:             input.Country,
		City:                input.City,
		SubjectCategory:     input.SubjectCategory,
		ScholarshipCategory: input.ScholarshipCategory,
		Degree:              input.Degree,
		TuitionFees:         input.TuitionFees,
		ApplicationFees:     input.ApplicationFees,
		ServiceCharge:       input.ServiceCharge,
		Deadline:            input.Deadline,
		PostDate:            postDate,
		Description:         input.Description,
		PostedByID:          claims.UserID,
		PostedUserEmail:     claims.Email,
	}
	if err := s.Repos.Scholarship.Create(&sc); err != nil {
		return scholarship.Scholarship{}, err
	}
	invalidateTop(c, s.cache)

	utils.LogAuditWithConsole(c, audit.ActionCreate, "scholarship", strconv.Itoa(int(sc.ID)), nil, sc,
		"created scholarship "+sc.Name, s.Repos.Audit)
	return sc, nil
}

func (s *ScholarshipService) Update(c *gin.Context, id uint, input scholarship.UpdateScholarshipInput) (scholarship.Scholarship, error) {
	sc, err := s.Get(id)
	if err != nil {
		return scholarship.Scholarship{}, err
	}
	before := sc

	if input.Name != nil {
		sc.Name = strings.TrimSpace(*input.Name)
	}
	if input.UniversityName != nil {
		sc.UniversityName = strings.TrimSpace(*input.UniversityName)
	}
	if input.UniversityImage != nil {
		sc.UniversityImage = *input.UniversityImage
	}
	if input.UniversityRank != nil {
		sc.UniversityRank = *input.UniversityRank
	}
	if input.Country != nil {
		sc.Country = *input.Country
	}
	if input.City != nil {
		sc.City = *input.City
	}
	if input.SubjectCategory != nil {
		sc.SubjectCategory = *input.SubjectCategory
	}
	if input.ScholarshipCategory != nil {
		sc.ScholarshipCategory = *input.ScholarshipCategory
	}
	if input.Degree != nil {
		sc.Degree = *input.Degree
	}
	if input.TuitionFees != nil {
		sc.TuitionFees = *input.TuitionFees
	}
	if input.ApplicationFees != nil {
		sc.ApplicationFees = *input.ApplicationFees
	}
	if input.ServiceCharge != nil {
		sc.ServiceCharge = *input.ServiceCharge
	}
	if input.Deadline != nil {
		sc.Deadline = *input.Deadline
	}
	if input.Description != nil {
		sc.Description = *input.Description
	}
	if sc.Deadline.Before(sc.PostDate) {
		return scholarship.Scholarship{}, ErrInvalidDeadline
	}

	if err := s.Repos.Scholarship.Save(&sc); err != nil {
		return scholarship.Scholarship{}, err
	}
	invalidateTop(c, s.cache)

	utils.LogAuditWithConsole(c, audit.ActionUpdate, "scholarship", strconv.Itoa(int(id)), before, sc,
		"updated scholarship "+sc.Name, s.Repos.Audit)
	return sc, nil
}

func (s *ScholarshipService) Delete(c *gin.Context, id uint) error {
	sc, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.Repos.Scholarship.Delete(id); err != nil {
		return err
	}
	invalidateTop(c, s.cache)

	utils.LogAuditWithConsole(c, audit.ActionDelete, "scholarship", strconv.Itoa(int(id)), sc, nil,
		"deleted scholarship "+sc.Name, s.Repos.Audit)
	return nil
}

// Upsert inserts sc or overwrites the row with the same name and university.
func (s *ScholarshipService) Upsert(sc scholarship.Scholarship) (scholarship.Scholarship, bool, error) {
	existing, err := s.Repos.Scholarship.FindByNameAndUniversity(sc.Name, sc.UniversityName)
	switch {
	case err == nil:
		sc.ID = existing.ID
		sc.CreatedAt = existing.CreatedAt
		sc.Rating = existing.Rating
		sc.ReviewCount = existing.ReviewCount
		if err := s.Repos.Scholarship.Save(&sc); err != nil {
			return sc, false, err
		}
		return sc, false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.Repos.Scholarship.Create(&sc); err != nil {
			return sc, false, err
		}
		return sc, true, nil
	default:
		return sc, false, err
	}
}
