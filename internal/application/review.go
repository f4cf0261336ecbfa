package application

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scholarship-go/internal/domain/audit"
	"github.com/linskybing/scholarship-go/internal/domain/review"
	"github.com/linskybing/scholarship-go/internal/repository"
	"github.com/linskybing/scholarship-go/pkg/cache"
	"github.com/linskybing/scholarship-go/pkg/types"
	"github.com/linskybing/scholarship-go/pkg/utils"
	"gorm.io/gorm"
)

type ReviewService struct {
	Repos *repository.Repos
	cache cache.Cache
}

func NewReviewService(repos *repository.Repos, c cache.Cache) *ReviewService {
	return &ReviewService{Repos: repos, cache: c}
}

// recomputeRating rewrites the scholarship's average from its reviews.
func recomputeRating(tx *repository.Repos, scholarshipID uint) error {
	ratings, err := tx.Review.RatingsForScholarship(scholarshipID)
	if err != nil {
		return err
	}
	sum := review.Summarize(ratings)
	return tx.Scholarship.UpdateRating(scholarshipID, sum.Average, sum.Count)
}

func (s *ReviewService) Create(c *gin.Context, userID uint, input review.CreateReviewInput) (review.Review, error) {
	sc, err := s.Repos.Scholarship.GetByID(input.ScholarshipID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return review.Review{}, ErrScholarshipNotFound
	}
	if err != nil {
		return review.Review{}, err
	}

	applied, err := s.Repos.Application.HasApplied(userID, sc.ID)
	if err != nil {
		return review.Review{}, err
	}
	if !applied {
		return review.Review{}, ErrNotApplied
	}
	exists, err := s.Repos.Review.Exists(userID, sc.ID)
	if err != nil {
		return review.Review{}, err
	}
	if exists {
		return review.Review{}, ErrAlreadyReviewed
	}

	author, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return review.Review{}, err
	}

	rv := review.Review{
		ScholarshipID:   sc.ID,
		UserID:          userID,
		ScholarshipName: sc.Name,
		UniversityName:  sc.UniversityName,
		ReviewerName:    author.Name,
		ReviewerImage:   author.PhotoURL,
		Rating:          input.Rating,
		Comment:         strings.TrimSpace(input.Comment),
		ReviewDate:      timeNow(),
	}
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Review.Create(&rv); err != nil {
			return err
		}
		return recomputeRating(tx, sc.ID)
	})
	if err != nil {
		return review.Review{}, err
	}
	invalidateTop(c, s.cache)

	utils.LogAuditWithConsole(c, audit.ActionCreate, "review", strconv.Itoa(int(rv.ID)), nil, rv,
		"reviewed "+sc.Name, s.Repos.Audit)
	return rv, nil
}

func (s *ReviewService) find(id uint) (review.Review, error) {
	rv, err := s.Repos.Review.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return review.Review{}, ErrReviewNotFound
	}
	return rv, err
}

func (s *ReviewService) Update(c *gin.Context, claims *types.Claims, id uint, input review.UpdateReviewInput) (review.Review, error) {
	rv, err := s.find(id)
	if err != nil {
		return review.Review{}, err
	}
	if rv.UserID != claims.UserID && !isStaff(claims) {
		return review.Review{}, ErrForbidden
	}
	before := rv

	if input.Rating != nil {
		rv.Rating = *input.Rating
	}
	if input.Comment != nil {
		rv.Comment = strings.TrimSpace(*input.Comment)
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Review.Save(&rv); err != nil {
			return err
		}
		return recomputeRating(tx, rv.ScholarshipID)
	})
	if err != nil {
		return review.Review{}, err
	}
	invalidateTop(c, s.cache)

	utils.LogAuditWithConsole(c, audit.ActionUpdate, "review", strconv.Itoa(int(id)), before, rv,
		"review edited", s.Repos.Audit)
	return rv, nil
}

func (s *ReviewService) Delete(c *gin.Context, claims *types.Claims, id uint) error {
	rv, err := s.find(id)
	if err != nil {
		return err
	}
	if rv.UserID != claims.UserID && !isStaff(claims) {
		return ErrForbidden
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Review.Delete(id); err != nil {
			return err
		}
		return recomputeRating(tx, rv.ScholarshipID)
	})
	if err != nil {
		return err
	}
	invalidateTop(c, s.cache)

	utils.LogAuditWithConsole(c, audit.ActionDelete, "review", strconv.Itoa(int(id)), rv, nil,
		"review deleted", s.Repos.Audit)
	return nil
}

func (s *ReviewService) ListAll() ([]review.Review, error) {
	return s.Repos.Review.ListAll()
}

func (s *ReviewService) ListMine(userID uint) ([]review.Review, error) {
	return s.Repos.Review.ListByUser(userID)
}

func (s *ReviewService) ListForScholarship(scholarshipID uint) ([]review.Review, error) {
	return s.Repos.Review.ListByScholarship(scholarshipID)
}
