package repository

import (
	"github.com/linskybing/scholarship-go/internal/domain/review"
	"gorm.io/gorm"
)

type ReviewRepo interface {
	Create(rv *review.Review) error
	Save(rv *review.Review) error
	GetByID(id uint) (review.Review, error)
	Delete(id uint) error
	ListAll() ([]review.Review, error)
	ListByUser(userID uint) ([]review.Review, error)
	ListByScholarship(scholarshipID uint) ([]review.Review, error)
	Exists(userID, scholarshipID uint) (bool, error)
	RatingsForScholarship(scholarshipID uint) ([]int, error)
	WithTx(tx *gorm.DB) ReviewRepo
}

type DBReviewRepo struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) *DBReviewRepo {
	return &DBReviewRepo{db: db}
}

func (r *DBReviewRepo) Create(rv *review.Review) error {
	return r.db.Create(rv).Error
}

func (r *DBReviewRepo) Save(rv *review.Review) error {
	return r.db.Save(rv).Error
}

func (r *DBReviewRepo) GetByID(id uint) (review.Review, error) {
	var rv review.Review
	err := r.db.First(&rv, id).Error
	return rv, err
}

func (r *DBReviewRepo) Delete(id uint) error {
	return r.db.Delete(&review.Review{}, id).Error
}

func (r *DBReviewRepo) ListAll() ([]review.Review, error) {
	var list []review.Review
	err := r.db.Order("review_date DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *DBReviewRepo) ListByUser(userID uint) ([]review.Review, error) {
	var list []review.Review
	err := r.db.Where("user_id = ?", userID).Order("review_date DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *DBReviewRepo) ListByScholarship(scholarshipID uint) ([]review.Review, error) {
	var list []review.Review
	err := r.db.Where("scholarship_id = ?", scholarshipID).Order("review_date DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *DBReviewRepo) Exists(userID, scholarshipID uint) (bool, error) {
	var n int64
	err := r.db.Model(&review.Review{}).Where("user_id = ? AND scholarship_id = ?", userID, scholarshipID).Count(&n).Error
	return n > 0, err
}

func (r *DBReviewRepo) RatingsForScholarship(scholarshipID uint) ([]int, error) {
	var ratings []int
	err := r.db.Model(&review.Review{}).Where("scholarship_id = ?", scholarshipID).Pluck("rating", &ratings).Error
	return ratings, err
}

func (r *DBReviewRepo) WithTx(tx *gorm.DB) ReviewRepo {
	if tx == nil {
		return r
	}
	return &DBReviewRepo{db: tx}
}
