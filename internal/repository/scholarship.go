package repository

import (
	"strings"

	"github.com/linskybing/scholarship-go/internal/domain/scholarship"
	"gorm.io/gorm"
)

type ScholarshipRepo interface {
	Create(s *scholarship.Scholarship) error
	Save(s *scholarship.Scholarship) error
	GetByID(id uint) (scholarship.Scholarship, error)
	FindByNameAndUniversity(name, university string) (scholarship.Scholarship, error)
	Delete(id uint) error
	List(f scholarship.Filter) ([]scholarship.Scholarship, int64, error)
	ListTop(limit int) ([]scholarship.Scholarship, error)
	UpdateRating(id uint, rating float64, count int) error
	WithTx(tx *gorm.DB) ScholarshipRepo
}

type DBScholarshipRepo struct {
	db *gorm.DB
}

func NewScholarshipRepo(db *gorm.DB) *DBScholarshipRepo {
	return &DBScholarshipRepo{db: db}
}

func (r *DBScholarshipRepo) Create(s *scholarship.Scholarship) error {
	return r.db.Create(s).Error
}

func (r *DBScholarshipRepo) Save(s *scholarship.Scholarship) error {
	return r.db.Save(s).Error
}

func (r *DBScholarshipRepo) GetByID(id uint) (scholarship.Scholarship, error) {
	var s scholarship.Scholarship
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBScholarshipRepo) FindByNameAndUniversity(name, university string) (scholarship.Scholarship, error) {
	var s scholarship.Scholarship
	err := r.db.Where("name = ? AND university_name = ?", name, university).First(&s).Error
	return s, err
}

func (r *DBScholarshipRepo) Delete(id uint) error {
	return r.db.Delete(&scholarship.Scholarship{}, id).Error
}

func filterScope(f scholarship.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Search != "" {
			like := containsPattern(f.Search)
			db = db.Where("LOWER(name) LIKE ? OR LOWER(university_name) LIKE ? OR LOWER(degree) LIKE ?", like, like, like)
		}
		if f.Category != "" {
			db = db.Where("LOWER(scholarship_category) = ?", strings.ToLower(f.Category))
		}
		if f.Subject != "" {
			db = db.Where("LOWER(subject_category) = ?", strings.ToLower(f.Subject))
		}
		if f.Degree != "" {
			db = db.Where("LOWER(degree) = ?", strings.ToLower(f.Degree))
		}
		return db
	}
}

// List returns one page matching f and the total number of matches.
func (r *DBScholarshipRepo) List(f scholarship.Filter) ([]scholarship.Scholarship, int64, error) {
	f = f.Normalize()
	var total int64
	if err := r.db.Model(&scholarship.Scholarship{}).Scopes(filterScope(f)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []scholarship.Scholarship
	err := r.db.Scopes(filterScope(f)).
		Order(scholarship.OrderClause(f.Sort)).
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&list).Error
	return list, total, err
}

// ListTop returns the cheapest scholarships, newest first among equal fees.
func (r *DBScholarshipRepo) ListTop(limit int) ([]scholarship.Scholarship, error) {
	var list []scholarship.Scholarship
	err := r.db.Order("application_fees ASC, post_date DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *DBScholarshipRepo) UpdateRating(id uint, rating float64, count int) error {
	return r.db.Model(&scholarship.Scholarship{}).Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "review_count": count}).Error
}

func (r *DBScholarshipRepo) WithTx(tx *gorm.DB) ScholarshipRepo {
	if tx == nil {
		return r
	}
	return &DBScholarshipRepo{db: tx}
}
