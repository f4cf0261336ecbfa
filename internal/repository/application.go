package repository

import (
	"github.com/linskybing/scholarship-go/internal/domain/application"
	"gorm.io/gorm"
)

type ApplicationRepo interface {
	Create(a *application.Application) error
	Save(a *application.Application) error
	GetByID(id uint) (application.Application, error)
	Delete(id uint) error
	List(f application.ListFilter) ([]application.Application, error)
	ExistsActive(userID, scholarshipID uint) (bool, error)
	HasApplied(userID, scholarshipID uint) (bool, error)
	CountByStatus(userID *uint) (map[application.Status]int64, error)
	WithTx(tx *gorm.DB) ApplicationRepo
}

type DBApplicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *DBApplicationRepo {
	return &DBApplicationRepo{db: db}
}

func (r *DBApplicationRepo) Create(a *application.Application) error {
	return r.db.Create(a).Error
}

func (r *DBApplicationRepo) Save(a *application.Application) error {
	return r.db.Save(a).Error
}

func (r *DBApplicationRepo) GetByID(id uint) (application.Application, error) {
	var a application.Application
	err := r.db.First(&a, id).Error
	return a, err
}

func (r *DBApplicationRepo) Delete(id uint) error {
	return r.db.Delete(&application.Application{}, id).Error
}

func (r *DBApplicationRepo) List(f application.ListFilter) ([]application.Application, error) {
	var list []application.Application
	q := r.db.Model(&application.Application{})

	if f.Status != nil {
		q = q.Where("applications.status = ?", *f.Status)
	}
	if f.ScholarshipID != nil {
		q = q.Where("applications.scholarship_id = ?", *f.ScholarshipID)
	}
	if f.UserID != nil {
		q = q.Where("applications.user_id = ?", *f.UserID)
	}

	switch f.Sort {
	case "deadline":
		q = q.Joins("JOIN scholarships ON scholarships.id = applications.scholarship_id").
			Order("scholarships.deadline ASC, applications.id ASC")
	default:
		q = q.Order("applications.applied_at DESC, applications.id DESC")
	}

	err := q.Find(&list).Error
	return list, err
}

func (r *DBApplicationRepo) ExistsActive(userID, scholarshipID uint) (bool, error) {
	var n int64
	err := r.db.Model(&application.Application{}).
		Where("user_id = ? AND scholarship_id = ? AND status <> ?", userID, scholarshipID, application.StatusRejected).
		Count(&n).Error
	return n > 0, err
}

func (r *DBApplicationRepo) HasApplied(userID, scholarshipID uint) (bool, error) {
	var n int64
	err := r.db.Model(&application.Application{}).
		Where("user_id = ? AND scholarship_id = ?", userID, scholarshipID).
		Count(&n).Error
	return n > 0, err
}

func (r *DBApplicationRepo) CountByStatus(userID *uint) (map[application.Status]int64, error) {
	var rows []struct {
		Status application.Status
		N      int64
	}
	q := r.db.Model(&application.Application{}).Select("status, COUNT(*) AS n").Group("status")
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[application.Status]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}

func (r *DBApplicationRepo) WithTx(tx *gorm.DB) ApplicationRepo {
	if tx == nil {
		return r
	}
	return &DBApplicationRepo{db: tx}
}
