package repository

import (
	"github.com/linskybing/scholarship-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	GetUserByEmail(email string) (user.User, error)
	GetUserByGoogleSub(sub string) (user.User, error)
	ListUsers(role *user.Role) ([]user.User, error)
	ListUsersPaging(page, limit int) ([]user.User, int64, error)
	ExistsByEmail(email string) (bool, error)
	SaveUser(u *user.User) error
	DeleteUser(id uint) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByGoogleSub(sub string) (user.User, error) {
	var u user.User
	if err := r.db.Where("google_sub = ?", sub).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) ListUsers(role *user.Role) ([]user.User, error) {
	var users []user.User
	q := r.db.Order("id ASC")
	if role != nil {
		q = q.Where("role = ?", *role)
	}
	err := q.Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListUsersPaging(page, limit int) ([]user.User, int64, error) {
	var users []user.User
	var total int64

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	if err := r.db.Model(&user.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Order("id ASC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *DBUserRepo) ExistsByEmail(email string) (bool, error) {
	var n int64
	err := r.db.Model(&user.User{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
