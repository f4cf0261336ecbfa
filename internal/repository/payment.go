package repository

import (
	"time"

	"github.com/linskybing/scholarship-go/internal/domain/payment"
	"gorm.io/gorm"
)

type PaymentRepo interface {
	Create(p *payment.Payment) error
	Save(p *payment.Payment) error
	GetByID(id uint) (payment.Payment, error)
	GetByOrderID(orderID string) (payment.Payment, error)
	ListByUser(userID uint) ([]payment.Payment, error)
	ExpirePendingBefore(cutoff time.Time) (int64, error)
	Consume(id uint, at time.Time) (bool, error)
	WithTx(tx *gorm.DB) PaymentRepo
}

type DBPaymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *DBPaymentRepo {
	return &DBPaymentRepo{db: db}
}

func (r *DBPaymentRepo) Create(p *payment.Payment) error {
	return r.db.Create(p).Error
}

func (r *DBPaymentRepo) Save(p *payment.Payment) error {
	return r.db.Save(p).Error
}

func (r *DBPaymentRepo) GetByID(id uint) (payment.Payment, error) {
	var p payment.Payment
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBPaymentRepo) GetByOrderID(orderID string) (payment.Payment, error) {
	var p payment.Payment
	err := r.db.Where("order_id = ?", orderID).First(&p).Error
	return p, err
}

func (r *DBPaymentRepo) ListByUser(userID uint) ([]payment.Payment, error) {
	var list []payment.Payment
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *DBPaymentRepo) ExpirePendingBefore(cutoff time.Time) (int64, error) {
	res := r.db.Model(&payment.Payment{}).
		Where("status = ? AND created_at < ?", payment.StatusPending, cutoff).
		Update("status", payment.StatusExpired)
	return res.RowsAffected, res.Error
}

// Consume marks a paid payment as spent. It reports false when the payment is
// not paid or another caller consumed it first.
func (r *DBPaymentRepo) Consume(id uint, at time.Time) (bool, error) {
	res := r.db.Model(&payment.Payment{}).
		Where("id = ? AND status = ? AND consumed_at IS NULL", id, payment.StatusPaid).
		Update("consumed_at", at)
	return res.RowsAffected == 1, res.Error
}

func (r *DBPaymentRepo) WithTx(tx *gorm.DB) PaymentRepo {
	if tx == nil {
		return r
	}
	return &DBPaymentRepo{db: tx}
}
