package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User        UserRepo
	Scholarship ScholarshipRepo
	Application ApplicationRepo
	Review      ReviewRepo
	Payment     PaymentRepo
	Audit       AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:        NewUserRepo(db),
		Scholarship: NewScholarshipRepo(db),
		Application: NewApplicationRepo(db),
		Review:      NewReviewRepo(db),
		Payment:     NewPaymentRepo(db),
		Audit:       NewAuditRepo(db),
		db:          db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:        r.User.WithTx(tx),
		Scholarship: r.Scholarship.WithTx(tx),
		Application: r.Application.WithTx(tx),
		Review:      r.Review.WithTx(tx),
		Payment:     r.Payment.WithTx(tx),
		Audit:       r.Audit.WithTx(tx),
		db:          tx,
	}
}

// ExecTx runs fn with repositories bound to one transaction. Repos built
// without a database (unit tests with mocks) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
