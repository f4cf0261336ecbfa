package migrations

import (
	"github.com/linskybing/scholarship-go/internal/domain/application"
	"github.com/linskybing/scholarship-go/internal/domain/audit"
	"github.com/linskybing/scholarship-go/internal/domain/payment"
	"github.com/linskybing/scholarship-go/internal/domain/review"
	"github.com/linskybing/scholarship-go/internal/domain/scholarship"
	"github.com/linskybing/scholarship-go/internal/domain/user"
	"gorm.io/gorm"
)

// Models lists every persisted type in dependency order.
func Models() []interface{} {
	return []interface{}{
		&user.User{},
		&scholarship.Scholarship{},
		&payment.Payment{},
		&application.Application{},
		&review.Review{},
		&audit.AuditLog{},
	}
}

func Run(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
