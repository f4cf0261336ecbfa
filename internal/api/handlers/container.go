package handlers

import (
	"github.com/linskybing/scholarship-go/internal/application"
)

type Handlers struct {
	Audit       *AuditHandler
	Auth        *AuthHandler
	User        *UserHandler
	Scholarship *ScholarshipHandler
	Payment     *PaymentHandler
	Application *ApplicationHandler
	Review      *ReviewHandler
	Upload      *UploadHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Audit:       NewAuditHandler(svc.Audit),
		Auth:        NewAuthHandler(svc.User),
		User:        NewUserHandler(svc.User),
		Scholarship: NewScholarshipHandler(svc.Scholarship, svc.Review),
		Payment:     NewPaymentHandler(svc.Payment),
		Application: NewApplicationHandler(svc.Application),
		Review:      NewReviewHandler(svc.Review),
		Upload:      NewUploadHandler(svc.Upload),
	}
}
