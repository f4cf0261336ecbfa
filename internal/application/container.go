package application

import (
	"time"

	"github.com/linskybing/scholarship-go/internal/repository"
	"github.com/linskybing/scholarship-go/pkg/cache"
	"github.com/linskybing/scholarship-go/pkg/identity"
	"github.com/linskybing/scholarship-go/pkg/payment"
	"github.com/linskybing/scholarship-go/pkg/storage"
)

// Providers are the external systems services talk to. Nil members disable
// the features that depend on them.
type Providers struct {
	Gateway  payment.Gateway
	Verifier identity.Verifier
	Uploader storage.Uploader
	Cache    cache.Cache
}

type Services struct {
	Audit       *AuditService
	User        *UserService
	Scholarship *ScholarshipService
	Payment     *PaymentService
	Application *ApplicationService
	Review      *ReviewService
	Upload      *UploadService
}

func New(repos *repository.Repos, p Providers) *Services {
	if p.Cache == nil {
		p.Cache = cache.NewMemoryCache()
	}
	return &Services{
		Audit:       NewAuditService(repos),
		User:        NewUserService(repos, p.Verifier),
		Scholarship: NewScholarshipService(repos, p.Cache),
		Payment:     NewPaymentService(repos, p.Gateway),
		Application: NewApplicationService(repos),
		Review:      NewReviewService(repos, p.Cache),
		Upload:      NewUploadService(p.Uploader),
	}
}

var timeNow = time.Now
