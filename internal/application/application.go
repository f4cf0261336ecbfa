package application

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scholarship-go/internal/domain/application"
	"github.com/linskybing/scholarship-go/internal/domain/audit"
	"github.com/linskybing/scholarship-go/internal/domain/user"
	"github.com/linskybing/scholarship-go/internal/repository"
	"github.com/linskybing/scholarship-go/pkg/types"
	"github.com/linskybing/scholarship-go/pkg/utils"
	"gorm.io/gorm"
)

type ApplicationService struct {
	Repos *repository.Repos
}

func NewApplicationService(repos *repository.Repos) *ApplicationService {
	return &ApplicationService{Repos: repos}
}

func isStaff(claims *types.Claims) bool {
	return claims != nil && user.Role(claims.Role).IsStaff()
}

// Submit files an application. It only succeeds when input names a paid
// payment of the caller, for the same scholarship, that no other application
// has consumed. Checks and insert share one transaction.
func (s *ApplicationService) Submit(c *gin.Context, userID uint, input application.CreateApplicationInput) (application.Application, error) {
	var created application.Application

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		sc, err := tx.Scholarship.GetByID(input.ScholarshipID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScholarshipNotFound
		}
		if err != nil {
			return err
		}

		p, err := tx.Payment.GetByID(input.PaymentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentRequired
		}
		if err != nil {
			return err
		}
		if p.UserID != userID || p.ScholarshipID != sc.ID || !p.Consumable() {
			return ErrPaymentRequired
		}

		active, err := tx.Application.ExistsActive(userID, sc.ID)
		if err != nil {
			return err
		}
		if active {
			return ErrAlreadyApplied
		}
		if !sc.Open(timeNow()) {
			return ErrDeadlinePassed
		}

		applicant, err := tx.User.GetUserByID(userID)
		if err != nil {
			return err
		}

		created = application.Application{
			ScholarshipID:   sc.ID,
			UserID:          userID,
			PaymentID:       p.ID,
			Phone:           input.Phone,
			Photo:           input.Photo,
			Address:         input.Address,
			Gender:          input.Gender,
			Degree:          input.Degree,
			SSCResult:       input.SSCResult,
			HSCResult:       input.HSCResult,
			StudyGap:        input.StudyGap,
			Status:          application.StatusPending,
			AppliedAt:       timeNow(),
			ScholarshipName: sc.Name,
			UniversityName:  sc.UniversityName,
			ApplicantName:   applicant.Name,
			ApplicantEmail:  applicant.Email,
		}

		// claimed with a conditional update so concurrent submits cannot share it
		consumed, err := tx.Payment.Consume(p.ID, created.AppliedAt)
		if err != nil {
			return err
		}
		if !consumed {
			return ErrPaymentRequired
		}

		err = tx.Application.Create(&created)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyApplied
		}
		return err
	})
	if err != nil {
		return application.Application{}, err
	}

	utils.LogAuditWithConsole(c, audit.ActionCreate, "application", strconv.Itoa(int(created.ID)), nil, created,
		"applied to "+created.ScholarshipName, s.Repos.Audit)
	return created, nil
}

func (s *ApplicationService) List(f application.ListFilter) ([]application.Application, error) {
	return s.Repos.Application.List(f)
}

func (s *ApplicationService) ListMine(userID uint) ([]application.Application, error) {
	return s.Repos.Application.List(application.ListFilter{UserID: &userID})
}

// Stats counts applications per status; a nil userID counts everyone's.
func (s *ApplicationService) Stats(userID *uint) (application.Stats, error) {
	counts, err := s.Repos.Application.CountByStatus(userID)
	if err != nil {
		return application.Stats{}, err
	}
	var st application.Stats
	for status, n := range counts {
		st.Add(status, n)
	}
	return st, nil
}

func (s *ApplicationService) find(id uint) (application.Application, error) {
	a, err := s.Repos.Application.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return application.Application{}, ErrApplicationNotFound
	}
	return a, err
}

// Get returns the application to its owner or to staff.
func (s *ApplicationService) Get(claims *types.Claims, id uint) (application.Application, error) {
	a, err := s.find(id)
	if err != nil {
		return application.Application{}, err
	}
	if a.UserID != claims.UserID && !isStaff(claims) {
		return application.Application{}, ErrForbidden
	}
	return a, nil
}

func (s *ApplicationService) Update(c *gin.Context, claims *types.Claims, id uint, input application.UpdateApplicationInput) (application.Application, error) {
	a, err := s.find(id)
	if err != nil {
		return application.Application{}, err
	}
	if a.UserID != claims.UserID {
		return application.Application{}, ErrForbidden
	}
	if !a.Editable() {
		return application.Application{}, ErrApplicationLocked
	}
	before := a

	if input.Phone != nil {
		a.Phone = *input.Phone
	}
	if input.Photo != nil {
		a.Photo = *input.Photo
	}
	if input.Address != nil {
		a.Address = *input.Address
	}
	if input.Gender != nil {
		a.Gender = *input.Gender
	}
	if input.Degree != nil {
		a.Degree = *input.Degree
	}
	if input.SSCResult != nil {
		a.SSCResult = *input.SSCResult
	}
	if input.HSCResult != nil {
		a.HSCResult = *input.HSCResult
	}
	if input.StudyGap != nil {
		a.StudyGap = *input.StudyGap
	}

	if err := s.Repos.Application.Save(&a); err != nil {
		return application.Application{}, err
	}
	utils.LogAuditWithConsole(c, audit.ActionUpdate, "application", strconv.Itoa(int(id)), before, a,
		"applicant edited application", s.Repos.Audit)
	return a, nil
}

func (s *ApplicationService) UpdateStatus(c *gin.Context, id uint, input application.UpdateStatusInput) (application.Application, error) {
	next, err := application.ParseStatus(input.Status)
	if err != nil {
		return application.Application{}, ErrInvalidStatus
	}
	a, err := s.find(id)
	if err != nil {
		return application.Application{}, err
	}
	if !application.CanTransition(a.Status, next) {
		return application.Application{}, ErrInvalidStatusTransition
	}
	before := a

	a.Status = next
	if input.Feedback != nil {
		a.Feedback = *input.Feedback
	}
	if err := s.Repos.Application.Save(&a); err != nil {
		return application.Application{}, err
	}
	utils.LogAuditWithConsole(c, audit.ActionUpdate, "application", strconv.Itoa(int(id)), before, a,
		"status "+string(before.Status)+" -> "+string(next), s.Repos.Audit)
	return a, nil
}

func (s *ApplicationService) SetFeedback(c *gin.Context, id uint, feedback string) (application.Application, error) {
	a, err := s.find(id)
	if err != nil {
		return application.Application{}, err
	}
	before := a
	a.Feedback = feedback
	if err := s.Repos.Application.Save(&a); err != nil {
		return application.Application{}, err
	}
	utils.LogAuditWithConsole(c, audit.ActionUpdate, "application", strconv.Itoa(int(id)), before, a,
		"feedback updated", s.Repos.Audit)
	return a, nil
}

// Delete lets staff remove any application and owners withdraw pending ones.
func (s *ApplicationService) Delete(c *gin.Context, claims *types.Claims, id uint) error {
	a, err := s.find(id)
	if err != nil {
		return err
	}
	if !isStaff(claims) {
		if a.UserID != claims.UserID {
			return ErrForbidden
		}
		if !a.Editable() {
			return ErrApplicationLocked
		}
	}
	if err := s.Repos.Application.Delete(id); err != nil {
		return err
	}
	utils.LogAuditWithConsole(c, audit.ActionDelete, "application", strconv.Itoa(int(id)), a, nil,
		"application removed", s.Repos.Audit)
	return nil
}
