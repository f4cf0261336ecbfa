package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/scholarship-go/internal/domain/application"
	"github.com/linskybing/scholarship-go/internal/domain/payment"
	"github.com/linskybing/scholarship-go/internal/domain/scholarship"
	"github.com/linskybing/scholarship-go/internal/domain/user"
	"github.com/linskybing/scholarship-go/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openScholarship() scholarship.Scholarship {
	return scholarship.Scholarship{
		ID:              7,
		Name:            "Global Excellence",
		UniversityName:  "Tokyo",
		ApplicationFees: 50,
		Deadline:        fixedNow.Add(48 * time.Hour),
		PostDate:        fixedNow.Add(-48 * time.Hour),
	}
}

func applyInput() application.CreateApplicationInput {
	return application.CreateApplicationInput{
		ScholarshipID: 7,
		PaymentID:     30,
		Phone:         "0812345678",
		Address:       "Jl. Sudirman 1",
		Gender:        "Female",
		Degree:        "Masters",
	}
}

// --------------------- Submit ---------------------
func TestSubmit_Success(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewApplicationService(m.repos)

	m.scholarship.EXPECT().GetByID(uint(7)).Return(openScholarship(), nil)
	m.payment.EXPECT().GetByID(uint(30)).Return(payment.Payment{ID: 30, UserID: 1, ScholarshipID: 7, Status: payment.StatusPaid}, nil)
	m.application.EXPECT().ExistsActive(uint(1), uint(7)).Return(false, nil)
	m.user.EXPECT().GetUserByID(uint(1)).Return(user.User{ID: 1, Name: "Jane", Email: "jane@example.com"}, nil)
	m.payment.EXPECT().Consume(uint(30), fixedNow).Return(true, nil)
	m.application.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *application.Application) error {
		a.ID = 100
		return nil
	})

	a, err := svc.Submit(m.c, 1, applyInput())
	require.NoError(t, err)
	assert.Equal(t, uint(100), a.ID)
	assert.Equal(t, application.StatusPending, a.Status)
	assert.Equal(t, "Global Excellence", a.ScholarshipName)
	assert.Equal(t, "jane@example.com", a.ApplicantEmail)
	assert.Equal(t, fixedNow, a.AppliedAt)
}

func TestSubmit_WithoutPaidPayment(t *testing.T) {
	cases := []struct {
		name    string
		payment payment.Payment
		err     error
	}{
		{"missing", payment.Payment{}, gorm.ErrRecordNotFound},
		{"pending", payment.Payment{ID: 30, UserID: 1, ScholarshipID: 7, Status: payment.StatusPending}, nil},
		{"failed", payment.Payment{ID: 30, UserID: 1, ScholarshipID: 7, Status: payment.StatusFailed}, nil},
		{"other user", payment.Payment{ID: 30, UserID: 2, ScholarshipID: 7, Status: payment.StatusPaid}, nil},
		{"other scholarship", payment.Payment{ID: 30, UserID: 1, ScholarshipID: 8, Status: payment.StatusPaid}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := setupServiceMocks(t)
			svc := NewApplicationService(m.repos)

			m.scholarship.EXPECT().GetByID(uint(7)).Return(openScholarship(), nil)
			m.payment.EXPECT().GetByID(uint(30)).Return(tc.payment, tc.err)
			m.application.EXPECT().Create(gomock.Any()).Times(0)

			_, err := svc.Submit(m.c, 1, applyInput())
			assert.ErrorIs(t, err, ErrPaymentRequired)
		})
	}
}

func TestSubmit_PaymentAlreadyUsed(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewApplicationService(m.repos)

	// the application that consumed it may since have been withdrawn
	consumed := fixedNow.Add(-time.Hour)
	m.scholarship.EXPECT().GetByID(uint(7)).Return(openScholarship(), nil)
	m.payment.EXPECT().GetByID(uint(30)).Return(payment.Payment{ID: 30, UserID: 1, ScholarshipID: 7, Status: payment.StatusPaid, ConsumedAt: &consumed}, nil)
	m.application.EXPECT().ExistsActive(gomock.Any(), gomock.Any()).Times(0)
	m.application.EXPECT().Create(gomock.Any()).Times(0)

	_, err := svc.Submit(m.c, 1, applyInput())
	assert.ErrorIs(t, err, ErrPaymentRequired)
}

func TestSubmit_PaymentClaimedConcurrently(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewApplicationService(m.repos)

	m.scholarship.EXPECT().GetByID(uint(7)).Return(openScholarship(), nil)
	m.payment.EXPECT().GetByID(uint(30)).Return(payment.Payment{ID: 30, UserID: 1, ScholarshipID: 7, Status: payment.StatusPaid}, nil)
	m.application.EXPECT().ExistsActive(uint(1), uint(7)).Return(false, nil)
	m.user.EXPECT().GetUserByID(uint(1)).Return(user.User{ID: 1}, nil)
	m.payment.EXPECT().Consume(uint(30), gomock.Any()).Return(false, nil)
	m.application.EXPECT().Create(gomock.Any()).Times(0)

	_, err := svc.Submit(m.c, 1, applyInput())
	assert.ErrorIs(t, err, ErrPaymentRequired)
}

func TestSubmit_ActiveApplicationRaceIsConflict(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewApplicationService(m.repos)

	m.scholarship.EXPECT().GetByID(uint(7)).Return(openScholarship(), nil)
	m.payment.EXPECT().GetByID(uint(30)).Return(payment.Payment{ID: 30, UserID: 1, ScholarshipID: 7, Status: payment.StatusPaid}, nil)
	m.application.EXPECT().ExistsActive(uint(1), uint(7)).Return(false, nil)
	m.user.EXPECT().GetUserByID(uint(1)).Return(user.User{ID: 1}, nil)
	m.payment.EXPECT().Consume(uint(30), gomock.Any()).Return(true, nil)
	m.application.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Submit(m.c, 1, applyInput())
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestSubmit_AlreadyApplied(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewApplicationService(m.repos)

	m.scholarship.EXPECT().GetByID(uint(7)).Return(openScholarship(), nil)
	m.payment.EXPECT().GetByID(uint(30)).Return(payment.Payment{ID: 30, UserID: 1, ScholarshipID: 7, Status: payment.StatusPaid}, nil)
	m.application.EXPECT().ExistsActive(uint(1), uint(7)).Return(true, nil)

	_, err := svc.Submit(m.c, 1, applyInput())
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestSubmit_DeadlinePassed(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewApplicationService(m.repos)

	closed := openScholarship()
	closed.Deadline = fixedNow.Add(-time.Minute)
	m.scholarship.EXPECT().GetByID(uint(7)).Return(closed, nil)
	m.payment.EXPECT().GetByID(uint(30)).Return(payment.Payment{ID: 30, UserID: 1, ScholarshipID: 7, Status: payment.StatusPaid}, nil)
	m.application.EXPECT().ExistsActive(uint(1), uint(7)).Return(false, nil)

	_, err := svc.Submit(m.c, 1, applyInput())
	assert.ErrorIs(t, err, ErrDeadlinePassed)
}

func TestSubmit_ScholarshipNotFound(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewApplicationService(m.repos)

	m.scholarship.EXPECT().GetByID(uint(7)).Return(scholarship.Scholarship{}, gorm.ErrRecordNotFound)

	_, err := svc.Submit(m.c, 1, applyInput())
	assert.ErrorIs(t, err, ErrScholarshipNotFound)
}

// --------------------- Get / Update ---------------------
func TestGetApplication_Ownership(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewApplicationService(m.repos)

	m.application.EXPECT().GetByID(uint(5)).Return(application.Application{ID: 5, UserID: 1}, nil).Times(3)

	_, err := svc.Get(&types.Claims{UserID: 1, Role: "user"}, 5)
	assert.NoError(t, err)
	_, err = svc.Get(&types.Claims{UserID: 2, Role: "user"}, 5)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Get(&types.Claims{UserID: 2, Role: "moderator"}, 5)
	assert.NoError(t, err)
}

func TestUpdateApplication(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewApplicationService(m.repos)
	owner := &types.Claims{UserID: 1, Role: "user"}

	m.application.EXPECT().GetByID(uint(5)).Return(application.Application{ID: 5, UserID: 1, Status: application.StatusProcessing}, nil)
	_, err := svc.Update(m.c, owner, 5, application.UpdateApplicationInput{Phone: ptr("1")})
	assert.ErrorIs(t, err, ErrApplicationLocked)

	m.application.EXPECT().GetByID(uint(5)).Return(application.Application{ID: 5, UserID: 1, Status: application.StatusPending}, nil)
	_, err = svc.Update(m.c, &types.Claims{UserID: 9, Role: "admin"}, 5, application.UpdateApplicationInput{Phone: ptr("1")})
	assert.ErrorIs(t, err, ErrForbidden)

	m.application.EXPECT().GetByID(uint(5)).Return(application.Application{ID: 5, UserID: 1, Status: application.StatusPending, Phone: "0"}, nil)
	m.application.EXPECT().Save(gomock.Any()).Return(nil)
	a, err := svc.Update(m.c, owner, 5, application.UpdateApplicationInput{Phone: ptr("0899")})
	require.NoError(t, err)
	assert.Equal(t, "0899", a.Phone)
}

// --------------------- UpdateStatus ---------------------
func TestUpdateStatus(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewApplicationService(m.repos)

	_, err := svc.UpdateStatus(m.c, 5, application.UpdateStatusInput{Status: "Approved"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	m.application.EXPECT().GetByID(uint(5)).Return(application.Application{ID: 5, Status: application.StatusRejected}, nil)
	_, err = svc.UpdateStatus(m.c, 5, application.UpdateStatusInput{Status: "Processing"})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	m.application.EXPECT().GetByID(uint(5)).Return(application.Application{ID: 5, Status: application.StatusPending}, nil)
	m.application.EXPECT().Save(gomock.Any()).DoAndReturn(func(a *application.Application) error {
		assert.Equal(t, application.StatusProcessing, a.Status)
		assert.Equal(t, "documents received", a.Feedback)
		return nil
	})
	a, err := svc.UpdateStatus(m.c, 5, application.UpdateStatusInput{Status: "processing", Feedback: ptr("documents received")})
	require.NoError(t, err)
	assert.Equal(t, application.StatusProcessing, a.Status)
}

// --------------------- Delete ---------------------
func TestDeleteApplication(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewApplicationService(m.repos)
	owner := &types.Claims{UserID: 1, Role: "user"}

	m.application.EXPECT().GetByID(uint(5)).Return(application.Application{ID: 5, UserID: 1, Status: application.StatusCompleted}, nil)
	assert.ErrorIs(t, svc.Delete(m.c, owner, 5), ErrApplicationLocked)

	m.application.EXPECT().GetByID(uint(5)).Return(application.Application{ID: 5, UserID: 2, Status: application.StatusPending}, nil)
	assert.ErrorIs(t, svc.Delete(m.c, owner, 5), ErrForbidden)

	m.application.EXPECT().GetByID(uint(5)).Return(application.Application{ID: 5, UserID: 2, Status: application.StatusCompleted}, nil)
	m.application.EXPECT().Delete(uint(5)).Return(nil)
	assert.NoError(t, svc.Delete(m.c, &types.Claims{UserID: 3, Role: "moderator"}, 5))

	m.application.EXPECT().GetByID(uint(6)).Return(application.Application{}, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.Delete(m.c, owner, 6), ErrApplicationNotFound)
}

func TestApplicationStats(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewApplicationService(m.repos)

	uid := uint(1)
	m.application.EXPECT().CountByStatus(&uid).Return(map[application.Status]int64{
		application.StatusPending:   2,
		application.StatusCompleted: 1,
	}, nil)

	st, err := svc.Stats(&uid)
	require.NoError(t, err)
	assert.Equal(t, int64(3), st.Total)
	assert.Equal(t, int64(2), st.Pending)
	assert.Equal(t, int64(1), st.Completed)
}
