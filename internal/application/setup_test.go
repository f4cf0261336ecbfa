package application

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/scholarship-go/internal/repository"
	"github.com/linskybing/scholarship-go/internal/repository/mock"
	"github.com/linskybing/scholarship-go/pkg/utils"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	ctrl        *gomock.Controller
	user        *mock.MockUserRepo
	scholarship *mock.MockScholarshipRepo
	application *mock.MockApplicationRepo
	review      *mock.MockReviewRepo
	payment     *mock.MockPaymentRepo
	audit       *mock.MockAuditRepo
	repos       *repository.Repos
	c           *gin.Context
}

func setupServiceMocks(t *testing.T) *serviceMocks {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &serviceMocks{
		ctrl:        ctrl,
		user:        mock.NewMockUserRepo(ctrl),
		scholarship: mock.NewMockScholarshipRepo(ctrl),
		application: mock.NewMockApplicationRepo(ctrl),
		review:      mock.NewMockReviewRepo(ctrl),
		payment:     mock.NewMockPaymentRepo(ctrl),
		audit:       mock.NewMockAuditRepo(ctrl),
	}
	m.repos = &repository.Repos{
		User:        m.user,
		Scholarship: m.scholarship,
		Application: m.application,
		Review:      m.review,
		Payment:     m.payment,
		Audit:       m.audit,
	}

	w := httptest.NewRecorder()
	m.c, _ = gin.CreateTestContext(w)
	m.c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	oldAudit := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	}
	oldNow := timeNow
	timeNow = func() time.Time { return fixedNow }
	t.Cleanup(func() {
		utils.LogAuditWithConsole = oldAudit
		timeNow = oldNow
	})

	return m
}

func ptr[T any](v T) *T { return &v }
