package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/scholarship-go/internal/application"
	"github.com/linskybing/scholarship-go/internal/repository"
	"github.com/linskybing/scholarship-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
)

func TestEvery_RunsImmediatelyAndStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls int32
	done := make(chan struct{})

	go func() {
		every(ctx, time.Hour, func() { atomic.AddInt32(&calls, 1) })
		close(done)
	}()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestCleanupJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAudit := mock.NewMockAuditRepo(ctrl)
	mockPayment := mock.NewMockPaymentRepo(ctrl)
	repos := &repository.Repos{Audit: mockAudit, Payment: mockPayment}

	mockAudit.EXPECT().DeleteOldAuditLogs(30).Return(int64(3), nil)
	mockAudit.EXPECT().DeleteOldAuditLogs(30).Return(int64(0), errors.New("db down"))
	mockPayment.EXPECT().ExpirePendingBefore(gomock.Any()).Return(int64(2), nil)

	audit := cleanupAudit(application.NewAuditService(repos), 30)
	audit()
	audit()
	expirePayments(application.NewPaymentService(repos, nil))()
}
