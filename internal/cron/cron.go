package cron

import (
	"context"
	"log"
	"time"

	"github.com/linskybing/scholarship-go/internal/application"
)

const (
	auditCleanupEvery  = 24 * time.Hour
	paymentExpiryEvery = time.Hour
)

// every runs fn now and then on each tick until ctx is done.
func every(ctx context.Context, d time.Duration, fn func()) {
	fn()
	ticker := time.NewTicker(d)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

func cleanupAudit(auditService *application.AuditService, retentionDays int) func() {
	return func() {
		n, err := auditService.CleanupOldLogs(retentionDays)
		if err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
			return
		}
		log.Printf("Audit log cleanup removed %d rows (retention: %d days)", n, retentionDays)
	}
}

func expirePayments(paymentService *application.PaymentService) func() {
	return func() {
		n, err := paymentService.ExpireStale()
		if err != nil {
			log.Printf("Failed to expire stale payments: %v", err)
			return
		}
		if n > 0 {
			log.Printf("Expired %d stale payments", n)
		}
	}
}

// StartCleanupTask starts the background maintenance loops.
func StartCleanupTask(ctx context.Context, svc *application.Services, retentionDays int) {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	log.Printf("Starting background cleanup task (retention: %d days)", retentionDays)

	go every(ctx, auditCleanupEvery, cleanupAudit(svc.Audit, retentionDays))
	go every(ctx, paymentExpiryEvery, expirePayments(svc.Payment))
}
