package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/scholarship-go/internal/domain/payment"
	"github.com/linskybing/scholarship-go/internal/repository"
	gateway "github.com/linskybing/scholarship-go/pkg/payment"
	"gorm.io/gorm"
)

// PendingPaymentTTL is how long a checkout may stay unpaid before it expires.
const PendingPaymentTTL = 24 * time.Hour

type PaymentService struct {
	Repos   *repository.Repos
	gateway gateway.Gateway
}

func NewPaymentService(repos *repository.Repos, gw gateway.Gateway) *PaymentService {
	return &PaymentService{Repos: repos, gateway: gw}
}

// CreateIntent starts a checkout for the scholarship's application fee. The
// amount always comes from the stored scholarship. Free scholarships yield a
// payment that is already paid.
func (s *PaymentService) CreateIntent(ctx context.Context, userID, scholarshipID uint) (payment.Intent, error) {
	sc, err := s.Repos.Scholarship.GetByID(scholarshipID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payment.Intent{}, ErrScholarshipNotFound
	}
	if err != nil {
		return payment.Intent{}, err
	}
	if !sc.Open(timeNow()) {
		return payment.Intent{}, ErrDeadlinePassed
	}

	amount := sc.ChargeAmount()
	p := payment.Payment{
		OrderID:       uuid.NewString(),
		UserID:        userID,
		ScholarshipID: sc.ID,
		Amount:        float64(amount),
		Currency:      "IDR",
		Status:        payment.StatusPending,
	}

	if amount <= 0 {
		now := timeNow()
		p.Status = payment.StatusPaid
		p.PaidAt = &now
		if err := s.Repos.Payment.Create(&p); err != nil {
			return payment.Intent{}, err
		}
		return intentOf(p, ""), nil
	}

	if s.gateway == nil {
		return payment.Intent{}, ErrPaymentProvider
	}

	usr, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return payment.Intent{}, err
	}

	if err := s.Repos.Payment.Create(&p); err != nil {
		return payment.Intent{}, err
	}

	checkout, err := s.gateway.CreateCheckout(ctx, gateway.CheckoutRequest{
		OrderID:  p.OrderID,
		Amount:   amount,
		ItemID:   "scholarship-" + strconv.Itoa(int(sc.ID)),
		ItemName: sc.Name,
		Customer: gateway.Customer{Name: usr.Name, Email: usr.Email},
	})
	if err != nil {
		p.Status = payment.StatusFailed
		if saveErr := s.Repos.Payment.Save(&p); saveErr != nil {
			log.Printf("[payment] mark %s failed: %v", p.OrderID, saveErr)
		}
		return payment.Intent{}, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	p.ProviderToken = checkout.Token
	p.RedirectURL = checkout.RedirectURL
	if err := s.Repos.Payment.Save(&p); err != nil {
		return payment.Intent{}, err
	}
	return intentOf(p, s.gateway.ClientKey()), nil
}

func intentOf(p payment.Payment, clientKey string) payment.Intent {
	return payment.Intent{
		PaymentID:    p.ID,
		OrderID:      p.OrderID,
		ClientSecret: p.ProviderToken,
		RedirectURL:  p.RedirectURL,
		Amount:       p.Amount,
		Status:       p.Status,
		ClientKey:    clientKey,
	}
}

// sync asks the provider for the authoritative status of a pending payment.
func (s *PaymentService) sync(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	if p.Status != payment.StatusPending {
		return p, nil
	}
	if s.gateway == nil {
		return p, ErrPaymentProvider
	}

	st, err := s.gateway.Status(ctx, p.OrderID)
	if err != nil {
		return p, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	next := payment.StatusFromProvider(st.TransactionStatus, st.FraudStatus)
	if next == p.Status {
		return p, nil
	}
	p.Status = next
	p.ProviderTxnID = st.TransactionID
	if next == payment.StatusPaid {
		now := timeNow()
		p.PaidAt = &now
	}
	if err := s.Repos.Payment.Save(&p); err != nil {
		return p, err
	}
	log.Printf("[payment] %s -> %s", p.OrderID, p.Status)
	return p, nil
}

// HandleNotification re-checks the order named by a provider callback.
func (s *PaymentService) HandleNotification(ctx context.Context, orderID string) (payment.Payment, error) {
	p, err := s.Repos.Payment.GetByOrderID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payment.Payment{}, ErrPaymentNotFound
	}
	if err != nil {
		return payment.Payment{}, err
	}
	return s.sync(ctx, p)
}

// Confirm re-checks the caller's own payment after the checkout closes.
func (s *PaymentService) Confirm(ctx context.Context, userID, paymentID uint) (payment.Payment, error) {
	p, err := s.Repos.Payment.GetByID(paymentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payment.Payment{}, ErrPaymentNotFound
	}
	if err != nil {
		return payment.Payment{}, err
	}
	if p.UserID != userID {
		return payment.Payment{}, ErrForbidden
	}
	return s.sync(ctx, p)
}

func (s *PaymentService) ListMine(userID uint) ([]payment.Payment, error) {
	return s.Repos.Payment.ListByUser(userID)
}

// ExpireStale marks checkouts left pending longer than PendingPaymentTTL.
func (s *PaymentService) ExpireStale() (int64, error) {
	return s.Repos.Payment.ExpirePendingBefore(timeNow().Add(-PendingPaymentTTL))
}
