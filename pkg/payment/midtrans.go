package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

var ErrGateway = errors.New("payment gateway error")

type Customer struct {
	Name  string
	Email string
}

type CheckoutRequest struct {
	OrderID  string
	Amount   int64
	ItemID   string
	ItemName string
	Customer Customer
}

type Checkout struct {
	Token       string
	RedirectURL string
}

type TransactionStatus struct {
	OrderID           string
	TransactionID     string
	TransactionStatus string
	FraudStatus       string
}

// Gateway is the hosted checkout provider.
type Gateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (Checkout, error)
	Status(ctx context.Context, orderID string) (TransactionStatus, error)
	ClientKey() string
}

type MidtransGateway struct {
	snap      snap.Client
	core      coreapi.Client
	clientKey string
}

func NewMidtransGateway(serverKey, clientKey string, production bool) *MidtransGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	g := &MidtransGateway{clientKey: clientKey}
	g.snap.New(serverKey, env)
	g.core.New(serverKey, env)
	return g
}

func (g *MidtransGateway) ClientKey() string { return g.clientKey }

func (g *MidtransGateway) CreateCheckout(_ context.Context, req CheckoutRequest) (Checkout, error) {
	if req.Amount <= 0 {
		return Checkout{}, fmt.Errorf("%w: amount must be positive", ErrGateway)
	}
	first, last := splitName(req.Customer.Name)
	sr := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: first,
			LName: last,
			Email: req.Customer.Email,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:       req.ItemID,
			Price:    req.Amount,
			Qty:      1,
			Name:     truncate(req.ItemName, 50),
			Category: "Application fee",
		}},
		CreditCard: &snap.CreditCardDetails{Secure: true},
	}

	resp, merr := g.snap.CreateTransaction(sr)
	if merr != nil {
		return Checkout{}, fmt.Errorf("%w: %s", ErrGateway, merr.Error())
	}
	return Checkout{Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}

func (g *MidtransGateway) Status(_ context.Context, orderID string) (TransactionStatus, error) {
	resp, merr := g.core.CheckTransaction(orderID)
	if merr != nil {
		return TransactionStatus{}, fmt.Errorf("%w: %s", ErrGateway, merr.Error())
	}
	return TransactionStatus{
		OrderID:           resp.OrderID,
		TransactionID:     resp.TransactionID,
		TransactionStatus: strings.ToLower(resp.TransactionStatus),
		FraudStatus:       strings.ToLower(resp.FraudStatus),
	}, nil
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "Applicant", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
