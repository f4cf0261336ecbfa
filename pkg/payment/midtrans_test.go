package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	f, l := splitName("  Jane  van Doe ")
	assert.Equal(t, "Jane", f)
	assert.Equal(t, "van Doe", l)

	f, l = splitName("")
	assert.Equal(t, "Applicant", f)
	assert.Empty(t, l)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
}

func TestCreateCheckout_RejectsNonPositiveAmount(t *testing.T) {
	g := NewMidtransGateway("server-key", "client-key", false)
	_, err := g.CreateCheckout(context.Background(), CheckoutRequest{OrderID: "o-1", Amount: 0})
	assert.ErrorIs(t, err, ErrGateway)
	assert.Equal(t, "client-key", g.ClientKey())
}
