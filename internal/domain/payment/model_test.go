package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromProvider(t *testing.T) {
	assert.Equal(t, StatusPaid, StatusFromProvider("settlement", ""))
	assert.Equal(t, StatusPaid, StatusFromProvider("capture", "accept"))
	assert.Equal(t, StatusPending, StatusFromProvider("capture", "challenge"))
	assert.Equal(t, StatusFailed, StatusFromProvider("deny", ""))
	assert.Equal(t, StatusExpired, StatusFromProvider("expire", ""))
	assert.Equal(t, StatusPending, StatusFromProvider("pending", ""))
}

func TestConsumable(t *testing.T) {
	now := time.Now()
	assert.True(t, Payment{Status: StatusPaid}.Consumable())
	assert.False(t, Payment{Status: StatusPaid, ConsumedAt: &now}.Consumable())
	assert.False(t, Payment{Status: StatusPending}.Consumable())
}
