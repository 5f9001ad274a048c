package helper

import (
	"math/rand/v2"

	"ticket_marketplace/config"

	"github.com/shopspring/decimal"
)

// Gateway abstracts the payment processor so settlement stays
// gateway-agnostic. Charge reports whether the charge went through;
// a declined charge is a designed outcome, not an error.
type Gateway interface {
	Charge(amount decimal.Decimal) bool
}

// MockGateway simulates a processor: each charge succeeds with
// SuccessRate percent probability, independently of business data.
type MockGateway struct {
	SuccessRate int
}

func (g *MockGateway) Charge(_ decimal.Decimal) bool {
	return rand.IntN(100) < g.SuccessRate
}

// NewMockGateway reads PAYMENT_SUCCESS_RATE from the environment
// (default 80).
func NewMockGateway() *MockGateway {
	return &MockGateway{SuccessRate: config.ConfigInt("PAYMENT_SUCCESS_RATE", 80)}
}
