package helper

import (
	"strings"
	"testing"

	"ticket_marketplace/constants"
	"ticket_marketplace/model"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct {
	approve bool
	charged []decimal.Decimal
}

func (g *stubGateway) Charge(amount decimal.Decimal) bool {
	g.charged = append(g.charged, amount)
	return g.approve
}

type spyNotifier struct {
	calls []BookingConfirmedData
}

func (n *spyNotifier) BookingConfirmed(data BookingConfirmedData) {
	n.calls = append(n.calls, data)
}

func TestProcessPaymentSuccess(t *testing.T) {
	db := testDB(t)
	customer := seedUser(t, db, "customer@test.local", constants.ROLE_CUSTOMER)
	ticket := seedTicket(t, db, decimal.RequireFromString("19.99"), 50)
	booking, svcErr := CreateBooking(db, customer.ID, ticket.ID, 3)
	require.Nil(t, svcErr)

	gateway := &stubGateway{approve: true}
	notifier := &spyNotifier{}

	result, svcErr := ProcessPayment(db, gateway, notifier, booking.ID, customer.ID)
	require.Nil(t, svcErr)

	assert.True(t, result.Success)
	assert.Equal(t, constants.PAYMENT_SUCCESS_MSG, result.Message)
	assert.Equal(t, constants.PAYMENT_SUCCESS, result.Payment.Status)
	assert.Equal(t, "59.97", result.Payment.Amount.StringFixed(2))
	assert.True(t, strings.HasPrefix(result.Payment.PaymentCode, "PAY_"))

	var reloaded model.Booking
	require.NoError(t, db.First(&reloaded, booking.ID).Error)
	assert.Equal(t, constants.BOOKING_CONFIRMED, reloaded.Status)

	require.Len(t, gateway.charged, 1)
	assert.Equal(t, "59.97", gateway.charged[0].StringFixed(2))

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, booking.ID, notifier.calls[0].Booking.ID)
	assert.Equal(t, "59.97", notifier.calls[0].Amount.StringFixed(2))
}

func TestProcessPaymentDeclined(t *testing.T) {
	db := testDB(t)
	customer := seedUser(t, db, "customer@test.local", constants.ROLE_CUSTOMER)
	ticket := seedTicket(t, db, decimal.NewFromInt(75), 50)
	booking, svcErr := CreateBooking(db, customer.ID, ticket.ID, 2)
	require.Nil(t, svcErr)

	gateway := &stubGateway{approve: false}
	notifier := &spyNotifier{}

	result, svcErr := ProcessPayment(db, gateway, notifier, booking.ID, customer.ID)
	require.Nil(t, svcErr)

	assert.False(t, result.Success)
	assert.Equal(t, constants.PAYMENT_FAILED_MSG, result.Message)
	assert.Equal(t, constants.PAYMENT_FAILED, result.Payment.Status)

	var reloaded model.Booking
	require.NoError(t, db.First(&reloaded, booking.ID).Error)
	assert.Equal(t, constants.BOOKING_PENDING, reloaded.Status)

	assert.Empty(t, notifier.calls)
}

func TestProcessPaymentSecondAttemptBlocked(t *testing.T) {
	db := testDB(t)
	customer := seedUser(t, db, "customer@test.local", constants.ROLE_CUSTOMER)
	ticket := seedTicket(t, db, decimal.NewFromInt(75), 50)
	booking, svcErr := CreateBooking(db, customer.ID, ticket.ID, 2)
	require.Nil(t, svcErr)

	_, svcErr = ProcessPayment(db, &stubGateway{approve: false}, nil, booking.ID, customer.ID)
	require.Nil(t, svcErr)

	result, svcErr := ProcessPayment(db, &stubGateway{approve: true}, nil, booking.ID, customer.ID)
	require.Nil(t, result)
	require.NotNil(t, svcErr)
	assert.Equal(t, fiber.StatusUnprocessableEntity, svcErr.Status)
	assert.Equal(t, constants.PAYMENT_ALREADY_EXISTS, svcErr.Message)

	var count int64
	db.Model(&model.Payment{}).Where("booking_id = ?", booking.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestProcessPaymentCancelledBooking(t *testing.T) {
	db := testDB(t)
	customer := seedUser(t, db, "customer@test.local", constants.ROLE_CUSTOMER)
	ticket := seedTicket(t, db, decimal.NewFromInt(75), 50)
	booking, svcErr := CreateBooking(db, customer.ID, ticket.ID, 2)
	require.Nil(t, svcErr)
	require.Nil(t, CancelBooking(db, booking))

	result, svcErr := ProcessPayment(db, &stubGateway{approve: true}, nil, booking.ID, customer.ID)
	require.Nil(t, result)
	require.NotNil(t, svcErr)
	assert.Equal(t, fiber.StatusUnprocessableEntity, svcErr.Status)
	assert.Equal(t, constants.PAYMENT_FOR_CANCELLED, svcErr.Message)
}

func TestProcessPaymentUnknownBooking(t *testing.T) {
	db := testDB(t)
	customer := seedUser(t, db, "customer@test.local", constants.ROLE_CUSTOMER)

	result, svcErr := ProcessPayment(db, &stubGateway{approve: true}, nil, 999, customer.ID)
	require.Nil(t, result)
	require.NotNil(t, svcErr)
	assert.Equal(t, fiber.StatusNotFound, svcErr.Status)
	assert.Equal(t, constants.BOOKING_NOT_FOUND, svcErr.Message)
}

func TestProcessPaymentAmountRounded(t *testing.T) {
	db := testDB(t)
	customer := seedUser(t, db, "customer@test.local", constants.ROLE_CUSTOMER)
	ticket := seedTicket(t, db, decimal.RequireFromString("33.33"), 50)
	booking, svcErr := CreateBooking(db, customer.ID, ticket.ID, 3)
	require.Nil(t, svcErr)

	result, svcErr := ProcessPayment(db, &stubGateway{approve: true}, nil, booking.ID, customer.ID)
	require.Nil(t, svcErr)
	assert.Equal(t, "99.99", result.Payment.Amount.StringFixed(2))
}

func TestProcessRefund(t *testing.T) {
	db := testDB(t)
	customer := seedUser(t, db, "customer@test.local", constants.ROLE_CUSTOMER)
	ticket := seedTicket(t, db, decimal.NewFromInt(75), 50)
	booking, svcErr := CreateBooking(db, customer.ID, ticket.ID, 2)
	require.Nil(t, svcErr)

	result, svcErr := ProcessPayment(db, &stubGateway{approve: true}, nil, booking.ID, customer.ID)
	require.Nil(t, svcErr)

	require.Nil(t, ProcessRefund(db, result.Payment))
	assert.Equal(t, constants.PAYMENT_REFUNDED, result.Payment.Status)

	var payment model.Payment
	require.NoError(t, db.First(&payment, result.Payment.ID).Error)
	assert.Equal(t, constants.PAYMENT_REFUNDED, payment.Status)

	var reloaded model.Booking
	require.NoError(t, db.First(&reloaded, booking.ID).Error)
	assert.Equal(t, constants.BOOKING_CANCELLED, reloaded.Status)
}

func TestProcessRefundOnCancelledBooking(t *testing.T) {
	db := testDB(t)
	customer := seedUser(t, db, "customer@test.local", constants.ROLE_CUSTOMER)
	ticket := seedTicket(t, db, decimal.NewFromInt(75), 50)
	booking, svcErr := CreateBooking(db, customer.ID, ticket.ID, 2)
	require.Nil(t, svcErr)

	result, svcErr := ProcessPayment(db, &stubGateway{approve: true}, nil, booking.ID, customer.ID)
	require.Nil(t, svcErr)

	var confirmed model.Booking
	require.NoError(t, db.First(&confirmed, booking.ID).Error)
	require.Nil(t, CancelBooking(db, &confirmed))

	require.Nil(t, ProcessRefund(db, result.Payment))

	var reloaded model.Booking
	require.NoError(t, db.First(&reloaded, booking.ID).Error)
	assert.Equal(t, constants.BOOKING_CANCELLED, reloaded.Status)
}

func TestMockGatewayRates(t *testing.T) {
	always := &MockGateway{SuccessRate: 100}
	never := &MockGateway{SuccessRate: 0}
	for i := 0; i < 20; i++ {
		assert.True(t, always.Charge(decimal.NewFromInt(1)))
		assert.False(t, never.Charge(decimal.NewFromInt(1)))
	}
}
