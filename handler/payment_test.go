package handler

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"ticket_marketplace/constants"
	"ticket_marketplace/database"
	"ticket_marketplace/helper"
	"ticket_marketplace/model"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type approveGateway struct{}

func (approveGateway) Charge(decimal.Decimal) bool { return true }

func setupPaymentTest(t *testing.T) (*gorm.DB, *model.User, *model.Booking) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	organizer := model.User{Name: "Organizer", Email: "organizer@test.local", Password: "hashed", Role: constants.ROLE_ORGANIZER}
	require.NoError(t, db.Create(&organizer).Error)
	customer := model.User{Name: "Customer", Email: "customer@test.local", Password: "hashed", Role: constants.ROLE_CUSTOMER}
	require.NoError(t, db.Create(&customer).Error)

	event := model.Event{
		Title:     "Test Event",
		Slug:      "test-event",
		Date:      time.Now().AddDate(0, 1, 0),
		Location:  "Test Hall",
		CreatedBy: organizer.ID,
	}
	require.NoError(t, db.Create(&event).Error)
	ticket := model.Ticket{
		EventId:  event.ID,
		Type:     constants.TICKET_STANDARD,
		Price:    decimal.NewFromInt(75),
		Quantity: 50,
	}
	require.NoError(t, db.Create(&ticket).Error)

	booking, svcErr := helper.CreateBooking(db, customer.ID, ticket.ID, 2)
	require.Nil(t, svcErr)
	return db, &customer, booking
}

func paymentApp(user *model.User) *fiber.App {
	app := fiber.New()
	app.Post("/bookings/:bookingId/payment", func(c *fiber.Ctx) error {
		id, _ := strconv.Atoi(c.Params("bookingId"))
		c.Locals("inputId", id)
		c.Locals("authUser", user)
		return c.Next()
	}, CreatePayment)
	return app
}

// The response carries the booking reloaded after settlement, so the
// confirmed status must be visible to the caller.
func TestCreatePaymentConfirmsBooking(t *testing.T) {
	_, customer, booking := setupPaymentTest(t)

	PaymentGateway = approveGateway{}
	PaymentNotifier = nil

	app := paymentApp(customer)
	resp, err := app.Test(httptest.NewRequest("POST", fmt.Sprintf("/bookings/%d/payment", booking.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		Success bool          `json:"success"`
		Message string        `json:"message"`
		Booking model.Booking `json:"booking"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, constants.PAYMENT_SUCCESS_MSG, body.Message)
	assert.Equal(t, constants.BOOKING_CONFIRMED, body.Booking.Status)
}

func TestCreatePaymentForeignBookingForbidden(t *testing.T) {
	db, _, booking := setupPaymentTest(t)

	stranger := model.User{Name: "Stranger", Email: "stranger@test.local", Password: "hashed", Role: constants.ROLE_CUSTOMER}
	require.NoError(t, db.Create(&stranger).Error)

	PaymentGateway = approveGateway{}
	PaymentNotifier = nil

	app := paymentApp(&stranger)
	resp, err := app.Test(httptest.NewRequest("POST", fmt.Sprintf("/bookings/%d/payment", booking.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var count int64
	db.Model(&model.Payment{}).Count(&count)
	assert.Zero(t, count)
}
