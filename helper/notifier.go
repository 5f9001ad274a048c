package helper

import (
	"fmt"
	"log"

	"ticket_marketplace/model"
	"ticket_marketplace/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BookingConfirmedData struct {
	Booking model.Booking
	Event   model.Event
	Ticket  model.Ticket
	Amount  decimal.Decimal
}

// Notifier is the fire-and-forget dispatch contract for booking-confirmation
// notices. Implementations must never surface delivery failures to the
// caller.
type Notifier interface {
	BookingConfirmed(data BookingConfirmedData)
}

// DBNotifier persists an inbox record and sends the confirmation email
// asynchronously.
type DBNotifier struct {
	DB *gorm.DB
}

func (n *DBNotifier) BookingConfirmed(data BookingConfirmedData) {
	var user model.User
	if err := n.DB.First(&user, data.Booking.UserId).Error; err != nil {
		log.Printf("notifier: user #%d not found for booking #%d: %v", data.Booking.UserId, data.Booking.ID, err)
		return
	}

	notification := model.Notification{
		UserId:    user.ID,
		BookingId: data.Booking.ID,
		Title:     "Booking Confirmed: " + data.Event.Title,
		Message:   fmt.Sprintf("Your booking for %q has been confirmed.", data.Event.Title),
	}
	if err := n.DB.Create(&notification).Error; err != nil {
		log.Printf("notifier: failed to persist notification for booking #%d: %v", data.Booking.ID, err)
	}

	utils.SendBookingConfirmationEmail(user.Email, utils.BookingConfirmationData{
		Name:        user.Name,
		EventTitle:  data.Event.Title,
		EventDate:   data.Event.Date.Format("Jan 02, 2006 03:04 PM"),
		Location:    data.Event.Location,
		TicketType:  data.Ticket.Type,
		Quantity:    data.Booking.Quantity,
		TotalPaid:   data.Amount.StringFixed(2),
		BookingCode: data.Booking.Code,
	})
	log.Printf("notifier: booking confirmation queued for user #%d (booking #%d)", user.ID, data.Booking.ID)
}
