package middleware

import (
	"errors"

	"ticket_marketplace/constants"
	"ticket_marketplace/model"
	"ticket_marketplace/utils"

	"github.com/gofiber/fiber/v2"
)

// Operations gated by the capability table.
const (
	OpEventsManage          = "events.manage"           // create/update/delete events (organizer: own only)
	OpTicketsManage         = "tickets.manage"          // create/update/delete tickets (organizer: own events only)
	OpBookingsCreate        = "bookings.create"         // create/cancel own bookings
	OpBookingsViewAll       = "bookings.view.all"       // list every booking
	OpBookingsViewOwnEvents = "bookings.view.own-event" // organizer read-only view
	OpPaymentsSettle        = "payments.settle"         // settle own bookings
	OpPaymentsViewAll       = "payments.view.all"
	OpPaymentsRefund        = "payments.refund"
	OpUsersManage           = "users.manage"
)

// capabilities is the static role → permitted operations table, consulted
// before dispatch. Ownership narrowing (own event, own booking) happens at
// the handler against the loaded entity.
var capabilities = map[string][]string{
	constants.ROLE_ADMIN: {
		OpEventsManage, OpTicketsManage,
		OpBookingsViewAll, OpPaymentsViewAll, OpPaymentsRefund,
		OpUsersManage,
	},
	constants.ROLE_ORGANIZER: {
		OpEventsManage, OpTicketsManage,
		OpBookingsViewOwnEvents,
	},
	constants.ROLE_CUSTOMER: {
		OpBookingsCreate, OpPaymentsSettle,
	},
}

func Can(role, op string) bool {
	for _, allowed := range capabilities[role] {
		if allowed == op {
			return true
		}
	}
	return false
}

// RequireCan rejects the request unless the authenticated user's role holds
// the operation. Runs after LoadUser().
func RequireCan(op string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHENTICATED, errors.New("no authenticated user"))
		}
		if !Can(user.Role, op) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
		}
		return c.Next()
	}
}

// OwnsEvent reports whether the actor may mutate the event: admin always,
// organizer only when the event is theirs.
func OwnsEvent(user *model.User, event *model.Event) bool {
	if user.Role == constants.ROLE_ADMIN {
		return true
	}
	return event.CreatedBy == user.ID
}

// OwnsBooking reports whether the actor is the booking's customer. Admin
// passes for read paths; callers decide whether admin bypass applies.
func OwnsBooking(user *model.User, booking *model.Booking) bool {
	return booking.UserId == user.ID
}
