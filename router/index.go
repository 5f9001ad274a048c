package router

import (
	"ticket_marketplace/handler"
	"ticket_marketplace/middleware"
	"ticket_marketplace/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), middleware.LoadUser(), handler.Me)

	// Public browsing
	event := v1.Group("/events")
	event.Get("/", validate.FilterEvents(), handler.GetEvents)
	event.Get("/:eventId", validate.GetById("eventId"), handler.GetEventById)
	event.Get("/:eventId/tickets", validate.GetById("eventId"), handler.GetEventTickets)

	// Organizer / admin event management
	event.Post("/", middleware.Protected(), middleware.LoadUser(), middleware.RequireCan(middleware.OpEventsManage), validate.CreateEvent(), handler.CreateEvent)
	event.Put("/:eventId", middleware.Protected(), middleware.LoadUser(), middleware.RequireCan(middleware.OpEventsManage), validate.UpdateEvent("eventId"), handler.UpdateEvent)
	event.Delete("/:eventId", middleware.Protected(), middleware.LoadUser(), middleware.RequireCan(middleware.OpEventsManage), validate.GetById("eventId"), handler.DeleteEvent)
	event.Post("/:eventId/tickets", middleware.Protected(), middleware.LoadUser(), middleware.RequireCan(middleware.OpTicketsManage), validate.CreateTicket("eventId"), handler.CreateTicket)
	v1.Get("/my-events", middleware.Protected(), middleware.LoadUser(), middleware.RequireCan(middleware.OpEventsManage), handler.GetMyEvents)

	ticket := v1.Group("/tickets")
	ticket.Get("/:ticketId/availability", validate.GetById("ticketId"), handler.GetTicketAvailability)
	ticket.Put("/:ticketId", middleware.Protected(), middleware.LoadUser(), middleware.RequireCan(middleware.OpTicketsManage), validate.UpdateTicket("ticketId"), handler.UpdateTicket)
	ticket.Delete("/:ticketId", middleware.Protected(), middleware.LoadUser(), middleware.RequireCan(middleware.OpTicketsManage), validate.GetById("ticketId"), handler.DeleteTicket)
	ticket.Post("/:ticketId/bookings", middleware.Protected(), middleware.LoadUser(), middleware.RequireCan(middleware.OpBookingsCreate), validate.CreateBooking("ticketId"), handler.CreateBooking)

	booking := v1.Group("/bookings", middleware.Protected(), middleware.LoadUser())
	booking.Get("/", validate.FilterBookings(), handler.GetBookings)
	booking.Get("/:bookingId", validate.GetById("bookingId"), handler.GetBookingById)
	booking.Put("/:bookingId/cancel", middleware.RequireCan(middleware.OpBookingsCreate), validate.GetById("bookingId"), handler.CancelBooking)
	booking.Post("/:bookingId/payment", middleware.RequireCan(middleware.OpPaymentsSettle), validate.GetById("bookingId"), handler.CreatePayment)

	payment := v1.Group("/payments", middleware.Protected(), middleware.LoadUser())
	payment.Get("/", handler.GetPayments)
	payment.Get("/:paymentId", validate.GetById("paymentId"), handler.GetPaymentById)
	payment.Post("/:paymentId/refund", middleware.RequireCan(middleware.OpPaymentsRefund), validate.GetById("paymentId"), handler.RefundPayment)

	notification := v1.Group("/notifications", middleware.Protected(), middleware.LoadUser())
	notification.Get("/", handler.GetNotifications)
	notification.Patch("/:notificationId/read", validate.GetById("notificationId"), handler.MarkNotificationRead)

	user := v1.Group("/users", middleware.Protected(), middleware.LoadUser(), middleware.RequireCan(middleware.OpUsersManage))
	user.Get("/", validate.FilterUsers(), handler.GetUsers)
	user.Get("/:userId", validate.GetById("userId"), handler.GetUserById)
	user.Put("/:userId", validate.UpdateUser("userId"), handler.UpdateUser)
	user.Delete("/:userId", validate.GetById("userId"), handler.DeleteUser)
}
