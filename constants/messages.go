package constants

// Auth
const (
	MISSING_LOGIN_INPUT  = "Email and password are required."
	INVALID_CREDENTIALS  = "The provided credentials are incorrect."
	UNAUTHENTICATED      = "Unauthenticated."
	FORBIDDEN            = "Forbidden."
	EMAIL_ALREADY_TAKEN  = "The email has already been taken."
	REGISTRATION_SUCCESS = "Registration successful."
	LOGIN_SUCCESS        = "Login successful."
)

// Generic
const (
	ERROR_INTERNAL_ERROR     = "Internal server error."
	DATA_INPUT_IS_NOT_NUMBER = "Route parameter must be a number."
	NOT_FOUND                = "Resource not found."
)

// Events / tickets
const (
	EVENT_NOT_FOUND  = "Event not found."
	EVENT_CREATED    = "Event created successfully."
	EVENT_UPDATED    = "Event updated successfully."
	EVENT_DELETED    = "Event deleted successfully."
	EVENT_DATE_PAST  = "The event date must be in the future."
	TICKET_NOT_FOUND = "Ticket not found."
	TICKET_CREATED   = "Ticket created successfully."
	TICKET_UPDATED   = "Ticket updated successfully."
	TICKET_DELETED   = "Ticket deleted successfully."
)

// Bookings / payments
const (
	BOOKING_NOT_FOUND         = "Booking not found."
	BOOKING_CREATED           = "Booking created successfully."
	BOOKING_CANCELLED_OK      = "Booking cancelled successfully."
	BOOKING_ALREADY_CANCELLED = "Booking is already cancelled."
	DUPLICATE_ACTIVE_BOOKING  = "You already have an active booking for this ticket."
	PAYMENT_NOT_FOUND         = "Payment not found."
	PAYMENT_FOR_CANCELLED     = "Cannot pay for a cancelled booking."
	PAYMENT_ALREADY_EXISTS    = "Payment already exists for this booking."
	PAYMENT_SUCCESS_MSG       = "Payment processed successfully. Booking confirmed."
	PAYMENT_FAILED_MSG        = "Payment failed. Please try again."
	REFUND_SUCCESS_MSG        = "Refund processed successfully."
)

// Users
const (
	USER_NOT_FOUND = "User not found."
	USER_UPDATED   = "User updated."
	USER_DELETED   = "User deleted."
)
