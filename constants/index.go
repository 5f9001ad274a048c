package constants

// Roles
const (
	ROLE_ADMIN     = "admin"
	ROLE_ORGANIZER = "organizer"
	ROLE_CUSTOMER  = "customer"
)

var Roles = []string{ROLE_ADMIN, ROLE_ORGANIZER, ROLE_CUSTOMER}

// Ticket types
const (
	TICKET_VIP      = "VIP"
	TICKET_STANDARD = "Standard"
	TICKET_ECONOMY  = "Economy"
)

var TicketTypes = []string{TICKET_VIP, TICKET_STANDARD, TICKET_ECONOMY}

// Booking statuses
const (
	BOOKING_PENDING   = "pending"
	BOOKING_CONFIRMED = "confirmed"
	BOOKING_CANCELLED = "cancelled"
)

// Payment statuses
const (
	PAYMENT_SUCCESS  = "success"
	PAYMENT_FAILED   = "failed"
	PAYMENT_REFUNDED = "refunded"
)

// Pagination
const (
	DEFAULT_PER_PAGE = 15
	MAX_PER_PAGE     = 100
)
