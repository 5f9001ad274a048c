package middleware

import (
	"testing"

	"ticket_marketplace/constants"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityTable(t *testing.T) {
	tests := []struct {
		role string
		op   string
		want bool
	}{
		{constants.ROLE_ADMIN, OpEventsManage, true},
		{constants.ROLE_ADMIN, OpTicketsManage, true},
		{constants.ROLE_ADMIN, OpBookingsViewAll, true},
		{constants.ROLE_ADMIN, OpPaymentsViewAll, true},
		{constants.ROLE_ADMIN, OpPaymentsRefund, true},
		{constants.ROLE_ADMIN, OpUsersManage, true},
		{constants.ROLE_ADMIN, OpBookingsCreate, false},
		{constants.ROLE_ADMIN, OpPaymentsSettle, false},

		{constants.ROLE_ORGANIZER, OpEventsManage, true},
		{constants.ROLE_ORGANIZER, OpTicketsManage, true},
		{constants.ROLE_ORGANIZER, OpBookingsViewOwnEvents, true},
		{constants.ROLE_ORGANIZER, OpBookingsCreate, false},
		{constants.ROLE_ORGANIZER, OpPaymentsSettle, false},
		{constants.ROLE_ORGANIZER, OpPaymentsRefund, false},
		{constants.ROLE_ORGANIZER, OpUsersManage, false},

		{constants.ROLE_CUSTOMER, OpBookingsCreate, true},
		{constants.ROLE_CUSTOMER, OpPaymentsSettle, true},
		{constants.ROLE_CUSTOMER, OpEventsManage, false},
		{constants.ROLE_CUSTOMER, OpTicketsManage, false},
		{constants.ROLE_CUSTOMER, OpBookingsViewAll, false},
		{constants.ROLE_CUSTOMER, OpPaymentsRefund, false},
		{constants.ROLE_CUSTOMER, OpUsersManage, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Can(tt.role, tt.op), "role=%s op=%s", tt.role, tt.op)
	}
}

func TestCanUnknownRole(t *testing.T) {
	assert.False(t, Can("guest", OpBookingsCreate))
	assert.False(t, Can("", OpEventsManage))
}
