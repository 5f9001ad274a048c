package helper

import (
	"testing"

	"ticket_marketplace/constants"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Availability must always equal capacity minus the summed quantity of
// pending and confirmed bookings, across the whole lifecycle.
func TestAvailabilityLedger(t *testing.T) {
	db := testDB(t)
	ticket := seedTicket(t, db, decimal.NewFromInt(30), 100)

	check := func(want int) {
		t.Helper()
		got, err := Availability(db, ticket.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	check(100)

	alice := seedUser(t, db, "alice@test.local", constants.ROLE_CUSTOMER)
	bob := seedUser(t, db, "bob@test.local", constants.ROLE_CUSTOMER)
	carol := seedUser(t, db, "carol@test.local", constants.ROLE_CUSTOMER)

	aliceBooking, svcErr := CreateBooking(db, alice.ID, ticket.ID, 10)
	require.Nil(t, svcErr)
	check(90)

	bobBooking, svcErr := CreateBooking(db, bob.ID, ticket.ID, 25)
	require.Nil(t, svcErr)
	check(65)

	// Confirming a booking through payment does not change the sum;
	// pending and confirmed both count as active.
	_, svcErr = ProcessPayment(db, &stubGateway{approve: true}, nil, bobBooking.ID, bob.ID)
	require.Nil(t, svcErr)
	check(65)

	require.Nil(t, CancelBooking(db, aliceBooking))
	check(75)

	_, svcErr = CreateBooking(db, carol.ID, ticket.ID, 75)
	require.Nil(t, svcErr)
	check(0)

	_, svcErr = CreateBooking(db, alice.ID, ticket.ID, 1)
	require.NotNil(t, svcErr)
	assert.Equal(t, "Only 0 ticket(s) available.", svcErr.Message)
	check(0)
}

func TestAvailabilityUnknownTicket(t *testing.T) {
	db := testDB(t)
	_, err := Availability(db, 999)
	assert.Error(t, err)
}
