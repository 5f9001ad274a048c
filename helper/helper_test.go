package helper

import (
	"fmt"
	"testing"
	"time"

	"ticket_marketplace/constants"
	"ticket_marketplace/database"
	"ticket_marketplace/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *model.User {
	t.Helper()
	user := model.User{
		Name:     "Test User",
		Email:    email,
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedTicket(t *testing.T, db *gorm.DB, price decimal.Decimal, quantity int) *model.Ticket {
	t.Helper()
	organizer := seedUser(t, db, fmt.Sprintf("organizer-%s@test.local", t.Name()), constants.ROLE_ORGANIZER)
	event := model.Event{
		Title:     "Test Event",
		Slug:      fmt.Sprintf("test-event-%s", t.Name()),
		Date:      time.Now().AddDate(0, 1, 0),
		Location:  "Test Hall",
		CreatedBy: organizer.ID,
	}
	require.NoError(t, db.Create(&event).Error)
	ticket := model.Ticket{
		EventId:  event.ID,
		Type:     constants.TICKET_STANDARD,
		Price:    price,
		Quantity: quantity,
	}
	require.NoError(t, db.Create(&ticket).Error)
	return &ticket
}
