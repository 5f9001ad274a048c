package database

import (
	"log"
	"time"

	"ticket_marketplace/constants"
	"ticket_marketplace/model"
	"ticket_marketplace/utils"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	hashed := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	users := []model.User{
		{Name: "Administrator", Email: "admin@ticketplace.local", Password: hashed, Role: constants.ROLE_ADMIN},
		{Name: "Demo Organizer", Email: "organizer@ticketplace.local", Password: hashed, Role: constants.ROLE_ORGANIZER},
		{Name: "Demo Customer", Email: "customer@ticketplace.local", Password: hashed, Role: constants.ROLE_CUSTOMER},
	}

	for i := range users {
		if err := db.Where(model.User{Email: users[i].Email}).FirstOrCreate(&users[i]).Error; err != nil {
			log.Println("failed to seed user:", users[i].Email, "error:", err)
		}
	}

	var organizer model.User
	if err := db.Where(model.User{Email: "organizer@ticketplace.local"}).First(&organizer).Error; err != nil {
		return
	}

	var count int64
	db.Model(&model.Event{}).Count(&count)
	if count > 0 {
		return
	}

	events := []struct {
		event   model.Event
		tickets []model.Ticket
	}{
		{
			event: model.Event{
				Title:       "Summer Music Festival",
				Description: utils.Ptr("Three days of live music across four open-air stages."),
				Date:        time.Now().AddDate(0, 2, 0),
				Location:    "Central Park Arena",
			},
			tickets: []model.Ticket{
				{Type: constants.TICKET_VIP, Price: decimal.NewFromInt(150), Quantity: 50},
				{Type: constants.TICKET_STANDARD, Price: decimal.NewFromInt(75), Quantity: 200},
				{Type: constants.TICKET_ECONOMY, Price: decimal.NewFromInt(30), Quantity: 500},
			},
		},
		{
			event: model.Event{
				Title:       "Tech Conference 2026",
				Description: utils.Ptr("Two tracks of talks and workshops for working engineers."),
				Date:        time.Now().AddDate(0, 3, 15),
				Location:    "Convention Center Hall B",
			},
			tickets: []model.Ticket{
				{Type: constants.TICKET_VIP, Price: decimal.NewFromInt(300), Quantity: 30},
				{Type: constants.TICKET_STANDARD, Price: decimal.NewFromInt(120), Quantity: 300},
			},
		},
	}

	for _, e := range events {
		e.event.CreatedBy = organizer.ID
		e.event.Slug = slug.Make(e.event.Title)
		if err := db.Create(&e.event).Error; err != nil {
			log.Println("failed to seed event:", e.event.Title, "error:", err)
			continue
		}
		for i := range e.tickets {
			e.tickets[i].EventId = e.event.ID
		}
		if err := db.Create(&e.tickets).Error; err != nil {
			log.Println("failed to seed tickets for event:", e.event.Title, "error:", err)
		}
	}
}
