package model

import "time"

type Event struct {
	DTO
	Title       string    `gorm:"not null" validate:"required,max=255" json:"title"`
	Slug        string    `gorm:"uniqueIndex;size:255" json:"slug"`
	Description *string   `json:"description,omitempty"`
	Date        time.Time `gorm:"not null;index" validate:"required" json:"date"`
	Location    string    `gorm:"not null" validate:"required,max=255" json:"location"`
	CreatedBy   uint      `gorm:"not null;index" json:"createdBy"`

	Organizer User     `gorm:"foreignKey:CreatedBy" json:"organizer,omitempty"`
	Tickets   []Ticket `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE" json:"tickets,omitempty"`
}

type CreateEventInput struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"required,max=255"`
}

type UpdateEventInput struct {
	Title       *string    `json:"title" validate:"omitempty,max=255"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location" validate:"omitempty,max=255"`
}

type FilterEventInput struct {
	Pagination
	Search   string `query:"search"`
	Location string `query:"location"`
	DateFrom string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
}
