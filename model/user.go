package model

type User struct {
	DTO
	Name     string  `gorm:"not null" validate:"required,max=255" json:"name"`
	Email    string  `gorm:"uniqueIndex;not null" validate:"required,email,max=255" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	Phone    *string `gorm:"size:20" json:"phone,omitempty"`
	Role     string  `gorm:"not null;default:'customer'" json:"role"`

	Events        []Event        `gorm:"foreignKey:CreatedBy" json:"-"`
	Bookings      []Booking      `gorm:"foreignKey:UserId" json:"-"`
	Payments      []Payment      `gorm:"foreignKey:UserId" json:"-"`
	Notifications []Notification `gorm:"foreignKey:UserId" json:"-"`
}

type RegisterInput struct {
	Name                 string  `json:"name" validate:"required,max=255"`
	Email                string  `json:"email" validate:"required,email,max=255"`
	Password             string  `json:"password" validate:"required,min=8"`
	PasswordConfirmation string  `json:"passwordConfirmation" validate:"required,eqfield=Password"`
	Phone                *string `json:"phone" validate:"omitempty,max=20"`
	Role                 string  `json:"role" validate:"omitempty,oneof=customer organizer"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserInput struct {
	Name  *string `json:"name" validate:"omitempty,max=255"`
	Phone *string `json:"phone" validate:"omitempty,max=20"`
	Role  *string `json:"role" validate:"omitempty,oneof=admin organizer customer"`
}

type FilterUserInput struct {
	Pagination
	Role      *string `query:"role" validate:"omitempty,oneof=admin organizer customer"`
	SearchKey string  `query:"search"`
}
