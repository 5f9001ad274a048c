package model

import (
	"time"

	"ticket_marketplace/constants"
)

type TokenData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type TokenClaim struct {
	UserId uint   `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	PerPage    int   `json:"perPage"`
	Page       int   `json:"page"`
	TotalCount int64 `json:"totalCount"`
}

type Pagination struct {
	PerPage *int `json:"perPage" query:"per_page" validate:"omitempty,gte=1"`
	Page    *int `json:"page" query:"page" validate:"omitempty,gte=1"`
}

// Normalize resolves the page window: defaults when unset, per_page capped
// at the maximum.
func (p Pagination) Normalize() (perPage, page int) {
	perPage = constants.DEFAULT_PER_PAGE
	if p.PerPage != nil {
		perPage = *p.PerPage
	}
	if perPage > constants.MAX_PER_PAGE {
		perPage = constants.MAX_PER_PAGE
	}
	page = 1
	if p.Page != nil {
		page = *p.Page
	}
	return perPage, page
}
