package models

import (
	"time"

	"github.com/google/uuid"
)

// Pricing is a plan shown on the pricing page
type Pricing struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	PriceRange   string    `json:"priceRange"`
	Description  string    `json:"description"`
	Features     []string  `json:"features"`
	IsVisible    bool      `json:"isVisible"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
