package models

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioItem represents a showcase record rendered in the gallery.
// Category is free-form; the client filters on it (wedding, corporate,
// social, ...), the store does not enforce an enum.
type PortfolioItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description *string   `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	GuestCount  *int      `json:"guestCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PortfolioItemInput carries the fields accepted when creating a portfolio item.
type PortfolioItemInput struct {
	Title       string
	Category    string
	Description *string
	ImageURL    string
	GuestCount  *int
}
