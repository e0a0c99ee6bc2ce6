package models

import (
	"time"

	"github.com/google/uuid"
)

// EventInquiry represents an event inquiry submitted through the contact form.
// Optional fields are pointers so that an absent value serializes as JSON null
// rather than an empty string.
type EventInquiry struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	EventType   string    `json:"eventType"`
	EventDate   *string   `json:"eventDate"`
	GuestCount  *int      `json:"guestCount"`
	BudgetRange *string   `json:"budgetRange"`
	Message     *string   `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EventInquiryInput carries the fields accepted when creating an inquiry.
// The store normalizes unsupplied optionals to nil and stamps id and createdAt.
type EventInquiryInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       *string
	EventType   string
	EventDate   *string
	GuestCount  *int
	BudgetRange *string
	Message     *string
}
