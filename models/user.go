package models

import "github.com/google/uuid"

// User represents a site user entity. Users are created by the
// create-admin-user tool; no public endpoint exposes them.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Password string    `json:"password"`
}

// UserInput carries the fields accepted when creating a user.
type UserInput struct {
	Username string
	Password string
}
