package model

import (
	"time"
)

// User is a stored account record. The password is kept and returned
// verbatim; this service has no authentication layer and the legacy wire
// contract exposes the field as-is.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Email     string    `json:"email"`
	Birthday  string    `json:"birthday"` // ISO date, YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
