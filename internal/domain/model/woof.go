package model

import (
	"time"
)

// Woof is a short anonymous post. Name is a free-form author label, not a
// reference to a User. Created is assigned by the server at insertion and
// never changes.
type Woof struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Content string    `json:"content"`
	Created time.Time `json:"created"`
}
