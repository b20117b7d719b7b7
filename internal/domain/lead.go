package domain

import (
	"time"

	"github.com/google/uuid"
)

// CustomRequest is a structured trip-planning lead submitted through the
// public custom-trip form. It is created with StatusNew, mutated only by
// admin status changes, and never deleted.
type CustomRequest struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`

	// Destination is free text, not a reference into the catalog: a visitor
	// may ask for a trip the agency doesn't currently sell.
	Destination string `json:"destination"`

	TravelDates TravelDates `json:"travelDates"`

	// GroupSize is the number of travellers, at least 1.
	GroupSize int `json:"groupSize"`

	Budget      string `json:"budget"`
	Preferences string `json:"preferences,omitempty"`
	Message     string `json:"message"`

	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TravelDates is the requested travel window. Both ends are free-text date
// strings as typed by the visitor; no ordering between them is enforced.
type TravelDates struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contact is an unstructured inquiry from the contact form.
// Same lifecycle as CustomRequest: created with StatusNew, status-mutated by
// admins, never deleted.
type Contact struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`

	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
