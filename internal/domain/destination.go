// Package domain contains the core data types for the K2K World travel API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Destination is a sellable tour package in the public catalog.
// It is created and edited only through the admin surface (or the seed
// endpoint) and read by the public site.
type Destination struct {
	ID uuid.UUID `json:"id"`

	// Name is the display title, e.g. "Kashmir - Paradise on Earth".
	Name string `json:"name"`

	// Slug is the URL-safe unique identifier used in public URLs
	// (lowercase, hyphenated, e.g. "kashmir"). Unique across the catalog.
	Slug string `json:"slug"`

	// Price is in the smallest currency unit and always positive.
	Price int `json:"price"`

	// Duration is a free-text label, e.g. "6 Days / 5 Nights".
	Duration string `json:"duration"`

	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	Highlights       []string `json:"highlights"`

	// Images holds at least one image URL.
	Images []string `json:"images"`

	Itinerary  []ItineraryDay `json:"itinerary"`
	Inclusions []string       `json:"inclusions"`
	Exclusions []string       `json:"exclusions"`

	// Featured marks the destination for the featured strip on the homepage.
	Featured bool `json:"featured"`

	// ShowOnHomepage defaults to true when absent from the create payload.
	ShowOnHomepage bool `json:"showOnHomepage"`

	// Rating is 0.0–5.0.
	Rating float64 `json:"rating"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ItineraryDay is one day of a destination's itinerary.
// Day numbers start at 1 and are conventionally contiguous in display order,
// but contiguity is not enforced.
type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DestinationPatch is an explicit partial update for a Destination.
// Nil fields are left untouched; the repo builds the UPDATE from the
// non-nil fields only. updated_at is always refreshed.
type DestinationPatch struct {
	Name             *string
	Slug             *string
	Price            *int
	Duration         *string
	ShortDescription *string
	Description      *string
	Highlights       *[]string
	Images           *[]string
	Itinerary        *[]ItineraryDay
	Inclusions       *[]string
	Exclusions       *[]string
	Featured         *bool
	ShowOnHomepage   *bool
	Rating           *float64
}

// IsZero reports whether the patch contains no changes at all.
func (p DestinationPatch) IsZero() bool {
	return p.Name == nil && p.Slug == nil && p.Price == nil && p.Duration == nil &&
		p.ShortDescription == nil && p.Description == nil && p.Highlights == nil &&
		p.Images == nil && p.Itinerary == nil && p.Inclusions == nil &&
		p.Exclusions == nil && p.Featured == nil && p.ShowOnHomepage == nil &&
		p.Rating == nil
}
