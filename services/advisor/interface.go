package advisor

import (
	"context"

	"github.com/YCK-art/knowly/models"
)

// AdvisorService manages advisor profiles and their schedule configuration.
type AdvisorService interface {
	Register(ctx context.Context, advisor models.Advisor) (*models.Advisor, error)
	GetByID(ctx context.Context, id string) (*models.Advisor, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*models.Advisor, error)
	Delete(ctx context.Context, id string) error

	SetAvailability(ctx context.Context, id string, av models.Availability) error
	GetAvailability(ctx context.Context, id string) (*models.Availability, error)
	SetPricing(ctx context.Context, id string, pricing models.Pricing) error

	ListSlots(ctx context.Context, req SlotQuery) ([]models.Slot, error)
	Explore(ctx context.Context, filter models.AdvisorFilter) ([]models.Advisor, error)
	ListBookings(ctx context.Context, advisorID string) ([]models.Booking, error)
}

// ProfilePatch carries the editable profile sections. Nil fields are left
// unchanged.
type ProfilePatch struct {
	FirstName  *string             `json:"firstName,omitempty"`
	LastName   *string             `json:"lastName,omitempty"`
	Headline   *string             `json:"headline,omitempty"`
	Bio        *string             `json:"bio,omitempty"`
	PhotoURL   *string             `json:"photoUrl,omitempty"`
	Country    *string             `json:"country,omitempty"`
	Jobs       *[]models.Job       `json:"jobs,omitempty"`
	Educations *[]models.Education `json:"educations,omitempty"`
	Languages  *[]models.Language  `json:"languages,omitempty"`
	Categories *[]string           `json:"categories,omitempty"`
	Interests  *[]string           `json:"interests,omitempty"`
}

// SlotQuery asks for an advisor's open slots of one duration, rendered for
// a viewer.
type SlotQuery struct {
	AdvisorID       string
	DurationMinutes int
	ViewerZone      string
	WindowDays      int
}
