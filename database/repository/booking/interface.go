package bookingRepo

import (
	"time"

	"github.com/YCK-art/knowly/models"
)

// BookingRepository defines data operations for booking documents.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	ListByAdvisor(advisorID string, from time.Time) ([]models.Booking, error)
	ListBySeeker(seekerID string) ([]models.Booking, error)
	UpdateStatus(id, status string) error
	ExistsOverlapping(advisorID string, start, end time.Time) (bool, error)
}
