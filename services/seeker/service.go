package seeker

import (
	"context"
	"fmt"

	bookingRepo "github.com/YCK-art/knowly/database/repository/booking"
	seekerRepo "github.com/YCK-art/knowly/database/repository/seeker"
	"github.com/YCK-art/knowly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// SeekerService manages seeker accounts, onboarding and favorites.
type SeekerService interface {
	Register(ctx context.Context, seeker models.Seeker) (*models.Seeker, error)
	GetByID(ctx context.Context, id string) (*models.Seeker, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*models.Seeker, error)
	SetRole(ctx context.Context, id, role string) error
	AddFavorite(ctx context.Context, id, advisorID string) error
	RemoveFavorite(ctx context.Context, id, advisorID string) error
	ListBookings(ctx context.Context, id string) ([]models.Booking, error)
}

// ProfilePatch carries editable seeker fields; nil means unchanged.
type ProfilePatch struct {
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	PhotoURL  *string   `json:"photoUrl,omitempty"`
	Country   *string   `json:"country,omitempty"`
	Timezone  *string   `json:"timezone,omitempty"`
	Interests *[]string `json:"interests,omitempty"`
	FCMToken  *string   `json:"fcmToken,omitempty"`
}

// DefaultSeekerService is the production SeekerService.
type DefaultSeekerService struct {
	Repo     seekerRepo.SeekerRepository
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// Register creates a seeker account with the default role.
func (s *DefaultSeekerService) Register(ctx context.Context, seeker models.Seeker) (*models.Seeker, error) {
	if seeker.Email == "" {
		return nil, fmt.Errorf("seeker email is required")
	}
	existing, err := s.Repo.GetByEmail(seeker.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("seeker with email %s already exists", seeker.Email)
	}

	if seeker.ID == "" {
		seeker.ID = uuid.New().String()
	}
	if seeker.Role == "" {
		seeker.Role = models.RoleSeeker
	}
	if err := s.Repo.Create(&seeker); err != nil {
		return nil, err
	}
	s.Logger.Info("seeker registered", zap.String("seekerID", seeker.ID))
	return &seeker, nil
}

// GetByID returns the seeker account.
func (s *DefaultSeekerService) GetByID(ctx context.Context, id string) (*models.Seeker, error) {
	return s.Repo.GetByID(id)
}

// UpdateProfile applies a partial edit.
func (s *DefaultSeekerService) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*models.Seeker, error) {
	fields := bson.M{}
	if patch.FirstName != nil {
		fields["firstName"] = *patch.FirstName
	}
	if patch.LastName != nil {
		fields["lastName"] = *patch.LastName
	}
	if patch.PhotoURL != nil {
		fields["photoUrl"] = *patch.PhotoURL
	}
	if patch.Country != nil {
		fields["country"] = *patch.Country
	}
	if patch.Timezone != nil {
		fields["timezone"] = *patch.Timezone
	}
	if patch.Interests != nil {
		fields["interests"] = *patch.Interests
	}
	if patch.FCMToken != nil {
		fields["fcmToken"] = *patch.FCMToken
	}
	if len(fields) == 0 {
		return s.Repo.GetByID(id)
	}

	if err := s.Repo.UpdateSetDocument(id, fields); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// SetRole records the onboarding choice.
func (s *DefaultSeekerService) SetRole(ctx context.Context, id, role string) error {
	if role != models.RoleSeeker && role != models.RoleAdvisor {
		return fmt.Errorf("unknown role %q", role)
	}
	return s.Repo.UpdateSetDocument(id, bson.M{"role": role})
}

// AddFavorite bookmarks an advisor.
func (s *DefaultSeekerService) AddFavorite(ctx context.Context, id, advisorID string) error {
	return s.Repo.AddFavorite(id, advisorID)
}

// RemoveFavorite removes a bookmark.
func (s *DefaultSeekerService) RemoveFavorite(ctx context.Context, id, advisorID string) error {
	return s.Repo.RemoveFavorite(id, advisorID)
}

// ListBookings returns the seeker's booking history, newest first.
func (s *DefaultSeekerService) ListBookings(ctx context.Context, id string) ([]models.Booking, error) {
	return s.Bookings.ListBySeeker(id)
}
