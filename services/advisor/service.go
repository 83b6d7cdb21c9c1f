package advisor

import (
	"context"
	"fmt"
	"time"

	advisorRepo "github.com/YCK-art/knowly/database/repository/advisor"
	bookingRepo "github.com/YCK-art/knowly/database/repository/booking"
	"github.com/YCK-art/knowly/models"
	"github.com/YCK-art/knowly/services/schedule"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultAdvisorService is the production AdvisorService.
type DefaultAdvisorService struct {
	Repo     advisorRepo.AdvisorRepository
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// Register creates an advisor profile. Schedule and pricing start empty and
// are configured separately before the advisor becomes bookable.
func (s *DefaultAdvisorService) Register(ctx context.Context, advisor models.Advisor) (*models.Advisor, error) {
	if advisor.Email == "" {
		return nil, fmt.Errorf("advisor email is required")
	}
	existing, err := s.Repo.GetByEmail(advisor.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("advisor with email %s already exists", advisor.Email)
	}

	if advisor.ID == "" {
		advisor.ID = uuid.New().String()
	}
	if err := s.Repo.Create(&advisor); err != nil {
		return nil, err
	}
	s.Logger.Info("advisor registered", zap.String("advisorID", advisor.ID))
	return &advisor, nil
}

// GetByID returns the full advisor profile.
func (s *DefaultAdvisorService) GetByID(ctx context.Context, id string) (*models.Advisor, error) {
	return s.Repo.GetByID(id)
}

// UpdateProfile applies a partial profile edit via a $set so untouched
// sections keep their stored values.
func (s *DefaultAdvisorService) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*models.Advisor, error) {
	fields := bson.M{}
	if patch.FirstName != nil {
		fields["firstName"] = *patch.FirstName
	}
	if patch.LastName != nil {
		fields["lastName"] = *patch.LastName
	}
	if patch.Headline != nil {
		fields["headline"] = *patch.Headline
	}
	if patch.Bio != nil {
		fields["bio"] = *patch.Bio
	}
	if patch.PhotoURL != nil {
		fields["photoUrl"] = *patch.PhotoURL
	}
	if patch.Country != nil {
		fields["country"] = *patch.Country
	}
	if patch.Jobs != nil {
		fields["jobs"] = *patch.Jobs
	}
	if patch.Educations != nil {
		fields["educations"] = *patch.Educations
	}
	if patch.Languages != nil {
		fields["languages"] = *patch.Languages
	}
	if patch.Categories != nil {
		fields["categories"] = *patch.Categories
	}
	if patch.Interests != nil {
		fields["interests"] = *patch.Interests
	}
	if len(fields) == 0 {
		return s.Repo.GetByID(id)
	}

	if err := s.Repo.UpdateSetDocument(id, fields); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// Delete removes the advisor profile.
func (s *DefaultAdvisorService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(id)
}

// SetAvailability validates and saves the advisor's weekly hours. The
// repository merges only the availability keys, so concurrent profile edits
// are unaffected.
func (s *DefaultAdvisorService) SetAvailability(ctx context.Context, id string, av models.Availability) error {
	if err := schedule.ValidateAvailability(av); err != nil {
		return err
	}
	if err := s.Repo.SetAvailability(id, av); err != nil {
		return err
	}
	s.Logger.Info("advisor availability updated", zap.String("advisorID", id), zap.String("timezone", av.Timezone))
	return nil
}

// GetAvailability returns the advisor's schedule configuration.
func (s *DefaultAdvisorService) GetAvailability(ctx context.Context, id string) (*models.Availability, error) {
	advisor, err := s.Repo.GetByIDWithProjection(id, bson.M{
		"id": 1, "availableTime": 1, "availableTimezone": 1, "availableExceptions": 1,
	})
	if err != nil {
		return nil, err
	}
	return &advisor.Availability, nil
}

// SetPricing validates and saves the advisor's rate configuration.
func (s *DefaultAdvisorService) SetPricing(ctx context.Context, id string, pricing models.Pricing) error {
	if err := schedule.ValidatePricing(pricing); err != nil {
		return err
	}
	return s.Repo.SetPricing(id, pricing)
}

// Explore runs a filtered advisor search.
func (s *DefaultAdvisorService) Explore(ctx context.Context, filter models.AdvisorFilter) ([]models.Advisor, error) {
	return s.Repo.Search(filter)
}

// ListBookings returns the advisor's upcoming confirmed sessions.
func (s *DefaultAdvisorService) ListBookings(ctx context.Context, advisorID string) ([]models.Booking, error) {
	return s.Bookings.ListByAdvisor(advisorID, time.Now())
}
