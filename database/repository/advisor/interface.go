package advisorRepo

import (
	"github.com/YCK-art/knowly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AdvisorRepository defines data operations for advisor documents.
type AdvisorRepository interface {
	Create(advisor *models.Advisor) error
	Update(advisor *models.Advisor) error
	UpdateSetDocument(id string, fields bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.Advisor, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.Advisor, error)
	GetByEmail(email string) (*models.Advisor, error)
	Search(filter models.AdvisorFilter) ([]models.Advisor, error)
	SetAvailability(id string, av models.Availability) error
	SetPricing(id string, pricing models.Pricing) error
}
