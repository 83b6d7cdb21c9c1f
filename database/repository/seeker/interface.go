package seekerRepo

import (
	"github.com/YCK-art/knowly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SeekerRepository defines data operations for seeker documents.
type SeekerRepository interface {
	Create(seeker *models.Seeker) error
	Update(seeker *models.Seeker) error
	UpdateSetDocument(id string, fields bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.Seeker, error)
	GetByEmail(email string) (*models.Seeker, error)
	AddFavorite(id, advisorID string) error
	RemoveFavorite(id, advisorID string) error
}
