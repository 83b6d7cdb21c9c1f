package seekerRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/YCK-art/knowly/database"
	"github.com/YCK-art/knowly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSeekerRepo implements SeekerRepository using MongoDB.
type MongoSeekerRepo struct {
	coll *mongo.Collection
}

// NewMongoSeekerRepo creates a new instance of SeekerRepository using MongoDB.
func NewMongoSeekerRepo() SeekerRepository {
	coll := database.MongoClient.Database("knowly").Collection("seekers")
	repo := &MongoSeekerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSeekerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new seeker document.
func (r *MongoSeekerRepo) Create(seeker *models.Seeker) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	seeker.CreatedAt = now
	seeker.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, seeker); err != nil {
		return fmt.Errorf("failed to create seeker: %w", err)
	}
	return nil
}

// Update replaces an existing seeker document.
func (r *MongoSeekerRepo) Update(seeker *models.Seeker) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	seeker.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": seeker.ID}, bson.M{"$set": seeker})
	if err != nil {
		return fmt.Errorf("failed to update seeker with id %s: %w", seeker.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("seeker with id %s not found", seeker.ID)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update.
func (r *MongoSeekerRepo) UpdateSetDocument(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update seeker with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("seeker with id %s not found", id)
	}
	return nil
}

// Delete removes a seeker document by its ID.
func (r *MongoSeekerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete seeker with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("seeker with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a seeker by its unique ID.
func (r *MongoSeekerRepo) GetByID(id string) (*models.Seeker, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var seeker models.Seeker
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&seeker); err != nil {
		return nil, fmt.Errorf("failed to fetch seeker with id %s: %w", id, err)
	}
	return &seeker, nil
}

// GetByEmail retrieves a seeker by email, returning nil when none exists.
func (r *MongoSeekerRepo) GetByEmail(email string) (*models.Seeker, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var seeker models.Seeker
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&seeker); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch seeker with email %s: %w", email, err)
	}
	return &seeker, nil
}

// AddFavorite adds an advisor to the seeker's favorites, once.
func (r *MongoSeekerRepo) AddFavorite(id, advisorID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"favorites": advisorID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to add favorite for seeker %s: %w", id, err)
	}
	return nil
}

// RemoveFavorite removes an advisor from the seeker's favorites.
func (r *MongoSeekerRepo) RemoveFavorite(id, advisorID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"favorites": advisorID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to remove favorite for seeker %s: %w", id, err)
	}
	return nil
}
