package advisorRepo

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

// MongoAdvisorRepo implements AdvisorRepository using MongoDB.
type MongoAdvisorRepo struct {
	coll *mongo.Collection
}

// NewMongoAdvisorRepo creates a new instance of AdvisorRepository using MongoDB.
func NewMongoAdvisorRepo() AdvisorRepository {
	coll := database.MongoClient.Database("knowly").Collection("advisors")
	repo := &MongoAdvisorRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoAdvisorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "categories", Value: 1}}},
		{Keys: bson.D{{Key: "languages.name", Value: 1}}},
		{Keys: bson.D{{Key: "pricing.unitPrice", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByIDWithProjection retrieves an advisor by its unique ID using a projection.
// Pass nil for projection to retrieve the full document.
func (r *MongoAdvisorRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Advisor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var advisor models.Advisor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&advisor); err != nil {
		return nil, fmt.Errorf("failed to fetch advisor with id %s: %w", id, err)
	}
	return &advisor, nil
}

// GetByID retrieves an advisor by its unique ID (full document).
func (r *MongoAdvisorRepo) GetByID(id string) (*models.Advisor, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByEmail retrieves an advisor by email, returning nil when none exists.
func (r *MongoAdvisorRepo) GetByEmail(email string) (*models.Advisor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var advisor models.Advisor
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&advisor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch advisor with email %s: %w", email, err)
	}
	return &advisor, nil
}
