package advisorRepo

import (
	"fmt"
	"time"

	"github.com/YCK-art/knowly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new advisor document.
func (r *MongoAdvisorRepo) Create(advisor *models.Advisor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	advisor.CreatedAt = now
	advisor.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, advisor)
	if err != nil {
		return fmt.Errorf("failed to create advisor: %w", err)
	}
	return nil
}

// Update replaces an existing advisor document.
func (r *MongoAdvisorRepo) Update(advisor *models.Advisor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	advisor.UpdatedAt = time.Now()
	filter := bson.M{"id": advisor.ID}
	update := bson.M{"$set": advisor}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update advisor with id %s: %w", advisor.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("advisor with id %s not found", advisor.ID)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update, leaving all other fields
// untouched.
func (r *MongoAdvisorRepo) UpdateSetDocument(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update advisor with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("advisor with id %s not found", id)
	}
	return nil
}

// Delete removes an advisor document by its ID.
func (r *MongoAdvisorRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete advisor with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("advisor with id %s not found", id)
	}
	return nil
}
