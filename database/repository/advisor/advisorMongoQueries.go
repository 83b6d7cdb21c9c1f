package advisorRepo

import (
	"fmt"
	"time"

	"github.com/YCK-art/knowly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultSearchLimit = 50

// SetAvailability merges a new schedule into the advisor document. Only the
// three availability keys are touched, so profile edits and availability
// edits never race each other.
func (r *MongoAdvisorRepo) SetAvailability(id string, av models.Availability) error {
	return r.UpdateSetDocument(id, bson.M{
		"availableTime":       av.Time,
		"availableTimezone":   av.Timezone,
		"availableExceptions": av.Exceptions,
	})
}

// SetPricing replaces the advisor's pricing block.
func (r *MongoAdvisorRepo) SetPricing(id string, pricing models.Pricing) error {
	return r.UpdateSetDocument(id, bson.M{"pricing": pricing})
}

// Search runs the explore query: free-text on name and headline, exact
// category/language/country matches, and a unit-price band.
func (r *MongoAdvisorRepo) Search(filter models.AdvisorFilter) ([]models.Advisor, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Query != "" {
		pattern := primitive.Regex{Pattern: filter.Query, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"firstName": pattern},
			bson.M{"lastName": pattern},
			bson.M{"headline": pattern},
		}
	}
	if len(filter.Categories) > 0 {
		query["categories"] = bson.M{"$in": filter.Categories}
	}
	if len(filter.Languages) > 0 {
		query["languages.name"] = bson.M{"$in": filter.Languages}
	}
	if filter.Country != "" {
		query["country"] = filter.Country
	}
	price := bson.M{}
	if filter.MinPrice > 0 {
		price["$gte"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		price["$lte"] = filter.MaxPrice
	}
	if len(price) > 0 {
		query["pricing.unitPrice"] = price
	}

	limit := int64(filter.Limit)
	if limit <= 0 || limit > defaultSearchLimit {
		limit = defaultSearchLimit
	}
	opts := options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "sessionCount", Value: -1}})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search advisors: %w", err)
	}
	defer cursor.Close(ctx)

	var advisors []models.Advisor
	for cursor.Next(ctx) {
		var a models.Advisor
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode advisor: %w", err)
		}
		advisors = append(advisors, a)
	}
	return advisors, nil
}
