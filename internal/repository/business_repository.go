package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront-api/internal/models"
)

// BusinessRepository manages the singleton business profile. The collection
// holds at most one document; Upsert re-reads current state before deciding
// whether to insert or replace, so repeated writes never produce a second
// record.
type BusinessRepository struct {
	collection *mongo.Collection
}

func NewBusinessRepository(collection *mongo.Collection) *BusinessRepository {
	return &BusinessRepository{collection: collection}
}

// Find returns the profile, or nil without error when none is configured.
func (r *BusinessRepository) Find(ctx context.Context) (*models.StoredBusiness, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var business models.StoredBusiness
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&business)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding business: %w", err)
	}
	return &business, nil
}

// Upsert creates the profile if absent, otherwise replaces the fields of the
// existing document in place. It reports whether a new document was created.
func (r *BusinessRepository) Upsert(ctx context.Context, business *models.Business) (created bool, err error) {
	existing, err := r.Find(ctx)
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if existing == nil {
		if _, err := r.collection.InsertOne(ctx, business); err != nil {
			return false, fmt.Errorf("inserting business: %w", err)
		}
		return true, nil
	}

	// Whole-document replace: optional fields omitted from the payload
	// must not survive from the previous profile.
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": existing.ID}, business)
	if err != nil {
		return false, fmt.Errorf("updating business: %w", err)
	}
	return false, nil
}
