package repository

import (
	"context"
	"time"

	"github.com/guttosm/container-order-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DestinationRoute is one container configuration a destination accepts.
type DestinationRoute struct {
	TransportMode model.TransportMode `bson:"transport_mode" json:"transport_mode"`
	Size          string              `bson:"size" json:"size"`
	Refrigerated  bool                `bson:"refrigerated" json:"refrigerated"`
}

// DestinationDocument is an export destination and the container configurations
// it can receive.
type DestinationDocument struct {
	ID        string             `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Country   string             `bson:"country,omitempty" json:"country,omitempty"`
	Active    bool               `bson:"active" json:"active"`
	Routes    []DestinationRoute `bson:"routes" json:"routes"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// DestinationsRepository provides methods for destination operations.
type DestinationsRepository struct {
	collection *mongo.Collection
}

// NewDestinationsRepository creates a new destinations repository.
func NewDestinationsRepository(db *MongoDB) *DestinationsRepository {
	return &DestinationsRepository{
		collection: db.Destinations,
	}
}

// Supports reports whether the active destination accepts a container of the given
// transport mode, size and refrigeration class.
func (r *DestinationsRepository) Supports(ctx context.Context, destinationID string, mode model.TransportMode, size string, refrigerated bool) (bool, error) {
	filter := bson.M{
		"_id":    destinationID,
		"active": true,
		"routes": bson.M{"$elemMatch": bson.M{
			"transport_mode": mode,
			"size":           size,
			"refrigerated":   refrigerated,
		}},
	}
	n, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Upsert creates or replaces a destination.
func (r *DestinationsRepository) Upsert(ctx context.Context, doc DestinationDocument) error {
	doc.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	return err
}

// List returns active destinations ordered by id.
func (r *DestinationsRepository) List(ctx context.Context) ([]DestinationDocument, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"active": true}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []DestinationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
