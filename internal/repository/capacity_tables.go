package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/container-order-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CapacityTableDocument is a versioned capacity table stored in MongoDB. Exactly
// one document is active at a time.
type CapacityTableDocument struct {
	ID        primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	Version   string                `bson:"version" json:"version"`
	Classes   []model.CapacityClass `bson:"classes" json:"classes"`
	Active    bool                  `bson:"active" json:"active"`
	Source    string                `bson:"source,omitempty" json:"source,omitempty"`
	CreatedAt time.Time             `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time             `bson:"updated_at" json:"updated_at"`
}

// CapacityTablesRepository provides methods for capacity table operations.
type CapacityTablesRepository struct {
	collection *mongo.Collection
}

// NewCapacityTablesRepository creates a new capacity tables repository.
func NewCapacityTablesRepository(db *MongoDB) *CapacityTablesRepository {
	return &CapacityTablesRepository{
		collection: db.CapacityTables,
	}
}

// GetActive returns the active capacity table, or nil when none is stored.
func (r *CapacityTablesRepository) GetActive(ctx context.Context) (*CapacityTableDocument, error) {
	var doc CapacityTableDocument
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Create stores classes as the new active table and deactivates the previous one.
func (r *CapacityTablesRepository) Create(ctx context.Context, version string, classes []model.CapacityClass, source string) (*CapacityTableDocument, error) {
	now := time.Now()
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": now}},
	)
	if err != nil {
		return nil, err
	}

	doc := CapacityTableDocument{
		ID:        primitive.NewObjectID(),
		Version:   version,
		Classes:   classes,
		Active:    true,
		Source:    source,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns stored tables, newest first.
func (r *CapacityTablesRepository) List(ctx context.Context, limit int) ([]CapacityTableDocument, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []CapacityTableDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
