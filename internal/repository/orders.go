package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrOrderNotFound is returned when no submitted order matches an id.
var ErrOrderNotFound = errors.New("order not found")

// OrderLineDocument is a submitted line item.
type OrderLineDocument struct {
	VariantID string `bson:"variant_id" json:"variant_id"`
	Note      string `bson:"note,omitempty" json:"note,omitempty"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

// OrderContainerDocument is a submitted container.
type OrderContainerDocument struct {
	Slot          int                  `bson:"slot" json:"slot"`
	Size          string               `bson:"size" json:"size"`
	Refrigerated  bool                 `bson:"refrigerated" json:"refrigerated"`
	TransportMode string               `bson:"transport_mode" json:"transport_mode"`
	DestinationID string               `bson:"destination_id" json:"destination_id"`
	BoxCount      int                  `bson:"box_count" json:"box_count"`
	TotalVolume   float64              `bson:"total_volume" json:"total_volume"`
	TotalWeight   float64              `bson:"total_weight" json:"total_weight"`
	TotalPrice    primitive.Decimal128 `bson:"total_price" json:"total_price"`
	LineItems     []OrderLineDocument  `bson:"line_items" json:"line_items"`
}

// OrderDocument is a submitted export order.
type OrderDocument struct {
	ID          string                   `bson:"_id" json:"id"`
	SessionID   string                   `bson:"session_id" json:"session_id"`
	Status      string                   `bson:"status" json:"status"`
	BoxCount    int                      `bson:"box_count" json:"box_count"`
	TotalPrice  primitive.Decimal128     `bson:"total_price" json:"total_price"`
	Containers  []OrderContainerDocument `bson:"containers" json:"containers"`
	SubmittedAt time.Time                `bson:"submitted_at" json:"submitted_at"`
}

// OrdersRepository stores submitted orders.
type OrdersRepository struct {
	collection *mongo.Collection
}

// NewOrdersRepository creates a new orders repository.
func NewOrdersRepository(db *MongoDB) *OrdersRepository {
	return &OrdersRepository{
		collection: db.Orders,
	}
}

// Insert stores payload as a new order submitted from sessionID.
func (r *OrdersRepository) Insert(ctx context.Context, sessionID string, payload model.SubmissionPayload) (model.SubmissionReceipt, error) {
	doc, err := newOrderDocument(sessionID, payload)
	if err != nil {
		return model.SubmissionReceipt{}, err
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return model.SubmissionReceipt{}, err
	}

	return model.SubmissionReceipt{
		OrderID:     doc.ID,
		SubmittedAt: doc.SubmittedAt,
		Containers:  len(doc.Containers),
		BoxCount:    doc.BoxCount,
		TotalPrice:  payload.TotalPrice(),
	}, nil
}

// Get returns the order with id.
func (r *OrdersRepository) Get(ctx context.Context, id string) (*OrderDocument, error) {
	var doc OrderDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// CountBySession returns how many orders a session has submitted.
func (r *OrdersRepository) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"session_id": sessionID})
}

func newOrderDocument(sessionID string, payload model.SubmissionPayload) (*OrderDocument, error) {
	total, err := toDecimal128(payload.TotalPrice())
	if err != nil {
		return nil, err
	}

	doc := &OrderDocument{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		Status:      "submitted",
		BoxCount:    payload.BoxCount(),
		TotalPrice:  total,
		Containers:  make([]OrderContainerDocument, len(payload.Containers)),
		SubmittedAt: time.Now().UTC(),
	}

	for i, c := range payload.Containers {
		price, err := toDecimal128(c.TotalPrice)
		if err != nil {
			return nil, err
		}
		lines := make([]OrderLineDocument, len(c.LineItems))
		for j, li := range c.LineItems {
			lines[j] = OrderLineDocument{VariantID: li.VariantID, Note: li.Note, Quantity: li.Quantity}
		}
		doc.Containers[i] = OrderContainerDocument{
			Slot:          c.Slot,
			Size:          c.CapacityClass.Size,
			Refrigerated:  c.CapacityClass.Refrigerated,
			TransportMode: string(c.TransportMode),
			DestinationID: c.DestinationID,
			BoxCount:      c.BoxCount,
			TotalVolume:   c.TotalVolume,
			TotalWeight:   c.TotalWeight,
			TotalPrice:    price,
			LineItems:     lines,
		}
	}
	return doc, nil
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("converting price %s: %w", d, err)
	}
	return v, nil
}
