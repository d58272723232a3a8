package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	capacityTablesCollection = "capacity_tables"
	destinationsCollection   = "destinations"
	ordersCollection         = "orders"
	logsCollection           = "logs"
)

const (
	connectTimeout     = 10 * time.Second
	healthCheckTimeout = 2 * time.Second
	logsTTLIndex       = "logs_timestamp_ttl"

	codeIndexOptionsConflict  = 85
	codeIndexKeySpecsConflict = 86
)

// MongoDB holds the client and the collections the service reads and writes.
type MongoDB struct {
	Client         *mongo.Client
	Database       *mongo.Database
	CapacityTables *mongo.Collection
	Destinations   *mongo.Collection
	Orders         *mongo.Collection
	Logs           *mongo.Collection
}

// indexSpec is a named index on one collection. Optional indexes only speed
// up reads, so a failure to build them does not block startup.
type indexSpec struct {
	collection func(*MongoDB) *mongo.Collection
	model      mongo.IndexModel
	optional   bool
}

var indexSpecs = []indexSpec{
	{
		collection: func(m *MongoDB) *mongo.Collection { return m.CapacityTables },
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "active", Value: 1}},
			Options: options.Index().SetName("capacity_tables_active"),
		},
	},
	{
		collection: func(m *MongoDB) *mongo.Collection { return m.Orders },
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "session_id", Value: 1}, {Key: "submitted_at", Value: -1}},
			Options: options.Index().SetName("orders_session_submitted"),
		},
	},
	{
		collection: func(m *MongoDB) *mongo.Collection { return m.Destinations },
		model: mongo.IndexModel{
			Keys: bson.D{
				{Key: "routes.transport_mode", Value: 1},
				{Key: "routes.size", Value: 1},
				{Key: "routes.refrigerated", Value: 1},
			},
			Options: options.Index().SetName("destinations_route"),
		},
		optional: true,
	},
	{
		collection: func(m *MongoDB) *mongo.Collection { return m.Logs },
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "request_id", Value: 1}},
			Options: options.Index().SetName("logs_request_id"),
		},
		optional: true,
	},
	{
		collection: func(m *MongoDB) *mongo.Collection { return m.Logs },
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "session_id", Value: 1}, {Key: "timestamp", Value: 1}},
			Options: options.Index().SetName("logs_session_timeline"),
		},
		optional: true,
	},
}

func clientOptions(uri string) *options.ClientOptions {
	return options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(10 * time.Minute).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(5 * time.Second).
		SetSocketTimeout(30 * time.Second).
		SetCompressors([]string{"zstd", "snappy", "zlib"}).
		SetRetryWrites(true).
		SetRetryReads(true)
}

// NewMongoDB connects, pings and ensures the indexes of every collection.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:         client,
		Database:       db,
		CapacityTables: db.Collection(capacityTablesCollection),
		Destinations:   db.Collection(destinationsCollection),
		Orders:         db.Collection(ordersCollection),
		Logs:           db.Collection(logsCollection),
	}
	if err := m.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return m, nil
}

func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	for _, spec := range indexSpecs {
		coll := spec.collection(m)
		_, err := coll.Indexes().CreateOne(ctx, spec.model)
		if err == nil || spec.optional || isIndexConflict(err) {
			continue
		}
		return fmt.Errorf("create index %s.%s: %w", coll.Name(), *spec.model.Options.Name, err)
	}
	return nil
}

// SetLogsTTL expires log entries ttlDays after their timestamp. The index is
// rebuilt so the retention can change between deployments.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttlDays int) error {
	_, _ = m.Logs.Indexes().DropOne(ctx, logsTTLIndex)

	_, err := m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().
			SetName(logsTTLIndex).
			SetExpireAfterSeconds(int32((time.Duration(ttlDays) * 24 * time.Hour).Seconds())),
	})
	if isIndexConflict(err) {
		return nil
	}
	return err
}

func isIndexConflict(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == codeIndexOptionsConflict || cmdErr.Code == codeIndexKeySpecsConflict
	}
	return false
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the primary with a short deadline.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
