package cache

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LayoutRecord is a persisted layout result. Data is an opaque encoded
// [pkg/layout.Output] - this package never interprets it, matching
// [Cache]'s opaque-payload contract.
type LayoutRecord struct {
	GraphHash string    `bson:"graph_hash"`
	Data      []byte    `bson:"data"`
	CreatedAt time.Time `bson:"created_at"`
}

// LayoutStore persists rendered layouts for the "recent graphs" listing an
// HTTP service offers, a concern [Cache] doesn't cover since cache entries
// are expected to expire and aren't enumerable.
type LayoutStore interface {
	Save(ctx context.Context, rec LayoutRecord) error
	Recent(ctx context.Context, limit int) ([]LayoutRecord, error)
	Close(ctx context.Context) error
}

// MongoLayoutStore is a MongoDB-backed [LayoutStore].
type MongoLayoutStore struct {
	collection *mongo.Collection
	client     *mongo.Client
}

// NewMongoLayoutStore connects to uri and uses db.layouts as the backing
// collection.
func NewMongoLayoutStore(ctx context.Context, uri, db string) (*MongoLayoutStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &MongoLayoutStore{
		collection: client.Database(db).Collection("layouts"),
		client:     client,
	}, nil
}

// Save inserts a layout record, stamping CreatedAt if unset.
func (s *MongoLayoutStore) Save(ctx context.Context, rec LayoutRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	_, err := s.collection.InsertOne(ctx, rec)
	return err
}

// Recent returns the most recently saved records, newest first.
func (s *MongoLayoutStore) Recent(ctx context.Context, limit int) ([]LayoutRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(limit))
	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []LayoutRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Close disconnects the underlying Mongo client.
func (s *MongoLayoutStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ LayoutStore = (*MongoLayoutStore)(nil)
