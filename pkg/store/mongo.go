package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/cascade/pkg/errors"
)

// MongoStore is a MongoDB-backed chart store for server deployments.
type MongoStore struct {
	client *mongo.Client
	charts *mongo.Collection
}

// MongoConfig configures the MongoDB connection.
type MongoConfig struct {
	URI      string
	Database string
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "cascade"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "ping mongodb")
	}

	return &MongoStore{
		client: client,
		charts: client.Database(cfg.Database).Collection("charts"),
	}, nil
}

// Get retrieves a chart by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*Chart, error) {
	var c Chart
	err := s.charts.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeChartNotFound, "chart %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "get chart %s", id)
	}
	return &c, nil
}

// Put stores a chart, replacing any existing chart with the same ID.
func (s *MongoStore) Put(ctx context.Context, c *Chart) error {
	if c.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "chart id is required")
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.charts.ReplaceOne(ctx, bson.M{"_id": c.ID}, c, opts); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "put chart %s", c.ID)
	}
	return nil
}

// Delete removes a chart.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.charts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "delete chart %s", id)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeChartNotFound, "chart %s not found", id)
	}
	return nil
}

// List returns summaries of all charts, newest first.
func (s *MongoStore) List(ctx context.Context) ([]Summary, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetProjection(bson.M{"_id": 1, "title": 1, "categories": 1, "created_at": 1})

	cur, err := s.charts.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list charts")
	}
	defer cur.Close(ctx)

	var out []Summary
	for cur.Next(ctx) {
		var c Chart
		if err := cur.Decode(&c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode chart")
		}
		out = append(out, c.Summarize())
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list charts")
	}
	return out, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
