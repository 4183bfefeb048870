package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chartkit/chartkit/pkg/errors"
)

const (
	mongoDatabase   = "chartkit"
	mongoCollection = "charts"
)

// MongoStore is a Store backed by MongoDB.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB at the given URI and verifies the
// connection with a ping.
func NewMongoStore(ctx context.Context, uri string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "ping mongodb")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(mongoDatabase).Collection(mongoCollection),
	}, nil
}

// Put stores a chart, replacing any existing chart with the same ID.
func (s *MongoStore) Put(ctx context.Context, c Chart) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c, opts); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "store chart %s", c.ID)
	}
	return nil
}

// Get retrieves a chart by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (Chart, error) {
	var c Chart
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return Chart{}, ErrNotFound
	}
	if err != nil {
		return Chart{}, errors.Wrap(errors.ErrCodeInternal, err, "load chart %s", id)
	}
	return c, nil
}

// List returns all stored charts, newest first.
func (s *MongoStore) List(ctx context.Context) ([]Chart, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list charts")
	}
	defer cur.Close(ctx)

	var out []Chart
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode charts")
	}
	return out, nil
}

// Delete removes a chart.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "delete chart %s", id)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
