package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/layerforge/layerforge/pkg/errors"
	"github.com/layerforge/layerforge/pkg/tasks"
)

// Collection names used by MongoStore.
const (
	collCodeMappings = "code_mappings"
	collWorkerTasks  = "worker_tasks"
)

// MongoStore persists code mappings and worker tasks in MongoDB.
type MongoStore struct {
	client   *mongo.Client
	mappings *mongo.Collection
	tasks    *mongo.Collection
}

// NewMongoStore connects to MongoDB and prepares the two collections.
// A unique index on (element_id, target) backs the upsert contract for
// code mappings.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, mongooptions.Client().ApplyURI(uri))
	if err != nil {
		return nil, wrapMongo(err, "connect to %s", uri)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, wrapMongo(err, "ping %s", uri)
	}

	db := client.Database(database)
	s := &MongoStore{
		client:   client,
		mappings: db.Collection(collCodeMappings),
		tasks:    db.Collection(collWorkerTasks),
	}

	_, err = s.mappings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "element_id", Value: 1}, {Key: "target", Value: 1}},
		Options: mongooptions.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, wrapMongo(err, "create code mapping index")
	}

	return s, nil
}

// SaveCodeMapping upserts the mapping keyed by (ElementID, Target).
func (s *MongoStore) SaveCodeMapping(ctx context.Context, m CodeMapping) error {
	filter := bson.M{"element_id": m.ElementID, "target": m.Target}
	update := bson.M{"$set": m}
	_, err := s.mappings.UpdateOne(ctx, filter, update, mongooptions.Update().SetUpsert(true))
	if err != nil {
		return wrapMongo(err, "save code mapping %s/%s", m.ElementID, m.Target)
	}
	return nil
}

// SaveWorkerTask inserts one task document.
func (s *MongoStore) SaveWorkerTask(ctx context.Context, t tasks.Task) error {
	if _, err := s.tasks.InsertOne(ctx, t); err != nil {
		return wrapMongo(err, "save worker task %s", t.ID)
	}
	return nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return wrapMongo(err, "disconnect")
	}
	return nil
}

// wrapMongo surfaces driver failures as persistence errors. Timeouts and
// network failures are additionally marked retryable so [Retry] attempts
// them again; everything else fails immediately.
func wrapMongo(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		err = Retryable(err)
	}
	return errors.Wrap(errors.ErrCodePersistence, err, format, args...)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
