package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Ramsey-B/clover/pkg/tracing"
)

type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Client owns the MongoDB connection of the service.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	logger ectologger.Logger
}

func Connect(ctx context.Context, cfg Config, logger ectologger.Logger) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.WithFields(map[string]any{
		"database": cfg.Database,
	}).Info("Connected to mongo")

	return &Client{
		client: client,
		db:     client.Database(cfg.Database),
		logger: logger,
	}, nil
}

func (c *Client) Database() *mongo.Database {
	return c.db
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Client) Disconnect(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// Collection is the MongoDB implementation of Store.
type Collection[T any] struct {
	coll   *mongo.Collection
	logger ectologger.Logger
	now    func() time.Time
}

func NewCollection[T any](db *mongo.Database, name string, logger ectologger.Logger) *Collection[T] {
	return &Collection[T]{
		coll:   db.Collection(name),
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// EnsureIndexes creates the given indexes, existing ones are left untouched.
func (c *Collection[T]) EnsureIndexes(ctx context.Context, indexes []mongo.IndexModel) error {
	if len(indexes) == 0 {
		return nil
	}
	names, err := c.coll.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", c.coll.Name(), err)
	}
	c.logger.WithContext(ctx).WithFields(map[string]any{
		"collection": c.coll.Name(),
		"indexes":    names,
	}).Debug("Ensured indexes")
	return nil
}

func (c *Collection[T]) Find(ctx context.Context, filter bson.M) ([]T, error) {
	ctx, span := tracing.StartSpan(ctx, "docstore.Collection.Find")
	defer span.End()

	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := c.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: FieldID, Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Collection[T]) FindOne(ctx context.Context, filter bson.M) (T, error) {
	ctx, span := tracing.StartSpan(ctx, "docstore.Collection.FindOne")
	defer span.End()

	var out T
	err := c.coll.FindOne(ctx, filter, options.FindOne().SetSort(bson.D{{Key: FieldID, Value: 1}})).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return out, ErrNotFound
	}
	return out, err
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (T, error) {
	oid, err := ParseID(id)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.FindOne(ctx, bson.M{FieldID: oid})
}

func (c *Collection[T]) Insert(ctx context.Context, doc T) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "docstore.Collection.Insert")
	defer span.End()

	m, oid, err := prepareInsert(doc, c.now())
	if err != nil {
		return "", err
	}

	if _, err := c.coll.InsertOne(ctx, m); err != nil {
		return "", err
	}
	return oid.Hex(), nil
}

func (c *Collection[T]) UpdateByID(ctx context.Context, id string, doc T) error {
	ctx, span := tracing.StartSpan(ctx, "docstore.Collection.UpdateByID")
	defer span.End()

	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	set, err := prepareUpdate(doc, c.now())
	if err != nil {
		return err
	}

	res, err := c.coll.UpdateOne(ctx, bson.M{FieldID: oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Collection[T]) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	ctx, span := tracing.StartSpan(ctx, "docstore.Collection.DeleteMany")
	defer span.End()

	res, err := c.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
