package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arklim/cinema-platform/internal/repository"
)

// Collection names.
const (
	MoviesCollection    = "movies"
	UsersCollection     = "users"
	SchedulesCollection = "schedules"
	BookingsCollection  = "bookings"
)

// Indexer is implemented by repositories that rely on unique indexes for their invariants.
type Indexer interface {
	EnsureIndexes(ctx context.Context) error
}

func ensureUniqueIndex(ctx context.Context, coll *mongo.Collection, field string) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true).SetName(coll.Name() + "_" + field + "_unique"),
	}
	if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("create %s index on %s: %w", field, coll.Name(), err)
	}
	return nil
}

// translate maps driver errors onto repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", repository.ErrAlreadyExists, err)
	default:
		return err
	}
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	items := make([]T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return items, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var item T
	if err := coll.FindOne(ctx, filter).Decode(&item); err != nil {
		return nil, translate(err)
	}
	return &item, nil
}
