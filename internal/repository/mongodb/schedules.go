package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/core/port"
	"github.com/arklim/cinema-platform/internal/repository"
)

// ScheduleRepository implements port.ScheduleRepository using MongoDB.
// One document per date; the unique date index backs every upsert below.
type ScheduleRepository struct {
	coll *mongo.Collection
}

// NewScheduleRepository wires a MongoDB-backed schedule repository.
func NewScheduleRepository(db *mongo.Database) *ScheduleRepository {
	return &ScheduleRepository{coll: db.Collection(SchedulesCollection)}
}

// EnsureIndexes makes the date unique.
func (r *ScheduleRepository) EnsureIndexes(ctx context.Context) error {
	return ensureUniqueIndex(ctx, r.coll, "date")
}

func (r *ScheduleRepository) List(ctx context.Context) ([]domain.ScheduleEntry, error) {
	return findAll[domain.ScheduleEntry](ctx, r.coll, bson.D{},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
}

func (r *ScheduleRepository) GetByDate(ctx context.Context, date string) (*domain.ScheduleEntry, error) {
	return findOne[domain.ScheduleEntry](ctx, r.coll, bson.M{"date": date})
}

func (r *ScheduleRepository) DatesForMovie(ctx context.Context, movieID string) ([]string, error) {
	entries, err := findAll[domain.ScheduleEntry](ctx, r.coll, bson.M{"movies": movieID},
		options.Find().
			SetProjection(bson.M{"date": 1}).
			SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		dates = append(dates, e.Date)
	}
	return dates, nil
}

func (r *ScheduleRepository) Create(ctx context.Context, entry domain.ScheduleEntry) error {
	if entry.Movies == nil {
		entry.Movies = []string{}
	}
	_, err := r.coll.InsertOne(ctx, entry)
	return translate(err)
}

// AddMovies pushes movieIDs onto date in one conditional upsert. When the date
// already holds any of them the filter misses, the upsert collides with the
// unique date index and the call reports ErrAlreadyExists.
func (r *ScheduleRepository) AddMovies(ctx context.Context, date string, movieIDs []string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"date": date, "movies": bson.M{"$nin": movieIDs}},
		bson.M{"$push": bson.M{"movies": bson.M{"$each": movieIDs}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		err = translate(err)
		if errors.Is(err, repository.ErrAlreadyExists) {
			return err
		}
		return fmt.Errorf("add movies to %s: %w", date, err)
	}
	return nil
}

func (r *ScheduleRepository) DeleteDate(ctx context.Context, date string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"date": date})
	if err != nil {
		return fmt.Errorf("delete schedule %s: %w", date, err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// RemoveMovies pulls the intersection of movieIDs and the scheduled movies.
func (r *ScheduleRepository) RemoveMovies(ctx context.Context, date string, movieIDs []string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"date": date, "movies": bson.M{"$in": movieIDs}},
		bson.M{"$pull": bson.M{"movies": bson.M{"$in": movieIDs}}},
	)
	if err != nil {
		return fmt.Errorf("remove movies from %s: %w", date, err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	count, err := r.coll.CountDocuments(ctx, bson.M{"date": date})
	if err != nil {
		return fmt.Errorf("count schedule %s: %w", date, err)
	}
	if count == 0 {
		return repository.ErrNotFound
	}
	return repository.ErrItemNotFound
}

var _ port.ScheduleRepository = (*ScheduleRepository)(nil)
