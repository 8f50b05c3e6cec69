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

// BookingRepository implements port.BookingRepository using MongoDB.
// One document per user, unique on userid.
type BookingRepository struct {
	coll *mongo.Collection
}

// NewBookingRepository wires a MongoDB-backed booking repository.
func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(BookingsCollection)}
}

// EnsureIndexes makes the userid unique.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	return ensureUniqueIndex(ctx, r.coll, "userid")
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	return findAll[domain.Booking](ctx, r.coll, bson.D{})
}

func (r *BookingRepository) GetByUser(ctx context.Context, userID string) (*domain.Booking, error) {
	return findOne[domain.Booking](ctx, r.coll, bson.M{"userid": userID})
}

// AddMovie books movieID on date. Each step is a single conditional update so
// concurrent writers cannot produce duplicate dates or duplicate movies.
func (r *BookingRepository) AddMovie(ctx context.Context, userID, date, movieID string) (*domain.Booking, error) {
	appended, err := r.appendToDate(ctx, userID, date, movieID)
	if err != nil {
		return nil, err
	}
	if !appended {
		err = r.upsertDate(ctx, userID, date, movieID)
		if errors.Is(err, repository.ErrAlreadyExists) {
			// The date may have appeared between the two updates.
			appended, err = r.appendToDate(ctx, userID, date, movieID)
			if err == nil && !appended {
				err = repository.ErrAlreadyExists
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return r.GetByUser(ctx, userID)
}

func (r *BookingRepository) appendToDate(ctx context.Context, userID, date, movieID string) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{
			"userid": userID,
			"dates":  bson.M{"$elemMatch": bson.M{"date": date, "movies": bson.M{"$ne": movieID}}},
		},
		bson.M{"$push": bson.M{"dates.$.movies": movieID}},
	)
	if err != nil {
		return false, fmt.Errorf("append booking movie: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *BookingRepository) upsertDate(ctx context.Context, userID, date, movieID string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"userid": userID, "dates.date": bson.M{"$ne": date}},
		bson.M{"$push": bson.M{"dates": domain.BookingDate{Date: date, Movies: []string{movieID}}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		err = translate(err)
		if errors.Is(err, repository.ErrAlreadyExists) {
			return err
		}
		return fmt.Errorf("add booking date: %w", err)
	}
	return nil
}

// RemoveMovie pulls movieID from date and tells apart which level was missing.
func (r *BookingRepository) RemoveMovie(ctx context.Context, userID, date, movieID string) (*domain.Booking, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{
			"userid": userID,
			"dates":  bson.M{"$elemMatch": bson.M{"date": date, "movies": movieID}},
		},
		bson.M{"$pull": bson.M{"dates.$.movies": movieID}},
	)
	if err != nil {
		return nil, fmt.Errorf("remove booking movie: %w", err)
	}

	booking, err := r.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount > 0 {
		return booking, nil
	}
	if !booking.HasDate(date) {
		return nil, repository.ErrDateNotFound
	}
	return nil, repository.ErrItemNotFound
}

func (r *BookingRepository) DeleteByUser(ctx context.Context, userID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"userid": userID})
	if err != nil {
		return fmt.Errorf("delete booking %s: %w", userID, err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ port.BookingRepository = (*BookingRepository)(nil)
