package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/core/port"
)

// MovieRepository implements port.MovieRepository using MongoDB.
type MovieRepository struct {
	coll *mongo.Collection
}

// NewMovieRepository wires a MongoDB-backed movie repository.
func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{coll: db.Collection(MoviesCollection)}
}

// EnsureIndexes makes the movie id unique.
func (r *MovieRepository) EnsureIndexes(ctx context.Context) error {
	return ensureUniqueIndex(ctx, r.coll, "id")
}

func (r *MovieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	return findAll[domain.Movie](ctx, r.coll, bson.D{})
}

func (r *MovieRepository) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	return findOne[domain.Movie](ctx, r.coll, bson.M{"id": id})
}

// GetByTitle returns the first match; titles are not unique.
func (r *MovieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return findOne[domain.Movie](ctx, r.coll, bson.M{"title": title})
}

func (r *MovieRepository) Create(ctx context.Context, movie domain.Movie) error {
	_, err := r.coll.InsertOne(ctx, movie)
	return translate(err)
}

func (r *MovieRepository) UpdateRating(ctx context.Context, id string, rating float64) (*domain.Movie, error) {
	var movie domain.Movie
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"rating": rating}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&movie)
	if err != nil {
		return nil, translate(err)
	}
	return &movie, nil
}

func (r *MovieRepository) Delete(ctx context.Context, id string) (*domain.Movie, error) {
	var movie domain.Movie
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&movie); err != nil {
		return nil, translate(err)
	}
	return &movie, nil
}

var _ port.MovieRepository = (*MovieRepository)(nil)
