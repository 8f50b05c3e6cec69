package graphql

import (
	"context"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"github.com/arklim/cinema-platform/internal/core/domain"
)

// MovieService is the usecase surface behind the Movie schema.
type MovieService interface {
	ListMovies(ctx context.Context, requesterID string) ([]domain.Movie, error)
	MovieByID(ctx context.Context, requesterID, id string) (*domain.Movie, error)
	MovieByTitle(ctx context.Context, requesterID, title string) (*domain.Movie, error)
	AddMovie(ctx context.Context, requesterID string, movie domain.Movie) (*domain.Movie, error)
	UpdateRating(ctx context.Context, requesterID, id string, rating float64) (*domain.Movie, error)
	DeleteMovie(ctx context.Context, requesterID, id string) (*domain.Movie, error)
}

// NewMovieSchema builds the Movie service schema.
func NewMovieSchema(movies MovieService, logger *zap.Logger) (graphql.Schema, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fail := func(operation string, err error) error {
		return toResolverError(logger, operation, err)
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"movies_json": &graphql.Field{
				Type: graphql.NewList(movieType),
				Args: graphql.FieldConfigArgument{"user_id": requiredString()},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					list, err := movies.ListMovies(p.Context, stringArg(p, "user_id"))
					if err != nil {
						return nil, fail("movies_json", err)
					}
					return list, nil
				},
			},
			"movie_with_id": &graphql.Field{
				Type: movieType,
				Args: graphql.FieldConfigArgument{"user_id": requiredString(), "id": requiredString()},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					movie, err := movies.MovieByID(p.Context, stringArg(p, "user_id"), stringArg(p, "id"))
					if err != nil {
						return nil, fail("movie_with_id", err)
					}
					return movie, nil
				},
			},
			"movie_with_title": &graphql.Field{
				Type: movieType,
				Args: graphql.FieldConfigArgument{"user_id": requiredString(), "title": requiredString()},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					movie, err := movies.MovieByTitle(p.Context, stringArg(p, "user_id"), stringArg(p, "title"))
					if err != nil {
						return nil, fail("movie_with_title", err)
					}
					return movie, nil
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"add_movie": &graphql.Field{
				Type: movieType,
				Args: graphql.FieldConfigArgument{
					"user_id":  requiredString(),
					"id":       requiredString(),
					"title":    requiredString(),
					"rating":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"director": requiredString(),
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					movie, err := movies.AddMovie(p.Context, stringArg(p, "user_id"), domain.Movie{
						ID:       stringArg(p, "id"),
						Title:    stringArg(p, "title"),
						Rating:   floatArg(p, "rating"),
						Director: stringArg(p, "director"),
					})
					if err != nil {
						return nil, fail("add_movie", err)
					}
					return movie, nil
				},
			},
			"update_movie_rate": &graphql.Field{
				Type: movieType,
				Args: graphql.FieldConfigArgument{
					"user_id": requiredString(),
					"id":      requiredString(),
					"rating":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					movie, err := movies.UpdateRating(p.Context, stringArg(p, "user_id"), stringArg(p, "id"), floatArg(p, "rating"))
					if err != nil {
						return nil, fail("update_movie_rate", err)
					}
					return movie, nil
				},
			},
			"remove_movie_with_id": &graphql.Field{
				Type: movieType,
				Args: graphql.FieldConfigArgument{"user_id": requiredString(), "id": requiredString()},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					movie, err := movies.DeleteMovie(p.Context, stringArg(p, "user_id"), stringArg(p, "id"))
					if err != nil {
						return nil, fail("remove_movie_with_id", err)
					}
					return movie, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}
