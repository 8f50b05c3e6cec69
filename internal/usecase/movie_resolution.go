package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/core/port"
)

const movieLookupConcurrency = 8

// resolveMovies looks every id up in the catalogue, keeping input order.
// The first failure aborts the whole resolution.
func resolveMovies(ctx context.Context, catalog port.MovieCatalog, requesterID string, ids []string) ([]domain.Movie, error) {
	movies := make([]domain.Movie, len(ids))
	if len(ids) == 0 {
		return movies, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(movieLookupConcurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			movie, err := catalog.MovieByID(gctx, requesterID, id)
			if err != nil {
				return err
			}
			movies[i] = *movie
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return movies, nil
}

// duplicateID returns the first id listed twice.
func duplicateID(ids []string) (string, bool) {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return "", false
}
