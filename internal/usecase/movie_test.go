package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/arklim/cinema-platform/internal/core/domain"
)

func newTestMovieService() (*MovieService, *fakeMovieRepo, *fakeEventPublisher) {
	repo := &fakeMovieRepo{movies: []domain.Movie{
		{ID: "720d006c", Title: "Spectre", Rating: 6.8, Director: "Sam Mendes"},
		{ID: "39ab85e5", Title: "Creed", Rating: 7.5, Director: "Ryan Coogler"},
	}}
	events := &fakeEventPublisher{}
	return NewMovieService(repo, newTestChecker(), events), repo, events
}

func TestMovieServiceGetByIDIsIdempotent(t *testing.T) {
	svc, _, _ := newTestMovieService()

	first, err := svc.MovieByID(context.Background(), "peter_curley", "720d006c")
	if err != nil {
		t.Fatalf("MovieByID returned error: %v", err)
	}
	second, err := svc.MovieByID(context.Background(), "peter_curley", "720d006c")
	if err != nil {
		t.Fatalf("MovieByID returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestMovieServiceAddThenGet(t *testing.T) {
	svc, _, events := newTestMovieService()
	movie := domain.Movie{ID: "m-new", Title: "The Martian", Rating: 7, Director: "Ridley Scott"}

	if _, err := svc.AddMovie(context.Background(), "chris_rivers", movie); err != nil {
		t.Fatalf("AddMovie returned error: %v", err)
	}
	got, err := svc.MovieByID(context.Background(), "chris_rivers", "m-new")
	if err != nil {
		t.Fatalf("MovieByID returned error: %v", err)
	}
	if *got != movie {
		t.Fatalf("expected %+v, got %+v", movie, *got)
	}

	_, err = svc.AddMovie(context.Background(), "chris_rivers", movie)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if err.Error() != "Movie ID already exists: m-new" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if len(events.movies) != 1 || events.movies[0].Action != domain.ActionCreated {
		t.Fatalf("expected one created event, got %+v", events.movies)
	}
}

func TestMovieServiceNonAdminMutationLeavesStateUntouched(t *testing.T) {
	svc, repo, events := newTestMovieService()

	_, err := svc.AddMovie(context.Background(), "peter_curley", domain.Movie{ID: "m-x"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	_, err = svc.DeleteMovie(context.Background(), "peter_curley", "720d006c")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if repo.writes != 0 {
		t.Fatalf("expected no writes, got %d", repo.writes)
	}
	if len(events.movies) != 0 {
		t.Fatal("expected no events")
	}
}

func TestMovieServiceUnknownRequesterFailsBeforeStorage(t *testing.T) {
	svc, repo, _ := newTestMovieService()

	_, err := svc.DeleteMovie(context.Background(), "nobody", "720d006c")
	if !errors.Is(err, domain.ErrVerificationFailed) {
		t.Fatalf("expected ErrVerificationFailed, got %v", err)
	}
	if len(repo.movies) != 2 {
		t.Fatal("expected catalogue untouched")
	}
}

func TestMovieServiceLookupsReportNotFound(t *testing.T) {
	svc, _, _ := newTestMovieService()

	_, err := svc.MovieByID(context.Background(), "chris_rivers", "missing")
	if !errors.Is(err, domain.ErrNotFound) || err.Error() != "Movie not found with id: missing" {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = svc.MovieByTitle(context.Background(), "chris_rivers", "Nope")
	if !errors.Is(err, domain.ErrNotFound) || err.Error() != "Movie not found with title: Nope" {
		t.Fatalf("unexpected error: %v", err)
	}
	movie, err := svc.MovieByTitle(context.Background(), "chris_rivers", "Creed")
	if err != nil || movie.ID != "39ab85e5" {
		t.Fatalf("expected Creed, got %+v (%v)", movie, err)
	}
}

func TestMovieServiceRatingPolicy(t *testing.T) {
	svc, _, _ := newTestMovieService()

	movie, err := svc.UpdateRating(context.Background(), "peter_curley", "720d006c", 9.1)
	if err != nil {
		t.Fatalf("verified policy should let a known user rate, got %v", err)
	}
	if movie.Rating != 9.1 {
		t.Fatalf("expected rating 9.1, got %v", movie.Rating)
	}

	svc.WithRatingPolicy(domain.NewRatingPolicy(domain.RatingPolicyAdmin))
	_, err = svc.UpdateRating(context.Background(), "peter_curley", "720d006c", 1)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("admin policy should reject non admin, got %v", err)
	}

	_, err = svc.UpdateRating(context.Background(), "chris_rivers", "missing", 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMovieServiceDeleteReturnsRemovedMovie(t *testing.T) {
	svc, repo, events := newTestMovieService()

	movie, err := svc.DeleteMovie(context.Background(), "chris_rivers", "39ab85e5")
	if err != nil {
		t.Fatalf("DeleteMovie returned error: %v", err)
	}
	if movie.Title != "Creed" {
		t.Fatalf("expected Creed, got %+v", movie)
	}
	if len(repo.movies) != 1 {
		t.Fatalf("expected 1 movie left, got %d", len(repo.movies))
	}
	if len(events.movies) != 1 || events.movies[0].Action != domain.ActionDeleted {
		t.Fatalf("expected deleted event, got %+v", events.movies)
	}
}

func TestRatingPolicyParsing(t *testing.T) {
	if domain.ParseRatingPolicyMode(" ADMIN ") != domain.RatingPolicyAdmin {
		t.Fatal("expected admin mode")
	}
	if domain.ParseRatingPolicyMode("whatever") != domain.RatingPolicyVerified {
		t.Fatal("expected verified fallback")
	}
}
