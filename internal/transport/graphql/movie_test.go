package graphql

import (
	"context"
	"testing"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap/zaptest"

	"github.com/arklim/cinema-platform/internal/core/domain"
)

type stubMovieService struct {
	movies map[string]domain.Movie
	admins map[string]bool
	err    error

	lastRating float64
}

func (s *stubMovieService) verify(requesterID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	isAdmin, ok := s.admins[requesterID]
	if !ok {
		return false, domain.NewError(domain.ErrVerificationFailed, "Unable to verify user")
	}
	return isAdmin, nil
}

func (s *stubMovieService) require(requesterID string) error {
	isAdmin, err := s.verify(requesterID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return domain.Unauthorized()
	}
	return nil
}

func (s *stubMovieService) ListMovies(ctx context.Context, requesterID string) ([]domain.Movie, error) {
	if _, err := s.verify(requesterID); err != nil {
		return nil, err
	}
	return []domain.Movie{s.movies["720d006c"]}, nil
}

func (s *stubMovieService) MovieByID(ctx context.Context, requesterID, id string) (*domain.Movie, error) {
	if _, err := s.verify(requesterID); err != nil {
		return nil, err
	}
	movie, ok := s.movies[id]
	if !ok {
		return nil, domain.NotFound("Movie not found with id: %s", id)
	}
	return &movie, nil
}

func (s *stubMovieService) MovieByTitle(ctx context.Context, requesterID, title string) (*domain.Movie, error) {
	if _, err := s.verify(requesterID); err != nil {
		return nil, err
	}
	for _, movie := range s.movies {
		if movie.Title == title {
			return &movie, nil
		}
	}
	return nil, domain.NotFound("Movie not found with title: %s", title)
}

func (s *stubMovieService) AddMovie(ctx context.Context, requesterID string, movie domain.Movie) (*domain.Movie, error) {
	if err := s.require(requesterID); err != nil {
		return nil, err
	}
	if _, ok := s.movies[movie.ID]; ok {
		return nil, domain.AlreadyExists("Movie ID already exists: %s", movie.ID)
	}
	s.movies[movie.ID] = movie
	return &movie, nil
}

func (s *stubMovieService) UpdateRating(ctx context.Context, requesterID, id string, rating float64) (*domain.Movie, error) {
	if err := s.require(requesterID); err != nil {
		return nil, err
	}
	movie, ok := s.movies[id]
	if !ok {
		return nil, domain.NotFound("Movie not found with id: %s", id)
	}
	s.lastRating = rating
	movie.Rating = rating
	return &movie, nil
}

func (s *stubMovieService) DeleteMovie(ctx context.Context, requesterID, id string) (*domain.Movie, error) {
	if err := s.require(requesterID); err != nil {
		return nil, err
	}
	movie, ok := s.movies[id]
	if !ok {
		return nil, domain.NotFound("Movie not found with id: %s", id)
	}
	delete(s.movies, id)
	return &movie, nil
}

func newStubMovies() *stubMovieService {
	return &stubMovieService{
		movies: map[string]domain.Movie{
			"720d006c": {ID: "720d006c", Title: "The Good Dinosaur", Director: "Peter Sohn", Rating: 7.4},
		},
		admins: map[string]bool{"chris_rivers": true, "peter_curley": false},
	}
}

func runMovieQuery(t *testing.T, service MovieService, query string) *graphql.Result {
	t.Helper()
	schema, err := NewMovieSchema(service, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("build schema: %v", err)
	}
	return graphql.Do(graphql.Params{Schema: schema, RequestString: query, Context: context.Background()})
}

func errorCode(t *testing.T, result *graphql.Result) string {
	t.Helper()
	if len(result.Errors) == 0 {
		t.Fatalf("expected errors, got data %v", result.Data)
	}
	code, _ := result.Errors[0].Extensions["code"].(string)
	return code
}

func TestMovieWithIDResolvesFields(t *testing.T) {
	result := runMovieQuery(t, newStubMovies(), `{ movie_with_id(user_id: "peter_curley", id: "720d006c") { id title director rating } }`)
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	movie := result.Data.(map[string]interface{})["movie_with_id"].(map[string]interface{})
	if movie["title"] != "The Good Dinosaur" || movie["director"] != "Peter Sohn" || movie["rating"] != 7.4 {
		t.Fatalf("unexpected movie: %v", movie)
	}
}

func TestMovieWithIDNotFound(t *testing.T) {
	result := runMovieQuery(t, newStubMovies(), `{ movie_with_id(user_id: "chris_rivers", id: "missing") { id } }`)
	if code := errorCode(t, result); code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %q", code)
	}
	if msg := result.Errors[0].Message; msg != "Movie not found with id: missing" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestMoviesJSONUnknownRequester(t *testing.T) {
	result := runMovieQuery(t, newStubMovies(), `{ movies_json(user_id: "ghost") { id } }`)
	if code := errorCode(t, result); code != "VERIFICATION_FAILED" {
		t.Fatalf("expected VERIFICATION_FAILED, got %q", code)
	}
	if msg := result.Errors[0].Message; msg != "Unable to verify user" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAddMovieRequiresAdmin(t *testing.T) {
	service := newStubMovies()
	result := runMovieQuery(t, service, `mutation { add_movie(user_id: "peter_curley", id: "new", title: "T", rating: 5, director: "D") { id } }`)
	if code := errorCode(t, result); code != "UNAUTHORIZED" {
		t.Fatalf("expected UNAUTHORIZED, got %q", code)
	}
	if _, ok := service.movies["new"]; ok {
		t.Fatalf("movie must not be stored for non admin")
	}
}

func TestAddMovieThenDuplicate(t *testing.T) {
	service := newStubMovies()
	mutation := `mutation { add_movie(user_id: "chris_rivers", id: "a8034f44", title: "The Martian", rating: 8.2, director: "Ridley Scott") { id title } }`

	result := runMovieQuery(t, service, mutation)
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if service.movies["a8034f44"].Rating != 8.2 {
		t.Fatalf("rating not stored: %+v", service.movies["a8034f44"])
	}

	result = runMovieQuery(t, service, mutation)
	if code := errorCode(t, result); code != "ALREADY_EXISTS" {
		t.Fatalf("expected ALREADY_EXISTS, got %q", code)
	}
}

func TestUpdateMovieRateAcceptsIntLiteral(t *testing.T) {
	service := newStubMovies()
	result := runMovieQuery(t, service, `mutation { update_movie_rate(user_id: "chris_rivers", id: "720d006c", rating: 9) { rating } }`)
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if service.lastRating != 9 {
		t.Fatalf("expected rating 9, got %v", service.lastRating)
	}
}

func TestRemoveMovieReturnsRemoved(t *testing.T) {
	service := newStubMovies()
	result := runMovieQuery(t, service, `mutation { remove_movie_with_id(user_id: "chris_rivers", id: "720d006c") { id } }`)
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if _, ok := service.movies["720d006c"]; ok {
		t.Fatalf("movie should be deleted")
	}
}

func TestMovieByTitle(t *testing.T) {
	result := runMovieQuery(t, newStubMovies(), `{ movie_with_title(user_id: "chris_rivers", title: "The Good Dinosaur") { id } }`)
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	movie := result.Data.(map[string]interface{})["movie_with_title"].(map[string]interface{})
	if movie["id"] != "720d006c" {
		t.Fatalf("unexpected movie: %v", movie)
	}
}

func TestUnclassifiedErrorsAreOpaque(t *testing.T) {
	service := newStubMovies()
	service.err = context.DeadlineExceeded
	result := runMovieQuery(t, service, `{ movies_json(user_id: "chris_rivers") { id } }`)
	if code := errorCode(t, result); code != "INTERNAL" {
		t.Fatalf("expected INTERNAL, got %q", code)
	}
	if msg := result.Errors[0].Message; msg != "internal error" {
		t.Fatalf("unexpected message %q", msg)
	}
}
