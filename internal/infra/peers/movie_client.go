package peers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/machinebox/graphql"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/core/port"
)

const movieByIDQuery = `query ($user_id: String!, $id: String!) {
  movie_with_id(user_id: $user_id, id: $id) {
    id
    title
    director
    rating
  }
}`

// MovieClient resolves movies through the Movie service GraphQL endpoint.
type MovieClient struct {
	client   *graphql.Client
	observer CallObserver
}

// NewMovieClient targets baseURL + "/graphql".
func NewMovieClient(baseURL string, httpClient *http.Client, observer CallObserver) *MovieClient {
	if httpClient == nil {
		httpClient = NewHTTPClient(5*time.Second, "")
	}
	endpoint := strings.TrimRight(baseURL, "/") + "/graphql"
	return &MovieClient{
		client:   graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient)),
		observer: observerOrNoop(observer),
	}
}

// MovieByID runs movie_with_id on behalf of requesterID.
func (c *MovieClient) MovieByID(ctx context.Context, requesterID, movieID string) (movie *domain.Movie, err error) {
	started := time.Now()
	defer func() { c.observer.Observe(domain.PeerMovie, "movie_with_id", started, err) }()

	req := graphql.NewRequest(movieByIDQuery)
	req.Var("user_id", requesterID)
	req.Var("id", movieID)

	var resp struct {
		MovieWithID *domain.Movie `json:"movie_with_id"`
	}
	if err := c.client.Run(ctx, req, &resp); err != nil {
		return nil, classifyGraphQLError(domain.PeerMovie, err)
	}
	if resp.MovieWithID == nil {
		return nil, domain.NotFound("Movie not found with id: %s", movieID)
	}
	return resp.MovieWithID, nil
}

var _ port.MovieCatalog = (*MovieClient)(nil)
