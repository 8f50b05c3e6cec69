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

const bookingsQuery = `query ($user_id: String!) {
  bookings_json(user_id: $user_id) {
    userid {
      id
      name
    }
    dates {
      date
      movie_ids
    }
  }
}`

// BookingClient lists bookings through the Booking service GraphQL endpoint.
type BookingClient struct {
	client   *graphql.Client
	observer CallObserver
}

func NewBookingClient(baseURL string, httpClient *http.Client, observer CallObserver) *BookingClient {
	if httpClient == nil {
		httpClient = NewHTTPClient(5*time.Second, "")
	}
	endpoint := strings.TrimRight(baseURL, "/") + "/graphql"
	return &BookingClient{
		client:   graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient)),
		observer: observerOrNoop(observer),
	}
}

type bookingOwner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type bookingDate struct {
	Date     string   `json:"date"`
	MovieIDs []string `json:"movie_ids"`
}

type bookingNode struct {
	UserID *bookingOwner `json:"userid"`
	Dates  []bookingDate `json:"dates"`
}

// BookingsWithUsers returns every booking with its owner's name. Bookings whose owner the
// User service no longer knows come back with an empty name.
func (c *BookingClient) BookingsWithUsers(ctx context.Context, requesterID string) (out []port.UserBookings, err error) {
	started := time.Now()
	defer func() { c.observer.Observe(domain.PeerBooking, "bookings_json", started, err) }()

	req := graphql.NewRequest(bookingsQuery)
	req.Var("user_id", requesterID)

	var resp struct {
		BookingsJSON []bookingNode `json:"bookings_json"`
	}
	if err := c.client.Run(ctx, req, &resp); err != nil {
		return nil, classifyGraphQLError(domain.PeerBooking, err)
	}

	out = make([]port.UserBookings, 0, len(resp.BookingsJSON))
	for _, node := range resp.BookingsJSON {
		entry := port.UserBookings{Dates: make([]domain.BookingDate, 0, len(node.Dates))}
		if node.UserID != nil {
			entry.UserID = node.UserID.ID
			entry.UserName = node.UserID.Name
		}
		for _, d := range node.Dates {
			entry.Dates = append(entry.Dates, domain.BookingDate{Date: d.Date, Movies: d.MovieIDs})
		}
		out = append(out, entry)
	}
	return out, nil
}

var _ port.BookingLedger = (*BookingClient)(nil)
