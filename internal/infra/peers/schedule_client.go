package peers

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/core/port"
	"github.com/arklim/cinema-platform/internal/transport/grpc/schedulev1"
)

// ScheduleClient queries the Schedule service over gRPC.
type ScheduleClient struct {
	conn     *grpc.ClientConn
	client   schedulev1.ScheduleClient
	timeout  time.Duration
	observer CallObserver
}

// DialSchedule opens a lazy connection to addr. Extra options are appended, which is
// how callers add tracing or a custom dialer.
func DialSchedule(addr string, timeout time.Duration, observer CallObserver, opts ...grpc.DialOption) (*ScheduleClient, error) {
	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial schedule service: %w", err)
	}
	return &ScheduleClient{
		conn:     conn,
		client:   schedulev1.NewScheduleClient(conn),
		timeout:  timeout,
		observer: observerOrNoop(observer),
	}, nil
}

// MovieIDsByDate returns the ids of the movies scheduled on date.
func (c *ScheduleClient) MovieIDsByDate(ctx context.Context, requesterID, date string) (ids []string, err error) {
	started := time.Now()
	defer func() { c.observer.Observe(domain.PeerSchedule, "GetMoviesByDate", started, err) }()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.GetMoviesByDate(ctx, &schedulev1.GetMoviesByDateRequest{UserId: requesterID, Date: date})
	if err != nil {
		st := status.Convert(err)
		// NOT_FOUND is also how Schedule reports a movie on the date that Movie no longer knows.
		if st.Code() == codes.NotFound && st.Message() == domain.DateNotScheduledMessage {
			return nil, domain.NewError(domain.ErrMovieNotScheduled, st.Message())
		}
		return nil, domain.PeerUnavailable(domain.PeerSchedule, err)
	}

	ids = make([]string, 0, len(resp.GetMovies()))
	for _, m := range resp.GetMovies() {
		ids = append(ids, m.GetId())
	}
	return ids, nil
}

func (c *ScheduleClient) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

var _ port.ScheduleCalendar = (*ScheduleClient)(nil)
