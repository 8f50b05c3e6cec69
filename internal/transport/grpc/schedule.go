package transportgrpc

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/transport/grpc/schedulev1"
)

// ScheduleService is the usecase surface served over gRPC.
type ScheduleService interface {
	ListSchedule(ctx context.Context, requesterID string, emit func(domain.ScheduledDay) error) error
	MoviesByDate(ctx context.Context, requesterID, date string) (*domain.ScheduledDay, error)
	DatesByMovie(ctx context.Context, requesterID, movieID string) ([]string, error)
	AddSchedule(ctx context.Context, requesterID, date string, movieIDs []string) error
	AddMoviesToDate(ctx context.Context, requesterID, date string, movieIDs []string) error
	DeleteDate(ctx context.Context, requesterID, date string) error
	DeleteMoviesFromDate(ctx context.Context, requesterID, date string, movieIDs []string) error
}

// ScheduleServer adapts ScheduleService to the schedule.v1.Schedule contract.
type ScheduleServer struct {
	schedulev1.UnimplementedScheduleServer
	service ScheduleService
	logger  *zap.Logger
}

func NewScheduleServer(service ScheduleService, logger *zap.Logger) *ScheduleServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleServer{service: service, logger: logger}
}

// GetJson streams every scheduled date with resolved movies.
func (s *ScheduleServer) GetJson(req *schedulev1.GetJsonRequest, stream grpc.ServerStreamingServer[schedulev1.ScheduleData]) error {
	err := s.service.ListSchedule(stream.Context(), req.GetUserId(), func(day domain.ScheduledDay) error {
		return stream.Send(toScheduleData(day))
	})
	return statusFromError(err)
}

func (s *ScheduleServer) GetMoviesByDate(ctx context.Context, req *schedulev1.GetMoviesByDateRequest) (*schedulev1.ScheduleData, error) {
	day, err := s.service.MoviesByDate(ctx, req.GetUserId(), req.GetDate())
	if err != nil {
		return nil, statusFromError(err)
	}
	return toScheduleData(*day), nil
}

func (s *ScheduleServer) GetScheduleByMovie(ctx context.Context, req *schedulev1.GetScheduleByMovieRequest) (*schedulev1.DateData, error) {
	dates, err := s.service.DatesByMovie(ctx, req.GetUserId(), req.GetMovieId())
	if err != nil {
		return nil, statusFromError(err)
	}
	return &schedulev1.DateData{Dates: dates}, nil
}

func (s *ScheduleServer) AddSchedule(ctx context.Context, req *schedulev1.AddScheduleRequest) (*schedulev1.Empty, error) {
	if err := s.service.AddSchedule(ctx, req.GetUserId(), req.GetDate(), req.GetMoviesId()); err != nil {
		return nil, statusFromError(err)
	}
	return &schedulev1.Empty{}, nil
}

func (s *ScheduleServer) AddMovieToDate(ctx context.Context, req *schedulev1.AddMovieToDateRequest) (*schedulev1.Empty, error) {
	if err := s.service.AddMoviesToDate(ctx, req.GetUserId(), req.GetDate(), req.GetMoviesId()); err != nil {
		return nil, statusFromError(err)
	}
	return &schedulev1.Empty{}, nil
}

func (s *ScheduleServer) DeleteDate(ctx context.Context, req *schedulev1.DeleteDateRequest) (*schedulev1.Empty, error) {
	if err := s.service.DeleteDate(ctx, req.GetUserId(), req.GetDate()); err != nil {
		return nil, statusFromError(err)
	}
	return &schedulev1.Empty{}, nil
}

func (s *ScheduleServer) DeleteMovieFromDate(ctx context.Context, req *schedulev1.DeleteMovieFromDateRequest) (*schedulev1.Empty, error) {
	if err := s.service.DeleteMoviesFromDate(ctx, req.GetUserId(), req.GetDate(), req.GetMoviesId()); err != nil {
		return nil, statusFromError(err)
	}
	return &schedulev1.Empty{}, nil
}

func toScheduleData(day domain.ScheduledDay) *schedulev1.ScheduleData {
	movies := make([]*schedulev1.MovieData, 0, len(day.Movies))
	for _, m := range day.Movies {
		movies = append(movies, &schedulev1.MovieData{
			Id:       m.ID,
			Title:    m.Title,
			Director: m.Director,
			Rating:   m.Rating,
		})
	}
	return &schedulev1.ScheduleData{Date: day.Date, Movies: movies}
}

var _ schedulev1.ScheduleServer = (*ScheduleServer)(nil)
