package graphql

import (
	"context"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"github.com/arklim/cinema-platform/internal/core/domain"
)

// BookingService is the usecase surface behind the Booking schema.
type BookingService interface {
	ListBookings(ctx context.Context, requesterID string) ([]domain.Booking, error)
	BookingByUser(ctx context.Context, requesterID, userID string) (*domain.Booking, error)
	AddBooking(ctx context.Context, requesterID, userID, date, movieID string) (*domain.Booking, error)
	RemoveBookingMovie(ctx context.Context, requesterID, userID, date, movieID string) (*domain.Booking, error)
	RemoveAllBookings(ctx context.Context, requesterID, userID string) (string, error)
	BookingOwner(ctx context.Context, userID string) (*domain.User, error)
	BookedMovies(ctx context.Context, requesterID string, movieIDs []string) ([]domain.Movie, error)
}

// bookingNode carries the requester down to the nested resolvers, which call peers on its behalf.
type bookingNode struct {
	requesterID string
	booking     domain.Booking
}

type bookingDateNode struct {
	requesterID string
	date        domain.BookingDate
}

// NewBookingSchema builds the Booking service schema.
func NewBookingSchema(bookings BookingService, logger *zap.Logger) (graphql.Schema, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fail := func(operation string, err error) error {
		return toResolverError(logger, operation, err)
	}

	bookingDateType := graphql.NewObject(graphql.ObjectConfig{
		Name: "BookingDate",
		Fields: graphql.Fields{
			"date": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(bookingDateNode).date.Date, nil
				},
			},
			"movie_ids": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(bookingDateNode).date.Movies, nil
				},
			},
			"movies": &graphql.Field{
				Type: graphql.NewList(movieType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					node := p.Source.(bookingDateNode)
					movies, err := bookings.BookedMovies(p.Context, node.requesterID, node.date.Movies)
					if err != nil {
						return nil, fail("movies", err)
					}
					return movies, nil
				},
			},
		},
	})

	bookingType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Booking",
		Fields: graphql.Fields{
			"userid": &graphql.Field{
				Type: userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					node := p.Source.(bookingNode)
					user, err := bookings.BookingOwner(p.Context, node.booking.UserID)
					if err != nil {
						return nil, fail("userid", err)
					}
					if user == nil {
						return nil, nil
					}
					return user, nil
				},
			},
			"dates": &graphql.Field{
				Type: graphql.NewList(bookingDateType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					node := p.Source.(bookingNode)
					dates := make([]bookingDateNode, 0, len(node.booking.Dates))
					for _, d := range node.booking.Dates {
						dates = append(dates, bookingDateNode{requesterID: node.requesterID, date: d})
					}
					return dates, nil
				},
			},
		},
	})

	single := func(requesterID string, booking *domain.Booking) interface{} {
		if booking == nil {
			return nil
		}
		return bookingNode{requesterID: requesterID, booking: *booking}
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"bookings_json": &graphql.Field{
				Type: graphql.NewList(bookingType),
				Args: graphql.FieldConfigArgument{"user_id": requiredString()},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					requesterID := stringArg(p, "user_id")
					list, err := bookings.ListBookings(p.Context, requesterID)
					if err != nil {
						return nil, fail("bookings_json", err)
					}
					nodes := make([]bookingNode, 0, len(list))
					for _, b := range list {
						nodes = append(nodes, bookingNode{requesterID: requesterID, booking: b})
					}
					return nodes, nil
				},
			},
			"booking_with_id": &graphql.Field{
				Type: bookingType,
				Args: graphql.FieldConfigArgument{"user_id": requiredString(), "id": requiredString()},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					requesterID := stringArg(p, "user_id")
					booking, err := bookings.BookingByUser(p.Context, requesterID, stringArg(p, "id"))
					if err != nil {
						return nil, fail("booking_with_id", err)
					}
					return single(requesterID, booking), nil
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"add_booking": &graphql.Field{
				Type: bookingType,
				Args: graphql.FieldConfigArgument{
					"user_id": requiredString(),
					"userid":  requiredString(),
					"date":    requiredString(),
					"movieid": requiredString(),
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					requesterID := stringArg(p, "user_id")
					booking, err := bookings.AddBooking(p.Context, requesterID, stringArg(p, "userid"), stringArg(p, "date"), stringArg(p, "movieid"))
					if err != nil {
						return nil, fail("add_booking", err)
					}
					return single(requesterID, booking), nil
				},
			},
			"remove_booking_with_movie_date_user": &graphql.Field{
				Type: bookingType,
				Args: graphql.FieldConfigArgument{
					"user_id": requiredString(),
					"userid":  requiredString(),
					"date":    requiredString(),
					"movieid": requiredString(),
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					requesterID := stringArg(p, "user_id")
					booking, err := bookings.RemoveBookingMovie(p.Context, requesterID, stringArg(p, "userid"), stringArg(p, "date"), stringArg(p, "movieid"))
					if err != nil {
						return nil, fail("remove_booking_with_movie_date_user", err)
					}
					return single(requesterID, booking), nil
				},
			},
			"remove_bookings_with_user_id": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{"user_id": requiredString(), "userid": requiredString()},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					message, err := bookings.RemoveAllBookings(p.Context, stringArg(p, "user_id"), stringArg(p, "userid"))
					if err != nil {
						return nil, fail("remove_bookings_with_user_id", err)
					}
					return message, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}
