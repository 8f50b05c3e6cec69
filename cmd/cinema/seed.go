package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/arklim/cinema-platform/internal/infra/app"
	"github.com/arklim/cinema-platform/internal/infra/config"
	"github.com/arklim/cinema-platform/internal/infra/logger"
	mongoinfra "github.com/arklim/cinema-platform/internal/infra/mongodb"
	"github.com/arklim/cinema-platform/internal/infra/seed"
	mongorepo "github.com/arklim/cinema-platform/internal/repository/mongodb"
)

var seedServices []string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo data set into MongoDB",
	Long:  `Inserts the demo users, movies, schedules and bookings. Records that already exist are kept.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log, err := logger.New(cfg.App.Env, "seed")
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		fixtures, err := seed.Load()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		for _, service := range seedServices {
			database, err := app.DatabaseFor(cfg.Mongo, service)
			if err != nil {
				return err
			}
			client, err := mongoinfra.NewClient(ctx, cfg.Mongo, database, log)
			if err != nil {
				return fmt.Errorf("connect %s: %w", database, err)
			}

			repos, indexer := repositoriesFor(service, client.Database())
			err = indexer.EnsureIndexes(ctx)
			var report seed.Report
			if err == nil {
				report, err = seed.Run(ctx, repos, fixtures, log)
			}
			_ = client.Close(ctx)
			if err != nil {
				return fmt.Errorf("seed %s: %w", database, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d inserted, %d already present\n", database, report.Inserted, report.Skipped)
		}
		return nil
	},
}

// repositoriesFor returns the repository of the collection service owns, with its index setup.
func repositoriesFor(service string, db *mongo.Database) (seed.Repositories, mongorepo.Indexer) {
	switch service {
	case app.ServiceUser:
		repo := mongorepo.NewUserRepository(db)
		return seed.Repositories{Users: repo}, repo
	case app.ServiceMovie:
		repo := mongorepo.NewMovieRepository(db)
		return seed.Repositories{Movies: repo}, repo
	case app.ServiceSchedule:
		repo := mongorepo.NewScheduleRepository(db)
		return seed.Repositories{Schedules: repo}, repo
	default:
		repo := mongorepo.NewBookingRepository(db)
		return seed.Repositories{Bookings: repo}, repo
	}
}

func init() {
	seedCmd.Flags().StringSliceVar(&seedServices, "services",
		[]string{app.ServiceUser, app.ServiceMovie, app.ServiceSchedule, app.ServiceBooking},
		"service databases to seed")
}
