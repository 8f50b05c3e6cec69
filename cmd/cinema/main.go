package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/arklim/cinema-platform/internal/infra/app"
	"github.com/arklim/cinema-platform/internal/infra/config"
)

var rootCmd = &cobra.Command{
	Use:           "cinema",
	Short:         "Cinema platform services",
	Long:          `Runs one of the user, movie, schedule and booking services, or seeds their databases.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func serviceCmd(service, short string) *cobra.Command {
	return &cobra.Command{
		Use:   service,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			application, err := app.New(ctx, cfg, service)
			if err != nil {
				return fmt.Errorf("init %s service: %w", service, err)
			}
			return application.Run(ctx)
		},
	}
}

func init() {
	rootCmd.AddCommand(
		serviceCmd(app.ServiceUser, "Run the user REST service"),
		serviceCmd(app.ServiceMovie, "Run the movie GraphQL service"),
		serviceCmd(app.ServiceSchedule, "Run the schedule gRPC service"),
		serviceCmd(app.ServiceBooking, "Run the booking GraphQL service"),
		seedCmd,
	)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
