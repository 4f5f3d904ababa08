package main

import (
	"fmt"
	"log/slog"
	"os"
	_ "time/tzdata" // IANA zones for REPORT_TIMEZONE and ?tz= on minimal images

	"github.com/spf13/cobra"
)

// @title Budget Tracker API
// @version 1.0
// @description Income and expense tracking with budget reports.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := newRootCmd(logger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "budget_backend",
		Short: "Personal income and expense tracker",
		Long: `Budget Backend records income and expense transactions per user and
serves period summaries, daily series, category breakdowns and budget utilization.`,
		SilenceUsage: true,
		// Running without a subcommand starts the API server.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), logger)
		},
	}

	rootCmd.AddCommand(
		newServeCmd(logger),
		newMigrateCmd(logger),
		newReportCmd(),
		newTokenCmd(),
	)
	return rootCmd
}
