package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clinic/clinic/internal/config"
	"github.com/clinic/clinic/internal/directory"
	"github.com/clinic/clinic/internal/platform/auth"
	"github.com/clinic/clinic/internal/platform/console"
	"github.com/clinic/clinic/internal/session"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic",
		Short: "Clinic record and billing console",
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(rolesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive clinic console",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole()
		},
	}
}

func rolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "Print the role capability table",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, r := range auth.Roles() {
				fmt.Fprintf(out, "%s:\n", r.Display())
				for _, op := range auth.PermittedOperations(r) {
					fmt.Fprintf(out, "  %s\n", op)
				}
			}
			return nil
		},
	}
}

func runConsole() error {
	// Logger
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err == nil {
		logger = logger.Level(level)
	}

	dir, err := directory.New(cfg.BootstrapUsername, cfg.BootstrapPassword, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build directory")
	}

	con := console.NewReader(os.Stdin, os.Stdout)
	con.Printf("Default admin account created: username='%s', password='%s'\n",
		cfg.BootstrapUsername, cfg.BootstrapPassword)

	d := session.NewDispatcher(dir, con, logger, cfg.MaxPatientID)
	return d.Run()
}
