// Package cmd provides the edurankctl commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/edurank-nepal/api/internal/config"
)

// cli holds state shared by the subcommands.
type cli struct {
	logLevel string
	logger   *zap.Logger
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "edurankctl",
		Short:         "Operator tool for the EduRank API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadEnv(); err != nil {
				return err
			}
			level, err := zapcore.ParseLevel(c.logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			logger, err := config.Config{Env: "development", LogLevel: level}.NewLogger()
			if err != nil {
				return err
			}
			c.logger = logger.Named("edurankctl")
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(newSeedCmd(c))
	root.AddCommand(newQACmd(c))
	root.AddCommand(newRankCmd(c))
	return root
}

// Execute runs the root command with a context cancelled on SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "edurankctl: %v\n", err)
		return err
	}
	return nil
}
