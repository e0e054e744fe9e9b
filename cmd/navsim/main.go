package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var level string
	c := &cobra.Command{
		Use:           "navsim",
		Short:         "grid pathfinding and steering tools",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			log.SetLevel(lvl)
			return nil
		},
	}
	c.PersistentFlags().StringVar(&level, "log-level", "info", "debug, info, warn or error")
	c.AddCommand(PathCmd(), RunCmd(), ViewCmd())
	return c
}

func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
		Level:           log.GetLevel(),
	})
}
