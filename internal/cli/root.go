// Package cli implements the smart-launcher command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/smart-selector/config"
	"github.com/gcbaptista/smart-selector/internal/selector"
)

// launcher holds the flags and resolved configuration shared by every command.
type launcher struct {
	configPath string
	dirFlag    string
	serverFlag string

	cfg    *config.Config
	opener func(path string) error
	rng    selector.RandomSource
}

func newLauncher() *launcher {
	return &launcher{
		opener: openWithSystem,
		rng:    selector.NewLockedSource(0),
	}
}

// Execute runs the CLI.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd(newLauncher()).ExecuteContext(ctx)
}

func newRootCmd(l *launcher) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "smart-launcher",
		Short: "Smart Launcher - open files by describing them",
		Long: `Smart Launcher opens files from a launch directory by matching a phrase
against their names. The matching is done by the smart-selector service;
when it does not answer in time the configured default file is used.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(l.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if l.dirFlag != "" {
				cfg.Launcher.LaunchDir = l.dirFlag
			}
			if l.serverFlag != "" {
				cfg.Launcher.ServerURL = l.serverFlag
			}
			l.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&l.configPath, "config", config.DefaultPath, "Path to config file")
	rootCmd.PersistentFlags().StringVar(&l.dirFlag, "dir", "", "Launch directory (overrides the saved one)")
	rootCmd.PersistentFlags().StringVar(&l.serverFlag, "server", "", "Association service URL")

	rootCmd.AddCommand(
		l.newMatchCmd(),
		l.newSurpriseCmd(),
		l.newFilesCmd(),
		l.newInteractiveCmd(),
		l.newDirCmd(),
	)
	return rootCmd
}
