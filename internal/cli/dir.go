package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/smart-selector/config"
	"github.com/gcbaptista/smart-selector/internal/catalog"
	apperrors "github.com/gcbaptista/smart-selector/internal/errors"
)

func (l *launcher) newDirCmd() *cobra.Command {
	dirCmd := &cobra.Command{
		Use:   "dir",
		Short: "Show or change the launch directory",
	}

	dirCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the launch directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), l.cfg.Launcher.LaunchDir)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <path>",
			Short: "Save a new launch directory",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				info, err := os.Stat(args[0])
				if err != nil || !info.IsDir() {
					return apperrors.NewValidationError("launch directory", fmt.Sprintf("%q must be an existing directory", args[0]))
				}
				return l.saveLaunchDir(cmd, args[0])
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Restore the default launch directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := catalog.EnsureDir(config.DefaultLaunchDir); err != nil {
					return err
				}
				return l.saveLaunchDir(cmd, config.DefaultLaunchDir)
			},
		},
	)
	return dirCmd
}

func (l *launcher) saveLaunchDir(cmd *cobra.Command, dir string) error {
	l.cfg.Launcher.LaunchDir = dir
	if err := config.Save(l.configPath, l.cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Launch directory saved: %s\n", dir)
	return nil
}
