package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/smart-selector/internal/association"
	"github.com/gcbaptista/smart-selector/internal/catalog"
	"github.com/gcbaptista/smart-selector/internal/client"
	"github.com/gcbaptista/smart-selector/internal/selector"
	"github.com/gcbaptista/smart-selector/services"
)

func (l *launcher) newMatchCmd() *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "match <query...>",
		Short: "Launch the file that best matches a phrase",
		Long: `Sends the phrase and the files of the launch directory to the
association service and prints the chosen file.

Examples:
  smart-launcher match I want to see my dog
  smart-launcher match --open alf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lister := l.candidates()
			return l.launch(cmd.Context(), cmd.OutOrStdout(), lister, strings.Join(args, " "), open)
		},
	}
	cmd.Flags().BoolVar(&open, "open", false, "Open the chosen file with the system opener")
	return cmd
}

func (l *launcher) newSurpriseCmd() *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "surprise",
		Short: "Launch a file matched by a random keyword",
		Long: `Picks a random keyword from the names of the files in the launch
directory and launches the file that keyword matches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return l.surprise(cmd.Context(), cmd.OutOrStdout(), open)
		},
	}
	cmd.Flags().BoolVar(&open, "open", false, "Open the chosen file with the system opener")
	return cmd
}

// launch asks the service for the file matching query among the lister's
// files and prints its path, opening it when requested.
func (l *launcher) launch(ctx context.Context, out io.Writer, lister services.CandidateLister, query string, open bool) error {
	files, err := lister.Files()
	if err != nil {
		return err
	}

	c := client.New(l.cfg.Launcher)
	defer c.Close()

	choice := c.Choose(ctx, query, files)
	if choice.Fallback && !slices.Contains(files, choice.File) {
		fmt.Fprintln(out, "No files that match that string were detected.")
		printFiles(out, files)
		return nil
	}

	path := filepath.Join(l.cfg.Launcher.LaunchDir, choice.File)
	if choice.Fallback {
		fmt.Fprintf(out, "%s (default: %s)\n", path, choice.Reason)
	} else {
		fmt.Fprintln(out, path)
	}

	if open {
		if err := l.opener(path); err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
	}
	return nil
}

// candidates lists the launch directory on every call.
func (l *launcher) candidates() catalog.Dir {
	return catalog.Dir{Path: l.cfg.Launcher.LaunchDir, Exclude: l.cfg.Launcher.Exclude}
}

func (l *launcher) surprise(ctx context.Context, out io.Writer, open bool) error {
	lister := l.candidates()
	files, err := lister.Files()
	if err != nil {
		return err
	}

	c := client.New(l.cfg.Launcher)
	keywords, err := c.Keywords(ctx, files)
	c.Close()
	if err != nil {
		log.Printf("Warning: Keywords unavailable from service, extracting locally: %v", err)
		keywords = association.NewService(l.cfg.Matcher, l.rng).Keywords(files)
	}

	if len(keywords) == 0 {
		fmt.Fprintln(out, "No keywords found in the launch directory.")
		return nil
	}

	keyword := selector.Pick(keywords, l.rng)
	fmt.Fprintf(out, "Surprise keyword: %s\n", keyword)
	return l.launch(ctx, out, lister, keyword, open)
}
