package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/smart-selector/internal/catalog"
)

const prompt = ">>> "

func (l *launcher) newInteractiveCmd() *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Launch files from phrases typed one per line",
		Long: `Reads one phrase per line and launches the matching file. The list of
candidate files is kept current while the session runs. Type "surprise" for a
random keyword, or "quit" to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := l.cfg.Launcher.LaunchDir
			if err := catalog.EnsureDir(dir); err != nil {
				return err
			}

			watcher, err := catalog.NewWatcher(catalog.WatcherConfig{
				Dir:     dir,
				Exclude: l.cfg.Launcher.Exclude,
				OnRefresh: func(files []string, err error) {
					if err == nil {
						log.Printf("Launch directory %s holds %d files", dir, len(files))
					}
				},
			})
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			g, gctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				return watcher.Start(gctx)
			})

			lines, readErr := readLines(gctx, cmd.InOrStdin())

			g.Go(func() error {
				defer cancel()
				out := cmd.OutOrStdout()

				fmt.Fprint(out, prompt)
				for {
					var line string
					select {
					case <-gctx.Done():
						return nil
					case text, ok := <-lines:
						if !ok {
							return <-readErr
						}
						line = strings.TrimSpace(text)
					}

					var err error
					switch line {
					case "":
					case "quit", "exit":
						return nil
					case "surprise":
						err = l.surprise(gctx, out, open)
					default:
						err = l.launch(gctx, out, watcher, line, open)
					}
					if err != nil {
						fmt.Fprintf(out, "Error: %v\n", err)
					}
					fmt.Fprint(out, prompt)
				}
			})

			return g.Wait()
		},
	}
	cmd.Flags().BoolVar(&open, "open", false, "Open chosen files with the system opener")
	return cmd
}

// readLines scans r on its own goroutine so callers can stop waiting for
// input when ctx is cancelled. The lines channel is closed once scanning
// stops; the error channel then holds the scanner error, if any. A read that
// is blocked when ctx is cancelled keeps its goroutine until r returns.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}
