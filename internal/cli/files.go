package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (l *launcher) newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List the files available in the launch directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := l.candidates().Files()
			if err != nil {
				return err
			}
			printFiles(cmd.OutOrStdout(), files)
			return nil
		},
	}
}

func printFiles(out io.Writer, files []string) {
	fmt.Fprintln(out, "Files available for word-file association...")
	fmt.Fprintln(out, "-----------------------------------------------")
	for _, file := range files {
		fmt.Fprintln(out, file)
	}
}
