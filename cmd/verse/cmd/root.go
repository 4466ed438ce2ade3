package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "verse",
	Short: "Encode, decode and inspect verse documents",
	Long: `verse works with separator-delimited record documents: byte streams whose
first line declares a separator, with every exact full-line match of that
separator delimiting a record. Record bytes are never escaped or altered.

Examples:
  verse encode a.txt b.txt > out.verse
  find . -name '*.log' -print0 | verse encode -0 > logs.verse
  verse decode --dir records/ out.verse
  verse inspect out.verse`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(inspectCmd)
}

// openInput returns the single input file named in args, or stdin when args
// is empty.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", args[0], err)
	}
	return f, nil
}
