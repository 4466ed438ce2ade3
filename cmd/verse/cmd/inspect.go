package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/benchristel/verse-format/stream"
)

var inspectLenient bool

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Report a document's separator and record layout",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectLenient, "lenient", false, "accept any first line as the separator")
}

func runInspect(cmd *cobra.Command, args []string) error {
	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	var opts []stream.Option
	if inspectLenient {
		opts = append(opts, stream.WithLenientSeparator())
	}

	dec := stream.NewDecoder(in, opts...)
	sep, err := dec.Separator()
	if err != nil {
		if err == io.EOF {
			fmt.Println("empty document: 0 records")
			return nil
		}
		return err
	}
	fmt.Printf("separator: %q\n", sep)

	count := 0
	for record, err := range dec.All() {
		if err != nil {
			var trunc *stream.TruncatedError
			if errors.As(err, &trunc) {
				fmt.Printf("record %d: TRUNCATED, %d unterminated bytes\n", count, len(trunc.Partial))
			}
			return err
		}
		fmt.Printf("record %d: %d bytes (offset %d)\n", count, len(record), dec.InputOffset())
		count++
	}
	fmt.Printf("%d records, %d bytes\n", count, dec.InputOffset())
	return nil
}
