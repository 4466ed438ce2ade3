package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/benchristel/verse-format/stream"
)

var (
	decodeNul     bool
	decodeDir     string
	decodeLenient bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Split a document into its records",
	Long: `Reads a document from the argument file or stdin and writes its records.

By default each record is written to stdout followed by a newline, which is
readable but cannot be distinguished from record content; use -0 to separate
records with NUL bytes instead. With --dir, each record is written to its
own numbered file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().BoolVarP(&decodeNul, "null", "0", false, "separate output records with NUL bytes")
	decodeCmd.Flags().StringVar(&decodeDir, "dir", "", "write each record to a numbered file in this directory")
	decodeCmd.Flags().BoolVar(&decodeLenient, "lenient", false, "accept any first line as the separator")
}

func runDecode(cmd *cobra.Command, args []string) error {
	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	var opts []stream.Option
	if decodeLenient {
		opts = append(opts, stream.WithLenientSeparator())
	}

	dec := stream.NewDecoder(in, opts...)
	i := 0
	for record, err := range dec.All() {
		if err != nil {
			return err
		}
		if err := emitRecord(i, record); err != nil {
			return err
		}
		i++
	}
	return nil
}

func emitRecord(i int, record []byte) error {
	if decodeDir != "" {
		path := filepath.Join(decodeDir, fmt.Sprintf("record-%06d", i))
		if err := os.WriteFile(path, record, 0o644); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
		return nil
	}

	if _, err := os.Stdout.Write(record); err != nil {
		return fmt.Errorf("writing record %d: %w", i, err)
	}
	terminator := byte('\n')
	if decodeNul {
		terminator = 0
	}
	if _, err := os.Stdout.Write([]byte{terminator}); err != nil {
		return fmt.Errorf("writing record %d: %w", i, err)
	}
	return nil
}
