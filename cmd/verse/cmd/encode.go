package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	verse "github.com/benchristel/verse-format"
)

var (
	encodeSeparator string
	encodeSeed      string
	encodeRandom    int
	encodeMaxSep    int
	encodeNul       bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file...]",
	Short: "Combine inputs into a single document",
	Long: `Each argument file becomes one record of the output document, written to
stdout. With no arguments, records are read from stdin; use -0 to split them
on NUL bytes (as produced by find -print0), otherwise stdin is a single
record.

The separator is selected against the record content unless --separator or
--random overrides that.`,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeSeparator, "separator", "s", "", "use this separator instead of selecting one")
	encodeCmd.Flags().StringVar(&encodeSeed, "seed", "====", "seed for collision-free separator selection")
	encodeCmd.Flags().IntVar(&encodeRandom, "random", 0, "use a random separator of this many characters")
	encodeCmd.Flags().IntVar(&encodeMaxSep, "max-separator-length", 0, "fail selection beyond this separator length")
	encodeCmd.Flags().BoolVarP(&encodeNul, "null", "0", false, "split stdin records on NUL bytes")
}

func runEncode(cmd *cobra.Command, args []string) error {
	records, err := gatherRecords(args)
	if err != nil {
		return err
	}

	opts := []verse.Option{verse.WithSeed([]byte(encodeSeed))}
	if encodeSeparator != "" {
		opts = append(opts, verse.WithSeparator([]byte(encodeSeparator)))
	}
	if encodeRandom > 0 {
		opts = append(opts, verse.WithRandomSeparator(encodeRandom))
	}
	if encodeMaxSep > 0 {
		opts = append(opts, verse.WithMaxSeparatorLength(encodeMaxSep))
	}

	if _, err := verse.Encode(os.Stdout, records, opts...); err != nil {
		return err
	}
	return nil
}

func gatherRecords(args []string) ([][]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		if len(data) == 0 {
			return nil, nil
		}
		if !encodeNul {
			return [][]byte{data}, nil
		}
		return bytes.Split(bytes.TrimSuffix(data, []byte{0}), []byte{0}), nil
	}

	records := make([][]byte, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		records = append(records, data)
	}
	return records, nil
}
