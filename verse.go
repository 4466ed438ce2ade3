package verse

import (
	"fmt"
	"io"

	"github.com/benchristel/verse-format/separator"
	"github.com/benchristel/verse-format/stream"
)

// Encode writes records to w as a single document and returns the separator
// it used. Unless WithSeparator or WithRandomSeparator override it, the
// separator is selected by iterative lengthening from the seed, so it is
// guaranteed not to occur as a full line in any record. Zero records produce
// zero bytes and a nil separator: the empty document.
func Encode(w io.Writer, records [][]byte, opts ...Option) ([]byte, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(records) == 0 {
		return nil, nil
	}

	sep, err := chooseSeparator(&o, records)
	if err != nil {
		return nil, err
	}

	enc, err := stream.NewEncoder(w, sep)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if err := enc.WriteRecord(record); err != nil {
			return nil, err
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return sep, nil
}

func chooseSeparator(o *options, records [][]byte) ([]byte, error) {
	switch {
	case o.separator != nil:
		if err := separator.Validate(o.separator); err != nil {
			return nil, fmt.Errorf("verse: %w", err)
		}
		return o.separator, nil
	case o.randomLength > 0:
		return separator.Random(o.randomLength)
	default:
		return separator.Select(o.seed, records, o.selectOptions()...)
	}
}

// Decode reads an entire document from r and returns its records in order,
// each bit-for-bit identical to what was encoded. On failure it returns the
// records decoded so far along with the error, so a truncated document's
// complete records are not lost.
func Decode(r io.Reader, opts ...Option) ([][]byte, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := stream.NewDecoder(r, o.streamOptions()...)
	var records [][]byte
	for record, err := range d.All() {
		if err != nil {
			return records, err
		}
		records = append(records, record)
	}
	return records, nil
}
