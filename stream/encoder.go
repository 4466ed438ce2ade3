package stream

import (
	"bufio"
	"fmt"
	"io"

	"github.com/benchristel/verse-format/separator"
)

var newline = []byte{'\n'}

// WriteRecord writes a single record to w framed by sep: the separator line
// followed by the record bytes and a closing newline. Record bytes pass
// through unmodified; it is the caller's duty, via selection or random
// generation, to guarantee no line of the record equals sep. The number of
// bytes written is returned.
func WriteRecord(w io.Writer, sep []byte, record []byte) (int64, error) {
	if err := separator.Validate(sep); err != nil {
		return 0, fmt.Errorf("stream: %w", err)
	}

	var total int64

	n, err := w.Write(sep)
	total += int64(n)
	if err != nil {
		return total, fmt.Errorf("error writing separator line: %w", err)
	}

	n, err = w.Write(newline)
	total += int64(n)
	if err != nil {
		return total, fmt.Errorf("error writing separator newline: %w", err)
	}

	n, err = w.Write(record)
	total += int64(n)
	if err != nil {
		return total, fmt.Errorf("error writing record content: %w", err)
	}

	n, err = w.Write(newline)
	total += int64(n)
	if err != nil {
		return total, fmt.Errorf("error writing record newline: %w", err)
	}

	return total, nil
}

// Encoder frames records onto a byte sink with a fixed separator. Writes are
// buffered; callers must Flush when done. An Encoder is not safe for
// concurrent use.
type Encoder struct {
	bw      *bufio.Writer
	sep     []byte
	count   int
	written int64
}

// NewEncoder returns an Encoder writing to w with the given separator,
// failing if sep violates the separator rules. The separator is fixed for
// the lifetime of the document.
func NewEncoder(w io.Writer, sep []byte) (*Encoder, error) {
	if err := separator.Validate(sep); err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}
	return &Encoder{
		bw:  bufio.NewWriter(w),
		sep: append([]byte(nil), sep...),
	}, nil
}

// Separator returns the separator the Encoder frames records with.
func (e *Encoder) Separator() []byte {
	return e.sep
}

// WriteRecord appends one record to the document.
func (e *Encoder) WriteRecord(record []byte) error {
	n, err := WriteRecord(e.bw, e.sep, record)
	e.written += n
	if err != nil {
		return fmt.Errorf("failed to write record %d: %w", e.count, err)
	}
	e.count++
	return nil
}

// Flush writes any buffered bytes to the underlying sink.
func (e *Encoder) Flush() error {
	if err := e.bw.Flush(); err != nil {
		return fmt.Errorf("stream: flushing sink: %w", err)
	}
	return nil
}

// Count returns the number of records written.
func (e *Encoder) Count() int {
	return e.count
}

// BytesWritten returns the number of bytes framed so far, including any
// still buffered.
func (e *Encoder) BytesWritten() int64 {
	return e.written
}
