package stream

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"

	"github.com/benchristel/verse-format/separator"
)

// Decoder states. Separator discovery is a stateful first step, not part of
// the record grammar: the declaration can only be recognized by reading the
// stream's first line.
type state int

const (
	stateAwaitSeparator state = iota
	stateRecords
	stateClosed
	stateFailed
)

// Decoder splits a byte source into records, discovering the separator from
// the stream's first line. It buffers at most the current unresolved line
// across reads, so sources that deliver data incrementally are handled
// without rescanning.
//
// A Decoder is not safe for concurrent use. Records are produced in the
// order they appear in the stream. Abandoning a Decoder is the only form of
// cancellation; it holds no resources beyond its source.
type Decoder struct {
	br   *bufio.Reader
	opts options

	state  state
	sep    []byte
	offset int64
	index  int
	err    error

	lineBuf []byte
}

// NewDecoder returns a Decoder reading from r. No bytes are consumed until
// the first call to Next, All or Separator.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Decoder{
		br:   bufio.NewReader(r),
		opts: o,
	}
}

// Separator returns the document's separator token, reading the declaration
// line if it has not been read yet. It returns io.EOF for the empty
// document (zero bytes, zero records), which has no separator. The returned
// slice must not be modified.
func (d *Decoder) Separator() ([]byte, error) {
	if err := d.readSeparator(); err != nil {
		return nil, err
	}
	return d.sep, nil
}

// InputOffset returns the number of bytes consumed from the source.
func (d *Decoder) InputOffset() int64 {
	return d.offset
}

// RecordIndex returns the number of records decoded so far.
func (d *Decoder) RecordIndex() int {
	return d.index
}

// Next returns the next record's bytes, exactly as they were written: no
// escaping is removed because none is ever applied. After the final record
// it returns io.EOF.
//
// A line delimits if and only if its entire content equals the separator
// token; lines containing the token with extra characters are record
// content. The stream ending mid-record, with no closing newline, fails
// with an error matching ErrTruncatedDocument that carries the unterminated
// tail. Failures are sticky and wrapped in *DecodeError with the byte
// offset and record index.
func (d *Decoder) Next() ([]byte, error) {
	if err := d.readSeparator(); err != nil {
		return nil, err
	}
	if d.state == stateClosed {
		return nil, io.EOF
	}

	var content []byte
	lines := 0
	for {
		line, sawNL, err := d.readLine()
		if err != nil && err != io.EOF {
			return nil, d.fail(err)
		}

		if sawNL {
			if bytes.Equal(line, d.sep) {
				// Boundary. The newlines on either side of it belong to the
				// framing, not to the records.
				d.index++
				if lines == 0 {
					return []byte{}, nil
				}
				return content[:len(content)-1], nil
			}
			content = append(content, line...)
			content = append(content, '\n')
			lines++
			if d.opts.maxRecordSize > 0 && int64(len(content))-1 > d.opts.maxRecordSize {
				return nil, d.fail(fmt.Errorf("%w: %d bytes buffered, limit %d", ErrRecordTooLarge, len(content)-1, d.opts.maxRecordSize))
			}
			continue
		}

		// The source is exhausted.
		if len(line) > 0 {
			partial := append(content, line...)
			return nil, d.fail(&TruncatedError{Partial: partial})
		}
		d.state = stateClosed
		if lines == 0 {
			if d.index == 0 {
				// End of stream directly after the declaration line: the
				// document has zero records.
				return nil, io.EOF
			}
			// End of stream directly after a boundary: a final empty record.
			d.index++
			return []byte{}, nil
		}
		// The final record's body ends at the newline before end of stream.
		d.index++
		return content[:len(content)-1], nil
	}
}

// All returns an iterator over the document's records. A terminal failure is
// yielded once with a nil record; clean end of document stops the iteration
// without yielding.
func (d *Decoder) All() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			record, err := d.Next()
			if err != nil {
				if err != io.EOF {
					yield(nil, err)
				}
				return
			}
			if !yield(record, nil) {
				return
			}
		}
	}
}

func (d *Decoder) readSeparator() error {
	switch d.state {
	case stateRecords:
		return nil
	case stateFailed:
		return d.err
	case stateClosed:
		if d.sep == nil {
			return io.EOF
		}
		return nil
	}

	line, sawNL, err := d.readLine()
	if err != nil && err != io.EOF {
		return d.fail(err)
	}
	if !sawNL {
		if len(line) == 0 {
			// Zero bytes: the empty document.
			d.state = stateClosed
			return io.EOF
		}
		return d.fail(fmt.Errorf("%w: stream ended before the declaration line's newline", ErrMalformedSeparator))
	}
	if d.opts.lenient {
		// Lenient mode takes any first line verbatim, but an empty token
		// would make every blank line a boundary.
		if len(line) == 0 {
			return d.fail(fmt.Errorf("%w: %v", ErrMalformedSeparator, separator.ErrEmpty))
		}
	} else if verr := separator.Validate(line); verr != nil {
		return d.fail(fmt.Errorf("%w: %v", ErrMalformedSeparator, verr))
	}
	d.sep = append([]byte(nil), line...)
	d.state = stateRecords
	return nil
}

// readLine reads the next line from the source, carrying partial-line state
// across short reads. The returned line excludes its newline; sawNL false
// means the source ended first, with err set to io.EOF.
func (d *Decoder) readLine() (line []byte, sawNL bool, err error) {
	d.lineBuf = d.lineBuf[:0]
	for {
		frag, err := d.br.ReadSlice('\n')
		d.lineBuf = append(d.lineBuf, frag...)
		d.offset += int64(len(frag))
		switch {
		case err == nil:
			return d.lineBuf[:len(d.lineBuf)-1], true, nil
		case err == bufio.ErrBufferFull:
			if d.opts.maxRecordSize > 0 && int64(len(d.lineBuf)) > d.opts.maxRecordSize {
				return nil, false, fmt.Errorf("%w: line of %d bytes, limit %d", ErrRecordTooLarge, len(d.lineBuf), d.opts.maxRecordSize)
			}
		case err == io.EOF:
			return d.lineBuf, false, io.EOF
		default:
			return nil, false, fmt.Errorf("reading source: %w", err)
		}
	}
}

func (d *Decoder) fail(err error) error {
	d.state = stateFailed
	d.err = &DecodeError{
		Offset: d.offset,
		Record: d.index,
		Err:    err,
	}
	return d.err
}
