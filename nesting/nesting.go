package nesting

import (
	"bytes"
	"fmt"
	"io"

	"github.com/benchristel/verse-format/separator"
	"github.com/benchristel/verse-format/stream"
)

// Document is one level of a nested composition: an ordered set of records
// delimited by one separator. Leave Separator nil to have Encode select one.
type Document struct {
	Separator []byte
	Records   []Record
}

// Record is a single record at one nesting level: either leaf bytes or an
// embedded child document. Exactly one of the two should be set; a non-nil
// Child wins.
type Record struct {
	Bytes []byte
	Child *Document
}

// Option configures Encode's per-level separator selection.
type Option func(*options)

type options struct {
	seed      []byte
	maxLength int
}

// WithSeed sets the selection seed used at every level whose Separator is
// nil.
func WithSeed(seed []byte) Option {
	return func(o *options) {
		o.seed = append([]byte(nil), seed...)
	}
}

// WithMaxSeparatorLength bounds selection at every level.
func WithMaxSeparatorLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

func defaultOptions() options {
	return options{seed: []byte("====")}
}

// Encode writes doc to w, materializing child documents bottom-up: each
// child is encoded with its own separator and embedded verbatim as a record
// of its parent. Because children are materialized before a level's
// separator is selected, selection at the outer level automatically avoids
// every boundary line of the documents nested inside it. The wire format
// carries no depth marker; readers must know the nesting schema out of band.
//
// Encode returns the separator used at the top level.
func Encode(w io.Writer, doc *Document, opts ...Option) ([]byte, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return encode(w, doc, &o)
}

func encode(w io.Writer, doc *Document, o *options) ([]byte, error) {
	payloads, err := materialize(doc, o)
	if err != nil {
		return nil, err
	}

	sep := doc.Separator
	if sep == nil {
		var serr error
		sep, serr = separator.Select(o.seed, payloads, o.selectOptions()...)
		if serr != nil {
			return nil, serr
		}
	}

	enc, err := stream.NewEncoder(w, sep)
	if err != nil {
		return nil, err
	}
	for _, payload := range payloads {
		if err := enc.WriteRecord(payload); err != nil {
			return nil, err
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return sep, nil
}

// Select fills in the separator of doc and of every nested child whose
// Separator is nil, without emitting any bytes. Children are materialized
// bottom-up so each level's selection runs against its payloads exactly as
// Encode will frame them; separators already set are left alone. The seed
// argument overrides any WithSeed option; pass nil to keep the default.
func Select(doc *Document, seed []byte, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if seed != nil {
		o.seed = append([]byte(nil), seed...)
	}
	return selectSeparators(doc, &o)
}

func selectSeparators(doc *Document, o *options) error {
	for i, record := range doc.Records {
		if record.Child == nil {
			continue
		}
		if err := selectSeparators(record.Child, o); err != nil {
			return fmt.Errorf("nesting: selecting for child of record %d: %w", i, err)
		}
	}
	if doc.Separator != nil {
		return nil
	}
	payloads, err := materialize(doc, o)
	if err != nil {
		return err
	}
	sep, err := separator.Select(o.seed, payloads, o.selectOptions()...)
	if err != nil {
		return err
	}
	doc.Separator = sep
	return nil
}

func materialize(doc *Document, o *options) ([][]byte, error) {
	payloads := make([][]byte, 0, len(doc.Records))
	for i, record := range doc.Records {
		if record.Child == nil {
			payloads = append(payloads, record.Bytes)
			continue
		}
		var buf bytes.Buffer
		if _, err := encode(&buf, record.Child, o); err != nil {
			return nil, fmt.Errorf("nesting: encoding child of record %d: %w", i, err)
		}
		payloads = append(payloads, buf.Bytes())
	}
	return payloads, nil
}

func (o *options) selectOptions() []separator.SelectOption {
	var opts []separator.SelectOption
	if o.maxLength > 0 {
		opts = append(opts, separator.WithMaxLength(o.maxLength))
	}
	return opts
}

// Open returns a Decoder over an outer record's payload, for reading a
// document embedded at the next depth. Each level is an independent Decoder
// with its own separator; the adapter adds no wire-level guarantees beyond
// what each level's selection already provides.
func Open(record []byte, opts ...stream.Option) *stream.Decoder {
	return stream.NewDecoder(bytes.NewReader(record), opts...)
}
