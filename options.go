package verse

import (
	"github.com/benchristel/verse-format/separator"
	"github.com/benchristel/verse-format/stream"
)

// DefaultSeed is the seed Encode starts separator selection from when no
// separator or seed is supplied.
var DefaultSeed = []byte("====")

// options defines all configuration for Encode and Decode.
type options struct {
	// Encode options
	separator    []byte // explicit separator, skipping selection
	seed         []byte // selection seed
	maxSepLength int    // selection ceiling
	randomLength int    // random separator length, 0 = select instead

	// Decode options
	lenient       bool
	maxRecordSize int64
}

// Option is a function that configures encoding or decoding.
type Option func(*options)

// WithSeparator uses sep verbatim instead of running selection. The caller
// guarantees it does not occur as a full line in any record.
func WithSeparator(sep []byte) Option {
	return func(o *options) {
		o.separator = append([]byte(nil), sep...)
	}
}

// WithSeed sets the seed for collision-free separator selection.
func WithSeed(seed []byte) Option {
	return func(o *options) {
		o.seed = append([]byte(nil), seed...)
	}
}

// WithMaxSeparatorLength bounds the selection search; exceeding it fails
// with separator.ErrSearchExhausted.
func WithMaxSeparatorLength(n int) Option {
	return func(o *options) {
		o.maxSepLength = n
	}
}

// WithRandomSeparator draws a cryptographically random separator of n
// symbols instead of running selection, the policy for content that is too
// large or too sensitive to scan. Values <= 0 use
// separator.DefaultRandomLength.
func WithRandomSeparator(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = separator.DefaultRandomLength
		}
		o.randomLength = n
	}
}

// WithLenientSeparator accepts any nonempty first line of a decoded
// document as the literal separator token, skipping the byte-range check.
func WithLenientSeparator() Option {
	return func(o *options) {
		o.lenient = true
	}
}

// WithMaxRecordSize bounds the bytes buffered per decoded record.
func WithMaxRecordSize(n int64) Option {
	return func(o *options) {
		o.maxRecordSize = n
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		seed: DefaultSeed,
	}
}

func (o *options) selectOptions() []separator.SelectOption {
	var opts []separator.SelectOption
	if o.maxSepLength > 0 {
		opts = append(opts, separator.WithMaxLength(o.maxSepLength))
	}
	return opts
}

func (o *options) streamOptions() []stream.Option {
	var opts []stream.Option
	if o.lenient {
		opts = append(opts, stream.WithLenientSeparator())
	}
	if o.maxRecordSize > 0 {
		opts = append(opts, stream.WithMaxRecordSize(o.maxRecordSize))
	}
	return opts
}
