package stream

// Option configures a Decoder.
type Option func(*options)

type options struct {
	lenient       bool
	maxRecordSize int64
}

// WithLenientSeparator accepts any nonempty first line as the literal
// separator token, skipping the byte-range check. The default policy is
// strict: a declaration line containing bytes outside 0x21..0x7E fails with
// ErrMalformedSeparator. An empty first line is rejected under either
// policy, since a zero-length separator would match every blank line.
func WithLenientSeparator() Option {
	return func(o *options) {
		o.lenient = true
	}
}

// WithMaxRecordSize bounds the bytes buffered for a single record. A record
// growing past n bytes fails with ErrRecordTooLarge. Values <= 0 mean
// unlimited, the default.
func WithMaxRecordSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxRecordSize = n
		}
	}
}

func defaultOptions() options {
	return options{}
}
