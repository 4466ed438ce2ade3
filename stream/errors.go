package stream

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSeparator is returned when a document's declaration line
	// is missing (the stream ends before any newline) or fails separator
	// validation under the strict policy.
	ErrMalformedSeparator = errors.New("stream: malformed separator declaration")
	// ErrTruncatedDocument is returned when the stream ends in the middle of
	// a record, with no closing boundary and no final newline.
	ErrTruncatedDocument = errors.New("stream: document truncated mid-record")
	// ErrRecordTooLarge is returned when a record grows past the maximum
	// configured with WithMaxRecordSize.
	ErrRecordTooLarge = errors.New("stream: record exceeds maximum size")
)

// DecodeError wraps a decoding failure with the byte offset into the source
// and the index of the record being decoded at the point of failure.
type DecodeError struct {
	Offset int64
	Record int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error at offset %d, record %d: %v", e.Offset, e.Record, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TruncatedError carries the unterminated tail of a truncated document so
// callers can discard it or surface it as a warning instead of losing it.
// It matches ErrTruncatedDocument under errors.Is.
type TruncatedError struct {
	Partial []byte
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%v (%d unterminated bytes)", ErrTruncatedDocument, len(e.Partial))
}

func (e *TruncatedError) Unwrap() error {
	return ErrTruncatedDocument
}
