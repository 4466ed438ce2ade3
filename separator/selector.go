package separator

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/google/btree"
)

// DefaultMaxLength bounds the iterative-lengthening search. An adversarial
// record containing lines of the seed at every doubled length can force the
// candidate to grow until it is longer than the longest such line; the
// ceiling turns that into an error instead of an arbitrarily long separator.
const DefaultMaxLength = 4096

// ErrSearchExhausted is returned when no collision-free candidate exists
// within the configured maximum separator length.
var ErrSearchExhausted = errors.New("separator: search exceeded maximum separator length")

// SelectOption configures Select.
type SelectOption func(*selectOptions)

type selectOptions struct {
	maxLength int
}

// WithMaxLength sets the ceiling on the length of a selected separator.
// Values <= 0 leave the default in place.
func WithMaxLength(n int) SelectOption {
	return func(o *selectOptions) {
		if n > 0 {
			o.maxLength = n
		}
	}
}

func defaultSelectOptions() selectOptions {
	return selectOptions{maxLength: DefaultMaxLength}
}

// lineIndex is an ordered set of every distinct full line occurring in a
// record set. A candidate separator collides iff it is present here:
// matching is exact-line, so a line that merely contains the candidate as a
// substring is not a collision.
type lineIndex struct {
	tree    *btree.BTreeG[string]
	longest int
}

func indexLines(records [][]byte) *lineIndex {
	idx := &lineIndex{
		tree: btree.NewG[string](2, func(a, b string) bool { return a < b }),
	}
	for _, record := range records {
		for _, line := range bytes.Split(record, []byte{'\n'}) {
			if len(line) > idx.longest {
				idx.longest = len(line)
			}
			idx.tree.ReplaceOrInsert(string(line))
		}
	}
	return idx
}

func (idx *lineIndex) collides(candidate []byte) bool {
	return idx.tree.Has(string(candidate))
}

// Select finds a separator that does not occur as a complete line inside any
// of the given records, so line-based delimiting of that record set is
// unambiguous.
//
// The search starts from seed and lengthens it deterministically, doubling
// the candidate by self-concatenation until it is collision free. The same
// seed and record set always yield the same separator. Termination is
// guaranteed: a collision requires the candidate to equal some line of some
// record, so once the candidate is longer than the longest line no collision
// is possible, after at most O(log(maxLineLength/len(seed))) doublings.
//
// Select fails with ErrSearchExhausted when a collision-free candidate would
// exceed the configured maximum length (WithMaxLength, default
// DefaultMaxLength).
func Select(seed []byte, records [][]byte, opts ...SelectOption) ([]byte, error) {
	if err := Validate(seed); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}

	o := defaultSelectOptions()
	for _, opt := range opts {
		opt(&o)
	}

	idx := indexLines(records)

	candidate := append([]byte(nil), seed...)
	for {
		if !idx.collides(candidate) {
			return candidate, nil
		}
		if len(candidate)*2 > o.maxLength {
			return nil, fmt.Errorf("%w: seed %q would grow past %d bytes", ErrSearchExhausted, seed, o.maxLength)
		}
		candidate = append(candidate, candidate...)
	}
}
