// Package separator implements the rules, selection and generation of verse
// document separator tokens.
//
// A separator is a nonempty sequence of visible ASCII bytes (0x21..0x7E)
// declared by a document's first line and used to delimit records. Because
// record bytes are never escaped, the whole format rests on the separator
// not occurring as a complete line inside any record. This package provides
// the two ways of getting such a token:
//
//   - Select verifies: given the full record set, it grows a seed token by
//     deterministic doubling until no record contains it as a full line.
//   - Random generates: when records are streamed and cannot be inspected,
//     a cryptographically random token makes a collision vanishingly
//     unlikely instead of impossible.
//
// Basic usage:
//
//	sep, err := separator.Select([]byte("===="), records)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Streaming mode: no record set to verify against.
//	sep, err = separator.Random(16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Collision matching is exact-line: a record line that contains the
// candidate as a substring, with extra characters, does not collide. The
// record "a==b" therefore does not rule out the separator "==".
package separator
