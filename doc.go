// Package verse encodes and decodes verse documents: byte streams divided
// into records by a separator line that the document itself declares.
//
// The format performs no transformation of record bytes. Instead of escaping
// record content, the encoder picks a separator that cannot collide with it:
// either verified against the full record set by iterative lengthening, or
// drawn from a cryptographically secure source when records are streamed.
// The decoder reads the separator from the first line and splits on exact
// full-line matches of it.
//
//	====
//	this is record 1
//	====
//	this is record 2,
//	which has multiple lines.
//	====
//
// This package is the batch convenience layer. The stream package holds the
// incremental Encoder and Decoder, the separator package the token rules,
// selection and generation, and the nesting package recursive composition of
// documents inside records.
package verse
