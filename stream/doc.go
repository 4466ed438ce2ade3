// Package stream implements the streaming codec for verse documents: a byte
// stream divided into records by a self-declared separator line.
//
// A document's first line declares its separator, a token of visible ASCII
// bytes. Every later line whose entire content equals that token is a
// boundary; everything between boundaries is record content, passed through
// bit for bit with no escaping, so records may contain newlines, null bytes,
// or text resembling other separators.
//
// Basic usage:
//
//	enc, err := stream.NewEncoder(w, []byte("===="))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, record := range records {
//	    if err := enc.WriteRecord(record); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	if err := enc.Flush(); err != nil {
//	    log.Fatal(err)
//	}
//
//	dec := stream.NewDecoder(r)
//	for record, err := range dec.All() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // Process record
//	}
//
// Wire format:
//
//	document   = *record
//	record     = separator LF *OCTET LF
//	separator  = 1*VCHAR          ; VCHAR = 0x21..0x7E
//
// The empty document is zero bytes. A record body is closed by the next
// boundary line or by a newline immediately before end of stream; end of
// stream directly after a boundary yields a final empty record, except
// directly after the declaration line, which is the zero-record document.
// The format has no end-of-document marker, so a stream that ends mid-record
// is reported as ErrTruncatedDocument rather than silently closed.
package stream
