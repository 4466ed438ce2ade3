// Package nesting composes verse documents recursively: an outer record's
// payload may itself be a well-formed document using its own separator.
//
// Nesting is a caller-side convention. The wire format carries no depth
// marker, so the application must know which records hold embedded
// documents and feed them back through Open. Each level is an independent
// encoder/decoder pair; the only cross-level obligation is that a level's
// separator must not occur as a full line of its payloads, which Encode's
// bottom-up materialization handles when separators are selected rather
// than supplied.
//
//	doc := &nesting.Document{Records: []nesting.Record{
//	    {Bytes: []byte("plain record")},
//	    {Child: &nesting.Document{Records: []nesting.Record{
//	        {Bytes: []byte("inner record")},
//	    }}},
//	}}
//	sep, err := nesting.Encode(w, doc)
package nesting
