package stream_test

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/benchristel/verse-format/stream"
)

// ExampleEncoder demonstrates framing records onto a sink.
func ExampleEncoder() {
	var buf bytes.Buffer
	enc, err := stream.NewEncoder(&buf, []byte("===="))
	if err != nil {
		log.Fatal(err)
	}

	for _, record := range []string{"this is record 1", "this is record 2,\nwhich has multiple lines."} {
		if err := enc.WriteRecord([]byte(record)); err != nil {
			log.Fatal(err)
		}
	}
	if err := enc.Flush(); err != nil {
		log.Fatal(err)
	}

	fmt.Print(buf.String())

	// Output:
	// ====
	// this is record 1
	// ====
	// this is record 2,
	// which has multiple lines.
}

// ExampleDecoder_All demonstrates splitting a document into records.
func ExampleDecoder_All() {
	input := "====\nthis is record 1\n====\nthis is record 2,\nwhich has multiple lines.\n====\n\n====\n"
	dec := stream.NewDecoder(strings.NewReader(input))

	for record, err := range dec.All() {
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%q\n", record)
	}

	// Output:
	// "this is record 1"
	// "this is record 2,\nwhich has multiple lines."
	// ""
	// ""
}
