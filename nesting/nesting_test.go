package nesting_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchristel/verse-format/nesting"
	"github.com/benchristel/verse-format/stream"
)

func readAll(t *testing.T, d *stream.Decoder) [][]byte {
	t.Helper()
	var records [][]byte
	for {
		record, err := d.Next()
		if err == io.EOF {
			return records
		}
		require.NoError(t, err)
		records = append(records, record)
	}
}

func TestEncodeTwoLevels(t *testing.T) {
	doc := &nesting.Document{
		Records: []nesting.Record{
			{Bytes: []byte("plain outer record")},
			{Child: &nesting.Document{
				Records: []nesting.Record{
					{Bytes: []byte("inner record 1")},
					{Bytes: []byte("inner record 2")},
				},
			}},
		},
	}

	var buf bytes.Buffer
	outerSep, err := nesting.Encode(&buf, doc)
	require.NoError(t, err)

	// The inner document's boundary lines are part of the outer payload,
	// so outer selection must have lengthened past the inner separator.
	assert.Equal(t, "========", string(outerSep))

	outer := readAll(t, nesting.Open(buf.Bytes()))
	require.Len(t, outer, 2)
	assert.Equal(t, "plain outer record", string(outer[0]))

	inner := nesting.Open(outer[1])
	innerSep, err := inner.Separator()
	require.NoError(t, err)
	assert.Equal(t, "====", string(innerSep))

	innerRecords := readAll(t, inner)
	require.Len(t, innerRecords, 2)
	assert.Equal(t, "inner record 1", string(innerRecords[0]))
	assert.Equal(t, "inner record 2", string(innerRecords[1]))
}

func TestEncodeThreeLevels(t *testing.T) {
	doc := &nesting.Document{
		Records: []nesting.Record{
			{Child: &nesting.Document{
				Records: []nesting.Record{
					{Child: &nesting.Document{
						Records: []nesting.Record{
							{Bytes: []byte("deepest")},
						},
					}},
				},
			}},
		},
	}

	var buf bytes.Buffer
	sep, err := nesting.Encode(&buf, doc)
	require.NoError(t, err)
	// Each level doubles past the boundaries of the level it embeds.
	assert.Equal(t, "================", string(sep))

	level1 := readAll(t, nesting.Open(buf.Bytes()))
	require.NotEmpty(t, level1)
	level2 := readAll(t, nesting.Open(level1[0]))
	require.NotEmpty(t, level2)
	level3 := readAll(t, nesting.Open(level2[0]))
	require.NotEmpty(t, level3)
	assert.Equal(t, "deepest", string(level3[0]))
}

func TestEncodeExplicitSeparators(t *testing.T) {
	doc := &nesting.Document{
		Separator: []byte("OUTER"),
		Records: []nesting.Record{
			{Child: &nesting.Document{
				Separator: []byte("INNER"),
				Records: []nesting.Record{
					{Bytes: []byte("payload")},
				},
			}},
		},
	}

	var buf bytes.Buffer
	sep, err := nesting.Encode(&buf, doc)
	require.NoError(t, err)
	assert.Equal(t, "OUTER", string(sep))

	outer := readAll(t, nesting.Open(buf.Bytes()))
	require.NotEmpty(t, outer)
	inner := readAll(t, nesting.Open(outer[0]))
	require.NotEmpty(t, inner)
	assert.Equal(t, "payload", string(inner[0]))
}

func TestEncodeLeafOnly(t *testing.T) {
	doc := &nesting.Document{
		Records: []nesting.Record{
			{Bytes: []byte("a")},
			{Bytes: []byte("b")},
		},
	}

	var buf bytes.Buffer
	sep, err := nesting.Encode(&buf, doc)
	require.NoError(t, err)
	assert.Equal(t, "====", string(sep))
	assert.Equal(t, "====\na\n====\nb\n", buf.String())
}

func TestSelect(t *testing.T) {
	doc := &nesting.Document{
		Records: []nesting.Record{
			{Bytes: []byte("plain outer record")},
			{Child: &nesting.Document{
				Records: []nesting.Record{
					{Bytes: []byte("inner record 1")},
					{Bytes: []byte("inner record 2")},
				},
			}},
		},
	}

	require.NoError(t, nesting.Select(doc, nil))

	// Bottom-up: the child gets the seed unchanged, the outer level must
	// lengthen past the child's boundary lines.
	assert.Equal(t, "====", string(doc.Records[1].Child.Separator))
	assert.Equal(t, "========", string(doc.Separator))

	// Encoding the pre-selected document matches selecting during Encode.
	var preSelected, direct bytes.Buffer
	sep, err := nesting.Encode(&preSelected, doc)
	require.NoError(t, err)
	assert.Equal(t, "========", string(sep))

	fresh := &nesting.Document{
		Records: []nesting.Record{
			{Bytes: []byte("plain outer record")},
			{Child: &nesting.Document{
				Records: []nesting.Record{
					{Bytes: []byte("inner record 1")},
					{Bytes: []byte("inner record 2")},
				},
			}},
		},
	}
	_, err = nesting.Encode(&direct, fresh)
	require.NoError(t, err)
	assert.Equal(t, direct.String(), preSelected.String())
}

func TestSelectKeepsExplicitSeparators(t *testing.T) {
	doc := &nesting.Document{
		Separator: []byte("OUTER"),
		Records: []nesting.Record{
			{Child: &nesting.Document{
				Records: []nesting.Record{
					{Bytes: []byte("payload")},
				},
			}},
		},
	}

	require.NoError(t, nesting.Select(doc, []byte("%%")))

	assert.Equal(t, "OUTER", string(doc.Separator))
	assert.Equal(t, "%%", string(doc.Records[0].Child.Separator))
}

func TestSelectChildError(t *testing.T) {
	doc := &nesting.Document{
		Records: []nesting.Record{
			{Child: &nesting.Document{
				Records: []nesting.Record{
					{Bytes: []byte("====\n========")},
				},
			}},
		},
	}

	err := nesting.Select(doc, nil, nesting.WithMaxSeparatorLength(8))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selecting for child of record 0")
}

func TestEncodeChildSelectionError(t *testing.T) {
	doc := &nesting.Document{
		Records: []nesting.Record{
			{Child: &nesting.Document{
				Records: []nesting.Record{
					{Bytes: []byte("====\n========")},
				},
			}},
		},
	}

	var buf bytes.Buffer
	_, err := nesting.Encode(&buf, doc, nesting.WithMaxSeparatorLength(8))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding child of record 0")
}
