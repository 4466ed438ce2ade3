package separator_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchristel/verse-format/separator"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		seed    string
		records []string
		want    string
	}{
		{
			name:    "seed free of collisions",
			seed:    "====",
			records: []string{"this is record 1", "this is record 2"},
			want:    "====",
		},
		{
			name:    "substring occurrence is not a collision",
			seed:    "==",
			records: []string{"a==b", "c"},
			want:    "==",
		},
		{
			name:    "superstring line is not a collision",
			seed:    "====",
			records: []string{"=====\n==="},
			want:    "====",
		},
		{
			name:    "exact line forces one doubling",
			seed:    "====",
			records: []string{"before\n====\nafter"},
			want:    "========",
		},
		{
			name:    "collisions at successive lengths force repeated doubling",
			seed:    "==",
			records: []string{"==\n====", "x"},
			want:    "========",
		},
		{
			name:    "record that is exactly the seed",
			seed:    "====",
			records: []string{"===="},
			want:    "========",
		},
		{
			name:    "empty record set",
			seed:    "====",
			records: nil,
			want:    "====",
		},
		{
			name:    "empty records never collide",
			seed:    "====",
			records: []string{"", ""},
			want:    "====",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([][]byte, len(tt.records))
			for i, r := range tt.records {
				records[i] = []byte(r)
			}

			got, err := separator.Select([]byte(tt.seed), records)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))

			// No record may contain the result as a full line.
			for _, record := range records {
				for _, line := range bytes.Split(record, []byte{'\n'}) {
					assert.NotEqual(t, string(got), string(line))
				}
			}
		})
	}
}

func TestSelectIdempotent(t *testing.T) {
	records := [][]byte{
		[]byte("====\nplain text"),
		[]byte("========"),
	}

	first, err := separator.Select([]byte("===="), records)
	require.NoError(t, err)
	second, err := separator.Select([]byte("===="), records)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSelectOrderIndependent(t *testing.T) {
	a := [][]byte{[]byte("===="), []byte("x\ny")}
	b := [][]byte{[]byte("x\ny"), []byte("====")}

	fromA, err := separator.Select([]byte("===="), a)
	require.NoError(t, err)
	fromB, err := separator.Select([]byte("===="), b)
	require.NoError(t, err)

	assert.Equal(t, fromA, fromB)
}

func TestSelectTermination(t *testing.T) {
	// Adversarial record with a colliding line at every doubled length of
	// the seed: 1, 2, 4, ... 512 equals signs. The search must pass them
	// all and stop at 1024, one doubling past the longest line.
	var lines []string
	for n := 1; n <= 512; n *= 2 {
		lines = append(lines, strings.Repeat("=", n))
	}
	records := [][]byte{[]byte(strings.Join(lines, "\n"))}

	got, err := separator.Select([]byte("="), records)
	require.NoError(t, err)
	assert.Len(t, got, 1024)
}

func TestSelectExhausted(t *testing.T) {
	var lines []string
	for n := 1; n <= 512; n *= 2 {
		lines = append(lines, strings.Repeat("=", n))
	}
	records := [][]byte{[]byte(strings.Join(lines, "\n"))}

	_, err := separator.Select([]byte("="), records, separator.WithMaxLength(256))
	assert.ErrorIs(t, err, separator.ErrSearchExhausted)
}

func TestSelectInvalidSeed(t *testing.T) {
	tests := []struct {
		name string
		seed []byte
	}{
		{name: "empty seed", seed: nil},
		{name: "seed with newline", seed: []byte("a\nb")},
		{name: "seed with space", seed: []byte("a b")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := separator.Select(tt.seed, [][]byte{[]byte("x")})
			assert.Error(t, err)
		})
	}
}
