package compression_test

import (
	"encoding/binary"
	"testing"

	"github.com/dargueta/huffpack/errors"
	dt "github.com/dargueta/huffpack/testing"
	c "github.com/dargueta/huffpack/utilities/compression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var aacdHeader = []byte{
	0, 0, 0, 0, 0, 0, 0, 28, 6,
	'A', 0, 0, 0, 0, 0, 0, 0, 2,
	'C', 0, 0, 0, 0, 0, 0, 0, 1,
	'D', 0, 0, 0, 0, 0, 0, 0, 1,
}

func TestEncodeHeader__AACD(t *testing.T) {
	header, payload, err := c.Encode([]byte("AACD"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0b00011100}, payload)

	assert.EqualValues(t, 28, header.TableSize())
	assert.Equal(t, aacdHeader, c.EncodeHeader(&header))
}

func TestEncodeHeader__Empty(t *testing.T) {
	header, payload, err := c.Encode([]byte{})
	require.NoError(t, err)
	assert.Empty(t, payload)

	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1, 0}, c.EncodeHeader(&header))
}

func TestEncodeHeader__SizeLaw(t *testing.T) {
	inputs := map[string][]byte{
		"single":      {1, 1, 1},
		"every value": allByteValues(),
		"skewed":      dt.SkewedBytes(500, 10),
	}

	for name, input := range inputs {
		t.Run(
			name,
			func(t *testing.T) {
				header, _, err := c.Encode(input)
				require.NoError(t, err)

				numSymbols := header.Frequencies.NumSymbols()
				encoded := c.EncodeHeader(&header)

				assert.EqualValues(t, 1+9*numSymbols, header.TableSize())
				assert.EqualValues(
					t, header.TableSize(), binary.BigEndian.Uint64(encoded[:8]))
				assert.Equal(t, c.HeaderSize(numSymbols), len(encoded))
			},
		)
	}
}

func TestDecodeHeader__AACD(t *testing.T) {
	artifact := append(append([]byte{}, aacdHeader...), 0b00011100)

	header, payload, err := c.DecodeHeader(artifact)
	require.NoError(t, err)

	assert.Equal(t, c.CountFrequencies([]byte("AACD")), header.Frequencies)
	assert.EqualValues(t, 6, header.LastByteBits)
	assert.Equal(t, []byte{0b00011100}, payload)
}

func TestDecodeHeader__RoundTrip(t *testing.T) {
	original := c.Header{
		Frequencies:  c.CountFrequencies(dt.RandomBytes(3000, 11)),
		LastByteBits: 3,
	}

	decoded, payload, err := c.DecodeHeader(c.EncodeHeader(&original))
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
	assert.Empty(t, payload)
}

func TestDecodeHeader__UnsortedEntries(t *testing.T) {
	data := []byte{
		0, 0, 0, 0, 0, 0, 0, 28, 6,
		'D', 0, 0, 0, 0, 0, 0, 0, 1,
		'A', 0, 0, 0, 0, 0, 0, 0, 2,
		'C', 0, 0, 0, 0, 0, 0, 0, 1,
		0b00011100,
	}

	header, payload, err := c.DecodeHeader(data)
	require.NoError(t, err)
	assert.Equal(t, c.CountFrequencies([]byte("AACD")), header.Frequencies)

	decoded, err := c.Decode(&header, payload)
	require.NoError(t, err)
	assert.Equal(t, []byte("AACD"), decoded)
}

func TestDecodeHeader__Corrupt(t *testing.T) {
	withTableSize := func(size uint64, rest ...byte) []byte {
		data := binary.BigEndian.AppendUint64(nil, size)
		return append(data, rest...)
	}
	halfOfMax := []byte{0x80, 0, 0, 0, 0, 0, 0, 0}

	tests := []struct {
		Name string
		Data []byte
	}{
		{"empty", []byte{}},
		{"short table size", []byte{0, 0, 0, 28}},
		{"missing bit count", withTableSize(1)},
		{"zero table size", withTableSize(0, 0)},
		{"table size not 1+9N", withTableSize(5, 0, 1, 2, 3, 4)},
		{"too many entries", withTableSize(1 + 9*257)},
		{"truncated table", aacdHeader[:30]},
		{"bit count too large", withTableSize(1, 9)},
		{
			"repeated byte value",
			withTableSize(19, 0, 'A', 0, 0, 0, 0, 0, 0, 0, 1, 'A', 0, 0, 0, 0, 0, 0, 0, 1),
		},
		{
			"repeated byte value after others",
			withTableSize(
				28, 0,
				0xff, 0, 0, 0, 0, 0, 0, 0, 1,
				0x00, 0, 0, 0, 0, 0, 0, 0, 1,
				0xff, 0, 0, 0, 0, 0, 0, 0, 1,
			),
		},
		{"zero count", withTableSize(10, 0, 'A', 0, 0, 0, 0, 0, 0, 0, 0)},
		{
			"count overflow",
			append(append(append(withTableSize(19, 0, 'A'), halfOfMax...), 'B'), halfOfMax...),
		},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				_, _, err := c.DecodeHeader(test.Data)
				assert.ErrorIs(t, err, errors.ErrCorruptInput)
			},
		)
	}
}
