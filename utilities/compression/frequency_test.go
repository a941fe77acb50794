package compression_test

import (
	"bytes"
	"testing"

	dt "github.com/dargueta/huffpack/testing"
	c "github.com/dargueta/huffpack/utilities/compression"
	"github.com/stretchr/testify/assert"
)

func TestCountFrequencies__AACD(t *testing.T) {
	table := c.CountFrequencies([]byte("AACD"))

	assert.EqualValues(t, 2, table['A'])
	assert.EqualValues(t, 0, table['B'])
	assert.EqualValues(t, 1, table['C'])
	assert.EqualValues(t, 1, table['D'])
	assert.Equal(t, 3, table.NumSymbols())
	assert.EqualValues(t, 4, table.Total())
}

func TestCountFrequencies__Empty(t *testing.T) {
	table := c.CountFrequencies(nil)
	assert.Equal(t, c.FrequencyTable{}, table)
	assert.Equal(t, 0, table.NumSymbols())
	assert.EqualValues(t, 0, table.Total())
}

func TestCountFrequencies__TotalIsLength(t *testing.T) {
	inputs := map[string][]byte{
		"single":      {7},
		"homogenous":  bytes.Repeat([]byte{100}, 9174),
		"random":      dt.RandomBytes(4099, 1),
		"skewed":      dt.SkewedBytes(2048, 2),
		"every value": allByteValues(),
	}

	for name, input := range inputs {
		t.Run(
			name,
			func(t *testing.T) {
				table := c.CountFrequencies(input)
				assert.EqualValues(t, len(input), table.Total())
			},
		)
	}
}

func TestFrequencyTableSymbols(t *testing.T) {
	table := c.CountFrequencies([]byte{0, 0, 9, 255})
	symbols := table.Symbols()

	for i := 0; i < 256; i++ {
		expected := i == 0 || i == 9 || i == 255
		assert.Equal(t, expected, symbols.Get(i), "wrong presence bit for %d", i)
	}
}

func allByteValues() []byte {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}
