package compression

import (
	bitmap "github.com/boljen/go-bitmap"
)

// FrequencyTable gives the number of times each byte value occurs in an input.
// A byte value with a count of zero is not part of the symbol set.
type FrequencyTable [256]uint64

// CountFrequencies counts the occurrences of every byte value in data. It
// never fails; an empty input gives a table of all zeroes.
func CountFrequencies(data []byte) FrequencyTable {
	var table FrequencyTable
	for _, b := range data {
		table[b]++
	}
	return table
}

// Total returns the sum of all counts in the table, i.e. the length of the
// input it was built from.
func (table *FrequencyTable) Total() uint64 {
	total := uint64(0)
	for _, count := range table {
		total += count
	}
	return total
}

// NumSymbols returns the number of byte values with a non-zero count.
func (table *FrequencyTable) NumSymbols() int {
	n := 0
	for _, count := range table {
		if count != 0 {
			n++
		}
	}
	return n
}

// Symbols returns a 256-bit bitmap where bit i is set iff byte value i occurs
// at least once.
func (table *FrequencyTable) Symbols() bitmap.Bitmap {
	present := bitmap.New(len(table))
	for i, count := range table {
		present.Set(i, count != 0)
	}
	return present
}

// forEachSymbol calls fn for every present byte value in ascending order.
func (table *FrequencyTable) forEachSymbol(fn func(symbol byte, count uint64)) {
	for i, count := range table {
		if count != 0 {
			fn(byte(i), count)
		}
	}
}
