package compression

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	bitmap "github.com/boljen/go-bitmap"
	"github.com/dargueta/huffpack/errors"
	"github.com/noxer/bytewriter"
)

const (
	// tableSizeFieldSize is the size of the big-endian table size that starts
	// every artifact.
	tableSizeFieldSize = 8
	// headerEntrySize is the size of one (byte value, count) pair.
	headerEntrySize = 1 + 8
)

// Header is the decoded form of the header that precedes the packed payload.
//
// On disk it looks like this, with all integers big-endian:
//
//	[8 bytes] table size, 1 + 9 * number of entries
//	[1 byte]  number of meaningful bits in the payload's final byte
//	[9 bytes] x N: byte value, followed by its 8-byte count
//
// Entries are sorted by byte value and only present byte values are included.
type Header struct {
	Frequencies  FrequencyTable
	LastByteBits uint8
}

// TableSize returns the value of the table size field for this header.
func (header *Header) TableSize() uint64 {
	return 1 + headerEntrySize*uint64(header.Frequencies.NumSymbols())
}

// HeaderSize returns the total size in bytes of a header with the given number
// of entries.
func HeaderSize(numSymbols int) int {
	return tableSizeFieldSize + 1 + headerEntrySize*numSymbols
}

// EncodeHeader serializes a header.
func EncodeHeader(header *Header) []byte {
	output := make([]byte, HeaderSize(header.Frequencies.NumSymbols()))
	writer := bytewriter.New(output)

	binary.Write(writer, binary.BigEndian, header.TableSize())
	writer.Write([]byte{header.LastByteBits})

	header.Frequencies.forEachSymbol(func(symbol byte, count uint64) {
		writer.Write([]byte{symbol})
		binary.Write(writer, binary.BigEndian, count)
	})
	return output
}

// DecodeHeader parses the header at the beginning of an artifact. It returns
// the header and the remainder of `data` following it, which is the packed
// payload.
//
// Entries are written in ascending order but may be read in any order, as long
// as no byte value is listed twice. All errors returned wrap
// [errors.ErrCorruptInput].
func DecodeHeader(data []byte) (Header, []byte, error) {
	header := Header{}
	if len(data) < tableSizeFieldSize+1 {
		msg := fmt.Sprintf(
			"header needs at least %d bytes, got %d", tableSizeFieldSize+1, len(data))
		return header, nil, errors.ErrCorruptInput.WithMessage(msg)
	}

	tableSize := binary.BigEndian.Uint64(data[:tableSizeFieldSize])
	if tableSize == 0 || (tableSize-1)%headerEntrySize != 0 {
		msg := fmt.Sprintf(
			"table size must be 1 + %d * N, got %d", headerEntrySize, tableSize)
		return header, nil, errors.ErrCorruptInput.WithMessage(msg)
	}

	numEntries := (tableSize - 1) / headerEntrySize
	if numEntries > uint64(len(header.Frequencies)) {
		msg := fmt.Sprintf(
			"header can have at most %d entries, got %d",
			len(header.Frequencies),
			numEntries,
		)
		return header, nil, errors.ErrCorruptInput.WithMessage(msg)
	}

	table := data[tableSizeFieldSize:]
	if uint64(len(table)) < tableSize {
		msg := fmt.Sprintf(
			"header truncated: table needs %d bytes, got %d", tableSize, len(table))
		return header, nil, errors.ErrCorruptInput.WithMessage(msg)
	}

	header.LastByteBits = table[0]
	if header.LastByteBits > 8 {
		msg := fmt.Sprintf("final byte can't have %d bits", header.LastByteBits)
		return header, nil, errors.ErrCorruptInput.WithMessage(msg)
	}

	total := uint64(0)
	seen := bitmap.New(len(header.Frequencies))
	for i := uint64(0); i < numEntries; i++ {
		entry := table[1+i*headerEntrySize : 1+(i+1)*headerEntrySize]
		symbol := entry[0]
		count := binary.BigEndian.Uint64(entry[1:])

		if seen.Get(int(symbol)) {
			msg := fmt.Sprintf("entry %d: byte value %#02x is listed twice", i, symbol)
			return header, nil, errors.ErrCorruptInput.WithMessage(msg)
		}
		if count == 0 {
			msg := fmt.Sprintf("entry %d: byte value %#02x has a count of 0", i, symbol)
			return header, nil, errors.ErrCorruptInput.WithMessage(msg)
		}

		var carry uint64
		total, carry = bits.Add64(total, count, 0)
		if carry != 0 {
			return header, nil, errors.ErrCorruptInput.WithMessage(
				"sum of byte counts overflows a 64-bit integer")
		}

		header.Frequencies[symbol] = count
		seen.Set(int(symbol), true)
	}

	return header, table[tableSize:], nil
}
