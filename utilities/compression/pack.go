package compression

import (
	"fmt"

	"github.com/dargueta/huffpack/errors"
)

// PackBits replaces every byte of data with its code and packs the codes into
// bytes, least significant bit first.
//
// The second return value is the number of meaningful bits in the last byte of
// the output, from 1 to 7. It's 0 if the last byte is completely filled or if
// there's no output at all.
//
// Every byte value in data must have a code in the table. PackBits panics if
// one doesn't, since that can only happen if the table was derived from some
// other input.
func PackBits(data []byte, codes *CodeTable) ([]byte, uint8) {
	// Huffman codes are never longer on average than the 8-bit fixed-length
	// code, so the output can't be longer than the input.
	packed := make([]byte, 0, len(data))
	currentByte := byte(0)
	bitIndex := uint8(0)

	for _, b := range data {
		code, ok := codes.Lookup(b)
		if !ok {
			panic(errors.ErrInternal.WithMessage(
				fmt.Sprintf("byte %#02x has no code in the code table", b)))
		}

		for i := uint8(0); i < code.Length; i++ {
			currentByte |= byte((code.Bits>>i)&1) << bitIndex
			if bitIndex == 7 {
				packed = append(packed, currentByte)
				currentByte = 0
				bitIndex = 0
			} else {
				bitIndex++
			}
		}
	}

	// Bits left over that didn't fill an entire byte.
	if bitIndex > 0 {
		packed = append(packed, currentByte)
	}
	return packed, bitIndex
}
