package compression

import (
	"fmt"

	"github.com/dargueta/huffpack/errors"
)

// UnpackBits is the inverse of [PackBits]. It rebuilds the code table from the
// frequency table and decodes the packed bytes back into the original data.
//
// Only the low `lastByteBits` bits of the final byte are read; the rest are
// padding. A value of 0 means the final byte is entirely used, which is what
// [PackBits] returns when the codes end exactly on a byte boundary.
//
// If the bits don't decode to exactly as many bytes as the frequency table
// says they should, the returned error wraps [errors.ErrCorruptInput].
func UnpackBits(
	packed []byte, frequencies *FrequencyTable, lastByteBits uint8,
) ([]byte, error) {
	expectedSize := frequencies.Total()
	if len(packed) == 0 {
		if expectedSize != 0 {
			msg := fmt.Sprintf(
				"payload is empty but should decode to %d bytes", expectedSize)
			return nil, errors.ErrCorruptInput.WithMessage(msg)
		}
		return []byte{}, nil
	}

	if lastByteBits > 8 {
		msg := fmt.Sprintf("final byte can't have %d bits", lastByteBits)
		return nil, errors.ErrCorruptInput.WithMessage(msg)
	} else if lastByteBits == 0 {
		lastByteBits = 8
	}

	root := BuildTree(frequencies)
	if root == nil {
		msg := fmt.Sprintf("payload has %d bytes but no symbols are defined", len(packed))
		return nil, errors.ErrCorruptInput.WithMessage(msg)
	}

	codes, err := DeriveCodeTable(root)
	if err != nil {
		return nil, err
	}
	decoding := NewDecodingTable(&codes)

	// A hostile header can claim any size it wants, so don't trust it past
	// the most the payload could possibly hold.
	capacity := uint64(len(packed)) * 8
	if expectedSize < capacity {
		capacity = expectedSize
	}
	output := make([]byte, 0, capacity)

	currentCode := uint64(0)
	currentLength := uint8(0)

	for byteIndex, currentByte := range packed {
		bitsInByte := uint8(8)
		if byteIndex == len(packed)-1 {
			bitsInByte = lastByteBits
		}

		for i := uint8(0); i < bitsInByte; i++ {
			currentCode |= uint64((currentByte>>i)&1) << currentLength
			currentLength++

			if symbol, ok := decoding.Match(currentLength, currentCode); ok {
				output = append(output, symbol)
				currentCode = 0
				currentLength = 0
			} else if currentLength >= decoding.MaxLength() {
				msg := fmt.Sprintf(
					"bits ending at byte %d, bit %d don't match any code",
					byteIndex,
					i,
				)
				return nil, errors.ErrCorruptInput.WithMessage(msg)
			}
		}
	}

	if currentLength != 0 {
		msg := fmt.Sprintf(
			"payload ends in the middle of a code (%d bits left over)", currentLength)
		return nil, errors.ErrCorruptInput.WithMessage(msg)
	}
	if uint64(len(output)) != expectedSize {
		msg := fmt.Sprintf(
			"payload decoded to %d bytes, expected %d", len(output), expectedSize)
		return nil, errors.ErrCorruptInput.WithMessage(msg)
	}
	return output, nil
}
