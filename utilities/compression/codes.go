package compression

import (
	"fmt"

	"github.com/dargueta/huffpack/errors"
)

// MaxCodeLength is the longest code, in bits, that a [Code] can hold.
const MaxCodeLength = 64

// Code is the bit pattern for one byte value. Bit i of Bits is the branch taken
// at depth i when walking down from the root: 0 for the left child, 1 for the
// right. Only the low Length bits are meaningful.
type Code struct {
	Bits   uint64
	Length uint8
}

func (code Code) String() string {
	buf := make([]byte, code.Length)
	for i := range buf {
		buf[i] = '0' + byte((code.Bits>>i)&1)
	}
	return string(buf)
}

// CodeTable maps every byte value to its code. Byte values that aren't in the
// tree have a zero-length code.
type CodeTable [256]Code

// DeriveCodeTable walks a Huffman tree and returns the code for every leaf. A
// nil tree gives an empty table. A tree consisting of a single leaf gives that
// byte value the one-bit code 0, since a zero-length code can't be packed.
//
// Trees deeper than [MaxCodeLength] can only come from a hand-crafted header,
// so they're reported as corrupt input.
func DeriveCodeTable(root *Node) (CodeTable, error) {
	var table CodeTable
	if root == nil {
		return table, nil
	}
	if root.IsLeaf() {
		table[root.Symbol] = Code{Bits: 0, Length: 1}
		return table, nil
	}
	err := table.walk(root, 0, 0)
	return table, err
}

func (table *CodeTable) walk(node *Node, bits uint64, depth uint8) error {
	if node.IsLeaf() {
		table[node.Symbol] = Code{Bits: bits, Length: depth}
		return nil
	}
	if depth == MaxCodeLength {
		return errors.ErrCorruptInput.WithMessage(
			fmt.Sprintf("Huffman tree is deeper than %d levels", MaxCodeLength))
	}

	err := table.walk(node.Left, bits, depth+1)
	if err != nil {
		return err
	}
	return table.walk(node.Right, bits|(1<<depth), depth+1)
}

// Lookup returns the code for a byte value. The second return value is false
// if the byte value isn't in the table.
func (table *CodeTable) Lookup(symbol byte) (Code, bool) {
	code := table[symbol]
	return code, code.Length != 0
}

// Len returns the number of byte values that have a code.
func (table *CodeTable) Len() int {
	n := 0
	for _, code := range table {
		if code.Length != 0 {
			n++
		}
	}
	return n
}

// -----------------------------------------------------------------------------

type codeKey struct {
	length uint8
	bits   uint64
}

// DecodingTable is the inverse of a [CodeTable]. It's used to turn bits read
// one at a time back into byte values.
type DecodingTable struct {
	symbols   map[codeKey]byte
	maxLength uint8
}

// NewDecodingTable builds the inverse lookup for a code table.
func NewDecodingTable(codes *CodeTable) DecodingTable {
	decoding := DecodingTable{symbols: make(map[codeKey]byte, codes.Len())}
	for symbol, code := range codes {
		if code.Length == 0 {
			continue
		}
		decoding.symbols[codeKey{code.Length, code.Bits}] = byte(symbol)
		if code.Length > decoding.maxLength {
			decoding.maxLength = code.Length
		}
	}
	return decoding
}

// Match returns the byte value whose code is exactly the low `length` bits of
// `bits`. If there isn't one, the bits read so far aren't a complete code yet
// and the second return value is false.
func (decoding DecodingTable) Match(length uint8, bits uint64) (byte, bool) {
	symbol, ok := decoding.symbols[codeKey{length, bits}]
	return symbol, ok
}

// MaxLength returns the length of the longest code in the table. Once that
// many bits have been read without a match, the input can't be valid.
func (decoding DecodingTable) MaxLength() uint8 {
	return decoding.maxLength
}
