// Package compression implements static Huffman coding of in-memory byte
// buffers.
//
// Compressing a buffer happens in four steps. First the occurrences of every
// byte value are counted ([CountFrequencies]). A Huffman tree is built from
// those counts ([BuildTree]), and walking the tree gives every byte value a
// code ([DeriveCodeTable]). Finally the codes for each input byte are packed
// into a bitstream ([PackBits]), least significant bit first.
//
// The code table itself isn't stored. Instead the frequency table is written
// into a header in front of the bitstream ([EncodeHeader]) and the decoder
// rebuilds the exact same tree from it. This only works because tree
// construction is deterministic; see [BuildTree] for the ordering rules.
//
// The header is deliberately naive: a full eight bytes per count plus one for
// the byte value, so a file using all 256 byte values carries a 2,313 byte
// header. The format has no magic number or version, and is kept as-is so that
// artifacts written by the learning_huffman tool can still be read.
package compression
