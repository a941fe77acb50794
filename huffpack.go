/*
Package huffpack compresses and decompresses whole files with static Huffman
coding.

The encoding itself lives in [github.com/dargueta/huffpack/utilities/compression].
This package wraps it in two single-use workflows, [Compressor] and
[Decompressor], that enforce the order of operations: data can't be output
before it's been processed, and a workflow can't process a second input.
*/
package huffpack
