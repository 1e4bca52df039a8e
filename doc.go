// Package huffman builds Huffman codes from symbol frequencies, and uses
// them to pack symbol sequences into bit vectors and to unpack them again.
//
// A Tree is built by repeatedly merging the two lightest nodes taken from a
// pqueue.Queue.  Each symbol's Codeword is its root-to-leaf path, left = 0
// and right = 1, held in a bitvec.Vector together with its explicit length.
// Encoder concatenates codewords most significant bit first; Decoder walks
// the Tree from the root for each codeword in turn.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
