// Package bshuff implements the static-table Huffman codec used by the
// Ballistica (BombSquad) engine for its game packets.
//
// # Overview
//
// The engine compresses every scene packet with a Huffman tree built from a
// frequency table captured from real traffic. The tree is never sent; both
// ends rebuild it from the same table. Output from this package is bit
// compatible with the engine, so packets can be decoded from captures or
// crafted for a live server.
//
// # Wire Format
//
// A compressed payload is a header byte followed by a bitstream:
//
//	bit 7     1 = compressed, 0 = the whole buffer is the original payload
//	bits 4-6  unused
//	bits 0-3  zero bits padding the last byte of the stream
//
// The bitstream is packed least-significant bit first. Each input byte is
// one prefix bit and a payload: prefix 1 is followed by the root-to-leaf
// path (at most 7 bits), prefix 0 by the literal byte. Bytes whose path
// would take 8 or more bits are always sent as literals.
//
// Payloads that would not get shorter are passed through unchanged with no
// header. A clear high bit on the first byte marks them, so Compress
// refuses payloads whose first byte is 0x80 or above.
//
// # Basic Usage
//
//	c := bshuff.Default()
//	wire, err := c.Compress(scene)
//	if err != nil {
//	    return err
//	}
//	scene, err = c.Decompress(wire)
//
// Custom tables are supported with New, mostly for testing:
//
//	var freqs bshuff.FrequencyTable
//	freqs['a'] = 100
//	c := bshuff.New(freqs)
//
// # Tree Construction
//
// The tree lives in a fixed 511-node arena: leaves 0-255 are the byte
// values and internal nodes 256-510 are appended in merge order, so 510 is
// the root. The pair to merge is picked by a linear scan whose
// tie-breaking differs from a heap-based build. The scan must be kept as is
// or the codes no longer match the engine.
//
// The outer packet framing lives in package packet.
package bshuff
