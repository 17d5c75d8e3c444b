package bshuff

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
)

// Header byte layout of a compressed payload.
const (
	headerLen      = 1
	flagCompressed = 0x80 // bit 7: Huffman-coded payload follows
	padMask        = 0x0f // bits 0-3: zero bits padding the final byte
)

var (
	// ErrInvalidInput indicates a payload whose first byte has its high bit
	// set. Such a payload could not be told apart from a compressed one when
	// passed through uncompressed.
	ErrInvalidInput = errors.New("bshuff: first payload byte has high bit set")

	// ErrMalformedStream indicates input to Decompress that Compress could
	// not have produced.
	ErrMalformedStream = errors.New("bshuff: malformed huffman stream")
)

// Codec compresses and decompresses payloads with a Huffman tree built from
// a fixed FrequencyTable.
//
// A Codec is immutable once built and safe for concurrent use.
type Codec struct {
	t *tree
}

// New builds a Codec from freqs. Building is deterministic: equal tables
// always yield identical codes.
func New(freqs FrequencyTable) *Codec {
	t := buildTree(&freqs)
	t.deriveCodes()
	return &Codec{t: t}
}

var defaultCodec = sync.OnceValue(func() *Codec { return New(DefaultFrequencies) })

// Default returns the shared Codec built from DefaultFrequencies.
func Default() *Codec { return defaultCodec() }

// Code returns the transmittable code for b: its bits in LSB-first emission
// order, the number of significant bits, and whether b is sent as a raw
// escaped byte.
func (c *Codec) Code(b byte) (bits uint32, length uint8, escaped bool) {
	leaf := &c.t[b]
	return leaf.code, leaf.codeLen, c.t.escaped(b)
}

// EncodedLen returns the length Compress would produce for payload,
// including the case where the payload is passed through unchanged.
func (c *Codec) EncodedLen(payload []byte) int {
	n, _ := c.encodedLen(payload)
	return n
}

// encodedLen returns the output length and the number of significant bits
// the coded form would need.
func (c *Codec) encodedLen(payload []byte) (n int, bits int) {
	for _, b := range payload {
		bits += int(c.t[b].codeLen)
	}
	n = (bits+7)/8 + headerLen
	if n >= len(payload) {
		return len(payload), bits
	}
	return n, bits
}

// Compress encodes payload.
//
// When coding would not make the payload shorter, a copy of payload is
// returned with no header. Its clear high bit on the first byte is what
// marks it as uncompressed, so payloads starting with a byte >= 0x80 are
// rejected with ErrInvalidInput.
//
// The returned slice is always newly allocated.
func (c *Codec) Compress(payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return []byte{}, nil
	}
	if payload[0]&flagCompressed != 0 {
		return nil, fmt.Errorf("%w: 0x%02x", ErrInvalidInput, payload[0])
	}

	n, bits := c.encodedLen(payload)
	if n == len(payload) {
		return bytes.Clone(payload), nil
	}

	out := make([]byte, headerLen, n)
	pos := headerLen * 8
	for _, b := range payload {
		leaf := &c.t[b]
		out, pos = writeBits(out, pos, leaf.code, leaf.codeLen)
	}

	var pad byte
	if r := bits % 8; r != 0 {
		pad = byte(8 - r)
	}
	out[0] = flagCompressed | pad
	return out, nil
}

// Decompress reverses Compress. Input whose first byte has a clear high bit
// is an uncompressed pass-through and is returned as a copy.
//
// The returned slice is always newly allocated; on error it is nil.
func (c *Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedStream)
	}
	hdr := data[0]
	if hdr&flagCompressed == 0 {
		return bytes.Clone(data), nil
	}

	avail := (len(data) - headerLen) * 8
	pad := int(hdr & padMask)
	if pad > avail {
		return nil, fmt.Errorf("%w: %d padding bits but only %d available", ErrMalformedStream, pad, avail)
	}

	r := newBitReader(data[headerLen:], avail-pad)
	// Every symbol takes at least two bits.
	out := make([]byte, 0, (avail-pad)/2)
	for r.more() {
		prefix, err := r.bit()
		if err != nil {
			return nil, err
		}
		var b byte
		if prefix == prefixHuffman {
			b, err = c.walk(r)
		} else {
			b, err = r.byte8()
		}
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// walk follows tree-path bits from the root down to a leaf and returns the
// leaf's byte value. The leaf test comes before the length test, so the last
// path bit of a stream may be its first padding bit.
func (c *Codec) walk(r *bitReader) (byte, error) {
	t := c.t
	n := rootIndex
	for {
		bit, err := r.pathBit()
		if err != nil {
			return 0, err
		}
		next := t[n].left
		if bit == 1 {
			next = t[n].right
		}
		// Unreachable with a full 511-node tree: the walk stops on reaching
		// a leaf, and internal nodes always have both children.
		if next == noChild {
			return byte(n), nil
		}
		n = int(next)
		if t[n].isLeaf() {
			return byte(n), nil
		}
		if r.pos > r.limit {
			return 0, fmt.Errorf("%w: tree walk overruns %d-bit stream", ErrMalformedStream, r.limit)
		}
	}
}
