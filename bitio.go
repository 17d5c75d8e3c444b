package bshuff

import "fmt"

// writeBits stores the low n bits of val into dst starting at absolute bit
// offset pos, least-significant bit first within each byte. dst grows with
// zero bytes as needed; the grown slice and the new offset are returned.
//
// Only set bits are OR-ed in, so the target range must still be zero.
func writeBits(dst []byte, pos int, val uint32, n uint8) ([]byte, int) {
	for i := range n {
		idx := pos >> 3
		for len(dst) <= idx {
			dst = append(dst, 0)
		}
		if val>>i&1 == 1 {
			dst[idx] |= 1 << (pos & 7)
		}
		pos++
	}
	return dst, pos
}

// bitReader reads LSB-first bits from data. Reads stop at limit, except that
// pathBit may take the first bit at limit when data still holds it.
type bitReader struct {
	data  []byte
	pos   int // next bit to read
	limit int // exclusive bit bound
}

func newBitReader(data []byte, limit int) *bitReader {
	return &bitReader{data: data, limit: limit}
}

func (r *bitReader) more() bool { return r.pos < r.limit }

// bit returns the next bit.
func (r *bitReader) bit() (uint8, error) {
	if r.pos >= r.limit {
		return 0, fmt.Errorf("%w: bit %d past end of %d-bit stream", ErrMalformedStream, r.pos, r.limit)
	}
	b := r.data[r.pos>>3] >> (r.pos & 7) & 1
	r.pos++
	return b, nil
}

// pathBit returns the next bit of a tree path. Unlike bit it may read the bit
// at limit, which is padding; the caller must end the walk on a leaf there.
// It never reads past the end of data.
func (r *bitReader) pathBit() (uint8, error) {
	if r.pos > r.limit || r.pos >= len(r.data)*8 {
		return 0, fmt.Errorf("%w: path bit %d past end of %d-bit stream", ErrMalformedStream, r.pos, r.limit)
	}
	b := r.data[r.pos>>3] >> (r.pos & 7) & 1
	r.pos++
	return b, nil
}

// byte8 returns the next 8 bits as a byte. The value may straddle two bytes
// of data when the cursor is not byte aligned.
func (r *bitReader) byte8() (byte, error) {
	if r.pos+8 > r.limit {
		return 0, fmt.Errorf("%w: raw byte at bit %d overruns %d-bit stream", ErrMalformedStream, r.pos, r.limit)
	}
	idx, shift := r.pos>>3, r.pos&7
	v := r.data[idx] >> shift
	if shift != 0 {
		v |= r.data[idx+1] << (8 - shift)
	}
	r.pos += 8
	return v, nil
}
