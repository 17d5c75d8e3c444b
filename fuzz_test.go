package bshuff

import (
	"bytes"
	"errors"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0x11, 0x0d, 0x00, 0x47, 0x05, 0x00, 0x07, 0x00, 0x0c, 0x00, 0x00, 0x80, 0x3f})
	f.Add(bytes.Repeat([]byte{0x00}, 64))
	f.Add([]byte("hello world"))

	c := Default()
	f.Fuzz(func(t *testing.T, in []byte) {
		if len(in) > 0 && in[0]&0x80 != 0 {
			if _, err := c.Compress(in); err == nil {
				t.Fatalf("high bit payload %x accepted", in)
			}
			return
		}
		out, err := c.Compress(in)
		if err != nil {
			t.Fatalf("compress %x: %v", in, err)
		}
		if len(out) > len(in) {
			t.Fatalf("compress grew %d -> %d bytes", len(in), len(out))
		}
		back, err := c.Decompress(out)
		if len(in) == 0 {
			if err == nil {
				t.Fatalf("decompress of empty output succeeded")
			}
			return
		}
		if err != nil {
			t.Fatalf("decompress %x: %v", out, err)
		}
		if !bytes.Equal(in, back) {
			t.Fatalf("round trip mismatch: %x != %x", back, in)
		}
	})
}

// FuzzDecompress checks that arbitrary input never panics: it either decodes
// or fails with ErrMalformedStream.
func FuzzDecompress(f *testing.F) {
	f.Add([]byte{0x87, 0xf5, 0x66, 0x47, 0xed, 0x0e, 0xc6, 0xf0, 0x00, 0x8b, 0x0c, 0xfe, 0x01})
	f.Add([]byte{0x80})
	f.Add([]byte{0x8f, 0xff})
	f.Add([]byte{0x80, 0x00, 0x00})
	f.Add([]byte{0x81, 0xff})

	c := Default()
	f.Fuzz(func(t *testing.T, in []byte) {
		_, err := c.Decompress(in)
		if err != nil && !errors.Is(err, ErrMalformedStream) {
			t.Fatalf("unexpected error kind: %v", err)
		}
	})
}
