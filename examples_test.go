package bshuff_test

import (
	"fmt"

	"github.com/axiomhq/bshuff"
)

func Example() {
	c := bshuff.Default()
	scene := []byte{0x11, 0x0d, 0x00, 0x47, 0x05, 0x00, 0x07, 0x00, 0x0c,
		0x00, 0x00, 0x80, 0x3f, 0x06, 0x00, 0x00, 0x00, 0x00}

	wire, err := c.Compress(scene)
	if err != nil {
		panic(err)
	}
	fmt.Printf("% x\n", wire)

	orig, err := c.Decompress(wire)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(orig) == len(scene))
	// Output:
	// 87 f5 66 47 ed 0e c6 f0 00 8b 0c fe 01
	// true
}

func ExampleCodec_Compress_passThrough() {
	// Payloads that would not shrink come back unchanged, without a header.
	out, _ := bshuff.Default().Compress([]byte("hi"))
	fmt.Printf("%q\n", out)
	// Output:
	// "hi"
}

func ExampleNew() {
	var freqs bshuff.FrequencyTable
	freqs['a'] = 50
	freqs['b'] = 30
	freqs['c'] = 10
	freqs['d'] = 10
	c := bshuff.New(freqs)

	bits, n, escaped := c.Code('a')
	fmt.Println(bits, n, escaped)
	_, n, escaped = c.Code('z')
	fmt.Println(n, escaped)
	// Output:
	// 3 2 false
	// 9 true
}
