package bshuff

// Per-symbol code layout. Every transmitted symbol is one prefix bit followed
// by a payload:
//
//	prefix 1: up to 7 tree-path bits, root-adjacent bit first
//	prefix 0: the raw byte value, 8 bits
//
// The code is stored so that writing it least-significant bit first emits
// the prefix and then the payload in transmission order.
const (
	prefixHuffman = 1
	prefixRaw     = 0

	escapePathLen = 8                 // paths this long or longer are sent raw
	rawCodeLen    = 1 + escapePathLen // prefix plus the literal byte
)

// deriveCodes walks every leaf up to the root and stores its transmittable
// code in the leaf.
//
// Each step up pushes one bit (1 when the node is its parent's right child)
// into the low end of the accumulator, so the bit nearest the root ends up
// least significant. That is the order the decoder walks the tree in.
func (t *tree) deriveCodes() {
	for i := range numLeaves {
		var (
			path    uint32
			pathLen uint8
			j       = i
		)
		for {
			p, ok := t.parentOf(j)
			if !ok {
				break
			}
			path <<= 1
			if int(t[p].right) == j {
				path |= 1
			}
			pathLen++
			j = p
		}

		leaf := &t[i]
		if pathLen >= escapePathLen {
			leaf.code = uint32(i)<<1 | prefixRaw
			leaf.codeLen = rawCodeLen
			continue
		}
		leaf.code = path<<1 | prefixHuffman
		leaf.codeLen = pathLen + 1
	}
}

// escaped reports whether the leaf for b is sent as a raw byte.
func (t *tree) escaped(b byte) bool { return t[b].code&1 == prefixRaw }
