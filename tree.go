package bshuff

// Tree layout constants. The arena layout is part of the wire format: every
// code is derived from node indices, so these values must not change.
const (
	numLeaves  = 256                 // one leaf per byte value, indices [0, 256)
	numNodes   = 2*numLeaves - 1     // 511: leaves plus 255 internal nodes
	rootIndex  = numNodes - 1        // 510: the last merge is always the root
	parentBias = numLeaves - 1       // stored parent offset k means node k+255
	noChild    = int16(-1)           // child sentinel for leaves
	unattached = uint16(0)           // parent offset of nodes not yet merged
	firstInner = numLeaves           // index of the first internal node
	innerCount = numNodes - numLeaves // 255 merges
)

// node is one slot of the tree arena.
//
// parent uses the offset encoding from the engine: 0 means "no parent yet"
// and any other value k points at node k+parentBias. Parents are always
// internal nodes (index >= 256), so 0 is never a valid target.
type node struct {
	left, right int16  // child indices, noChild for leaves
	parent      uint16 // offset-encoded parent, unattached for the root
	frequency   uint64 // leaf weight or sum of both children at merge time
	code        uint32 // leaves only: transmittable pattern, prefix bit at bit 0
	codeLen     uint8  // leaves only: significant bits in code
}

func (n *node) isLeaf() bool { return n.left == noChild && n.right == noChild }

// tree is the fixed arena of 511 nodes. Index i < 256 is always the leaf for
// byte value i and rootIndex is always the root.
type tree [numNodes]node

// buildTree merges the two lightest unattached nodes until only the root
// remains.
//
// The selection is a linear scan, not a priority queue. Tie-breaking decides
// which bit pattern each byte gets, and the remote decoder uses exactly this
// scan, so it has to stay as is:
//   - s1 and s2 start as the first two unattached indices.
//   - each later unattached candidate may replace whichever of s1/s2 holds
//     the larger frequency (s2 when they are equal), and only when strictly
//     lighter, so earlier indices win ties.
//   - s1 becomes the right child and s2 the left child.
func buildTree(freqs *FrequencyTable) *tree {
	t := new(tree)
	for i := range t {
		t[i].left = noChild
		t[i].right = noChild
	}
	for i := range numLeaves {
		t[i].frequency = uint64(freqs[i])
	}

	for count := firstInner; count < numNodes; count++ {
		i := 0
		for t[i].parent != unattached {
			i++
		}
		s1 := i
		i++
		for t[i].parent != unattached {
			i++
		}
		s2 := i
		i++

		for ; i < count; i++ {
			if t[i].parent != unattached {
				continue
			}
			if t[s1].frequency > t[s2].frequency {
				if t[i].frequency < t[s1].frequency {
					s1 = i
				}
			} else if t[i].frequency < t[s2].frequency {
				s2 = i
			}
		}

		t[count].frequency = t[s1].frequency + t[s2].frequency
		t[count].right = int16(s1)
		t[count].left = int16(s2)
		t[s1].parent = uint16(count - parentBias)
		t[s2].parent = uint16(count - parentBias)
	}
	return t
}

// parentOf returns the arena index of the parent of node i, and false for
// the root.
func (t *tree) parentOf(i int) (int, bool) {
	p := t[i].parent
	if p == unattached {
		return 0, false
	}
	return int(p) + parentBias, true
}
