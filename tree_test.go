package bshuff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTreeShape(t *testing.T) {
	tr := buildTree(&DefaultFrequencies)

	for i := range numLeaves {
		require.True(t, tr[i].isLeaf(), "leaf %d has children", i)
		require.Equal(t, uint64(DefaultFrequencies[i]), tr[i].frequency)
	}

	var merges int
	for i := firstInner; i < numNodes; i++ {
		n := tr[i]
		require.False(t, n.isLeaf(), "internal node %d has no children", i)
		require.Equal(t, tr[n.left].frequency+tr[n.right].frequency, n.frequency, "node %d", i)
		// Children are always created before their parent.
		require.Less(t, int(n.left), i)
		require.Less(t, int(n.right), i)
		merges++
	}
	assert.Equal(t, innerCount, merges)

	for i := range rootIndex {
		p, ok := tr.parentOf(i)
		require.True(t, ok, "node %d unattached", i)
		require.Truef(t, int(tr[p].left) == i || int(tr[p].right) == i, "node %d not a child of its parent %d", i, p)
	}
	_, ok := tr.parentOf(rootIndex)
	assert.False(t, ok, "root has a parent")

	var total uint64
	for _, f := range DefaultFrequencies {
		total += uint64(f)
	}
	assert.Equal(t, total, tr[rootIndex].frequency)
}

func TestBuildTreeDefaultRoot(t *testing.T) {
	tr := buildTree(&DefaultFrequencies)

	// Byte 0 dominates real traffic and is merged last, as the right child.
	root := tr[rootIndex]
	assert.Equal(t, int16(0), root.right)
	assert.Equal(t, int16(509), root.left)
	assert.Equal(t, uint64(145694), root.frequency)
	assert.Equal(t, uint16(rootIndex-parentBias), tr[0].parent)

	assert.Equal(t, int16(1), tr[507].left)
	assert.Equal(t, int16(504), tr[507].right)
}

func TestBuildTreeTieBreak(t *testing.T) {
	// With all weights equal every choice is a tie, so the result depends
	// purely on the scan order.
	var zero FrequencyTable
	tr := buildTree(&zero)

	cases := []struct {
		node        int
		left, right int16
	}{
		{256, 1, 0},
		{257, 3, 2},
		{384, 257, 256},
		{510, 509, 508},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.left, tr[tc.node].left, "left of %d", tc.node)
		assert.Equal(t, tc.right, tr[tc.node].right, "right of %d", tc.node)
	}
}

func TestBuildTreeLargeWeights(t *testing.T) {
	var freqs FrequencyTable
	for i := range freqs {
		freqs[i] = ^uint32(0)
	}
	tr := buildTree(&freqs)
	assert.Equal(t, uint64(^uint32(0))*numLeaves, tr[rootIndex].frequency)
}
