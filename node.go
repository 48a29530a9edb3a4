// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package hashlife

import "math/bits"

// Leaf is a 4x4 block of cells packed into a 16-bit integer. Bit b at
// position (x, y), x, y in {-2, -1, 0, 1}, lives at bit (1-y)*4 + (1-x):
// the most significant bit is the top-left cell. Every Leaf is a tree
// node at level 2; leaves are held inline rather than in the arena.
type Leaf uint16

// population returns the number of live cells in the leaf.
func (l Leaf) population() uint64 {
	return uint64(bits.OnesCount16(uint16(l)))
}

// Leaf quadrant masks, derived from the (1-y)*4+(1-x) bit layout.
const (
	leafMaskNW Leaf = 0xcc00
	leafMaskNE Leaf = 0x3300
	leafMaskSW Leaf = 0x00cc
	leafMaskSE Leaf = 0x0033
)

// NodeID is an opaque handle into a World's node arena. It is valid for
// the lifetime of the world unless invalidated by garbage collection or
// Clear; the public API never exposes a NodeID directly.
type NodeID uint32

// Node is a tagged union of a Leaf (level 2) or a NodeID (level >= 3).
// It is a small value type so that it can be used directly as part of a
// hash-cons map key.
type Node struct {
	id     NodeID
	leaf   Leaf
	isLeaf bool
}

// leafNode wraps a Leaf as a Node.
func leafNode(l Leaf) Node {
	return Node{leaf: l, isLeaf: true}
}

// internalNode wraps a NodeID as a Node.
func internalNode(id NodeID) Node {
	return Node{id: id}
}

// children are the four children of an internal node, in NW/NE/SW/SE
// order. All four children share the same tag (all leaves, or all node
// references); constructing a children value with mixed tags is a
// programming error, checked by newChildren.
type children struct {
	nw, ne, sw, se Node
}

func newChildren(nw, ne, sw, se Node) (children, error) {
	if nw.isLeaf != ne.isLeaf || nw.isLeaf != sw.isLeaf || nw.isLeaf != se.isLeaf {
		return children{}, errMixedChildren
	}
	return children{nw: nw, ne: ne, sw: sw, se: se}, nil
}
