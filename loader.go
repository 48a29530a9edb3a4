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

import "fmt"

// ErrNodeReference is returned by a Loader when a node stream refers to
// an out-of-range index, or when Finish is called on a stream that
// produced no node.
var ErrNodeReference = fmt.Errorf("hashlife: invalid node reference")

// Loader builds a World bottom-up from an externally ordered node
// stream, mirroring how a Macrocell-format file lists its quadtree:
// children before parents, each new node built either directly from
// four leaves or from four earlier nodes addressed by a 1-based index.
// It exists so that format readers (internal/macrocell) can drive
// hash-consing without reaching into the arena directly.
type Loader struct {
	w     *World
	nodes []Node // nodes[0] is unused; external references are 1-based.
}

// NewLoader starts a loader for the given rule.
func NewLoader(rule *Rule) *Loader {
	return &Loader{w: NewWithStep(rule, 0), nodes: make([]Node, 1)}
}

// AddLeafQuad builds a level-3 node directly from four leaves and
// appends it to the stream, returning its 1-based reference.
func (l *Loader) AddLeafQuad(nw, ne, sw, se Leaf) (int, error) {
	n, err := l.w.arena.findNode(leafNode(nw), leafNode(ne), leafNode(sw), leafNode(se))
	if err != nil {
		return 0, err
	}
	l.nodes = append(l.nodes, n)
	return len(l.nodes) - 1, nil
}

// AddNodeQuad builds a level-`level` node from four earlier references
// and appends it to the stream, returning its 1-based reference. A
// reference of 0 means "the empty node at level-1" rather than a
// literal index, matching the Macrocell format's own convention.
func (l *Loader) AddNodeQuad(level uint8, nwRef, neRef, swRef, seRef int) (int, error) {
	resolve := func(r int) (Node, error) {
		if r == 0 {
			return l.w.arena.emptyNode(level - 1), nil
		}
		if r < 0 || r >= len(l.nodes) {
			return Node{}, fmt.Errorf("hashlife: node reference %d out of range: %w", r, ErrNodeReference)
		}
		return l.nodes[r], nil
	}
	nw, err := resolve(nwRef)
	if err != nil {
		return 0, err
	}
	ne, err := resolve(neRef)
	if err != nil {
		return 0, err
	}
	sw, err := resolve(swRef)
	if err != nil {
		return 0, err
	}
	se, err := resolve(seRef)
	if err != nil {
		return 0, err
	}
	n, err := l.w.arena.findNode(nw, ne, sw, se)
	if err != nil {
		return 0, err
	}
	l.nodes = append(l.nodes, n)
	return len(l.nodes) - 1, nil
}

// Finish sets the world's root to the last node added and returns the
// built world. The stream must have produced at least one node.
func (l *Loader) Finish() (*World, error) {
	if len(l.nodes) < 2 {
		return nil, fmt.Errorf("hashlife: empty node stream: %w", ErrNodeReference)
	}
	l.w.root = l.nodes[len(l.nodes)-1]
	return l.w, nil
}
