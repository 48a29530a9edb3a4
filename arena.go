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

// nodeData is the immutable logical content, plus mutable step caches,
// of one internal (level >= 3) node. It is never mutated in its
// children/level/population fields once created; only the two step
// caches are filled in lazily.
type nodeData struct {
	level      uint8
	population uint64
	children   children

	cacheStep    Node
	hasCacheStep bool

	cacheStepMax    Node
	hasCacheStepMax bool
}

// arena is a slab-allocated vector of node records plus the
// canonicalization map that gives HashLife its structural sharing: two
// independently constructed calls to findNode with equal children
// arguments return the same NodeID. Freed slots (after garbage
// collection) are tracked on a free list and reused by future allocations.
type arena struct {
	records []nodeData
	free    []NodeID
	canon   map[children]NodeID
	empties []Node // empties[i] is the shared all-dead node at level i+2
}

func newArena() *arena {
	return &arena{canon: make(map[children]NodeID)}
}

func (a *arena) get(id NodeID) *nodeData {
	return &a.records[id]
}

// level returns the level of a Node: 2 for a leaf, or the arena's
// recorded level for an internal node.
func (a *arena) level(n Node) uint8 {
	if n.isLeaf {
		return 2
	}
	return a.records[n.id].level
}

// population returns the live-cell count of a Node.
func (a *arena) population(n Node) uint64 {
	if n.isLeaf {
		return n.leaf.population()
	}
	return a.records[n.id].population
}

// nw, ne, sw, se dereference an internal Node's children, regardless of
// whether those children are themselves leaves or node references.
func (a *arena) nw(n Node) Node { return a.records[n.id].children.nw }
func (a *arena) ne(n Node) Node { return a.records[n.id].children.ne }
func (a *arena) sw(n Node) Node { return a.records[n.id].children.sw }
func (a *arena) se(n Node) Node { return a.records[n.id].children.se }

// findNode is the sole creator of internal nodes: it canonicalizes the
// given children, returning a pre-existing NodeID on a hash-cons hit or
// allocating a new arena record on a miss. Go's native map hashing over
// the comparable `children` struct serves as the "fast non-cryptographic
// hash suitable for dense integer keys" the design calls for; no
// external hashing library is grounded for this role anywhere in the
// retrieved example pack, so the standard library map is used as-is.
func (a *arena) findNode(nw, ne, sw, se Node) (Node, error) {
	ch, err := newChildren(nw, ne, sw, se)
	if err != nil {
		return Node{}, err
	}
	if id, ok := a.canon[ch]; ok {
		return internalNode(id), nil
	}
	level := a.level(nw) + 1
	population := a.population(nw) + a.population(ne) + a.population(sw) + a.population(se)
	id := a.alloc(nodeData{level: level, population: population, children: ch})
	a.canon[ch] = id
	return internalNode(id), nil
}

// alloc inserts a new record, reusing a freed slot if one is available.
func (a *arena) alloc(d nodeData) NodeID {
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		a.records[id] = d
		return id
	}
	id := NodeID(len(a.records))
	a.records = append(a.records, d)
	return id
}

// emptyNode returns the shared all-dead node at the given level,
// extending the empty-node cache on demand. Level must be >= 2.
func (a *arena) emptyNode(level uint8) Node {
	invariant(level >= 2, "empty node level must be >= 2")
	if len(a.empties) == 0 {
		a.empties = append(a.empties, leafNode(0))
	}
	for len(a.empties) <= int(level)-2 {
		last := a.empties[len(a.empties)-1]
		next, err := a.findNode(last, last, last, last)
		invariant(err == nil, "empty node children cannot be mixed")
		a.empties = append(a.empties, next)
	}
	return a.empties[level-2]
}

// size reports the number of live arena records, used to decide whether
// garbage collection should run.
func (a *arena) size() int {
	return len(a.records) - len(a.free)
}

// mustFindNode wraps findNode for the engine's internal callers, which
// only ever combine children already known to share a level. A mismatch
// here means the engine itself is broken, not that the caller passed
// bad input, so it panics rather than threading an error through every
// step/expand call site.
func (a *arena) mustFindNode(nw, ne, sw, se Node) Node {
	n, err := a.findNode(nw, ne, sw, se)
	invariant(err == nil, "engine combined children of different levels")
	return n
}

// mustExpand wraps expand for the same reason: expand only ever
// operates on the world's own root, so a mixed-level error would be an
// engine bug.
func (a *arena) mustExpand(n Node) Node {
	node, err := a.expand(n)
	invariant(err == nil, "engine expanded mismatched children")
	return node
}
