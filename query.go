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

// GetCell reports whether the cell at (x, y) is alive. Coordinates
// outside the current root are simply dead, never an error.
func (w *World) GetCell(x, y int64) bool {
	return w.arena.getCell(w.root, x, y)
}

func (a *arena) getCell(node Node, x, y int64) bool {
	if a.population(node) == 0 {
		return false
	}
	nodeSize := int64(1) << (a.level(node) - 2)
	if x >= 2*nodeSize || x < -2*nodeSize || y >= 2*nodeSize || y < -2*nodeSize {
		return false
	}
	if node.isLeaf {
		return node.leaf&(1<<uint((1-y)*4+(1-x))) != 0
	}
	switch {
	case x < 0 && y < 0:
		return a.getCell(a.nw(node), x+nodeSize, y+nodeSize)
	case x >= 0 && y < 0:
		return a.getCell(a.ne(node), x-nodeSize, y+nodeSize)
	case x < 0 && y >= 0:
		return a.getCell(a.sw(node), x+nodeSize, y-nodeSize)
	default:
		return a.getCell(a.se(node), x-nodeSize, y-nodeSize)
	}
}

// SetCell sets the cell at (x, y) to state, expanding the root as many
// times as necessary so that (x, y) falls within it, and returns the
// world to allow chaining.
func (w *World) SetCell(x, y int64, state bool) *World {
	for {
		nodeSize := int64(1) << (w.arena.level(w.root) - 2)
		if x < 2*nodeSize && x >= -2*nodeSize && y < 2*nodeSize && y >= -2*nodeSize {
			break
		}
		w.root = w.arena.mustExpand(w.root)
	}
	w.root = w.arena.setCell(w.root, x, y, state)
	w.checkGC()
	return w
}

func (a *arena) setCell(node Node, x, y int64, state bool) Node {
	nodeSize := int64(1) << (a.level(node) - 2)
	invariant(x < 2*nodeSize && x >= -2*nodeSize && y < 2*nodeSize && y >= -2*nodeSize,
		"cannot set a cell outside of the node")

	if node.isLeaf {
		bit := Leaf(1) << uint((1-y)*4+(1-x))
		if state {
			return leafNode(node.leaf | bit)
		}
		return leafNode(node.leaf &^ bit)
	}

	nw, ne, sw, se := a.nw(node), a.ne(node), a.sw(node), a.se(node)
	switch {
	case x < 0 && y < 0:
		nw = a.setCell(nw, x+nodeSize, y+nodeSize, state)
	case x >= 0 && y < 0:
		ne = a.setCell(ne, x-nodeSize, y+nodeSize, state)
	case x < 0 && y >= 0:
		sw = a.setCell(sw, x+nodeSize, y-nodeSize, state)
	default:
		se = a.setCell(se, x-nodeSize, y-nodeSize, state)
	}
	return a.mustFindNode(nw, ne, sw, se)
}
