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

// ForNodes calls f once for every node at the given level (0 for
// individual cells) that overlaps the origin-relative, half-open
// rectangle [left, right) x [top, bottom), with f's arguments being
// that node's top-left coordinate in units of 2^level cells. Nodes
// (and whole subtrees) with zero population are skipped without
// descending into them.
func (w *World) ForNodes(level uint8, left, right, top, bottom int64, f func(x, y int64)) {
	w.arena.forNodesRec(w.root, level, left, right, top, bottom, 0, 0, f)
}

// ForLivingCells calls f once for every live cell in the given
// rectangle; it is ForNodes at level 0.
func (w *World) ForLivingCells(left, right, top, bottom int64, f func(x, y int64)) {
	w.ForNodes(0, left, right, top, bottom, f)
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func (a *arena) forNodesRec(node Node, level uint8, left, right, top, bottom, offX, offY int64, f func(x, y int64)) {
	if a.population(node) == 0 {
		return
	}
	nodeLevel := a.level(node)
	if nodeLevel <= level {
		if left <= 0 && right > 0 && top <= 0 && bottom > 0 {
			f(offX, offY)
		}
		return
	}

	if node.isLeaf {
		leaf := node.leaf
		switch level {
		case 0:
			l, r := max64(left, -2), min64(right, 2)
			t, b := max64(top, -2), min64(bottom, 2)
			for y := t; y < b; y++ {
				for x := l; x < r; x++ {
					if leaf&(Leaf(1)<<uint((1-y)*4+(1-x))) != 0 {
						f(x+offX, y+offY)
					}
				}
			}
		case 1:
			l, r := max64(left, -1), min64(right, 1)
			t, b := max64(top, -1), min64(bottom, 1)
			for y := t; y < b; y++ {
				for x := l; x < r; x++ {
					shift := uint(-8*y - 2*x)
					if leaf&(Leaf(0x0033)<<shift) != 0 {
						f(x+offX, y+offY)
					}
				}
			}
		default:
			invariant(false, "a leaf can only be queried at level 0 or 1")
		}
		return
	}

	nw, ne, sw, se := a.nw(node), a.ne(node), a.sw(node), a.se(node)
	if nodeLevel >= level+2 {
		nodeSize := int64(1) << (nodeLevel - level - 2)
		if left < 0 && top < 0 {
			a.forNodesRec(nw, level, left+nodeSize, min64(right, 0)+nodeSize, top+nodeSize, min64(bottom, 0)+nodeSize, offX-nodeSize, offY-nodeSize, f)
		}
		if right > 0 && top < 0 {
			a.forNodesRec(ne, level, max64(left, 0)-nodeSize, right-nodeSize, top+nodeSize, min64(bottom, 0)+nodeSize, offX+nodeSize, offY-nodeSize, f)
		}
		if left < 0 && bottom > 0 {
			a.forNodesRec(sw, level, left+nodeSize, min64(right, 0)+nodeSize, max64(top, 0)-nodeSize, bottom-nodeSize, offX-nodeSize, offY+nodeSize, f)
		}
		if right > 0 && bottom > 0 {
			a.forNodesRec(se, level, max64(left, 0)-nodeSize, right-nodeSize, max64(top, 0)-nodeSize, bottom-nodeSize, offX+nodeSize, offY+nodeSize, f)
		}
		return
	}

	if left < 0 && top < 0 {
		a.forNodesRec(nw, level, left+1, min64(right, 0)+1, top+1, min64(bottom, 0)+1, offX-1, offY-1, f)
	}
	if right > 0 && top < 0 {
		a.forNodesRec(ne, level, max64(left, 0), right, top+1, min64(bottom, 0)+1, offX, offY-1, f)
	}
	if left < 0 && bottom > 0 {
		a.forNodesRec(sw, level, left+1, min64(right, 0)+1, max64(top, 0), bottom, offX-1, offY, f)
	}
	if right > 0 && bottom > 0 {
		a.forNodesRec(se, level, max64(left, 0), right, max64(top, 0), bottom, offX, offY, f)
	}
}
