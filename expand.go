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

// shouldExpand reports whether root's live content comes close enough
// to the edge of the field that stepping it forward risks truncation,
// meaning the root must be expanded (wrapped in a larger, mostly-empty
// root) before stepping.
func (a *arena) shouldExpand(root Node) bool {
	if root.isLeaf {
		return true
	}
	if a.level(root) == 3 {
		nw, ne, sw, se := a.nw(root), a.ne(root), a.sw(root), a.se(root)
		return nw.leaf&0xfffe != 0 || ne.leaf&0xfff7 != 0 || sw.leaf&0xefff != 0 || se.leaf&0x7fff != 0
	}
	nw, ne, sw, se := a.nw(root), a.ne(root), a.sw(root), a.se(root)
	if a.level(root) == 4 {
		return a.population(nw) != (a.se(nw).leaf&leafMaskSE).population() ||
			a.population(ne) != (a.sw(ne).leaf&leafMaskSW).population() ||
			a.population(sw) != (a.ne(sw).leaf&leafMaskNE).population() ||
			a.population(se) != (a.nw(se).leaf&leafMaskNW).population()
	}
	return a.population(nw) != a.population(a.se(a.se(nw))) ||
		a.population(ne) != a.population(a.sw(a.sw(ne))) ||
		a.population(sw) != a.population(a.ne(a.ne(sw))) ||
		a.population(se) != a.population(a.nw(a.nw(se)))
}

// expand wraps root in a new root one level larger, keeping root's
// content centered so that it occupies the innermost quadrant of the
// result at every depth.
func (a *arena) expand(root Node) (Node, error) {
	if root.isLeaf {
		l := root.leaf
		nw := leafNode((l & leafMaskNW) >> 10)
		ne := leafNode((l & leafMaskNE) >> 6)
		sw := leafNode((l & leafMaskSW) << 6)
		se := leafNode((l & leafMaskSE) << 10)
		return a.findNode(nw, ne, sw, se)
	}

	level := a.level(root)
	empty := a.emptyNode(level - 1)
	nw, ne, sw, se := a.nw(root), a.ne(root), a.sw(root), a.se(root)

	newNW, err := a.findNode(empty, empty, empty, nw)
	if err != nil {
		return Node{}, err
	}
	newNE, err := a.findNode(empty, empty, ne, empty)
	if err != nil {
		return Node{}, err
	}
	newSW, err := a.findNode(empty, sw, empty, empty)
	if err != nil {
		return Node{}, err
	}
	newSE, err := a.findNode(se, empty, empty, empty)
	if err != nil {
		return Node{}, err
	}
	return a.findNode(newNW, newNE, newSW, newSE)
}
