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

// optI64 is an optional int64, standing in for the engine's internal
// recursive bound scans where "no live cell on this side" must be
// distinguished from a genuine coordinate of 0.
type optI64 struct {
	v  int64
	ok bool
}

func minOpt(a, b optI64) optI64 {
	switch {
	case a.ok && b.ok:
		if a.v < b.v {
			return a
		}
		return b
	case a.ok:
		return a
	case b.ok:
		return b
	default:
		return optI64{}
	}
}

func maxOpt(a, b optI64) optI64 {
	switch {
	case a.ok && b.ok:
		if a.v > b.v {
			return a
		}
		return b
	case a.ok:
		return a
	case b.ok:
		return b
	default:
		return optI64{}
	}
}

// Bound returns the smallest axis-aligned rectangle, as (left, right,
// top, bottom) with right and bottom exclusive, containing every live
// cell. ok is false when the world is entirely empty.
func (w *World) Bound() (left, right, top, bottom int64, ok bool) {
	l := w.arena.leftBound(w.root)
	r := w.arena.rightBound(w.root)
	t := w.arena.topBound(w.root)
	b := w.arena.bottomBound(w.root)
	invariant(l.ok == r.ok && l.ok == t.ok && l.ok == b.ok, "bound scans disagree on emptiness")
	if !l.ok {
		return 0, 0, 0, 0, false
	}
	return l.v, r.v, t.v, b.v, true
}

func (a *arena) leftBound(node Node) optI64 {
	if a.population(node) == 0 {
		return optI64{}
	}
	if node.isLeaf {
		l := node.leaf
		switch {
		case l&0x8888 != 0:
			return optI64{-2, true}
		case l&0x4444 != 0:
			return optI64{-1, true}
		case l&0x2222 != 0:
			return optI64{0, true}
		case l&0x1111 != 0:
			return optI64{1, true}
		default:
			return optI64{}
		}
	}
	nodeSize := int64(1) << (a.level(node) - 2)
	if near := minOpt(a.leftBound(a.nw(node)), a.leftBound(a.sw(node))); near.ok {
		return optI64{near.v - nodeSize, true}
	}
	if far := minOpt(a.leftBound(a.ne(node)), a.leftBound(a.se(node))); far.ok {
		return optI64{far.v + nodeSize, true}
	}
	return optI64{}
}

func (a *arena) rightBound(node Node) optI64 {
	if a.population(node) == 0 {
		return optI64{}
	}
	if node.isLeaf {
		l := node.leaf
		switch {
		case l&0x1111 != 0:
			return optI64{2, true}
		case l&0x2222 != 0:
			return optI64{1, true}
		case l&0x4444 != 0:
			return optI64{0, true}
		case l&0x8888 != 0:
			return optI64{-1, true}
		default:
			return optI64{}
		}
	}
	nodeSize := int64(1) << (a.level(node) - 2)
	if near := maxOpt(a.rightBound(a.ne(node)), a.rightBound(a.se(node))); near.ok {
		return optI64{near.v + nodeSize, true}
	}
	if far := maxOpt(a.rightBound(a.nw(node)), a.rightBound(a.sw(node))); far.ok {
		return optI64{far.v - nodeSize, true}
	}
	return optI64{}
}

func (a *arena) topBound(node Node) optI64 {
	if a.population(node) == 0 {
		return optI64{}
	}
	if node.isLeaf {
		l := node.leaf
		switch {
		case l&0xf000 != 0:
			return optI64{-2, true}
		case l&0x0f00 != 0:
			return optI64{-1, true}
		case l&0x00f0 != 0:
			return optI64{0, true}
		case l&0x000f != 0:
			return optI64{1, true}
		default:
			return optI64{}
		}
	}
	nodeSize := int64(1) << (a.level(node) - 2)
	if near := minOpt(a.topBound(a.nw(node)), a.topBound(a.ne(node))); near.ok {
		return optI64{near.v - nodeSize, true}
	}
	if far := minOpt(a.topBound(a.sw(node)), a.topBound(a.se(node))); far.ok {
		return optI64{far.v + nodeSize, true}
	}
	return optI64{}
}

func (a *arena) bottomBound(node Node) optI64 {
	if a.population(node) == 0 {
		return optI64{}
	}
	if node.isLeaf {
		l := node.leaf
		switch {
		case l&0x000f != 0:
			return optI64{2, true}
		case l&0x00f0 != 0:
			return optI64{1, true}
		case l&0x0f00 != 0:
			return optI64{0, true}
		case l&0xf000 != 0:
			return optI64{-1, true}
		default:
			return optI64{}
		}
	}
	nodeSize := int64(1) << (a.level(node) - 2)
	if near := maxOpt(a.bottomBound(a.sw(node)), a.bottomBound(a.se(node))); near.ok {
		return optI64{near.v + nodeSize, true}
	}
	if far := maxOpt(a.bottomBound(a.nw(node)), a.bottomBound(a.ne(node))); far.ok {
		return optI64{far.v - nodeSize, true}
	}
	return optI64{}
}
