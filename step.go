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

// Step advances the world by 2^GetStep generations, expanding the root
// first if its live content would otherwise run off the edge of the
// field.
func (w *World) Step() {
	for uint64(w.arena.level(w.root)) <= w.step+1 || w.arena.shouldExpand(w.root) {
		w.root = w.arena.mustExpand(w.root)
	}
	w.root = w.stepNode(w.root, w.step)
	w.generation += 1 << w.step
	w.checkGC()
}

// stepLeaf looks up a 4x4 leaf's one-generation successor in the rule's
// compiled table.
func (w *World) stepLeaf(l Leaf) Leaf {
	return Leaf(w.rule.ruleTable[l])
}

// stepNode evolves node by 2^step generations. Leaves can only ever be
// asked to evolve a single generation (step == 0), since a leaf is
// level 2 and a node at level L may only evolve up to 2^(L-2) steps.
func (w *World) stepNode(node Node, step uint64) Node {
	if node.isLeaf {
		invariant(step == 0, "a leaf node can only evolve a single generation")
		return leafNode(w.stepLeaf(node.leaf))
	}
	return w.stepID(node.id, step)
}

// stepID evolves the node at id by 2^step generations, consulting and
// populating cache_step when step matches the world's configured step
// size, and deferring to stepMaxID when step is that node's maximum
// (2^(level-2) generations).
func (w *World) stepID(id NodeID, step uint64) Node {
	level := w.arena.get(id).level
	invariant(1+step < uint64(level), "node cannot evolve that many steps")

	if step == w.step {
		if d := w.arena.get(id); d.hasCacheStep {
			return d.cacheStep
		}
	}

	ch := w.arena.get(id).children
	var node Node
	switch {
	case step+2 == uint64(level):
		node = w.stepMaxID(id)
	case ch.nw.isLeaf:
		node = w.stepQuadLeaf(ch.nw.leaf, ch.ne.leaf, ch.sw.leaf, ch.se.leaf, 0)
	default:
		node = w.stepQuad(ch.nw.id, ch.ne.id, ch.sw.id, ch.se.id, step)
	}

	if step == w.step {
		d := w.arena.get(id)
		d.cacheStep = node
		d.hasCacheStep = true
	}
	return node
}

// stepMaxID evolves the node at id by its full 2^(level-2) generations,
// the one memoized result that survives SetStep and is only ever
// invalidated by garbage collection.
func (w *World) stepMaxID(id NodeID) Node {
	if d := w.arena.get(id); d.hasCacheStepMax {
		return d.cacheStepMax
	}

	ch := w.arena.get(id).children
	var node Node
	if ch.nw.isLeaf {
		node = w.stepQuadLeaf(ch.nw.leaf, ch.ne.leaf, ch.sw.leaf, ch.se.leaf, 1)
	} else {
		node = w.stepMaxQuad(ch.nw.id, ch.ne.id, ch.sw.id, ch.se.id)
	}

	d := w.arena.get(id)
	d.cacheStepMax = node
	d.hasCacheStepMax = true
	return node
}

// stepQuadLeaf evolves a level-3 node, given as its four leaf children,
// by one generation (step == 0) or by its maximum two generations
// (step == 1). It builds the nine overlapping 4x4 windows centered on
// each cell of the inner 3x3 block, steps each one generation via the
// rule table, then reassembles either a single successor leaf or four
// new leaves from the appropriate bits of those nine results.
func (w *World) stepQuadLeaf(nw, ne, sw, se Leaf, step uint64) Node {
	invariant(step < 2, "a level 3 node cannot evolve that many steps")

	t00 := w.stepLeaf(nw)
	t01 := w.stepLeaf((nw&0x3333)<<2 | (ne&0xcccc)>>2)
	t02 := w.stepLeaf(ne)
	t10 := w.stepLeaf((nw&0x00ff)<<8 | (sw&0xff00)>>8)
	t11 := w.stepLeaf((nw&0x0033)<<10 | (ne&0x00cc)<<6 | (sw&0x3300)>>6 | (se&0xcc00)>>10)
	t12 := w.stepLeaf((ne&0x00ff)<<8 | (se&0xff00)>>8)
	t20 := w.stepLeaf(sw)
	t21 := w.stepLeaf((sw&0x3333)<<2 | (se&0xcccc)>>2)
	t22 := w.stepLeaf(se)

	if step == 0 {
		result := (t00&0x01)<<15 | (t01&0x03)<<13 | (t02&0x02)<<11 |
			(t10&0x11)<<7 | (t11&0x33)<<5 | (t12&0x22)<<3 |
			(t20&0x10)>>1 | (t21&0x30)>>3 | (t22&0x20)>>5
		return leafNode(result)
	}

	newNW := w.stepLeaf(t00<<10 | t01<<8 | t10<<2 | t11)
	newNE := w.stepLeaf(t01<<10 | t02<<8 | t11<<2 | t12)
	newSW := w.stepLeaf(t10<<10 | t11<<8 | t20<<2 | t21)
	newSE := w.stepLeaf(t11<<10 | t12<<8 | t21<<2 | t22)
	return leafNode(newNW<<10 | newNE<<8 | newSW<<2 | newSE)
}

// quadChildren reads the four children of an internal node.
func (a *arena) quadChildren(id NodeID) children {
	return a.get(id).children
}

// stepQuad evolves a level-L (L >= 4) node, given as its four NodeID
// children, by 2^step generations. It derives five auxiliary
// grandchild-combining nodes that straddle the boundaries between the
// four children, recurses into all nine through stepID, then
// reassembles the four new quadrant results one level higher.
func (w *World) stepQuad(nw, ne, sw, se NodeID, step uint64) Node {
	nwc, nec := w.arena.quadChildren(nw), w.arena.quadChildren(ne)
	swc, sec := w.arena.quadChildren(sw), w.arena.quadChildren(se)

	n01 := w.arena.mustFindNode(nwc.ne, nec.nw, nwc.se, nec.sw)
	n10 := w.arena.mustFindNode(nwc.sw, nwc.se, swc.nw, swc.ne)
	n11 := w.arena.mustFindNode(nwc.se, nec.sw, swc.ne, sec.nw)
	n12 := w.arena.mustFindNode(nec.sw, nec.se, sec.nw, sec.ne)
	n21 := w.arena.mustFindNode(swc.ne, sec.nw, swc.se, sec.sw)

	t00 := w.stepID(nw, step)
	t01 := w.stepID(n01.id, step)
	t02 := w.stepID(ne, step)
	t10 := w.stepID(n10.id, step)
	t11 := w.stepID(n11.id, step)
	t12 := w.stepID(n12.id, step)
	t20 := w.stepID(sw, step)
	t21 := w.stepID(n21.id, step)
	t22 := w.stepID(se, step)

	if t00.isLeaf {
		newNW := leafNode((t00.leaf&0x0033)<<10 | (t01.leaf&0x00cc)<<6 | (t10.leaf&0x3300)>>6 | (t11.leaf&0xcc00)>>10)
		newNE := leafNode((t01.leaf&0x0033)<<10 | (t02.leaf&0x00cc)<<6 | (t11.leaf&0x3300)>>6 | (t12.leaf&0xcc00)>>10)
		newSW := leafNode((t10.leaf&0x0033)<<10 | (t11.leaf&0x00cc)<<6 | (t20.leaf&0x3300)>>6 | (t21.leaf&0xcc00)>>10)
		newSE := leafNode((t11.leaf&0x0033)<<10 | (t12.leaf&0x00cc)<<6 | (t21.leaf&0x3300)>>6 | (t22.leaf&0xcc00)>>10)
		return w.arena.mustFindNode(newNW, newNE, newSW, newSE)
	}

	t00c, t01c, t02c := w.arena.quadChildren(t00.id), w.arena.quadChildren(t01.id), w.arena.quadChildren(t02.id)
	t10c, t11c, t12c := w.arena.quadChildren(t10.id), w.arena.quadChildren(t11.id), w.arena.quadChildren(t12.id)
	t20c, t21c, t22c := w.arena.quadChildren(t20.id), w.arena.quadChildren(t21.id), w.arena.quadChildren(t22.id)

	newNW := w.arena.mustFindNode(t00c.se, t01c.sw, t10c.ne, t11c.nw)
	newNE := w.arena.mustFindNode(t01c.se, t02c.sw, t11c.ne, t12c.nw)
	newSW := w.arena.mustFindNode(t10c.se, t11c.sw, t20c.ne, t21c.nw)
	newSE := w.arena.mustFindNode(t11c.se, t12c.sw, t21c.ne, t22c.nw)
	return w.arena.mustFindNode(newNW, newNE, newSW, newSE)
}

// stepMaxQuad evolves a level-L (L >= 4) node, given as its four NodeID
// children, by its maximum 2^(L-2) generations. It mirrors stepQuad's
// five auxiliary nodes and nine-way recursion through stepMaxID, then
// applies stepMaxID a second time across the four reassembled quadrants
// so that the whole result covers the node's full time horizon.
func (w *World) stepMaxQuad(nw, ne, sw, se NodeID) Node {
	nwc, nec := w.arena.quadChildren(nw), w.arena.quadChildren(ne)
	swc, sec := w.arena.quadChildren(sw), w.arena.quadChildren(se)

	n01 := w.arena.mustFindNode(nwc.ne, nec.nw, nwc.se, nec.sw)
	n10 := w.arena.mustFindNode(nwc.sw, nwc.se, swc.nw, swc.ne)
	n11 := w.arena.mustFindNode(nwc.se, nec.sw, swc.ne, sec.nw)
	n12 := w.arena.mustFindNode(nec.sw, nec.se, sec.nw, sec.ne)
	n21 := w.arena.mustFindNode(swc.ne, sec.nw, swc.se, sec.sw)

	t00 := w.stepMaxID(nw)
	t01 := w.stepMaxID(n01.id)
	t02 := w.stepMaxID(ne)
	t10 := w.stepMaxID(n10.id)
	t11 := w.stepMaxID(n11.id)
	t12 := w.stepMaxID(n12.id)
	t20 := w.stepMaxID(sw)
	t21 := w.stepMaxID(n21.id)
	t22 := w.stepMaxID(se)

	preNW := w.arena.mustFindNode(t00, t01, t10, t11)
	preNE := w.arena.mustFindNode(t01, t02, t11, t12)
	preSW := w.arena.mustFindNode(t10, t11, t20, t21)
	preSE := w.arena.mustFindNode(t11, t12, t21, t22)

	newNW := w.stepMaxID(preNW.id)
	newNE := w.stepMaxID(preNE.id)
	newSW := w.stepMaxID(preSW.id)
	newSE := w.stepMaxID(preSE.id)

	return w.arena.mustFindNode(newNW, newNE, newSW, newSE)
}
