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

import "github.com/prysmaticlabs/go-bitfield"

// GarbageCollect reclaims every arena record unreachable from the
// current root, the shared empty-node chain, or either step cache.
// Mark bits live in a bitfield.Bitlist sized to the arena rather than a
// []bool, so a multi-million-node arena's mark-sweep pass costs one
// bit per node instead of one byte. The canonicalization map is
// rebuilt from scratch afterward, since freed slots are recycled by
// later allocations and must not collide with a stale hash entry.
func (w *World) GarbageCollect() {
	n := len(w.arena.records)
	if n == 0 {
		return
	}
	marks := bitfield.NewBitlist(uint64(n))
	if last := len(w.arena.empties); last > 0 {
		w.arena.markGC(marks, w.arena.empties[last-1])
	}
	w.arena.markGC(marks, w.root)

	newCanon := make(map[children]NodeID, len(w.arena.canon))
	w.arena.free = w.arena.free[:0]
	for i := range w.arena.records {
		id := NodeID(i)
		if marks.BitAt(uint64(i)) {
			newCanon[w.arena.records[i].children] = id
		} else {
			w.arena.records[i] = nodeData{}
			w.arena.free = append(w.arena.free, id)
		}
	}
	w.arena.canon = newCanon
}

// markGC marks node and everything reachable from it: its children and
// both of its step caches, recursively. Leaves need no marking since
// they are never arena-allocated.
func (a *arena) markGC(marks bitfield.Bitlist, node Node) {
	if node.isLeaf {
		return
	}
	if marks.BitAt(uint64(node.id)) {
		return
	}
	marks.SetBitAt(uint64(node.id), true)

	d := a.get(node.id)
	a.markGC(marks, d.children.nw)
	a.markGC(marks, d.children.ne)
	a.markGC(marks, d.children.sw)
	a.markGC(marks, d.children.se)
	if d.hasCacheStep {
		a.markGC(marks, d.cacheStep)
	}
	if d.hasCacheStepMax {
		a.markGC(marks, d.cacheStepMax)
	}
}
