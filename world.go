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

// gcThreshold is the arena size, in live records, at which Step and
// SetCell trigger an automatic garbage collection.
const gcThreshold = 1 << 24

// World holds one evolving HashLife universe: its rule, its current
// generation counter and step size, the node arena, and the current
// root.
type World struct {
	rule       *Rule
	arena      *arena
	root       Node
	generation uint64
	step       uint64
}

// New creates a world using the given rule, starting at step 0 (advance
// one generation per Step call) with an empty root.
func New(rule *Rule) *World {
	return NewWithStep(rule, 0)
}

// NewWithStep creates a world using the given rule, where each Step
// call advances 2^step generations.
func NewWithStep(rule *Rule, step uint64) *World {
	a := newArena()
	return &World{
		rule:  rule,
		arena: a,
		root:  a.emptyNode(2),
		step:  step,
	}
}

// Default creates a world using Conway's Game of Life (B3/S23) at
// step 0.
func Default() *World {
	return New(DefaultRule())
}

// Rule returns the world's current rule.
func (w *World) Rule() *Rule { return w.rule }

// Population returns the number of live cells in O(1), since every
// arena node caches its own population at construction time.
func (w *World) Population() uint64 {
	return w.arena.population(w.root)
}

// GetGeneration returns the number of elapsed generations since the
// world was created or last reset.
func (w *World) GetGeneration() uint64 {
	return w.generation
}

// SetGeneration overwrites the generation counter without affecting
// the world's contents.
func (w *World) SetGeneration(generation uint64) *World {
	w.generation = generation
	return w
}

// GetStep returns the current step size: each Step call advances
// 2^step generations.
func (w *World) GetStep() uint64 {
	return w.step
}

// SetStep changes the step size. Because step-dependent memoized
// results (cache_step) are keyed on the step at which they were
// computed, changing the step invalidates cache_step; the
// step-independent cache_step_max entries survive untouched.
func (w *World) SetStep(step uint64) *World {
	w.step = step
	w.clearStepCache()
	return w
}

// clearStepCache drops every node's cache_step entry, leaving
// cache_step_max intact.
func (w *World) clearStepCache() {
	for i := range w.arena.records {
		w.arena.records[i].hasCacheStep = false
	}
}

// Clear resets the world to an empty root and zero generation. If
// clearNodes is true the arena itself is also discarded, freeing all
// memoized nodes; otherwise previously built nodes remain available
// for structural sharing with whatever pattern is loaded next.
func (w *World) Clear(clearNodes bool) *World {
	w.generation = 0
	if clearNodes {
		w.arena = newArena()
	}
	w.root = w.arena.emptyNode(2)
	return w
}

// checkGC runs a garbage collection if the arena has grown past
// gcThreshold live records.
func (w *World) checkGC() {
	if w.arena.size() >= gcThreshold {
		w.GarbageCollect()
	}
}
