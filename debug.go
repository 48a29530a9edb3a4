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

import "github.com/davecgh/go-spew/spew"

// debugBound mirrors Bound's result in a struct shape spew can label.
type debugBound struct {
	Left, Right, Top, Bottom int64
}

// debugSnapshot is the value dumped by DebugString: everything about a
// world that isn't arena-internal.
type debugSnapshot struct {
	Rule       string
	Generation uint64
	Step       uint64
	Population uint64
	ArenaSize  int
	Bound      *debugBound
}

// DebugString renders the world's rule, generation, step, population,
// arena size and bounding box with go-spew, for use by the dump CLI
// subcommand and by test failure output.
func (w *World) DebugString() string {
	snap := debugSnapshot{
		Rule:       w.rule.String(),
		Generation: w.generation,
		Step:       w.step,
		Population: w.Population(),
		ArenaSize:  w.arena.size(),
	}
	if l, r, t, b, ok := w.Bound(); ok {
		snap.Bound = &debugBound{l, r, t, b}
	}
	return spew.Sdump(snap)
}
