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

import (
	"reflect"
	"testing"
)

type cellPt struct{ x, y int64 }

func collectCells(w *World, left, right, top, bottom int64) []cellPt {
	var got []cellPt
	w.ForLivingCells(left, right, top, bottom, func(x, y int64) {
		got = append(got, cellPt{x, y})
	})
	return got
}

func collectNodes(w *World, level uint8, left, right, top, bottom int64) []cellPt {
	var got []cellPt
	w.ForNodes(level, left, right, top, bottom, func(x, y int64) {
		got = append(got, cellPt{x, y})
	})
	return got
}

func TestForLivingCellsAfterOneGeneration(t *testing.T) {
	w := newRPentomino()
	w.Step()

	want := []cellPt{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {-1, 1}, {0, 1}}
	if got := collectCells(w, -2, 2, -2, 2); !reflect.DeepEqual(got, want) {
		t.Errorf("ForLivingCells = %v, want %v", got, want)
	}

	wantLevel1 := []cellPt{{-1, -1}, {0, -1}, {-1, 0}, {0, 0}}
	if got := collectNodes(w, 1, -2, 2, -2, 2); !reflect.DeepEqual(got, wantLevel1) {
		t.Errorf("ForNodes(1, ...) = %v, want %v", got, wantLevel1)
	}

	w.SetStep(3)
	w.Step()
	if w.GetGeneration() != 9 {
		t.Fatalf("GetGeneration() = %d, want 9", w.GetGeneration())
	}
	if got := collectNodes(w, 2, -2, 2, -2, 2); !reflect.DeepEqual(got, wantLevel1) {
		t.Errorf("ForNodes(2, ...) after stride-8 step = %v, want %v", got, wantLevel1)
	}
}

func TestForNodesSkipsEmptySubtrees(t *testing.T) {
	w := Default()
	var calls int
	w.ForLivingCells(-1000, 1000, -1000, 1000, func(x, y int64) { calls++ })
	if calls != 0 {
		t.Errorf("ForLivingCells on an empty world invoked f %d times, want 0", calls)
	}
}

// TestForNodesOriginSingleCell checks the Open Question resolution on
// for_nodes's rectangle boundary: [left, right) x [top, bottom) is
// half-open on both axes, so a single cell at the origin is queried
// with rect = (0, 1, 0, 1), not (0, 0, 0, 0) or an inclusive variant.
func TestForNodesOriginSingleCell(t *testing.T) {
	w := Default()
	w.SetCell(0, 0, true)

	if got := collectCells(w, 0, 1, 0, 1); !reflect.DeepEqual(got, []cellPt{{0, 0}}) {
		t.Errorf("ForLivingCells(0,1,0,1) = %v, want [{0 0}]", got)
	}
	if got := collectCells(w, 0, 0, 0, 0); len(got) != 0 {
		t.Errorf("ForLivingCells(0,0,0,0) = %v, want empty (zero-width rectangle)", got)
	}
	if got := collectCells(w, -1, 0, -1, 0); len(got) != 0 {
		t.Errorf("ForLivingCells(-1,0,-1,0) = %v, want empty (origin cell is excluded by the exclusive right/bottom)", got)
	}
}

func TestForLivingCellsRespectsRectangle(t *testing.T) {
	w := newRPentomino()
	got := collectCells(w, 0, 1, -1, 0)
	want := []cellPt{{0, -1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ForLivingCells restricted to (0,1,-1,0) = %v, want %v", got, want)
	}
}
