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

import "testing"

func TestGetCellOnPentomino(t *testing.T) {
	w := newRPentomino()
	if !w.GetCell(-1, 0) {
		t.Error("GetCell(-1, 0) = false, want true")
	}
	if !w.GetCell(0, 1) {
		t.Error("GetCell(0, 1) = false, want true")
	}
	if w.GetCell(-2, -2) {
		t.Error("GetCell(-2, -2) = true, want false")
	}
}

func TestGetCellAfterLargeStride(t *testing.T) {
	w := newRPentomino()
	w.SetStep(8)
	w.Step()
	if !w.GetCell(-29, -17) {
		t.Error("GetCell(-29, -17) = false, want true")
	}
	if !w.GetCell(21, -6) {
		t.Error("GetCell(21, -6) = false, want true")
	}
	if w.GetCell(0, 0) {
		t.Error("GetCell(0, 0) = true, want false")
	}
}

func TestSetCellExpandsRoot(t *testing.T) {
	w := Default()
	w.SetCell(1000, -1000, true)
	if !w.GetCell(1000, -1000) {
		t.Error("GetCell(1000, -1000) = false after SetCell, want true")
	}
	if w.Population() != 1 {
		t.Errorf("Population() = %d, want 1", w.Population())
	}
}

func TestSetCellToggle(t *testing.T) {
	w := Default()
	w.SetCell(0, 0, true)
	if !w.GetCell(0, 0) {
		t.Fatal("cell not set")
	}
	w.SetCell(0, 0, false)
	if w.GetCell(0, 0) {
		t.Fatal("cell still set after clearing")
	}
	if w.Population() != 0 {
		t.Errorf("Population() = %d, want 0", w.Population())
	}
}

func TestFindNodeHashConsing(t *testing.T) {
	a := newArena()
	n1, err := a.findNode(leafNode(1), leafNode(2), leafNode(3), leafNode(4))
	if err != nil {
		t.Fatalf("findNode: %v", err)
	}
	n2, err := a.findNode(leafNode(1), leafNode(2), leafNode(3), leafNode(4))
	if err != nil {
		t.Fatalf("findNode: %v", err)
	}
	if n1.id != n2.id {
		t.Errorf("two equal findNode calls produced different ids: %d vs %d", n1.id, n2.id)
	}
}

func TestFindNodeMixedChildrenRejected(t *testing.T) {
	a := newArena()
	internal, err := a.findNode(leafNode(0), leafNode(0), leafNode(0), leafNode(0))
	if err != nil {
		t.Fatalf("findNode: %v", err)
	}
	if _, err := a.findNode(internal, leafNode(0), leafNode(0), leafNode(0)); err == nil {
		t.Error("findNode with mixed leaf/node children succeeded, want error")
	}
}
