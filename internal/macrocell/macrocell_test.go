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

package macrocell

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-hashlife/hashlife"
)

func TestDecomposeBitmapSingleBitPerQuadrant(t *testing.T) {
	n := uint64(1<<63 | 1<<59 | 1<<31 | 1<<27)
	nw, ne, sw, se := decomposeBitmap(n)
	if nw != 0x8000 || ne != 0x8000 || sw != 0x8000 || se != 0x8000 {
		t.Errorf("decomposeBitmap(%#016x) = (%#04x,%#04x,%#04x,%#04x), want all 0x8000", n, uint16(nw), uint16(ne), uint16(sw), uint16(se))
	}
}

func TestDecomposeBitmapTopRow(t *testing.T) {
	nw, ne, sw, se := decomposeBitmap(0xFF00000000000000)
	if nw != 0xF000 || ne != 0xF000 {
		t.Errorf("decomposeBitmap(top row) = (nw=%#04x, ne=%#04x), want both 0xf000", uint16(nw), uint16(ne))
	}
	if sw != 0 || se != 0 {
		t.Errorf("decomposeBitmap(top row) left sw/se non-zero: sw=%#04x se=%#04x", uint16(sw), uint16(se))
	}
}

func TestReadLevel3RootSingleCell(t *testing.T) {
	const doc = "[M2]\n#R B3/S23\n3 8000000000000000\n"
	world, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := world.Population(); got != 1 {
		t.Fatalf("Population() = %d, want 1", got)
	}
	if !world.GetCell(-4, -4) {
		t.Error("GetCell(-4, -4) = false, want true")
	}
	if world.GetCell(-3, -4) || world.GetCell(-4, -3) {
		t.Error("unexpected live neighbor cell")
	}
}

func TestReadComposesMultipleLevels(t *testing.T) {
	const doc = "[M2]\n" +
		"3 8000000000000000\n" + // node 1: single live cell at its nw corner
		"3 0000000000000000\n" + // node 2: empty leaf quad
		"4 1 0 0 2\n" // node 3: a level-4 node combining node 1 (nw) and node 2 (se)
	world, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := world.Population(); got != 1 {
		t.Fatalf("Population() = %d, want 1", got)
	}
}

func TestReadMissingMagicFails(t *testing.T) {
	if _, err := Read(strings.NewReader("3 0000000000000000\n")); !errors.Is(err, ErrFormat) {
		t.Errorf("Read without magic: err = %v, want ErrFormat", err)
	}
}

func TestReadLevelOneRejected(t *testing.T) {
	const doc = "[M2]\n1 3\n"
	if _, err := Read(strings.NewReader(doc)); !errors.Is(err, hashlife.ErrUnsupportedMultiState) {
		t.Errorf("Read with a level-1 node: err = %v, want ErrUnsupportedMultiState", err)
	}
}

func TestReadEmptyStreamFails(t *testing.T) {
	if _, err := Read(strings.NewReader("")); !errors.Is(err, ErrFormat) {
		t.Errorf("Read on empty stream: err = %v, want ErrFormat", err)
	}
}
