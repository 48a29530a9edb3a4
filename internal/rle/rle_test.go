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

package rle

import (
	"errors"
	"strings"
	"testing"
)

const rPentominoRLE = `#N R-pentomino
#C A small methuselah pattern.
x = 3, y = 3, rule = B3/S23
b2o$2ob$bo!
`

func TestReadRPentomino(t *testing.T) {
	w, err := Read(strings.NewReader(rPentominoRLE))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if w.Rule().String() != "B3/S23" {
		t.Errorf("Rule() = %q, want B3/S23", w.Rule().String())
	}
	if got := w.Population(); got != 5 {
		t.Errorf("Population() = %d, want 5", got)
	}
	want := [][2]int64{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}
	for _, c := range want {
		if !w.GetCell(c[0], c[1]) {
			t.Errorf("GetCell(%d, %d) = false, want true", c[0], c[1])
		}
	}
}

func TestReadDefaultsToB3S23WhenRuleFieldAbsent(t *testing.T) {
	const body = "x = 1, y = 1\no!\n"
	w, err := Read(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if w.Rule().String() != "B3/S23" {
		t.Errorf("Rule() = %q, want B3/S23", w.Rule().String())
	}
}

func TestReadSkipsCommentLines(t *testing.T) {
	const body = "#comment one\n#comment two\nx = 1, y = 1\nbo!\n"
	w, err := Read(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !w.GetCell(1, 0) {
		t.Error("GetCell(1, 0) = false, want true")
	}
}

func TestReadMissingTerminatorFails(t *testing.T) {
	const body = "x = 1, y = 1\nbo\n"
	if _, err := Read(strings.NewReader(body)); !errors.Is(err, ErrFormat) {
		t.Errorf("Read with no terminator: err = %v, want ErrFormat", err)
	}
}

func TestReadEmptyStreamFails(t *testing.T) {
	if _, err := Read(strings.NewReader("")); !errors.Is(err, ErrFormat) {
		t.Errorf("Read on empty stream: err = %v, want ErrFormat", err)
	}
}
