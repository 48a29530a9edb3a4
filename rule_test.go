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
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestParseRuleDefault(t *testing.T) {
	r, err := ParseRule("B3/S23")
	if err != nil {
		t.Fatalf("ParseRule(B3/S23): %v", err)
	}
	if r.String() != "B3/S23" {
		t.Errorf("Name = %q, want B3/S23", r.String())
	}
}

func TestParseRuleBareNotation(t *testing.T) {
	a, err := ParseRule("B3/S23")
	if err != nil {
		t.Fatalf("ParseRule(B3/S23): %v", err)
	}
	b, err := ParseRule("23/3")
	if err != nil {
		t.Fatalf("ParseRule(23/3): %v", err)
	}
	if a.ruleTable != b.ruleTable {
		t.Errorf("bare notation 23/3 produced a different table than B3/S23:\n%s", spew.Sdump(a, b))
	}
}

func TestParseRuleB0Rejected(t *testing.T) {
	_, err := ParseRule("B0/S23")
	if !errors.Is(err, ErrRuleUnsupported) {
		t.Errorf("ParseRule(B0/S23) error = %v, want ErrRuleUnsupported", err)
	}
}

func TestParseRuleInvalid(t *testing.T) {
	for _, s := range []string{"", "garbage", "B3S23", "B9/S23"} {
		if _, err := ParseRule(s); !errors.Is(err, ErrRuleParse) {
			t.Errorf("ParseRule(%q) error = %v, want ErrRuleParse", s, err)
		}
	}
}

func TestParseRuleLetterQualified(t *testing.T) {
	if _, err := ParseRule("B3/S23-a4ei6"); err != nil {
		t.Fatalf("ParseRule(B3/S23-a4ei6): %v", err)
	}
}

func TestTableRoundTrip(t *testing.T) {
	r := DefaultRule()
	table := r.Table()
	r2, err := NewCompiledRule(r.String(), table)
	if err != nil {
		t.Fatalf("NewCompiledRule: %v", err)
	}
	if r.ruleTable != r2.ruleTable {
		t.Errorf("round-tripped table differs from original")
	}
}

func TestTableWrongLength(t *testing.T) {
	if _, err := NewCompiledRule("x", make([]byte, 100)); !errors.Is(err, ErrRuleParse) {
		t.Errorf("NewCompiledRule with wrong length: got %v, want ErrRuleParse", err)
	}
}

// stepLeaf vectors from the testable-property leaf-step table, B3/S23.
func TestStepLeafVectors(t *testing.T) {
	r := DefaultRule()
	cases := []struct {
		in   Leaf
		want byte
	}{
		{0x0000, 0x00},
		{0x58A7, 0x11},
		{0xBE0D, 0x10},
		{0x73A0, 0x03},
		{0x068C, 0x21},
	}
	for _, c := range cases {
		got := r.ruleTable[c.in]
		if got != c.want {
			t.Errorf("stepLeaf(%#04x) = %#02x, want %#02x", uint16(c.in), got, c.want)
		}
	}
}
