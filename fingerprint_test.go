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

func TestFingerprintStableAcrossEquivalentBuilds(t *testing.T) {
	a := newRPentomino()
	b := newRPentomino()
	if !a.VerifyIntegrity(b.Fingerprint()) {
		t.Error("two identically-built worlds produced different fingerprints")
	}
}

func TestFingerprintChangesAfterMutation(t *testing.T) {
	w := newRPentomino()
	before := w.Fingerprint()
	w.SetCell(10, 10, true)
	if w.VerifyIntegrity(before) {
		t.Error("fingerprint unchanged after mutating the world")
	}
}

func TestFingerprintStableOnRereadChangedByStep(t *testing.T) {
	w := newRPentomino()
	before := w.Fingerprint()
	w.Step()
	after := w.Fingerprint()
	if !w.VerifyIntegrity(after) {
		t.Error("re-reading the fingerprint without mutating produced a different value")
	}
	if w.VerifyIntegrity(before) {
		t.Error("fingerprint unchanged after a Step that altered the population")
	}
}
