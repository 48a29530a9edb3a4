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

import "github.com/go-hashlife/hashlife/internal/fingerprint"

// Fingerprint returns a non-authoritative commitment over the world's
// current root, recomputing every child fingerprint recursively. It is
// never consulted by Step, GetCell, or any other core operation; it
// exists so tests and VerifyIntegrity can cross-check that two
// hash-cons-equal subtrees, or a world before and after garbage
// collection, commit to the same value (testable property 5).
func (w *World) Fingerprint() fingerprint.Fingerprint {
	return w.arena.fingerprintOf(w.root)
}

func (a *arena) fingerprintOf(n Node) fingerprint.Fingerprint {
	if n.isLeaf {
		return fingerprint.Leaf(uint16(n.leaf))
	}
	return fingerprint.Node(
		a.level(n), a.population(n),
		a.fingerprintOf(a.nw(n)), a.fingerprintOf(a.ne(n)),
		a.fingerprintOf(a.sw(n)), a.fingerprintOf(a.se(n)),
	)
}

// VerifyIntegrity recomputes the root's fingerprint from scratch and
// compares it against a previously recorded one (for instance, taken
// before a GarbageCollect call). It reports whether the world's
// observable content is unchanged.
func (w *World) VerifyIntegrity(before fingerprint.Fingerprint) bool {
	return fingerprint.Equal(before, w.Fingerprint())
}
