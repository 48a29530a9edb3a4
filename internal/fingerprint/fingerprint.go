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

// Package fingerprint produces a non-authoritative vector commitment
// over a quadtree node's canonical (level, population, children)
// tuple. It exists purely as a diagnostic and test cross-check: two
// structurally equal subtrees (same hash-cons key) must commit to the
// same point, and garbage collection must not change the root's
// commitment. It is never consulted by the evolution engine itself.
package fingerprint

import (
	"sync"

	"github.com/crate-crypto/go-ipa/bandersnatch"
	"github.com/crate-crypto/go-ipa/bandersnatch/fr"
	"github.com/crate-crypto/go-ipa/ipa"
)

// width matches the IPA settings' fixed SRS size; unused slots are
// left at the zero element.
const width = 256

var (
	once sync.Once
	cfg  *ipa.IPAConfig
)

func config() *ipa.IPAConfig {
	once.Do(func() { cfg = ipa.NewIPASettings() })
	return cfg
}

// Fingerprint is the commitment point produced by Leaf or Node.
type Fingerprint = bandersnatch.PointAffine

// Leaf commits to a level-2 node: just its 16-bit bitmap.
func Leaf(bitmap uint16) Fingerprint {
	var poly [width]fr.Element
	poly[0].SetUint64(2)
	poly[1].SetUint64(uint64(bitmap))
	return config().Commit(poly[:])
}

// Node commits to an internal node's level, population, and each
// child's own fingerprint reduced to a scalar via its byte encoding.
func Node(level uint8, population uint64, nw, ne, sw, se Fingerprint) Fingerprint {
	var poly [width]fr.Element
	poly[0].SetUint64(uint64(level))
	poly[1].SetUint64(population)
	children := [4]Fingerprint{nw, ne, sw, se}
	for i, c := range children {
		b := c.Bytes()
		poly[2+i].SetBytes(b[:])
	}
	return config().Commit(poly[:])
}

// Equal reports whether two fingerprints commit to the same value.
func Equal(a, b Fingerprint) bool {
	ab, bb := a.Bytes(), b.Bytes()
	return ab == bb
}
