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
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// Rule is a compiled isotropic non-totalistic two-state range-one rule.
// ruleTable maps a full 4x4 leaf pattern to the 2x2 successor pattern of
// its center, packed at bit positions 5 (NW), 4 (NE), 1 (SW), 0 (SE).
type Rule struct {
	Name      string
	ruleTable [65536]byte
}

// DefaultRule returns the standard Conway's Game of Life rule, B3/S23.
func DefaultRule() *Rule {
	r, err := ParseRule("B3/S23")
	invariant(err == nil, "default rule B3/S23 must parse")
	return r
}

func (r *Rule) String() string { return r.Name }

// Table returns the compiled 65536-entry leaf transition table as a
// flat byte slice, for serialization by internal/rulecache. The
// returned slice is a copy; mutating it has no effect on r.
func (r *Rule) Table() []byte {
	out := make([]byte, len(r.ruleTable))
	copy(out, r.ruleTable[:])
	return out
}

// NewCompiledRule reconstructs a Rule from a name and a previously
// compiled 65536-entry table, skipping the rule-string parse. It is
// used by internal/rulecache to rehydrate a rule cached via Table.
func NewCompiledRule(name string, table []byte) (*Rule, error) {
	if len(table) != 65536 {
		return nil, fmt.Errorf("hashlife: compiled rule table must have 65536 entries, got %d: %w", len(table), ErrRuleParse)
	}
	r := &Rule{Name: name}
	copy(r.ruleTable[:], table)
	return r, nil
}

// ringPos maps a ring index (0..7, clockwise from north) to the
// row-major position (0..8, center = 4) of that compass direction in a
// 3x3 neighborhood.
var ringPos = [8]int{1, 2, 5, 8, 7, 6, 3, 0}

// orbitAlphabet assigns a letter to each orbit of a given neighbor
// count, in ascending order of the orbit's canonical bitmask. This
// ordering and alphabet are this engine's own convention: the ring of
// neighbor positions is classified into orbits under the dihedral group
// of order 8 (the symmetry group of the square acting on the eight
// compass positions), and orbits are named by rank rather than by any
// external rule-naming authority.
var orbitAlphabet = []byte("ceaiknyqjrtwzfhx")

type neighborOrbit struct {
	letter  byte
	members []uint8
}

var neighborOrbits [9][]neighborOrbit

func init() {
	var canon [256]uint8
	for m := 0; m < 256; m++ {
		canon[m] = canonicalOrbit(uint8(m))
	}
	for count := 0; count <= 8; count++ {
		groups := make(map[uint8][]uint8)
		var order []uint8
		for m := 0; m < 256; m++ {
			if bits.OnesCount8(uint8(m)) != count {
				continue
			}
			c := canon[m]
			if _, ok := groups[c]; !ok {
				order = append(order, c)
			}
			groups[c] = append(groups[c], uint8(m))
		}
		sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
		for i, c := range order {
			invariant(i < len(orbitAlphabet), "neighbor count has more orbits than letters available")
			neighborOrbits[count] = append(neighborOrbits[count], neighborOrbit{
				letter:  orbitAlphabet[i],
				members: groups[c],
			})
		}
	}
}

func orbitByLetter(count int, letter byte) (neighborOrbit, bool) {
	for _, o := range neighborOrbits[count] {
		if o.letter == letter {
			return o, true
		}
	}
	return neighborOrbit{}, false
}

// applyPerm remaps each set bit i of mask (a ring-index bitmask) to
// perm(i), producing the image of mask under a ring permutation.
func applyPerm(mask uint8, perm func(int) int) uint8 {
	var out uint8
	for i := 0; i < 8; i++ {
		if mask&(1<<uint(i)) != 0 {
			out |= 1 << uint(perm(i))
		}
	}
	return out
}

// canonicalOrbit returns the minimal bitmask reachable from mask under
// the dihedral group of order 8: the four rotations of the ring by 0,
// 2, 4, 6 positions (the square's 0/90/180/270 degree rotations) and
// their four mirror-reflected counterparts.
func canonicalOrbit(mask uint8) uint8 {
	best := mask
	for k := 0; k < 8; k += 2 {
		shift := k
		rot := applyPerm(mask, func(i int) int { return (i + shift) % 8 })
		if rot < best {
			best = rot
		}
		refl := applyPerm(mask, func(i int) int { return ((shift-i)%8 + 8) % 8 })
		if refl < best {
			best = refl
		}
	}
	return best
}

// splitRuleSections accepts "B<birth>/S<survival>", "S<survival>/B<birth>"
// and the bare classic "<survival>/<birth>" notations, case-insensitively,
// returning the birth and survival specs in that order.
func splitRuleSections(s string) (birth, survival string, err error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return "", "", ErrRuleParse
	}
	a, b := parts[0], parts[1]
	aLower, bLower := strings.ToLower(a), strings.ToLower(b)
	switch {
	case strings.HasPrefix(aLower, "b") && strings.HasPrefix(bLower, "s"):
		return a[1:], b[1:], nil
	case strings.HasPrefix(aLower, "s") && strings.HasPrefix(bLower, "b"):
		return b[1:], a[1:], nil
	case !strings.ContainsAny(aLower, "bs") && !strings.ContainsAny(bLower, "bs"):
		return b, a, nil
	default:
		return "", "", ErrRuleParse
	}
}

// parseSpec parses one birth or survival section (e.g. "23", "3-a", "3ae")
// into the set of included neighbor-ring bitmasks.
func parseSpec(spec string) ([256]bool, error) {
	var included [256]bool
	i := 0
	for i < len(spec) {
		c := spec[i]
		if c < '0' || c > '8' {
			return included, ErrRuleParse
		}
		count := int(c - '0')
		i++
		start := i
		for i < len(spec) && (spec[i] < '0' || spec[i] > '9') {
			i++
		}
		suffix := spec[start:i]
		if suffix == "" {
			for _, o := range neighborOrbits[count] {
				for _, m := range o.members {
					included[m] = true
				}
			}
			continue
		}
		exclude := false
		if suffix[0] == '-' {
			exclude = true
			suffix = suffix[1:]
		}
		if suffix == "" {
			return included, ErrRuleParse
		}
		letters := make(map[byte]bool, len(suffix))
		for j := 0; j < len(suffix); j++ {
			l := suffix[j]
			if l < 'a' || l > 'z' {
				return included, ErrRuleParse
			}
			if _, ok := orbitByLetter(count, l); !ok {
				return included, ErrRuleParse
			}
			letters[l] = true
		}
		for _, o := range neighborOrbits[count] {
			if letters[o.letter] == exclude {
				continue
			}
			for _, m := range o.members {
				included[m] = true
			}
		}
	}
	return included, nil
}

// buildRuleTable expands a 512-entry 3x3 rule table into the 65536-entry
// leaf-to-successor table. The four bit-extraction formulas each pull a
// 3x3 neighborhood for one of the leaf's four center cells out of the
// surrounding 4x4 window.
func buildRuleTable(rule3x3 *[512]bool) [65536]byte {
	var table [65536]byte
	for i := 0; i < 65536; i++ {
		ii := uint32(i)
		nw3x3 := (ii&0xe000)>>7 | (ii&0x0e00)>>6 | (ii&0x00e0)>>5
		ne3x3 := (ii&0x7000)>>6 | (ii&0x0700)>>5 | (ii&0x0070)>>4
		sw3x3 := (ii&0x0e00)>>3 | (ii&0x00e0)>>2 | (ii&0x000e)>>1
		se3x3 := (ii&0x0700)>>2 | (ii&0x0070)>>1 | (ii & 0x0007)
		var b byte
		if rule3x3[nw3x3] {
			b |= 1 << 5
		}
		if rule3x3[ne3x3] {
			b |= 1 << 4
		}
		if rule3x3[sw3x3] {
			b |= 1 << 1
		}
		if rule3x3[se3x3] {
			b |= 1 << 0
		}
		table[i] = b
	}
	return table
}

// ParseRule compiles a Life-like isotropic non-totalistic rule string,
// such as "B3/S23" or "B3/S23-a4ei6", into a Rule. B0 rules (birth on
// zero live neighbors) are rejected as ErrRuleUnsupported.
func ParseRule(s string) (*Rule, error) {
	birthSpec, survivalSpec, err := splitRuleSections(s)
	if err != nil {
		return nil, err
	}
	birthIncluded, err := parseSpec(birthSpec)
	if err != nil {
		return nil, err
	}
	survivalIncluded, err := parseSpec(survivalSpec)
	if err != nil {
		return nil, err
	}
	if birthIncluded[0] {
		return nil, ErrRuleUnsupported
	}

	var rule3x3 [512]bool
	for idx := 0; idx < 512; idx++ {
		var ringMask uint8
		for i := 0; i < 8; i++ {
			if idx&(1<<uint(ringPos[i])) != 0 {
				ringMask |= 1 << uint(i)
			}
		}
		if idx&(1<<4) != 0 {
			rule3x3[idx] = survivalIncluded[ringMask]
		} else {
			rule3x3[idx] = birthIncluded[ringMask]
		}
	}

	return &Rule{
		Name:      s,
		ruleTable: buildRuleTable(&rule3x3),
	}, nil
}
