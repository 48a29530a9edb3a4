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

import "errors"

var (
	// ErrRuleParse is returned when a rule string is not a valid
	// isotropic non-totalistic rule.
	ErrRuleParse = errors.New("hashlife: invalid rule string")

	// ErrRuleUnsupported is returned when a rule is syntactically
	// valid but its birth set contains the empty neighborhood (a "B0"
	// rule), which this engine does not support.
	ErrRuleUnsupported = errors.New("hashlife: B0 rules are not supported")

	// ErrUnsupportedMultiState is returned by the Macrocell reader
	// when it encounters a level-1 node, which denotes a pattern with
	// more than two cell states.
	ErrUnsupportedMultiState = errors.New("hashlife: rules with more than 2 states are not supported")

	// errMixedChildren signals an attempt to build a node out of
	// children at different levels (some leaves, some node
	// references). Inside the engine it can only be triggered by an
	// internal bug; the one public API that returns it is
	// Loader.AddNodeQuad, when a caller's references mix leaves and
	// internal nodes.
	errMixedChildren = errors.New("hashlife: all children must have the same level")
)

// invariant panics with msg if cond is false. It marks internal
// consistency violations that the public API contract rules out by
// construction: mixed-level children, a step exceeding a node's legal
// horizon, or a set-cell target outside an already-expanded root.
func invariant(cond bool, msg string) {
	if !cond {
		panic("hashlife: invariant violated: " + msg)
	}
}
