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

// Package rulecache serializes a compiled Rule's 65536-entry leaf
// transition table to a portable SSZ blob, so a driver can compile a
// rule string once and reuse the table across runs without
// re-deriving it. This is scoped to the (small, pure) compiled rule,
// never to the quadtree itself, which stays outside persistence scope.
package rulecache

import (
	"fmt"

	"github.com/karalabe/ssz"

	"github.com/go-hashlife/hashlife"
)

// maxNameLength bounds the serialized rule-name field.
const maxNameLength = 128

// tableLength is the fixed size of a compiled rule's transition table.
const tableLength = 65536

// record is the SSZ container: a bounded dynamic rule name followed by
// the fixed-size transition table.
type record struct {
	Name  []byte
	Table []byte
}

func (r *record) SizeSSZ(siz *ssz.Sizer) uint32 {
	return ssz.SizeDynamicBytes(siz, r.Name) + tableLength
}

func (r *record) DefineSSZ(codec *ssz.Codec) {
	ssz.DefineDynamicBytesOffset(codec, &r.Name, maxNameLength)
	ssz.DefineStaticBytes(codec, &r.Table)
	ssz.DefineDynamicBytesContent(codec, &r.Name, maxNameLength)
}

// Encode serializes a compiled rule into a portable SSZ blob.
func Encode(rule *hashlife.Rule) ([]byte, error) {
	r := &record{Name: []byte(rule.String()), Table: rule.Table()}
	buf := make([]byte, r.SizeSSZ(ssz.NewSizer(false)))
	if err := ssz.EncodeToBytes(buf, r); err != nil {
		return nil, fmt.Errorf("rulecache: encode: %w", err)
	}
	return buf, nil
}

// Decode reconstructs a compiled rule from a blob produced by Encode,
// without re-deriving the transition table from a rule string.
func Decode(blob []byte) (*hashlife.Rule, error) {
	r := new(record)
	if err := ssz.DecodeFromBytes(blob, r); err != nil {
		return nil, fmt.Errorf("rulecache: decode: %w", err)
	}
	rule, err := hashlife.NewCompiledRule(string(r.Name), r.Table)
	if err != nil {
		return nil, fmt.Errorf("rulecache: %w", err)
	}
	return rule, nil
}
