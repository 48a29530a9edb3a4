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

// Package macrocell reads the Macrocell textual quadtree format: a
// node stream in topological order (children before parents), each
// node carrying either a level-3 64-bit bitmap or a reference to four
// previously emitted nodes by 1-based index, where 0 means "empty at
// level - 1". This reader contains no HashLife algorithmic depth; it
// only decodes the stream and hands nodes to hashlife.Loader.
package macrocell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-hashlife/hashlife"
)

// ErrFormat reports a malformed Macrocell stream: a missing magic
// header, an unparsable node line, or a wrong field count for its level.
var ErrFormat = fmt.Errorf("macrocell: malformed input")

// magic is the header every Macrocell stream must open with.
const magic = "[M2]"

// Read decodes a Macrocell stream and returns the resulting world,
// with its root set to the last node in the stream. The rule line
// (`#R <rulestring>`), if present and valid, overrides the default
// B3/S23.
func Read(r io.Reader) (*hashlife.World, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("macrocell: empty input: %w", ErrFormat)
	}
	if !strings.HasPrefix(strings.TrimSpace(scanner.Text()), magic) {
		return nil, fmt.Errorf("macrocell: missing %q header: %w", magic, ErrFormat)
	}

	rule := hashlife.DefaultRule()
	loader := hashlife.NewLoader(rule)
	ruleSet := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if !ruleSet && strings.HasPrefix(line, "#R ") {
				if parsed, err := hashlife.ParseRule(strings.TrimSpace(line[3:])); err == nil {
					rule = parsed
					ruleSet = true
					loader = hashlife.NewLoader(rule)
				}
			}
			continue
		}
		if err := addLine(loader, line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("macrocell: %w", err)
	}
	return loader.Finish()
}

func addLine(loader *hashlife.Loader, line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fmt.Errorf("macrocell: node line %q: %w", line, ErrFormat)
	}
	level, err := strconv.ParseUint(fields[0], 10, 8)
	if err != nil {
		return fmt.Errorf("macrocell: node level %q: %w", fields[0], ErrFormat)
	}

	switch {
	case level == 1:
		return hashlife.ErrUnsupportedMultiState
	case level == 3:
		if len(fields) != 2 {
			return fmt.Errorf("macrocell: level-3 node line %q: %w", line, ErrFormat)
		}
		bitmap, err := strconv.ParseUint(fields[1], 16, 64)
		if err != nil {
			return fmt.Errorf("macrocell: level-3 bitmap %q: %w", fields[1], ErrFormat)
		}
		nw, ne, sw, se := decomposeBitmap(bitmap)
		_, err = loader.AddLeafQuad(nw, ne, sw, se)
		return err
	default:
		if len(fields) != 5 {
			return fmt.Errorf("macrocell: level-%d node line %q: %w", level, line, ErrFormat)
		}
		refs := make([]int, 4)
		for i, f := range fields[1:] {
			ref, err := strconv.Atoi(f)
			if err != nil {
				return fmt.Errorf("macrocell: node reference %q: %w", f, ErrFormat)
			}
			refs[i] = ref
		}
		_, err := loader.AddNodeQuad(uint8(level), refs[0], refs[1], refs[2], refs[3])
		return err
	}
}

// decomposeBitmap rearranges a level-3 node's 64-bit bitmap (eight
// rows of eight cells, MSB first per row, row 0 on top) into the four
// 16-bit leaf quadrants of the in-memory (1-y)*4+(1-x) layout.
func decomposeBitmap(n uint64) (nw, ne, sw, se hashlife.Leaf) {
	nw = hashlife.Leaf(
		(n&0xf000000000000000)>>48 |
			(n&0x00f0000000000000)>>44 |
			(n&0x0000f00000000000)>>40 |
			(n&0x000000f000000000)>>36,
	)
	ne = hashlife.Leaf(
		(n&0x0f00000000000000)>>44 |
			(n&0x000f000000000000)>>40 |
			(n&0x00000f0000000000)>>36 |
			(n&0x0000000f00000000)>>32,
	)
	sw = hashlife.Leaf(
		(n&0x00000000f0000000)>>16 |
			(n&0x0000000000f00000)>>12 |
			(n&0x000000000000f000)>>8 |
			(n&0x00000000000000f0)>>4,
	)
	se = hashlife.Leaf(
		(n&0x000000000f000000)>>12 |
			(n&0x00000000000f0000)>>8 |
			(n&0x0000000000000f00)>>4 |
			(n & 0x000000000000000f),
	)
	return
}
