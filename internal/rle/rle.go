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

// Package rle reads the run-length-encoded cell-list pattern format.
// The reader emits cell-by-cell coordinates and the core simply
// SetCells each; it contains no HashLife algorithmic depth beyond
// format parsing, as comment lines are skipped, the header's rule
// field (if present and valid) overrides the default B3/S23, and the
// body is a run-length sequence of 'b' (dead), 'o' (alive) and '$'
// (end of row) tokens terminated by '!'.
package rle

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-hashlife/hashlife"
)

// ErrFormat reports a malformed RLE stream.
var ErrFormat = fmt.Errorf("rle: malformed input")

// Read decodes an RLE stream and returns the resulting world.
func Read(r io.Reader) (*hashlife.World, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	rule := hashlife.DefaultRule()
	var body strings.Builder
	headerSeen := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !headerSeen {
			headerSeen = true
			if r, ok := parseRuleField(line); ok {
				if parsed, err := hashlife.ParseRule(r); err == nil {
					rule = parsed
				}
			}
			continue
		}
		body.WriteString(line)
		if strings.ContainsRune(line, '!') {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("rle: %w", err)
	}
	if !headerSeen {
		return nil, fmt.Errorf("rle: missing header line: %w", ErrFormat)
	}

	world := hashlife.New(rule)
	if err := decodeBody(world, body.String()); err != nil {
		return nil, err
	}
	return world, nil
}

// parseRuleField extracts the "rule = ..." field from an RLE header
// line such as "x = 3, y = 3, rule = B3/S23". ok is false if the
// header carries no rule field at all.
func parseRuleField(header string) (string, bool) {
	lower := strings.ToLower(header)
	idx := strings.Index(lower, "rule")
	if idx < 0 {
		return "", false
	}
	rest := header[idx+len("rule"):]
	rest = strings.TrimSpace(rest)
	rest = strings.TrimPrefix(rest, "=")
	rest = strings.TrimSpace(rest)
	if end := strings.IndexAny(rest, ", \t"); end >= 0 {
		rest = rest[:end]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}

// decodeBody walks the run-length pattern body, calling SetCell for
// every live cell it describes.
func decodeBody(world *hashlife.World, body string) error {
	var x, y int64
	count := 0
	haveCount := false

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c >= '0' && c <= '9':
			count = count*10 + int(c-'0')
			haveCount = true
		case c == 'b' || c == 'o':
			n := int64(1)
			if haveCount {
				n = int64(count)
			}
			if c == 'o' {
				for k := int64(0); k < n; k++ {
					world.SetCell(x+k, y, true)
				}
			}
			x += n
			count, haveCount = 0, false
		case c == '$':
			n := int64(1)
			if haveCount {
				n = int64(count)
			}
			y += n
			x = 0
			count, haveCount = 0, false
		case c == '!':
			return nil
		default:
			return fmt.Errorf("rle: unexpected token %q: %w", c, ErrFormat)
		}
	}
	return fmt.Errorf("rle: pattern body missing terminating '!': %w", ErrFormat)
}
