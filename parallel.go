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
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// ParallelForNodes is ForNodes with bounded-concurrency fan-out across
// the root's four immediate quadrants. f may be called concurrently
// from multiple goroutines and must be safe for that; maxConcurrency
// caps how many quadrant branches run at once. This is legal only
// because ForNodes is a pure observer over an immutable snapshot of
// the arena: no mutator (Step, SetCell, GarbageCollect) may run
// concurrently with it. Falls back to a single-threaded ForNodes when
// the root is too small to subdivide into four quadrants above level.
func (w *World) ParallelForNodes(ctx context.Context, level uint8, left, right, top, bottom int64, maxConcurrency int64, f func(x, y int64)) error {
	if w.root.isLeaf || w.arena.level(w.root) < level+2 {
		w.ForNodes(level, left, right, top, bottom, f)
		return ctx.Err()
	}

	nodeSize := int64(1) << (w.arena.level(w.root) - level - 2)
	type branch struct {
		node                  Node
		left, right, top, bot int64
		offX, offY            int64
	}
	var branches []branch
	if left < 0 && top < 0 {
		branches = append(branches, branch{w.arena.nw(w.root), left + nodeSize, min64(right, 0) + nodeSize, top + nodeSize, min64(bottom, 0) + nodeSize, -nodeSize, -nodeSize})
	}
	if right > 0 && top < 0 {
		branches = append(branches, branch{w.arena.ne(w.root), max64(left, 0) - nodeSize, right - nodeSize, top + nodeSize, min64(bottom, 0) + nodeSize, nodeSize, -nodeSize})
	}
	if left < 0 && bottom > 0 {
		branches = append(branches, branch{w.arena.sw(w.root), left + nodeSize, min64(right, 0) + nodeSize, max64(top, 0) - nodeSize, bottom - nodeSize, -nodeSize, nodeSize})
	}
	if right > 0 && bottom > 0 {
		branches = append(branches, branch{w.arena.se(w.root), max64(left, 0) - nodeSize, right - nodeSize, max64(top, 0) - nodeSize, bottom - nodeSize, nodeSize, nodeSize})
	}

	sem := semaphore.NewWeighted(maxConcurrency)
	g, gctx := errgroup.WithContext(ctx)
	for _, b := range branches {
		b := b
		if w.arena.population(b.node) == 0 {
			continue
		}
		if err := sem.Acquire(gctx, 1); err != nil {
			return err
		}
		g.Go(func() error {
			defer sem.Release(1)
			w.arena.forNodesRec(b.node, level, b.left, b.right, b.top, b.bot, b.offX, b.offY, f)
			return gctx.Err()
		})
	}
	return g.Wait()
}

// ParallelBound is Bound with its four independent directional scans
// run concurrently; they share no state, so no synchronization beyond
// joining the results is needed.
func (w *World) ParallelBound(ctx context.Context) (left, right, top, bottom int64, ok bool, err error) {
	var l, r, t, b optI64
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { l = w.arena.leftBound(w.root); return nil })
	g.Go(func() error { r = w.arena.rightBound(w.root); return nil })
	g.Go(func() error { t = w.arena.topBound(w.root); return nil })
	g.Go(func() error { b = w.arena.bottomBound(w.root); return nil })
	if err := g.Wait(); err != nil {
		return 0, 0, 0, 0, false, err
	}
	invariant(l.ok == r.ok && l.ok == t.ok && l.ok == b.ok, "bound scans disagree on emptiness")
	if !l.ok {
		return 0, 0, 0, 0, false, nil
	}
	return l.v, r.v, t.v, b.v, true, nil
}
