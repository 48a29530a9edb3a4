package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/go-hashlife/hashlife"
)

func main() {
	benchmarkRPentominoSteps()
}

// benchmarkRPentominoSteps grows the classic R-pentomino for a large
// number of generations at increasing step sizes, profiling CPU and
// heap usage the way HashLife's exponential speedup is normally
// demonstrated: few arena allocations once the per-node max-step
// cache saturates.
func benchmarkRPentominoSteps() {
	f, _ := os.Create("cpu.prof")
	g, _ := os.Create("mem.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()
	defer func() { _ = pprof.WriteHeapProfile(g) }()

	generations := uint64(1) << 20
	stepSizes := []uint64{0, 4, 8, 12, 16}

	for _, stepSize := range stepSizes {
		w := hashlife.Default()
		w.SetCell(0, -1, true)
		w.SetCell(1, -1, true)
		w.SetCell(-1, 0, true)
		w.SetCell(0, 0, true)
		w.SetCell(0, 1, true)
		w.SetStep(stepSize)

		start := time.Now()
		steps := generations >> stepSize
		for i := uint64(0); i < steps; i++ {
			w.Step()
		}
		elapsed := time.Since(start)
		fmt.Printf("step=%2d: %d generations in %v, population=%d, generation=%d\n",
			stepSize, generations, elapsed, w.Population(), w.GetGeneration())
	}
}
