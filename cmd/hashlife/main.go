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

// Command hashlife is a thin driver around the hashlife package: it
// loads a pattern, steps it, and dumps its state. It contains no
// algorithmic depth beyond wiring flags to the core API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-hashlife/hashlife"
	"github.com/go-hashlife/hashlife/internal/macrocell"
	"github.com/go-hashlife/hashlife/internal/rle"
)

var (
	inputPath   string
	inputFormat string
	generations uint64
	stepSize    uint64
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hashlife",
		Short: "Run HashLife cellular automaton patterns",
	}
	root.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "pattern file to load (required)")
	root.PersistentFlags().StringVarP(&inputFormat, "format", "f", "rle", "pattern format: rle or macrocell")
	root.MarkPersistentFlagRequired("input")

	root.AddCommand(runCmd(), stepCmd(), dumpCmd())
	return root
}

func loadWorld() (*hashlife.World, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer f.Close()

	switch inputFormat {
	case "rle":
		return rle.Read(f)
	case "macrocell":
		return macrocell.Read(f)
	default:
		return nil, fmt.Errorf("unknown format %q (want rle or macrocell)", inputFormat)
	}
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a pattern and call Step a number of times, printing the generation and population after each call",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorld()
			if err != nil {
				return err
			}
			w.SetStep(stepSize)
			for i := uint64(0); i < generations; i++ {
				w.Step()
				fmt.Printf("generation %d: population %d\n", w.GetGeneration(), w.Population())
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&generations, "generations", 1, "number of Step calls to perform")
	cmd.Flags().Uint64Var(&stepSize, "step", 0, "log2 generation stride per Step call")
	return cmd
}

func stepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Load a pattern, advance it once, and print its bounding box",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorld()
			if err != nil {
				return err
			}
			w.SetStep(stepSize)
			w.Step()
			left, right, top, bottom, ok := w.Bound()
			if !ok {
				fmt.Println("empty")
				return nil
			}
			fmt.Printf("bound: [%d,%d) x [%d,%d)\n", left, right, top, bottom)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&stepSize, "step", 0, "log2 generation stride per Step call")
	return cmd
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Load a pattern and print a debug dump of its world state",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorld()
			if err != nil {
				return err
			}
			fmt.Print(w.DebugString())
			return nil
		},
	}
}
