package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/motion/pkg/easing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "curves",
		Short: "List easing curves",
		Long: `List the easing curves the engine knows, each with its profile
sampled left to right from progress 0 to 1.

Overshooting curves (back, elastic) are clamped to the display range,
so their profiles flatten where the real value leaves [0, 1].

Examples:
  motion curves                 List every curve
  motion curves out_bounce      Show a single curve
  motion curves in_quad linear  Compare a few`,
		Usage: "motion curves [name...]",
		Run:   runCurves,
	})
}

const profileWidth = 32

func runCurves(args []string) error {
	names := args
	if len(names) == 0 {
		names = easing.Names()
	}
	return listCurves(names, os.Stdout)
}

func listCurves(names []string, out io.Writer) error {
	for _, name := range names {
		fn, err := easing.ByName(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-16s %s\n", name, profile(fn, profileWidth))
	}
	return nil
}

// profile renders fn as a fixed-width strip of block glyphs, one sample
// per column.
func profile(fn easing.Func, width int) string {
	levels := []rune("▁▂▃▄▅▆▇█")
	var b strings.Builder
	for i := 0; i < width; i++ {
		v := fn(float64(i) / float64(width-1))
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		idx := int(v * float64(len(levels)))
		if idx == len(levels) {
			idx--
		}
		b.WriteRune(levels[idx])
	}
	return b.String()
}
