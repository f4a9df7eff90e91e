package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/motion/pkg/storyboard"
)

func init() {
	RegisterCommand(&Command{
		Name:  "lint",
		Short: "Validate storyboard files",
		Long: `Check storyboard files against the v1 format.

Every file is read, parsed and validated, and problems are reported
per file. The command fails when any file fails, so it slots into CI.

Examples:
  motion lint scene.yaml
  motion lint storyboards/*.yaml`,
		Usage: "motion lint <file...>",
		Run:   runLint,
	})
}

func runLint(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one file is required\n\nUsage: motion lint <file...>")
	}
	return lintFiles(args, os.Stdout)
}

// lintFiles validates each path and reports one line per file. It
// returns an error when any file failed so the CLI exits nonzero.
func lintFiles(paths []string, out io.Writer) error {
	failed := 0
	for _, path := range paths {
		sb, err := storyboard.Load(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s\n     %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s (%d animations, %d tasks, %d ramps)\n",
			path, len(sb.Animations), len(sb.Tasks), len(sb.Ramps))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}
