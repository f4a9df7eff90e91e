package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go-drift/motion/pkg/storyboard"
	"github.com/go-drift/motion/pkg/tween"
)

func init() {
	RegisterCommand(&Command{
		Name:  "play",
		Short: "Step a storyboard and print the timeline",
		Long: `Play a storyboard against zeroed targets with a fixed time step and
print every property write, task beat and completion.

Each animation starts from zero for all of its properties and runs
toward the values in the document. The output is deterministic for a
given file and step size, which makes it useful for diffing the effect
of storyboard changes.

Flags:
  --dt MS      Step size in milliseconds (default 100)
  --until MS   Stop after this much simulated time. The default plays
               until every animation and finite task has finished.

Examples:
  motion play scene.yaml
  motion play scene.yaml --dt 50
  motion play pulse.yaml --until 2000`,
		Usage: "motion play <file> [--dt MS] [--until MS]",
		Run:   runPlay,
	})
}

// maxPlaySteps bounds unattended playback so a long storyboard with a
// tiny step cannot hang the command.
const maxPlaySteps = 100000

func runPlay(args []string) error {
	path, dt, until, err := parsePlayArgs(args)
	if err != nil {
		return err
	}
	sb, err := storyboard.Load(path)
	if err != nil {
		return err
	}
	fmt.Printf("playing %s (dt %g ms)\n\n", path, dt)
	return playStoryboard(sb, dt, until, os.Stdout)
}

func parsePlayArgs(args []string) (path string, dt, until float64, err error) {
	dt = 100
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--dt":
			if i+1 >= len(args) {
				return "", 0, 0, fmt.Errorf("--dt requires a value in milliseconds")
			}
			i++
			dt, err = parseMillis("--dt", args[i])
		case strings.HasPrefix(arg, "--dt="):
			dt, err = parseMillis("--dt", strings.TrimPrefix(arg, "--dt="))
		case arg == "--until":
			if i+1 >= len(args) {
				return "", 0, 0, fmt.Errorf("--until requires a value in milliseconds")
			}
			i++
			until, err = parseMillis("--until", args[i])
		case strings.HasPrefix(arg, "--until="):
			until, err = parseMillis("--until", strings.TrimPrefix(arg, "--until="))
		case strings.HasPrefix(arg, "-"):
			return "", 0, 0, fmt.Errorf("unknown flag %q", arg)
		default:
			if path != "" {
				return "", 0, 0, fmt.Errorf("unexpected argument %q (play takes one storyboard file)", arg)
			}
			path = arg
		}
		if err != nil {
			return "", 0, 0, err
		}
	}
	if path == "" {
		return "", 0, 0, fmt.Errorf("file is required\n\nUsage: motion play <file> [--dt MS] [--until MS]")
	}
	if dt <= 0 {
		return "", 0, 0, fmt.Errorf("--dt must be positive, got %g", dt)
	}
	if until < 0 {
		return "", 0, 0, fmt.Errorf("--until must not be negative, got %g", until)
	}
	return path, dt, until, nil
}

func parseMillis(flag, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number of milliseconds", flag, s)
	}
	return v, nil
}

type playedAnimation struct {
	name    string
	ani     *tween.Animation
	target  tween.Fields
	props   []string
	wasDone bool
}

type playedTask struct {
	name   string
	task   *tween.Task
	finite bool
	beats  int
}

// playStoryboard drives everything in sb with a fixed step, writing one
// line per property update and task beat.
func playStoryboard(sb *storyboard.Storyboard, dt, until float64, out io.Writer) error {
	if len(sb.Animations) == 0 && len(sb.Tasks) == 0 {
		fmt.Fprintln(out, "nothing to play")
		return nil
	}

	var group tween.Group
	elapsed := 0.0

	animations := make([]*playedAnimation, 0, len(sb.Animations))
	for _, spec := range sb.Animations {
		ani, err := spec.Build()
		if err != nil {
			return err
		}
		target := make(tween.Fields, len(spec.Properties))
		props := make([]string, 0, len(spec.Properties))
		for prop := range spec.Properties {
			v := 0.0
			target[prop] = &v
			props = append(props, prop)
		}
		sort.Strings(props)
		if err := ani.Start(target); err != nil {
			return err
		}
		group.Add(ani)
		animations = append(animations, &playedAnimation{
			name:   spec.Name,
			ani:    ani,
			target: target,
			props:  props,
		})
	}

	tasks := make([]*playedTask, 0, len(sb.Tasks))
	for _, spec := range sb.Tasks {
		pt := &playedTask{name: spec.Name, finite: spec.Loops != -1}
		task, err := spec.Build(func() {
			pt.beats++
			fmt.Fprintf(out, "%8g  %-12s beat %d\n", elapsed, pt.name, pt.beats)
		})
		if err != nil {
			return err
		}
		pt.task = task
		group.Add(task)
		tasks = append(tasks, pt)
	}

	canSettle := len(animations) > 0
	for _, pt := range tasks {
		if pt.finite {
			canSettle = true
		}
	}
	if until <= 0 && !canSettle {
		return fmt.Errorf("only repeating tasks in this storyboard; pass --until to bound playback")
	}

	for step := 1; ; step++ {
		elapsed = float64(step) * dt
		if until > 0 && elapsed > until {
			return nil
		}

		group.Update(dt)

		for _, pa := range animations {
			if pa.wasDone {
				continue
			}
			state := pa.ani.State()
			if state == tween.StateIdle || state == tween.StateDelayed {
				continue
			}
			line := formatFields(pa.target, pa.props)
			if pa.ani.Done() {
				line += " (done)"
				pa.wasDone = true
			}
			fmt.Fprintf(out, "%8g  %-12s %s\n", elapsed, pa.name, line)
		}

		settled := canSettle
		for _, pa := range animations {
			if !pa.ani.Done() {
				settled = false
			}
		}
		for _, pt := range tasks {
			if pt.finite && !pt.task.Done() {
				settled = false
			}
		}
		if settled {
			return nil
		}
		if until <= 0 && step >= maxPlaySteps {
			return fmt.Errorf("storyboard still running after %d steps; pass --until to bound playback", maxPlaySteps)
		}
	}
}

func formatFields(target tween.Fields, props []string) string {
	parts := make([]string, 0, len(props))
	for _, prop := range props {
		parts = append(parts, fmt.Sprintf("%s=%.6g", prop, *target[prop]))
	}
	return strings.Join(parts, " ")
}
