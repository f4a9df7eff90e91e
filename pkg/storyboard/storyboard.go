// Package storyboard loads declarative animation definitions from YAML.
//
// A storyboard names the animations, tasks and color ramps a scene needs,
// so motion design lives in data instead of code:
//
//	version: v1
//	animations:
//	  - name: slide-in
//	    duration: 500
//	    delay: 120
//	    transition: out_back
//	    properties: {x: 320, y: 96}
//	tasks:
//	  - name: heartbeat
//	    interval: 250
//	    loops: -1
//	ramps:
//	  - name: heat
//	    from: "#0a3306"
//	    to: springgreen
//	    steps: 101
//
// [Load] and [Parse] reject documents that would fail at runtime: every
// definition is validated up front, including transition names and color
// endpoints. The version field gates compatibility; this package reads
// major version v1.
//
// Build methods turn validated definitions into live [tween.Animation],
// [tween.Task] and [palette.Ramp] values. Each call builds a fresh
// instance, so one storyboard can spawn the same motion many times.
//
// [Watcher] reports edits to storyboard files for live reload during
// development.
package storyboard

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/easing"
	"github.com/go-drift/motion/pkg/palette"
	"github.com/go-drift/motion/pkg/tween"
)

// Storyboard is a validated set of named motion definitions.
type Storyboard struct {
	// Version is the document format version, a semantic version with
	// major v1.
	Version string `yaml:"version"`

	Animations []AnimationSpec `yaml:"animations,omitempty"`
	Tasks      []TaskSpec      `yaml:"tasks,omitempty"`
	Ramps      []RampSpec      `yaml:"ramps,omitempty"`
}

// AnimationSpec describes one animation.
type AnimationSpec struct {
	Name string `yaml:"name"`
	// Duration of the motion, in the unit the update loop feeds.
	Duration float64 `yaml:"duration"`
	// Delay before attribute writes begin.
	Delay float64 `yaml:"delay,omitempty"`
	// Transition is a catalog curve name; empty means linear.
	Transition string `yaml:"transition,omitempty"`
	// RoundValues rounds written values to whole numbers.
	RoundValues bool `yaml:"round_values,omitempty"`
	// Properties maps attribute names to their end values.
	Properties map[string]float64 `yaml:"properties"`
}

// TaskSpec describes one deferred task. A zero loop count runs the
// callback once, -1 loops forever.
type TaskSpec struct {
	Name     string  `yaml:"name"`
	Interval float64 `yaml:"interval"`
	Loops    int     `yaml:"loops,omitempty"`
}

// RampSpec describes one color ramp. Endpoints take CSS hex strings or
// SVG color names.
type RampSpec struct {
	Name  string `yaml:"name"`
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Steps int    `yaml:"steps"`
}

// Load reads and validates the storyboard file at path.
func Load(path string) (*Storyboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("storyboard: read %s: %w", path, err)
	}
	sb, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("storyboard: %s: %w", path, err)
	}
	return sb, nil
}

// Parse decodes and validates a storyboard document. Unknown fields are
// rejected so typos surface instead of silently defaulting.
func Parse(data []byte) (*Storyboard, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sb Storyboard
	if err := dec.Decode(&sb); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := sb.validate(); err != nil {
		return nil, err
	}
	return &sb, nil
}

func (s *Storyboard) validate() error {
	if s.Version == "" {
		return fmt.Errorf("missing version")
	}
	if !semver.IsValid(s.Version) {
		return fmt.Errorf("invalid version %q (want a semantic version like v1)", s.Version)
	}
	if semver.Major(s.Version) != "v1" {
		return fmt.Errorf("unsupported version %s (this build reads v1)", s.Version)
	}

	animations := make(map[string]bool)
	for i, a := range s.Animations {
		if a.Name == "" {
			return fmt.Errorf("animations[%d]: missing name", i)
		}
		if animations[a.Name] {
			return fmt.Errorf("duplicate animation %q", a.Name)
		}
		animations[a.Name] = true
		if err := a.validate(); err != nil {
			return fmt.Errorf("animation %q: %w", a.Name, err)
		}
	}
	tasks := make(map[string]bool)
	for i, t := range s.Tasks {
		if t.Name == "" {
			return fmt.Errorf("tasks[%d]: missing name", i)
		}
		if tasks[t.Name] {
			return fmt.Errorf("duplicate task %q", t.Name)
		}
		tasks[t.Name] = true
		if err := t.validate(); err != nil {
			return fmt.Errorf("task %q: %w", t.Name, err)
		}
	}
	ramps := make(map[string]bool)
	for i, r := range s.Ramps {
		if r.Name == "" {
			return fmt.Errorf("ramps[%d]: missing name", i)
		}
		if ramps[r.Name] {
			return fmt.Errorf("duplicate ramp %q", r.Name)
		}
		ramps[r.Name] = true
		if err := r.validate(); err != nil {
			return fmt.Errorf("ramp %q: %w", r.Name, err)
		}
	}
	return nil
}

func (a *AnimationSpec) validate() error {
	if a.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", a.Duration)
	}
	if a.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %v", a.Delay)
	}
	if a.Transition != "" {
		if _, err := easing.ByName(a.Transition); err != nil {
			return err
		}
	}
	if len(a.Properties) == 0 {
		return fmt.Errorf("needs at least one property")
	}
	return nil
}

func (t *TaskSpec) validate() error {
	if t.Interval < 0 {
		return fmt.Errorf("interval must not be negative, got %v", t.Interval)
	}
	if t.Loops < -1 {
		return fmt.Errorf("loops must be -1 or greater, got %d", t.Loops)
	}
	return nil
}

func (r *RampSpec) validate() error {
	if r.Steps < 2 {
		return fmt.Errorf("needs at least 2 steps, got %d", r.Steps)
	}
	if _, err := palette.ParseColor(r.From); err != nil {
		return err
	}
	if _, err := palette.ParseColor(r.To); err != nil {
		return err
	}
	return nil
}

// Build creates a fresh, unstarted animation from the definition.
func (a *AnimationSpec) Build() (*tween.Animation, error) {
	var fn easing.Func
	if a.Transition != "" {
		var err error
		fn, err = easing.ByName(a.Transition)
		if err != nil {
			return nil, fmt.Errorf("storyboard: animation %q: %w", a.Name, err)
		}
	}
	ani, err := tween.New(tween.Props(a.Properties), a.Duration)
	if err != nil {
		return nil, fmt.Errorf("storyboard: animation %q: %w", a.Name, err)
	}
	ani.Delay = a.Delay
	ani.Transition = fn
	ani.RoundValues = a.RoundValues
	return ani, nil
}

// Build creates a task from the definition, firing fn on each cycle.
func (t *TaskSpec) Build(fn func()) (*tween.Task, error) {
	task, err := tween.NewTask(fn, t.Interval, t.Loops)
	if err != nil {
		return nil, fmt.Errorf("storyboard: task %q: %w", t.Name, err)
	}
	return task, nil
}

// Build creates the color ramp described by the definition.
func (r *RampSpec) Build() (*palette.Ramp, error) {
	ramp, err := palette.New(r.From, r.To, r.Steps)
	if err != nil {
		return nil, fmt.Errorf("storyboard: ramp %q: %w", r.Name, err)
	}
	return ramp, nil
}

// Animation builds the named animation definition.
func (s *Storyboard) Animation(name string) (*tween.Animation, error) {
	for i := range s.Animations {
		if s.Animations[i].Name == name {
			return s.Animations[i].Build()
		}
	}
	return nil, fmt.Errorf("storyboard: no animation %q", name)
}

// Task builds the named task definition with the given callback.
func (s *Storyboard) Task(name string, fn func()) (*tween.Task, error) {
	for i := range s.Tasks {
		if s.Tasks[i].Name == name {
			return s.Tasks[i].Build(fn)
		}
	}
	return nil, fmt.Errorf("storyboard: no task %q", name)
}

// Ramp builds the named ramp definition.
func (s *Storyboard) Ramp(name string) (*palette.Ramp, error) {
	for i := range s.Ramps {
		if s.Ramps[i].Name == name {
			return s.Ramps[i].Build()
		}
	}
	return nil, fmt.Errorf("storyboard: no ramp %q", name)
}
