package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/go-drift/motion/pkg/easing"
	"github.com/go-drift/motion/pkg/palette"
	"github.com/go-drift/motion/pkg/storyboard"
	"github.com/go-drift/motion/pkg/tween"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	trackLeft  = 180
	trackRight = 1240
	topMargin  = 40
	dotRadius  = 7
)

// Names the demo expects in the storyboard document.
const (
	raceName    = "race"
	restartName = "restart"
	lanesName   = "lanes"
)

var (
	backgroundColor = color.RGBA{R: 0x10, G: 0x14, B: 0x1c, A: 0xff}
	trackColor      = color.RGBA{R: 0x28, G: 0x30, B: 0x40, A: 0xff}
)

// lane is one racing dot: a named curve easing x from 0 to 1.
type lane struct {
	name string
	fn   easing.Func
	x    float64
	ani  *tween.Animation
}

type Game struct {
	path    string
	sb      *storyboard.Storyboard
	watcher *storyboard.Watcher

	lanes []*lane
	ramp  *palette.Ramp
	group tween.Group

	restart        *tween.Task
	pendingRestart bool
}

func NewGame(path string) (*Game, error) {
	g := &Game{path: path}

	names := easing.Names()
	g.lanes = make([]*lane, 0, len(names))
	for _, name := range names {
		fn, err := easing.ByName(name)
		if err != nil {
			return nil, err
		}
		g.lanes = append(g.lanes, &lane{name: name, fn: fn})
	}

	sb, err := loadStoryboard(path)
	if err != nil {
		return nil, err
	}
	if err := g.apply(sb); err != nil {
		return nil, err
	}

	g.watcher, err = watchStoryboard(path)
	if err != nil {
		log.Printf("watch disabled: %v", err)
	}
	return g, nil
}

// apply swaps in a storyboard after checking it carries everything the
// demo needs, then restarts the race with the new parameters.
func (g *Game) apply(sb *storyboard.Storyboard) error {
	if _, err := sb.Animation(raceName); err != nil {
		return err
	}
	if _, err := sb.Task(restartName, func() {}); err != nil {
		return err
	}
	ramp, err := sb.Ramp(lanesName)
	if err != nil {
		return err
	}
	g.sb = sb
	g.ramp = ramp
	return g.startRace()
}

// startRace rebuilds every lane's animation from the storyboard, each
// with its own curve swapped in for the document's transition.
func (g *Game) startRace() error {
	g.group.Clear()
	g.restart = nil
	g.pendingRestart = false
	for _, ln := range g.lanes {
		ani, err := g.sb.Animation(raceName)
		if err != nil {
			return err
		}
		ani.Transition = ln.fn
		ln.x = 0
		if err := ani.Start(tween.Fields{"x": &ln.x}); err != nil {
			return err
		}
		ln.ani = ani
		g.group.Add(ani)
	}
	return nil
}

func (g *Game) Update() error {
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return g.startRace()
	}

	dt := 1000.0 / float64(ebiten.TPS())
	g.group.Update(dt)

	if g.pendingRestart {
		return g.startRace()
	}
	if g.restart == nil && g.raceFinished() {
		task, err := g.sb.Task(restartName, func() { g.pendingRestart = true })
		if err != nil {
			return err
		}
		g.restart = task
		g.group.Add(task)
	}
	return nil
}

func (g *Game) raceFinished() bool {
	for _, ln := range g.lanes {
		if ln.ani == nil || !ln.ani.Done() {
			return false
		}
	}
	return len(g.lanes) > 0
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case changed, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		if filepath.Base(changed) != filepath.Base(g.path) {
			return
		}
		sb, err := storyboard.Load(g.path)
		if err != nil {
			log.Printf("reload %s: %v", g.path, err)
			return
		}
		if err := g.apply(sb); err != nil {
			log.Printf("reload %s: %v", g.path, err)
		}
	case err, ok := <-g.watcher.Errors:
		if !ok {
			g.watcher = nil
			return
		}
		if err != nil {
			log.Printf("watch: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	laneHeight := float32(baseHeight-2*topMargin) / float32(len(g.lanes))
	for i, ln := range g.lanes {
		y := topMargin + (float32(i)+0.5)*laneHeight
		vector.StrokeLine(screen, trackLeft, y, trackRight, y, 1, trackColor, true)

		var t float64
		if len(g.lanes) > 1 {
			t = float64(i) / float64(len(g.lanes)-1)
		}
		// Overshooting curves draw past the track ends on purpose.
		x := trackLeft + float32(ln.x)*(trackRight-trackLeft)
		vector.FillCircle(screen, x, y, dotRadius, g.ramp.At(t), true)

		ebitenutil.DebugPrintAt(screen, ln.name, 16, int(y)-8)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS %.0f  space or click restarts", ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// Close stops the storyboard watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
