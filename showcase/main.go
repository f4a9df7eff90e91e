// Command showcase races one dot per easing curve across the screen.
//
// The run is declared in demo.yaml. When that file exists on disk it is
// watched, so edits to durations, the restart beat or the lane ramp
// apply on save; otherwise the embedded copy is used.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	file := flag.String("file", "demo.yaml", "storyboard file (watched for edits when present on disk)")
	flag.Parse()

	game, err := NewGame(*file)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("motion showcase")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
