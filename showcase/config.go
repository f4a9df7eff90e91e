package main

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/go-drift/motion/pkg/storyboard"
)

//go:embed demo.yaml
var embeddedDemo []byte

// loadStoryboard prefers the on-disk copy so the demo can be retuned
// without rebuilding, falling back to the embedded one.
func loadStoryboard(path string) (*storyboard.Storyboard, error) {
	if _, err := os.Stat(path); err == nil {
		return storyboard.Load(path)
	}
	return storyboard.Parse(embeddedDemo)
}

// watchStoryboard watches the file's directory when the file exists on
// disk. A nil watcher means the embedded storyboard is in use.
func watchStoryboard(path string) (*storyboard.Watcher, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	return storyboard.NewWatcher(filepath.Dir(path))
}
