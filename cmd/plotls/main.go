// Command plotls lists the charts written by an instrumented run. It
// resolves the plot directory the same way the plot package does
// (defaults, debugplotter.yaml, PLOT_* env), so it shows exactly where
// the next flush will write.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fabianboesiger/debug-plotter/src/config"
)

func main() {
	var dir string
	flag.StringVar(&dir, "dir", "", "Plot directory (default: resolved from config)")
	flag.Parse()
	if dir == "" {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		dir = cfg.Dir
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	fmt.Printf("%s: %d plot(s)\n", dir, len(names))
	for _, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			fmt.Printf("  %s (unreadable: %v)\n", name, err)
			continue
		}
		pc, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			fmt.Printf("  %s (not a png: %v)\n", name, err)
			continue
		}
		fmt.Printf("  %s %dx%d\n", name, pc.Width, pc.Height)
	}
}
