// Package main is a terminal viewer demonstrating the hybrid
// live-rendering engine: it opens a markdown file, shows the rendered
// approximation, and flips lines back to raw markdown as the cursor
// moves through them. Arrow keys move, 't' toggles the theme, 'q' quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inkdown/internal/livemark"
	"github.com/dshills/inkdown/internal/logging"
	"github.com/dshills/inkdown/internal/style"
	"github.com/dshills/inkdown/internal/surface"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	showVersion := flag.Bool("version", false, "print version and exit")
	styleFile := flag.String("styles", "", "path to a TOML style file")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("inkdown %s (%s)\n", version, commit)
		return 0
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: inkdown [flags] <file.md>")
		return 2
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading %s: %v\n", path, err)
		return 1
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(*logLevel),
		Output: os.Stderr,
		Prefix: "inkdown",
	})

	store := style.NewStore(style.DefaultConfig())
	if *styleFile != "" {
		cfg, theme, err := style.Load(*styleFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		store = style.NewStore(cfg)
		store.SetTheme(theme)

		watcher := style.NewWatcher(*styleFile, store, style.WithWatcherLogger(log))
		if err := watcher.Start(); err != nil {
			log.Warn("style watching disabled: %v", err)
		} else {
			defer watcher.Stop()
		}
	}

	if err := runViewer(string(data), path, store, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runViewer drives the tcell event loop.
func runViewer(content, path string, store *style.Store, log *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	doc := surface.NewBuffer(content)
	tree := surface.ParseTree(doc)

	engine := livemark.New(
		livemark.WithStyles(store),
		livemark.WithLogger(log),
		livemark.WithBasePath(path),
	)
	defer engine.Close()

	view := newView(screen, doc, tree, engine)
	if err := view.moveCursor(0, 0); err != nil {
		return err
	}

	for {
		view.draw()
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
				return nil
			case ev.Rune() == 't':
				next := style.ThemeDark
				if store.ThemeName() == style.ThemeDark {
					next = style.ThemeLight
				}
				if err := engine.SetTheme(next); err != nil {
					return err
				}
			case ev.Key() == tcell.KeyUp:
				if err := view.moveCursor(0, -1); err != nil {
					return err
				}
			case ev.Key() == tcell.KeyDown:
				if err := view.moveCursor(0, 1); err != nil {
					return err
				}
			case ev.Key() == tcell.KeyLeft:
				if err := view.moveCursor(-1, 0); err != nil {
					return err
				}
			case ev.Key() == tcell.KeyRight:
				if err := view.moveCursor(1, 0); err != nil {
					return err
				}
			}
		}
	}
}
