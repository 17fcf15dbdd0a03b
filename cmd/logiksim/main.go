package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/logiksim/editcircuit/modifier"
	"github.com/logiksim/editcircuit/persist"
	"github.com/logiksim/editcircuit/settings"
	"github.com/tebeka/atexit"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := settings.Load(settingsPath())
	if err != nil {
		logger.Error("loading settings", slog.Any("error", err))
		atexit.Exit(1)
	}
	logger.Info("settings loaded",
		slog.String("thread_count", string(cfg.ThreadCount)),
		slog.String("wire_render_style", string(cfg.WireRenderStyle)))

	atexit.Register(func() {
		if err := settings.Save(settingsPath(), cfg); err != nil {
			logger.Error("saving settings on exit", slog.Any("error", err))
		}
	})

	var m *modifier.Modifier
	if len(os.Args) > 1 {
		var err error
		m, err = loadFile(os.Args[1], logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			atexit.Exit(1)
		}
	} else {
		m = modifier.New(modifier.Config{
			EnableHistory: true,
			StoreMessages: false,
			Logger:        logger,
		})
	}

	logger.Info("circuit core ready",
		slog.Int("logic_items", m.Data.Layout.LogicItemCount()),
		slog.Int("decorations", m.Data.Layout.DecorationCount()))

	atexit.Exit(0)
}

func settingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "logiksim_settings.json"
	}
	return dir + "/logiksim/settings.json"
}

// loadFile builds an empty Modifier, swaps in the Layout stored in path
// and reindexes it — CircuitData.Index observes the bus, not the Layout
// value directly, so the swapped-in Layout needs ReindexLayout to bring
// the Index in line with it.
func loadFile(path string, logger *slog.Logger) (*modifier.Modifier, error) {
	doc, err := persist.Load(path)
	if err != nil {
		return nil, fmt.Errorf("logiksim: loading %s: %w", path, err)
	}
	m := modifier.New(modifier.Config{
		EnableHistory: true,
		StoreMessages: false,
		Logger:        logger,
	})
	m.Data.Layout = persist.ToLayout(doc)
	m.ReindexLayout()
	logger.Info("loaded circuit file", slog.String("path", path), slog.Int("version", doc.Version))
	return m, nil
}
