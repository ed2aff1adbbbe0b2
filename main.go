package main

import (
	"flag"
	"log/slog"
	"time"

	"github.com/lemus-D/clashBot/app"
	"github.com/lemus-D/clashBot/config"
	"github.com/lemus-D/clashBot/debug"
)

func main() {
	cfgPath := flag.String("config", "config.json", "path to config file")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime stats")
	windowTitle := flag.String("window", "", "override emulator window title")
	serveAddr := flag.String("serve", "", "override debug server listen address, e.g. :8077")
	flag.Parse()

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
		cfg = config.DefaultConfig()
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *windowTitle != "" {
		cfg.WindowTitle = *windowTitle
	}
	if *serveAddr != "" {
		cfg.ServerAddr = *serveAddr
	}
	if cfg.Debug {
		debug.StartRuntimeLogger(5*time.Second, logger)
		debug.StartWorkingSetLogger(5*time.Second, logger)
	}

	application := app.NewApp("Clash Bot", 900, 700, cfg, logger)
	application.Start()
}
