package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"tasklist/internal/config"
	"tasklist/internal/task"
	"tasklist/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	sheet, err := config.LoadStylesheet(cfg.Stylesheet)
	if err != nil {
		fmt.Printf("failed to load stylesheet: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Printf("failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	log.WithField("config", configPath).Info("starting")
	if err := ui.Run(task.NewStore(), cfg, sheet); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends logs to the configured file. The terminal belongs to
// the UI, so without a file logs are discarded.
func setupLogging(cfg config.Config) (func(), error) {
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if dbg, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && dbg {
		log.SetLevel(log.DebugLevel)
	}
	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return func() { f.Close() }, nil
}
