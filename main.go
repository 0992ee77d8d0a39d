package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/peterbourgon/ff/v3"

	"github.com/shazow/netmenu/internal/dmenu"
	"github.com/shazow/netmenu/internal/launcher"
)

var (
	// Version is the version of the application. It is set at build time.
	Version string = "dev"
)

// main runs one collect/select/dispatch cycle and exits.
func main() {
	fs := flag.NewFlagSet("netmenu", flag.ExitOnError)
	var (
		configPath  = fs.String("config", "", "path to config file (default: $XDG_CONFIG_HOME/netmenu/config.toml)")
		menuProgram = fs.String("menu", "", "menu program to invoke (overrides config)")
		backendName = fs.String("backend", "nmcli", "network backend: nmcli, dbus or mock")
		editor      = fs.String("editor", launcher.DefaultEditor, "graphical connection editor")
		noScan      = fs.Bool("no-scan", false, "list cached wifi scan results without rescanning")
		verbose     = fs.Bool("verbose", false, "enable debug logging")
		version     = fs.Bool("version", false, "display version")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("NETMENU")); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if *version {
		fmt.Println(Version)
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	path := *configPath
	if path == "" {
		path = dmenu.DefaultConfigPath()
	}
	cfg, err := dmenu.LoadConfig(path)
	if err != nil {
		// A broken config falls back to the default menu invocation.
		logger.Debug("config load failed", "path", path, "error", err)
		cfg = dmenu.Config{}
	}

	menu := dmenu.New(cfg, logger)
	if *menuProgram != "" {
		menu.SetProgram(*menuProgram)
	}

	backend, err := GetBackend(*backendName, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	l := &launcher.Launcher{
		Backend: backend,
		Menu:    menu,
		Editor:  *editor,
		Rescan:  !*noScan,
		Logger:  logger,
	}
	if err := l.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
