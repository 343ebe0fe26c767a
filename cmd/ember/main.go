// Package main is the entry point for the Ember developer console.
//
// It boots the scripting subsystem and runs an interactive Lua prompt
// against it: a full-screen console by default, or a plain stdin/stdout
// loop with -plain. Script hot-reload can be enabled in the config.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dshills/ember/internal/assets"
	"github.com/dshills/ember/internal/config"
	"github.com/dshills/ember/internal/console"
	"github.com/dshills/ember/internal/log"
	"github.com/dshills/ember/internal/msg"
	"github.com/dshills/ember/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	ConfigPath string
	ScriptDir  string
	LogLevel   string
	Debug      bool
	Plain      bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	applyFlags(&cfg, opts)

	logger, logClose, err := newLogger(cfg, opts.Plain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logClose()

	// Console: full-screen terminal unless -plain was given.
	var cons console.Console
	var lines <-chan string
	quit := make(chan struct{})

	if opts.Plain {
		cons = console.NewWriter(os.Stdout)
		stdinLines := make(chan string, 8)
		lines = stdinLines
		go readStdin(stdinLines, quit)
	} else {
		term, err := console.NewTerminal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
			return 1
		}
		if err := term.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
			return 1
		}
		defer term.Fini()
		cons = term
		lines = term.Lines()
		go func() {
			term.Run()
			close(quit)
		}()
	}

	// Player/system messages are echoed to the console.
	board := msg.NewBoard(64, msg.WithNotify(func(m msg.Message) {
		cons.Write("[" + m.Color.String() + "] " + m.Text)
		cons.WriteNewline()
	}))

	eng, err := script.New(script.Config{
		Assets:   assets.NewDirSource(cfg.ScriptDir),
		Console:  cons,
		Log:      logger,
		Messages: board,
		Version:  version,
		Debug:    cfg.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize scripting: %v\n", err)
		return 1
	}
	defer eng.Close()

	reload := startReloadWatcher(cfg, logger)
	if reload != nil {
		defer reload.Close()
	}
	var reloadEvents <-chan string
	if reload != nil {
		reloadEvents = reload.Events()
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	cons.Write("ember " + version + " (Lua console, Ctrl+C to quit)")
	cons.WriteNewline()

	for {
		select {
		case <-quit:
			return 0
		case <-signals:
			return 0
		case line := <-lines:
			evalLine(eng, cons, line)
		case path := <-reloadEvents:
			logger.Info("reloading %s", path)
			eng.RunScript(path)
			eng.Event("OnScriptReload")
		}
	}
}

// evalLine evaluates one console line and prints the result.
func evalLine(eng *script.Engine, cons console.Console, line string) {
	if line == "" {
		return
	}
	out, err := eng.Eval(line)
	if err != nil {
		cons.Write("error: " + err.Error())
	} else {
		cons.Write(out)
	}
	cons.WriteNewline()
}

// readStdin feeds stdin lines into the console loop (-plain mode).
func readStdin(lines chan<- string, quit chan struct{}) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
	close(quit)
}

// startReloadWatcher wires hot reload for the bootstrap scripts when
// the config enables it. Failures are logged, never fatal: hot reload
// is a development convenience.
func startReloadWatcher(cfg config.Config, logger *log.Logger) *script.ReloadWatcher {
	if !cfg.HotReload {
		return nil
	}
	w, err := script.NewReloadWatcher(logger)
	if err != nil {
		logger.Warn("hot reload unavailable: %v", err)
		return nil
	}
	for _, virtual := range []string{"lua/init.lua", "lua/user.lua"} {
		fsPath := filepath.Join(cfg.ScriptDir, filepath.FromSlash(virtual))
		if err := w.Watch(fsPath, virtual); err != nil {
			logger.Warn("hot reload: cannot watch %s: %v", fsPath, err)
		}
	}
	return w
}

// newLogger builds the application logger. In full-screen mode log
// lines go to a file so they do not corrupt the console display.
func newLogger(cfg config.Config, plain bool) (*log.Logger, func(), error) {
	lcfg := log.DefaultConfig()
	lcfg.Level = log.ParseLevel(cfg.LogLevel)
	if cfg.Debug {
		lcfg.Level = log.LevelDebug
	}

	if plain {
		return log.New(lcfg), func() {}, nil
	}

	f, err := os.OpenFile("ember.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	lcfg.Output = f
	return log.New(lcfg), func() { _ = f.Close() }, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "ember.toml", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "ember.toml", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.ScriptDir, "scripts", "", "Script/asset directory (overrides config)")
	flag.StringVar(&opts.ScriptDir, "s", "", "Script/asset directory (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.Debug, "debug", false, "Enable debug mode")
	flag.BoolVar(&opts.Debug, "d", false, "Enable debug mode (shorthand)")
	flag.BoolVar(&opts.Plain, "plain", false, "Plain stdin/stdout console instead of full-screen")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Ember - Lua developer console\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ember [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Ember %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	return opts
}

// applyFlags overlays command-line options onto the loaded config.
func applyFlags(cfg *config.Config, opts options) {
	if opts.ScriptDir != "" {
		cfg.ScriptDir = opts.ScriptDir
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Debug {
		cfg.Debug = true
	}
}
