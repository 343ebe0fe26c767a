package script

import (
	"errors"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/ember/internal/assets"
	"github.com/dshills/ember/internal/console"
	"github.com/dshills/ember/internal/log"
	"github.com/dshills/ember/internal/msg"
)

// Bootstrap script paths and the boot event. init.lua ships with the
// engine; user.lua is the player-overridable hook. Both are optional.
const (
	initScript = "lua/init.lua"
	userScript = "lua/user.lua"
	bootEvent  = "OnGameBoot"
)

const unknownLuaError = "Unknown Lua error"

// Config configures an Engine.
type Config struct {
	// Assets resolves virtual script paths to content. Required.
	Assets assets.Source

	// Console receives print output from scripts.
	// Defaults to a writer on os.Stdout.
	Console console.Console

	// Log receives engine diagnostics. Defaults to log.NullLogger.
	Log *log.Logger

	// Messages is the board ember.message posts to.
	// Defaults to a private board.
	Messages *msg.Board

	// Render backs the ember.render binding group.
	// Defaults to a no-op renderer.
	Render Renderer

	// Version is exposed to scripts as ember.version.
	Version string

	// Debug additionally opens the Lua debug library.
	Debug bool

	// Fatal handles unrecoverable interpreter faults. It must not
	// return; the default logs the fault and exits the process.
	Fatal func(message string)
}

// Engine is the embedded Lua runtime. It owns all script-visible state
// for its lifetime: create with New, destroy with Close.
//
// The Engine is not goroutine-safe; see the package documentation.
type Engine struct {
	L *lua.LState

	assets   assets.Source
	console  console.Console
	log      *log.Logger
	messages *msg.Board
	render   Renderer
	fatal    func(message string)

	closed bool
}

// New creates the engine: it constructs the Lua state with the allowed
// standard libraries, installs the native bindings, runs the bootstrap
// scripts, and raises the boot event. Bootstrap scripts that are
// missing or fail to run are logged and do not abort construction.
func New(cfg Config) (*Engine, error) {
	if cfg.Assets == nil {
		return nil, ErrNilAssets
	}
	if cfg.Console == nil {
		cfg.Console = console.NewWriter(os.Stdout)
	}
	if cfg.Log == nil {
		cfg.Log = log.NullLogger
	}
	if cfg.Messages == nil {
		cfg.Messages = msg.NewBoard(0)
	}
	if cfg.Render == nil {
		cfg.Render = nullRenderer{}
	}

	e := &Engine{
		assets:   cfg.Assets,
		console:  cfg.Console,
		log:      cfg.Log.WithComponent("script"),
		messages: cfg.Messages,
		render:   cfg.Render,
		fatal:    cfg.Fatal,
	}
	if e.fatal == nil {
		e.fatal = e.abort
	}

	e.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	e.openLibraries(cfg.Debug)
	e.installGlobals(cfg.Version)

	e.RunScript(initScript)
	e.RunScript(userScript)
	e.Event(bootEvent)

	return e, nil
}

// openLibraries opens the fixed allow-list of standard libraries.
// io and os stay closed: scripts reach the outside world only through
// the ember bindings.
func (e *Engine) openLibraries(debug bool) {
	// The stdlib openers are module loaders: each leaves its module
	// table on the stack.
	top := e.L.GetTop()
	defer e.L.SetTop(top)

	lua.OpenBase(e.L)
	lua.OpenPackage(e.L)
	lua.OpenCoroutine(e.L)
	lua.OpenTable(e.L)
	lua.OpenString(e.L)
	lua.OpenMath(e.L)
	e.openUTF8()

	if debug {
		lua.OpenDebug(e.L)
	}
}

// Eval executes source text and returns the textual form of its first
// result value ("nil" when it produces none). Script errors come back
// as an error value carrying the script's message.
func (e *Engine) Eval(code string) (string, error) {
	if e.closed {
		return "", ErrEngineClosed
	}

	top := e.L.GetTop()
	defer e.L.SetTop(top)

	value := "nil"
	err := e.do(func() error {
		if err := e.L.DoString(code); err != nil {
			return err
		}
		if e.L.GetTop() > top {
			value = e.L.ToStringMeta(e.L.Get(top + 1)).String()
		}
		return nil
	})
	if err != nil {
		return "", errors.New(errorMessage(err))
	}
	return value, nil
}

// IsClosed returns true after Close.
func (e *Engine) IsClosed() bool {
	return e.closed
}

// Close destroys the Lua state and all script-visible state.
// Calling any other method afterward is a programming error.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}

// do runs fn, converting Lua faults into an error value. A panic that
// is not an ordinary Lua error means the interpreter state can no
// longer be trusted; it is routed to the fatal handler and does not
// return.
func (e *Engine) do(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if apiErr, ok := r.(*lua.ApiError); ok {
			err = apiErr
			return
		}
		e.fatal(panicMessage(r))
	}()
	return fn()
}

// check logs err as a script error. Returns true when err is nil.
// Every protected execution goes through this or errorMessage, so the
// error model is identical across entry points.
func (e *Engine) check(err error) bool {
	if err == nil {
		return true
	}
	e.log.Error("Lua error: %s", errorMessage(err))
	return false
}

// errorMessage extracts the script-level message from a protected
// execution error. Error payloads that are not text map to a generic
// message.
func errorMessage(err error) string {
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) {
		if apiErr.Object != nil && apiErr.Object.Type() == lua.LTString {
			return apiErr.Object.String()
		}
		return unknownLuaError
	}
	if err != nil {
		return err.Error()
	}
	return unknownLuaError
}

func panicMessage(r any) string {
	switch v := r.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return "unknown error"
	}
}

// abort is the default fatal fault handler.
func (e *Engine) abort(message string) {
	e.log.Error("Lua is in a panic state and the process will now abort: %s", message)
	os.Exit(1)
}
