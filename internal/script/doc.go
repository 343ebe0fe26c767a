// Package script embeds the Lua runtime that drives user scripting.
//
// This package wraps gopher-lua to provide:
//   - A single owned Engine handle with explicit create/close lifecycle
//   - Script loading through the asset source, with isolated errors
//   - Host event notification via the script-populated Events registry
//   - The ember native binding table exposed to scripts
//
// # Engine
//
// The Engine owns one Lua state for its whole lifetime:
//
//	eng, err := script.New(script.Config{
//	    Assets:  assets.NewDirSource("assets"),
//	    Console: console.NewWriter(os.Stdout),
//	    Log:     logger,
//	})
//	if err != nil {
//	    return err
//	}
//	defer eng.Close()
//
//	out, err := eng.Eval(`return 1 + 1`)
//
// Construction opens a fixed allow-list of standard libraries, installs
// the native bindings, runs the bootstrap scripts lua/init.lua and
// lua/user.lua (both optional), and raises the OnGameBoot event.
//
// # Error model
//
// Script-level errors (syntax errors, runtime errors, missing event
// handlers) never escape as Go panics: they are logged, or returned as
// an error value from Eval. Panics that are not ordinary Lua errors
// indicate a corrupted interpreter; they are routed to the fatal fault
// handler, which terminates the process.
//
// # Threading
//
// gopher-lua states are not goroutine-safe. The Engine provides no
// internal synchronization: all methods must be called from the single
// goroutine that owns the host's update loop.
package script
