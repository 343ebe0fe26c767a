package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/ember/internal/msg"
)

// Renderer is the drawing surface exposed to scripts through
// ember.render. The engine's renderer implements it; tests and
// headless hosts use the no-op default.
type Renderer interface {
	// DrawString draws text at a screen cell position.
	DrawString(x, y int, text string)

	// Clear clears the drawing surface.
	Clear()
}

type nullRenderer struct{}

func (nullRenderer) DrawString(int, int, string) {}
func (nullRenderer) Clear()                      {}

// installGlobals registers the print redirection and the ember native
// binding table. Bindings are installed once at construction; the host
// never re-registers them.
func (e *Engine) installGlobals(version string) {
	e.L.SetGlobal("print", e.L.NewFunction(e.luaPrint))

	ember := e.L.NewTable()
	e.L.SetField(ember, "version", lua.LString(version))
	e.L.SetField(ember, "log", e.logModule())
	e.L.SetField(ember, "render", e.renderModule())
	e.L.SetField(ember, "message", e.L.NewFunction(e.luaMessage))
	e.L.SetGlobal("ember", ember)
}

// luaPrint replaces Lua's print: arguments are converted with Lua's
// own tostring semantics (including __tostring hooks), joined with
// tabs, and written to the host console followed by a newline.
func (e *Engine) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	for i := 1; i <= n; i++ {
		if i > 1 {
			e.console.Write("\t")
		}
		e.console.Write(L.ToStringMeta(L.Get(i)).String())
	}
	e.console.WriteNewline()
	return 0
}

// luaMessage posts a red system message to the message board.
func (e *Engine) luaMessage(L *lua.LState) int {
	text := L.CheckString(1)
	e.messages.Post(text, msg.ColorRed)
	return 0
}

func (e *Engine) logModule() *lua.LTable {
	logger := e.log.WithComponent("lua")
	return e.L.SetFuncs(e.L.NewTable(), map[string]lua.LGFunction{
		"debug": func(L *lua.LState) int {
			logger.Debug("%s", L.CheckString(1))
			return 0
		},
		"info": func(L *lua.LState) int {
			logger.Info("%s", L.CheckString(1))
			return 0
		},
		"warn": func(L *lua.LState) int {
			logger.Warn("%s", L.CheckString(1))
			return 0
		},
		"error": func(L *lua.LState) int {
			logger.Error("%s", L.CheckString(1))
			return 0
		},
	})
}

func (e *Engine) renderModule() *lua.LTable {
	return e.L.SetFuncs(e.L.NewTable(), map[string]lua.LGFunction{
		"string": func(L *lua.LState) int {
			x := L.CheckInt(1)
			y := L.CheckInt(2)
			text := L.CheckString(3)
			e.render.DrawString(x, y, text)
			return 0
		},
		"clear": func(L *lua.LState) int {
			e.render.Clear()
			return 0
		},
	})
}
