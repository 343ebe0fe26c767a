package script

import lua "github.com/yuin/gopher-lua"

// Event notifies scripts of a host occurrence by invoking the handler
// at the global path Events[name].Trigger with no arguments. Scripts
// are not required to handle every event: a path that does not resolve
// to a function logs one error and nothing is invoked. Handler errors
// are logged; the handler's return value is discarded.
//
// Events are dispatched synchronously, in the order the host raises
// them.
func (e *Engine) Event(name string) {
	if e.closed {
		return
	}

	fn := e.eventTrigger(name)
	if fn == nil {
		e.log.Error("Events.%s.Trigger is not a function", name)
		return
	}

	top := e.L.GetTop()
	defer e.L.SetTop(top)

	e.check(e.do(func() error {
		return e.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true})
	}))
}

// eventTrigger resolves Events[name].Trigger to a callable, or nil.
// The Events registry is populated entirely by script code; the host
// only reads it.
func (e *Engine) eventTrigger(name string) *lua.LFunction {
	events, ok := e.L.GetGlobal("Events").(*lua.LTable)
	if !ok {
		return nil
	}
	entry, ok := events.RawGetString(name).(*lua.LTable)
	if !ok {
		return nil
	}
	fn, ok := entry.RawGetString("Trigger").(*lua.LFunction)
	if !ok {
		return nil
	}
	return fn
}
