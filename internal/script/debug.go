package script

import "strings"

// stackTypes renders the types currently on the Lua stack, bottom up.
func (e *Engine) stackTypes() string {
	top := e.L.GetTop()
	parts := make([]string, 0, top)
	for i := 1; i <= top; i++ {
		parts = append(parts, e.L.Get(i).Type().String())
	}
	return strings.Join(parts, ", ")
}

// DumpStack logs the Lua stack contents at debug severity.
func (e *Engine) DumpStack() {
	e.log.Debug("[ %s ]", e.stackTypes())
}

// DumpSection logs a labeled Lua stack snapshot at debug severity,
// for bracketing a suspect section of host code.
func (e *Engine) DumpSection(label string) {
	e.log.Debug("-- %s -- [ %s ]", label, e.stackTypes())
}
