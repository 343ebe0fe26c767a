package script

import (
	"strings"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"
)

// openUTF8 registers the utf8 library. gopher-lua targets Lua 5.1,
// which predates the standard utf8 library, so the host provides the
// subset scripts need.
func (e *Engine) openUTF8() {
	e.L.SetGlobal("utf8", e.L.SetFuncs(e.L.NewTable(), map[string]lua.LGFunction{
		"len":       utf8Len,
		"char":      utf8Char,
		"codepoint": utf8Codepoint,
		"offset":    utf8Offset,
	}))
}

// utf8Len returns the number of codepoints in s. If s is not valid
// UTF-8, returns nil and the byte position (1-based) of the first
// invalid sequence, as in Lua 5.3.
func utf8Len(L *lua.LState) int {
	s := L.CheckString(1)
	count := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			L.Push(lua.LNil)
			L.Push(lua.LNumber(i + 1))
			return 2
		}
		count++
		i += size
	}
	L.Push(lua.LNumber(count))
	return 1
}

// utf8Char builds a string from the given codepoints.
func utf8Char(L *lua.LState) int {
	var b strings.Builder
	n := L.GetTop()
	for i := 1; i <= n; i++ {
		b.WriteRune(rune(L.CheckInt(i)))
	}
	L.Push(lua.LString(b.String()))
	return 1
}

// utf8Codepoint returns the codepoint starting at byte position i
// (1-based, default 1).
func utf8Codepoint(L *lua.LState) int {
	s := L.CheckString(1)
	i := L.OptInt(2, 1)
	if i < 1 || i > len(s) {
		L.ArgError(2, "position out of range")
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s[i-1:])
	if r == utf8.RuneError {
		L.ArgError(1, "invalid UTF-8 code")
		return 0
	}
	L.Push(lua.LNumber(r))
	return 1
}

// utf8Offset returns the byte position (1-based) where the nth
// codepoint of s begins, or nil when s has fewer than n codepoints.
// n == count+1 yields the position just past the string, as in Lua 5.3.
func utf8Offset(L *lua.LState) int {
	s := L.CheckString(1)
	n := L.CheckInt(2)
	if n < 1 {
		L.ArgError(2, "position out of range")
		return 0
	}

	count := 0
	for i := range s {
		count++
		if count == n {
			L.Push(lua.LNumber(i + 1))
			return 1
		}
	}
	if n == count+1 {
		L.Push(lua.LNumber(len(s) + 1))
		return 1
	}
	L.Push(lua.LNil)
	return 1
}
