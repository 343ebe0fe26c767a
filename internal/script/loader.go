package script

import "io"

// RunScript resolves a virtual path through the asset source and
// executes its content. A path that does not resolve is a silent
// no-op: the bootstrap scripts are optional and their absence is
// expected. A read failure after a successful resolve is logged at
// debug severity and also skips execution; nothing partial runs.
//
// Script errors are logged at error severity. The result value, if
// any, is discarded.
func (e *Engine) RunScript(path string) {
	if e.closed {
		return
	}

	ref, err := e.assets.Resolve(path)
	if err != nil {
		return
	}

	rc, err := e.assets.Open(ref)
	if err != nil {
		e.log.Debug("script %s: %v", path, err)
		return
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		e.log.Debug("script %s: %v", path, err)
		return
	}

	top := e.L.GetTop()
	defer e.L.SetTop(top)

	e.check(e.do(func() error {
		return e.L.DoString(string(data))
	}))
}
