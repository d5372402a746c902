package jsplugin

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"

	"github.com/buke/quickjs-go"
)

// jsRuntime wraps a QuickJS runtime/context pair for a single evaluation
type jsRuntime struct {
	runtime *quickjs.Runtime
	context *quickjs.Context
}

func newRuntime() *jsRuntime {
	rt := quickjs.NewRuntime()
	ctx := rt.NewContext()
	return &jsRuntime{
		runtime: rt,
		context: ctx,
	}
}

// errUncaught is returned when the engine reports an exception it cannot describe
var errUncaught = errors.New("uncaught JavaScript exception")

// evalWrapper runs a script in global scope and rethrows any non-Error
// value as an Error so the context can report it.
const evalWrapper = `(function (src) {
	try {
		return (0, eval)(src);
	} catch (e) {
		throw e instanceof Error ? e : new Error(String(e));
	}
})(%s)`

// Execute runs JavaScript code and returns the result as a string
func (r *jsRuntime) Execute(code string) (string, error) {
	src, err := json.Marshal(code)
	if err != nil {
		return "", fmt.Errorf("failed to encode script: %w", err)
	}

	res := r.context.Eval(fmt.Sprintf(evalWrapper, src))
	defer res.Free()

	if res.IsException() {
		if err := r.context.Exception(); err != nil {
			return "", err
		}
		return "", errUncaught
	}

	return res.String(), nil
}

// Destroy releases the context and the runtime
func (r *jsRuntime) Destroy() {
	if r.context != nil {
		r.context.Close()
		r.context = nil
	}
	if r.runtime != nil {
		r.runtime.Close()
		r.runtime = nil
	}
}

// withRuntime runs fn on a fresh runtime pinned to the current OS thread
func withRuntime(fn func(rt *jsRuntime) error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	rt := newRuntime()
	defer rt.Destroy()

	return fn(rt)
}
