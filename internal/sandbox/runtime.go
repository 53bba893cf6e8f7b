package sandbox

import (
	"errors"
	"sync"
	"time"

	"github.com/dop251/goja"
)

// Runtime wraps a goja VM with console capture and timeout control.
// A Runtime is not safe for concurrent Execute calls; the Pool
// guarantees exclusive use.
type Runtime struct {
	vm     *goja.Runtime
	config Config

	lines   []string
	linesMu sync.Mutex

	// Set when a run was abandoned mid-flight. The VM may still be
	// executing on its worker goroutine, so the Runtime must not be
	// reused; Pool.Release swaps it for a fresh one.
	poisoned bool
}

// New creates a sandboxed runtime.
func New(config Config) (*Runtime, error) {
	vm := goja.New()

	r := &Runtime{
		vm:     vm,
		config: config,
	}

	if config.MaxCallStack > 0 {
		vm.SetMaxCallStackSize(config.MaxCallStack)
	}

	if err := r.setupGlobals(); err != nil {
		return nil, err
	}

	return r, nil
}

// Execute runs one snippet and always returns a Result: compile
// errors, thrown values and timeouts are folded into the failure
// variant rather than surfacing as Go errors.
func (r *Runtime) Execute(req Request) *Result {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = r.config.Timeout
	}
	if timeout > MaxTimeout {
		timeout = MaxTimeout
	}

	start := time.Now()

	program, err := goja.Compile("playground.js", req.Code, false)
	if err != nil {
		return failure(FailureCompile, err.Error(), time.Since(start))
	}

	r.linesMu.Lock()
	r.lines = r.lines[:0]
	r.linesMu.Unlock()

	// Run on a worker goroutine and race completion against the
	// timer. The channel is buffered so an abandoned run's late
	// result is dropped instead of leaking the goroutine.
	done := make(chan error, 1)
	go func() {
		_, runErr := r.vm.RunProgram(program)
		done <- runErr
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case runErr := <-done:
		elapsed := time.Since(start)
		if runErr != nil {
			return failure(FailureRuntime, runtimeMessage(runErr), elapsed)
		}
		r.linesMu.Lock()
		output := joinLines(r.lines)
		r.linesMu.Unlock()
		return success(output, elapsed)

	case <-timer.C:
		// Interrupt the VM and stop waiting. The snippet may keep
		// running briefly; the poisoned flag keeps this Runtime out
		// of circulation.
		r.vm.Interrupt("execution timed out")
		r.poisoned = true
		return failure(FailureTimeout, "execution timed out", time.Since(start))
	}
}

// Poisoned reports whether a previous run was abandoned.
func (r *Runtime) Poisoned() bool {
	return r.poisoned
}

// Reset clears captured output between runs.
func (r *Runtime) Reset() error {
	if r.poisoned {
		return errors.New("cannot reset an abandoned runtime")
	}
	r.linesMu.Lock()
	r.lines = nil
	r.linesMu.Unlock()
	return nil
}

// Close releases the VM.
func (r *Runtime) Close() error {
	r.vm = nil
	r.lines = nil
	return nil
}

// setupGlobals removes host escape hatches and installs the captured
// console, the only capability a snippet receives.
func (r *Runtime) setupGlobals() error {
	r.vm.Set("require", goja.Undefined())
	r.vm.Set("process", goja.Undefined())
	r.vm.Set("module", goja.Undefined())
	r.vm.Set("exports", goja.Undefined())

	if r.config.EnableConsole {
		console := r.vm.NewObject()
		for _, level := range []string{"log", "error", "warn", "info", "debug"} {
			console.Set(level, r.makeConsoleFunc())
		}
		r.vm.Set("console", console)
	}

	// Timers are no-ops: snippets are synchronous one-shot programs.
	noop := func(call goja.FunctionCall) goja.Value { return goja.Undefined() }
	r.vm.Set("setTimeout", noop)
	r.vm.Set("setInterval", noop)

	return nil
}

func (r *Runtime) makeConsoleFunc() func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		line := formatArgs(call.Arguments)
		r.linesMu.Lock()
		r.lines = append(r.lines, line)
		r.linesMu.Unlock()
		return goja.Undefined()
	}
}

func joinLines(lines []string) string {
	switch len(lines) {
	case 0:
		return ""
	case 1:
		return lines[0]
	}
	total := 0
	for _, l := range lines {
		total += len(l) + 1
	}
	b := make([]byte, 0, total)
	for i, l := range lines {
		if i > 0 {
			b = append(b, '\n')
		}
		b = append(b, l...)
	}
	return string(b)
}

// runtimeMessage extracts the thrown value's message from a goja error.
func runtimeMessage(err error) string {
	var exc *goja.Exception
	if errors.As(err, &exc) {
		return exc.Value().String()
	}
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return "execution timed out"
	}
	return err.Error()
}
