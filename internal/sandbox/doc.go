/*
Package sandbox executes untrusted JavaScript snippets for the
playground using isolated goja runtimes.

# Overview

Each run compiles the snippet text, executes it on a worker goroutine
with a captured console as its only injected capability, and races
completion against a wall-clock timer. The outcome is always a tagged
Result:

  - Success with the newline-joined console output (or a fixed
    placeholder when the snippet printed nothing)
  - Failure classified as compile, runtime or timeout, carrying the
    underlying message

The runner itself never raises: syntax errors, thrown values and
timeouts are all folded into the failure variant.

# Isolation

Sandboxed code cannot reach the host console, filesystem or network.
Node-style globals (require, process, module, exports) are removed and
timers are no-ops. Console calls append to a per-run buffer; structured
arguments are JSON-serialized so objects print as data rather than
"[object Object]".

# Timeouts

On timeout the VM is interrupted and the run abandoned. The runtime is
marked poisoned and the Pool replaces it with a fresh instance on
release, so a straggling snippet can never contaminate a later run.

# Usage

	pool, _ := sandbox.NewPool(sandbox.DefaultConfig(), 4)
	result, err := pool.Execute(ctx, sandbox.Request{Code: "console.log('hi')"})
*/
package sandbox
