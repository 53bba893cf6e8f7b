package sandbox

import (
	"context"
	"strings"
	"testing"
	"time"
)

func newTestRuntime(t *testing.T) *Runtime {
	t.Helper()
	rt, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("Failed to create runtime: %v", err)
	}
	t.Cleanup(func() { rt.Close() })
	return rt
}

func TestRuntimeOutput(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{
			name: "single log",
			code: "console.log('hi')",
			want: "hi",
		},
		{
			name: "multiple logs in call order",
			code: "console.log(1); console.log(2)",
			want: "1\n2",
		},
		{
			name: "multiple args joined with spaces",
			code: "console.log('sum:', 1 + 2)",
			want: "sum: 3",
		},
		{
			name: "all console levels captured",
			code: "console.log('a'); console.error('b'); console.warn('c'); console.info('d'); console.debug('e')",
			want: "a\nb\nc\nd\ne",
		},
		{
			name: "empty code",
			code: "",
			want: NoOutputPlaceholder,
		},
		{
			name: "no output",
			code: "const x = 40 + 2;",
			want: NoOutputPlaceholder,
		},
		{
			name: "object serialized as JSON",
			code: "console.log({name: 'Array', length: 3})",
			want: `{"length":3,"name":"Array"}`,
		},
		{
			name: "array serialized as JSON",
			code: "console.log([1, 2, 3])",
			want: "[1,2,3]",
		},
		{
			name: "null and undefined",
			code: "console.log(null, undefined)",
			want: "null undefined",
		},
		{
			name: "booleans and numbers coerced",
			code: "console.log(true, 3.5)",
			want: "true 3.5",
		},
	}

	rt := newTestRuntime(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rt.Execute(Request{Code: tt.code})
			if !result.Success {
				t.Fatalf("Execute() failed: %s: %s", result.Kind, result.Message)
			}
			if result.Output != tt.want {
				t.Errorf("Output = %q, want %q", result.Output, tt.want)
			}
			if err := rt.Reset(); err != nil {
				t.Fatalf("Reset() error = %v", err)
			}
		})
	}
}

func TestRuntimeObjectNotDefaultCoerced(t *testing.T) {
	rt := newTestRuntime(t)

	result := rt.Execute(Request{Code: "console.log({a: 1})"})
	if !result.Success {
		t.Fatalf("Execute() failed: %s", result.Message)
	}
	if strings.Contains(result.Output, "[object Object]") {
		t.Errorf("Output %q uses default object coercion", result.Output)
	}
}

func TestRuntimeFailures(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		kind     FailureKind
		contains string
	}{
		{
			name:     "thrown error",
			code:     "throw new Error('boom')",
			kind:     FailureRuntime,
			contains: "boom",
		},
		{
			name:     "reference error",
			code:     "nonexistent()",
			kind:     FailureRuntime,
			contains: "nonexistent",
		},
		{
			name:     "thrown string",
			code:     "throw 'plain failure'",
			kind:     FailureRuntime,
			contains: "plain failure",
		},
		{
			name:     "syntax error",
			code:     "const = ;",
			kind:     FailureCompile,
			contains: "playground.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newTestRuntime(t)
			result := rt.Execute(Request{Code: tt.code})
			if result.Success {
				t.Fatalf("Execute() succeeded, want %s failure", tt.kind)
			}
			if result.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", result.Kind, tt.kind)
			}
			if !strings.Contains(result.Message, tt.contains) {
				t.Errorf("Message %q does not contain %q", result.Message, tt.contains)
			}
		})
	}
}

func TestRuntimeTimeout(t *testing.T) {
	rt := newTestRuntime(t)

	start := time.Now()
	result := rt.Execute(Request{Code: "while(true){}", Timeout: 100 * time.Millisecond})
	elapsed := time.Since(start)

	if result.Success {
		t.Fatal("expected timeout failure, got success")
	}
	if result.Kind != FailureTimeout {
		t.Errorf("Kind = %s, want %s", result.Kind, FailureTimeout)
	}
	if elapsed > 500*time.Millisecond {
		t.Errorf("timeout returned after %v, want ~100ms", elapsed)
	}
	if !rt.Poisoned() {
		t.Error("runtime not marked poisoned after abandoned run")
	}
}

func TestRuntimeRunsDoNotInterfere(t *testing.T) {
	rt := newTestRuntime(t)

	first := rt.Execute(Request{Code: "console.log('first')"})
	if first.Output != "first" {
		t.Fatalf("first run output = %q", first.Output)
	}
	if err := rt.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	second := rt.Execute(Request{Code: "console.log('second')"})
	if second.Output != "second" {
		t.Errorf("second run output = %q, leaked state from first run", second.Output)
	}
}

func TestRuntimeSecurity(t *testing.T) {
	rt := newTestRuntime(t)

	dangerous := []struct {
		name string
		code string
	}{
		{name: "require blocked", code: "require('fs')"},
		{name: "process blocked", code: "process.exit(1)"},
		{name: "module blocked", code: "module.exports = {}"},
	}

	for _, tt := range dangerous {
		t.Run(tt.name, func(t *testing.T) {
			result := rt.Execute(Request{Code: tt.code})
			if result.Success {
				t.Errorf("dangerous snippet executed successfully: %q", result.Output)
			}
			rt.Reset()
		})
	}
}

func TestPoolExecute(t *testing.T) {
	pool, err := NewPool(DefaultConfig(), 2)
	if err != nil {
		t.Fatalf("Failed to create pool: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	result, err := pool.Execute(ctx, Request{Code: "console.log(Math.sqrt(16))"})
	if err != nil {
		t.Fatalf("Pool.Execute() error = %v", err)
	}
	if result.Output != "4" {
		t.Errorf("Output = %q, want %q", result.Output, "4")
	}

	// Reuse across several runs
	for i := 0; i < 5; i++ {
		if _, err := pool.Execute(ctx, Request{Code: "console.log('run')"}); err != nil {
			t.Errorf("iteration %d: Execute() error = %v", i, err)
		}
	}
}

func TestPoolReplacesPoisonedRuntime(t *testing.T) {
	pool, err := NewPool(DefaultConfig(), 1)
	if err != nil {
		t.Fatalf("Failed to create pool: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	result, err := pool.Execute(ctx, Request{Code: "while(true){}", Timeout: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("Pool.Execute() error = %v", err)
	}
	if result.Kind != FailureTimeout {
		t.Fatalf("Kind = %s, want %s", result.Kind, FailureTimeout)
	}

	// The single slot must have been refilled with a fresh runtime.
	result, err = pool.Execute(ctx, Request{Code: "console.log('alive')"})
	if err != nil {
		t.Fatalf("Pool.Execute() after timeout error = %v", err)
	}
	if result.Output != "alive" {
		t.Errorf("Output = %q, want %q", result.Output, "alive")
	}
}

func TestPoolClosed(t *testing.T) {
	pool, err := NewPool(DefaultConfig(), 1)
	if err != nil {
		t.Fatalf("Failed to create pool: %v", err)
	}
	pool.Close()

	if _, err := pool.Execute(context.Background(), Request{Code: "1"}); err != ErrPoolClosed {
		t.Errorf("Execute() on closed pool error = %v, want ErrPoolClosed", err)
	}
}
