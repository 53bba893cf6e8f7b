package sandbox

import (
	"time"
)

// DefaultTimeout bounds a run when the request does not specify one.
const DefaultTimeout = 5 * time.Second

// MaxTimeout caps whatever the request asks for.
const MaxTimeout = 30 * time.Second

// NoOutputPlaceholder is returned as Output when a successful run
// produced no console output.
const NoOutputPlaceholder = "Code executed successfully (no output)"

// Config defines sandbox configuration
type Config struct {
	Timeout       time.Duration // Default execution timeout
	MaxCallStack  int           // Maximum call stack depth
	EnableConsole bool          // Allow console.log/warn/error/info/debug
}

// DefaultConfig returns the standard playground configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:       DefaultTimeout,
		MaxCallStack:  1024,
		EnableConsole: true,
	}
}

// Request describes one execution of a code snippet.
type Request struct {
	Code    string        `json:"code"`
	Timeout time.Duration `json:"-"`
}

// FailureKind classifies why a run did not succeed.
type FailureKind string

const (
	FailureCompile FailureKind = "compile"
	FailureRuntime FailureKind = "runtime"
	FailureTimeout FailureKind = "timeout"
)

// Result is the tagged outcome of one run. Exactly one of the two
// shapes is populated: Output on success, Kind+Message on failure.
type Result struct {
	Success  bool          `json:"success"`
	Output   string        `json:"output,omitempty"`
	Kind     FailureKind   `json:"kind,omitempty"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

func success(output string, d time.Duration) *Result {
	if output == "" {
		output = NoOutputPlaceholder
	}
	return &Result{Success: true, Output: output, Duration: d}
}

func failure(kind FailureKind, message string, d time.Duration) *Result {
	return &Result{Success: false, Kind: kind, Message: message, Duration: d}
}
