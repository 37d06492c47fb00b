package sysinfo

import "errors"

// Error kinds returned by the executor and the probes. Every error produced by
// this package wraps exactly one of these, so callers can classify a failure
// with errors.Is.
var (
	// ErrExecution means a command could not be started or exited non-zero.
	ErrExecution = errors.New("execution failed")
	// ErrEncoding means a command wrote something that is not UTF-8 text.
	ErrEncoding = errors.New("invalid output encoding")
	// ErrIO means a local file could not be read.
	ErrIO = errors.New("i/o error")
	// ErrParse means command output did not match the expected layout.
	ErrParse = errors.New("parse error")
	// ErrMissingData means an expected line, field or record was absent.
	ErrMissingData = errors.New("missing data")
	// ErrInvariant means the platform reported something self-contradictory,
	// such as two boot environments both marked active.
	ErrInvariant = errors.New("invariant violated")
	// ErrEnvironment means a required environment variable is unset.
	ErrEnvironment = errors.New("environment error")
	// ErrClock means the system clock cannot be used to compute uptime.
	ErrClock = errors.New("clock error")
)
