package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/kris-nova/logger"
)

// capture swaps *f for a pipe while fn runs and returns what was written.
func capture(t *testing.T, f **os.File, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := *f
	*f = w
	defer func() { *f = orig }()

	done := make(chan string)
	go func() {
		data, _ := io.ReadAll(r)
		done <- string(data)
	}()
	fn()
	w.Close()
	return <-done
}

func TestExecuteRejectedArgsLogToStderr(t *testing.T) {
	t.Setenv("OMNIFETCH_DEBUG", "")
	origWriter := logger.Writer
	defer func() { logger.Writer = origWriter }()

	var execErr error
	var stderr string
	stdout := capture(t, &os.Stdout, func() {
		stderr = capture(t, &os.Stderr, func() {
			cmd := newRootCmd()
			cmd.SetArgs([]string{"extra"})
			execErr = execute(cmd)
		})
	})

	if execErr == nil {
		t.Fatalf("execute with an argument succeeded")
	}
	if stdout != "" {
		t.Fatalf("stdout = %q; want nothing", stdout)
	}
	if !strings.Contains(stderr, "extra") {
		t.Fatalf("stderr = %q; want the rejected argument reported", stderr)
	}
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"extra"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("Execute with an argument succeeded")
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunWithoutUser(t *testing.T) {
	t.Setenv("USER", "")
	t.Setenv("OMNIFETCH_CONFIG", t.TempDir()+"/missing.yaml")

	var out bytes.Buffer
	if err := run(context.Background(), &out); err == nil {
		t.Fatalf("run without USER succeeded")
	}
	if out.Len() != 0 {
		t.Fatalf("run wrote %q before failing", out.String())
	}
}

func TestPrintLines(t *testing.T) {
	var out bytes.Buffer
	if err := printLines(&out, []string{"", "a b", "c", ""}); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "\na b\nc\n\n" {
		t.Fatalf("printLines wrote %q", got)
	}
}
