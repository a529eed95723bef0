package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/danmuck/matmul/internal/logging"
	"github.com/danmuck/matmul/internal/testutil/testlog"
)

const wantOutput = "Hello world!\n" +
	"Resulting matrix is\n" +
	"10101010\n" +
	"20202020\n" +
	"30303030\n" +
	"40404040\n"

func TestRunPrintsProduct(t *testing.T) {
	testlog.Start(t)
	t.Setenv(envConfigPath, "")

	var stdout bytes.Buffer
	if err := run(&stdout); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := stdout.String(); got != wantOutput {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestRunIsRepeatable(t *testing.T) {
	testlog.Start(t)
	t.Setenv(envConfigPath, "")

	var first, second bytes.Buffer
	if err := run(&first); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := run(&second); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("runs differ:\n%s\n---\n%s", first.String(), second.String())
	}
}

func TestRunIgnoresBadLogEnv(t *testing.T) {
	testlog.Start(t)
	t.Setenv(envConfigPath, "")
	t.Setenv(logging.EnvLogLevel, "loud")
	t.Setenv(logging.EnvLogTimestamp, "sometimes")

	var stdout bytes.Buffer
	if err := run(&stdout); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := stdout.String(); got != wantOutput {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	testlog.Start(t)
	t.Setenv(envConfigPath, filepath.Join(t.TempDir(), "absent.toml"))

	var stdout bytes.Buffer
	if err := run(&stdout); err == nil {
		t.Fatalf("expected config error")
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no output on config error, got %q", stdout.String())
	}
}
