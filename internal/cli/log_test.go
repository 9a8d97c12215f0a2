package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func TestNewLoggerPrefixAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("lift", "rod", 0)
	if buf.Len() != 0 {
		t.Fatalf("debug line written at info level: %q", buf.String())
	}

	logger.Info("reset", "disks", 3)
	line := buf.String()
	for _, want := range []string{"hanoi", "reset", "disks=3"} {
		if !strings.Contains(line, want) {
			t.Errorf("info line %q missing %q", line, want)
		}
	}

	buf.Reset()
	logger.SetLevel(log.DebugLevel)
	logger.Debug("drop", "outcome", "moved")
	if line := buf.String(); !strings.Contains(line, "hanoi") || !strings.Contains(line, "outcome=moved") {
		t.Errorf("debug line %q after switching to debug", line)
	}
}

func TestVerboseFlagSelectsDebugLogger(t *testing.T) {
	var errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&errOut)
	root.SetArgs([]string{"solve", "--count", "-v"})

	var level log.Level
	solve, _, err := root.Find([]string{"solve"})
	if err != nil {
		t.Fatalf("find solve: %v", err)
	}
	run := solve.RunE
	solve.RunE = func(cmd *cobra.Command, args []string) error {
		level = loggerFromContext(cmd.Context()).GetLevel()
		return run(cmd, args)
	}
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if level != log.DebugLevel {
		t.Fatalf("logger level = %v, want debug", level)
	}
}

func TestLoggerContext(t *testing.T) {
	logger := newLogger(&bytes.Buffer{}, log.InfoLevel)

	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext() should return the attached logger")
	}
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext() without a logger should fall back to the default")
	}
}
