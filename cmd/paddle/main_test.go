package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withLogFile(t *testing.T, path string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldFlag, oldErr := flagLogFile, stderr
	flagLogFile, stderr = path, &buf
	t.Cleanup(func() {
		flagLogFile, stderr = oldFlag, oldErr
	})
	return &buf
}

func TestOpenLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paddle.log")
	errOut := withLogFile(t, path)

	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	logger.Info("starting", "game", "paddleball")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "game=paddleball") {
		t.Errorf("log file missing entry: %q", data)
	}
	if errOut.Len() != 0 {
		t.Errorf("clean close reported an error: %q", errOut.String())
	}
}

func TestOpenLoggerReportsCloseError(t *testing.T) {
	errOut := withLogFile(t, filepath.Join(t.TempDir(), "paddle.log"))

	_, closeLog, err := openLogger(io.Discard)
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	closeLog()
	closeLog() // already closed

	if !strings.Contains(errOut.String(), "closing log file") {
		t.Errorf("close error not reported, got %q", errOut.String())
	}
}

func TestOpenLoggerBadPath(t *testing.T) {
	withLogFile(t, filepath.Join(t.TempDir(), "missing", "paddle.log"))

	if _, _, err := openLogger(io.Discard); err == nil {
		t.Error("openLogger() should fail when the directory does not exist")
	}
}

func TestOpenLoggerFallback(t *testing.T) {
	withLogFile(t, "")

	var buf bytes.Buffer
	logger, closeLog, err := openLogger(&buf)
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	defer closeLog()

	logger.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("fallback writer missing entry: %q", buf.String())
	}
}
