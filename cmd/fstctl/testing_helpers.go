package main

import (
	"bytes"
	"os"
	"testing"
)

// captureOutput captures stdout while running fn.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// resetGlobalFlags restores the package-level flag variables tests mutate
// back to their zero values, so test order never leaks state between cases.
func resetGlobalFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	noColor = false
	convertSymbols = ""
	compileSymbols = ""
	printSymbols = ""
}
