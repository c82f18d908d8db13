package logutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetLogger_DiscardsByDefault(t *testing.T) {
	SetOutput(io.Discard)
	logger := GetLogger("[test] ")
	// Nothing to observe; this only must not fail.
	logger.Println("dropped")
}

func TestSetOutput(t *testing.T) {
	logger := GetLogger("[test] ")
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(io.Discard) })

	logger.Println("hello")
	if got := buf.String(); !strings.Contains(got, "[test] ") || !strings.HasSuffix(got, "hello\n") {
		t.Errorf("logged %q", got)
	}

	// Loggers created after SetOutput also use the new output.
	GetLogger("[later] ").Println("world")
	if got := buf.String(); !strings.Contains(got, "[later] ") {
		t.Errorf("logged %q", got)
	}
}

func TestSetOutputFile(t *testing.T) {
	logger := GetLogger("[file] ")
	fname := filepath.Join(t.TempDir(), "log")
	if err := SetOutputFile(fname); err != nil {
		t.Fatal(err)
	}
	logger.Println("to file")
	if err := SetOutputFile(""); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[file] ") || !strings.Contains(string(data), "to file") {
		t.Errorf("log file contains %q", data)
	}

	if err := SetOutputFile(filepath.Join(t.TempDir(), "no", "such", "dir", "log")); err == nil {
		t.Errorf("SetOutputFile succeeded for a path in a missing directory")
	}
}
