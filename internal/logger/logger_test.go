package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out.txt")
	l := NewAt(path)
	l.Log("first")
	l.Logf("generated %d items", 5)

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasSuffix(lines[1], "] generated 5 items") {
		t.Errorf("unexpected line %q", lines[1])
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("file has %d lines, want 2", got)
	}
}

func TestNilLoggerDiscards(t *testing.T) {
	var l *Logger
	l.Log("ignored")
	l.Logf("%s", "ignored")
	if l.Lines() != nil {
		t.Error("nil logger returned lines")
	}
}

func TestMemoryOnly(t *testing.T) {
	l := NewAt("")
	l.Log("kept")
	if len(l.Lines()) != 1 {
		t.Error("memory-only logger lost a line")
	}
}
