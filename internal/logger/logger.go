package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogFilePath is the default log file, relative to the working directory (project root when run via go run ./cmd/viewer).
const LogFilePath = "logs/viewer.txt"

// maxLines bounds the in-memory history shown by the terminal overlay.
const maxLines = 500

// Logger keeps recent lines in memory for the terminal overlay, appends them to a file on disk
// and echoes them to a console writer (stderr by default). Safe for concurrent use: asset
// fetches log from their own goroutines.
type Logger struct {
	mu      sync.Mutex
	lines   []string
	path    string
	console io.Writer
}

// New returns a Logger writing to LogFilePath and stderr, and ensures the logs directory exists.
func New() *Logger {
	return NewWithPath(LogFilePath, os.Stderr)
}

// NewWithPath returns a Logger appending to path (empty = no file) and echoing to console (nil = no echo).
func NewWithPath(path string, console io.Writer) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{lines: make([]string, 0), path: path, console: console}
}

// Log records a line. Each entry is prefixed with [timestamp] using computer time.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = l.lines[len(l.lines)-maxLines:]
	}
	if l.console != nil {
		_, _ = io.WriteString(l.console, stamped+"\n")
	}
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats and records a line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Errorf records a line prefixed with "error: ".
func (l *Logger) Errorf(format string, args ...any) {
	l.Log("error: " + fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Writer returns an io.Writer that records each written line as a log line. Used as the output
// of flag sets so usage and parse errors show up in the terminal.
func (l *Logger) Writer() io.Writer {
	return lineWriter{l}
}

type lineWriter struct{ l *Logger }

func (w lineWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			w.l.Log(line)
		}
	}
	return len(p), nil
}
