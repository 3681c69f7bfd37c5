// Package logging implements the append-only file log shared by every
// component: one line per entry, `<timestamp> [<LEVEL>] <message>`.
package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05.000"

// maxCauseDepth bounds how far an error chain is unrolled into a log entry.
const maxCauseDepth = 5

// Listener receives every entry that was successfully appended to the file.
// Listeners run on their own goroutine; failures there never reach callers.
type Listener func(entry string)

// Logger appends timestamped lines to a single file. The mutex guards the
// file append only; listener dispatch happens outside the critical section.
type Logger struct {
	path string

	mu        sync.Mutex
	listeners []Listener

	nowFunc func() time.Time
}

// New creates a Logger writing to path, creating the parent directory when
// it does not exist yet.
func New(path string) (*Logger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory %q: %w", dir, err)
		}
	}
	return &Logger{path: path, nowFunc: time.Now}, nil
}

// Subscribe registers a listener for saved entries. Not safe to call
// concurrently with logging; wire listeners during startup.
func (l *Logger) Subscribe(fn Listener) {
	l.listeners = append(l.listeners, fn)
}

// Info appends an INFO entry.
func (l *Logger) Info(msg string) {
	l.write("INFO", msg)
}

// Warn appends a WARN entry.
func (l *Logger) Warn(msg string) {
	l.write("WARN", msg)
}

// Error appends an ERROR entry. A non-nil err has its wrapped-cause chain
// unrolled into the entry, up to maxCauseDepth levels.
func (l *Logger) Error(msg string, err error) {
	if err != nil {
		var b strings.Builder
		b.WriteString(msg)
		for level := 0; err != nil && level < maxCauseDepth; level++ {
			fmt.Fprintf(&b, " | L%d %s", level, err.Error())
			err = errors.Unwrap(err)
		}
		msg = b.String()
	}
	l.write("ERROR", msg)
}

func (l *Logger) write(level, msg string) {
	entry := fmt.Sprintf("%s [%s] %s\n", l.nowFunc().Format(timestampLayout), level, msg)

	l.mu.Lock()
	err := l.append(entry)
	l.mu.Unlock()

	if err != nil {
		// Logging must never take the application down; report and move on.
		fmt.Fprintf(os.Stderr, "FATAL: cannot write to log file %q: %v\n", l.path, err)
		return
	}

	for _, fn := range l.listeners {
		go dispatch(fn, entry)
	}
}

// append is the minimal critical section: open, write, close.
func (l *Logger) append(entry string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(entry); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// dispatch fires one listener; a panicking listener is swallowed so that
// fan-out can never disturb the caller or other listeners.
func dispatch(fn Listener, entry string) {
	defer func() {
		_ = recover()
	}()
	fn(entry)
}
