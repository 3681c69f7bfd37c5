package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "logs.txt")
	l, err := New(path)
	require.NoError(t, err)
	return l, path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestEntryFormat(t *testing.T) {
	l, path := newTestLogger(t)
	l.nowFunc = func() time.Time {
		return time.Date(2024, 3, 7, 10, 30, 0, 123_000_000, time.UTC)
	}

	l.Info("application started")
	l.Warn("something odd")

	lines := readLines(t, path)
	require.Len(t, lines, 2)
	require.Equal(t, "2024-03-07 10:30:00.123 [INFO] application started", lines[0])
	require.Equal(t, "2024-03-07 10:30:00.123 [WARN] something odd", lines[1])
}

func TestErrorUnrollsCauseChain(t *testing.T) {
	l, path := newTestLogger(t)

	inner := fmt.Errorf("disk full")
	mid := fmt.Errorf("write header: %w", inner)
	outer := fmt.Errorf("create order: %w", mid)
	l.Error("order placement failed", outer)

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "[ERROR] order placement failed")
	require.Contains(t, lines[0], "| L0 create order: write header: disk full")
	require.Contains(t, lines[0], "| L1 write header: disk full")
	require.Contains(t, lines[0], "| L2 disk full")
	require.NotContains(t, lines[0], "L3")
}

func TestErrorChainDepthLimit(t *testing.T) {
	l, path := newTestLogger(t)

	err := fmt.Errorf("e0")
	for i := 1; i < 8; i++ {
		err = fmt.Errorf("e%d: %w", i, err)
	}
	l.Error("deep failure", err)

	lines := readLines(t, path)
	require.Contains(t, lines[0], "L4")
	require.NotContains(t, lines[0], "L5")
}

func TestConcurrentAppendsProduceCompleteLines(t *testing.T) {
	l, path := newTestLogger(t)

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			l.Info(fmt.Sprintf("concurrent entry %02d lorem ipsum dolor sit amet", n))
		}(i)
	}
	wg.Wait()

	lines := readLines(t, path)
	require.Len(t, lines, writers)
	for _, line := range lines {
		require.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3} \[INFO\] concurrent entry \d{2} lorem ipsum dolor sit amet$`, line)
	}
}

func TestListenersReceiveSavedEntries(t *testing.T) {
	l, path := newTestLogger(t)

	got := make(chan string, 2)
	l.Subscribe(func(entry string) { got <- entry })
	l.Subscribe(func(entry string) { panic("listener blew up") }) // must not disturb anything

	l.Info("hello")

	select {
	case entry := <-got:
		require.Contains(t, entry, "[INFO] hello")
	case <-time.After(2 * time.Second):
		t.Fatal("listener was not notified")
	}

	// the panicking listener must not have prevented the append either
	lines := readLines(t, path)
	require.Len(t, lines, 1)
}
