package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func scripted(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out), out
}

func TestReadStringRejectsBlank(t *testing.T) {
	c, out := scripted("\n   \nherbs\n")
	got := c.ReadString("Name:", false)
	require.Equal(t, "herbs", got)
	require.Contains(t, out.String(), "Value cannot be empty")
}

func TestReadStringAllowEmpty(t *testing.T) {
	c, _ := scripted("\n")
	require.Equal(t, "", c.ReadString("Note:", true))
}

func TestReadIntRevalidates(t *testing.T) {
	c, out := scripted("abc\n3.5\n42\n")
	require.Equal(t, 42, c.ReadInt("Pick:"))
	require.Contains(t, out.String(), "Invalid whole number")
}

func TestReadIntAtLeast(t *testing.T) {
	c, out := scripted("0\n5\n")
	require.Equal(t, 5, c.ReadIntAtLeast("Quantity:", 1))
	require.Contains(t, out.String(), "Value must be >= 1")
}

func TestReadFloatAcceptsCommaSeparator(t *testing.T) {
	c, _ := scripted("12,50\n")
	require.InDelta(t, 12.5, c.ReadFloat("Price:", 0), 1e-9)
}

func TestReadDate(t *testing.T) {
	c, out := scripted("yesterday\n2024-05-01\n")
	require.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), c.ReadDate("Date:"))
	require.Contains(t, out.String(), "Invalid date")
}

func TestConfirmAcceptsOnlyLiterals(t *testing.T) {
	c, out := scripted("yes\nmaybe\nY\n")
	require.True(t, c.Confirm("Proceed?"))
	require.Contains(t, out.String(), "Enter 'y' (yes) or 'n' (no)")

	c, _ = scripted("N\n")
	require.False(t, c.Confirm("Proceed?"))
}

func TestReadPasswordPlainFallback(t *testing.T) {
	// a strings.Reader is not a terminal, so the plain line read engages
	c, _ := scripted("s3cret\n")
	require.Equal(t, "s3cret", c.ReadPassword("Password:"))
}

func TestPromptsGiveUpOnEOF(t *testing.T) {
	c, _ := scripted("")
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.ReadInt("Pick:")
		_ = c.Confirm("Sure?")
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("prompt loops must terminate once input is exhausted")
	}
}
