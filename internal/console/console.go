// Package console holds the prompt and message helpers for the interactive
// session. Prompts loop until they get valid input.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	headerColor  = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Console reads prompts from in and writes everything to out. Reading from
// a plain io.Reader keeps the prompt loops unit-testable; the masked
// password prompt only engages when in is a real terminal.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	// fd of the input when it is a terminal, -1 otherwise
	fd  int
	eof bool
}

// New builds a Console. Pass os.Stdin/os.Stdout for the real session.
func New(in io.Reader, out io.Writer) *Console {
	c := &Console{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok {
		c.fd = int(f.Fd())
	}
	return c
}

func (c *Console) Header(title string) {
	fmt.Fprintln(c.out)
	headerColor.Fprintf(c.out, "--- %s ---\n", strings.ToUpper(title))
	fmt.Fprintln(c.out)
}

func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Success(msg string) {
	successColor.Fprintf(c.out, "[OK] %s\n", msg)
}

func (c *Console) Warn(msg string) {
	warnColor.Fprintf(c.out, "[WARNING] %s\n", msg)
}

func (c *Console) Error(msg string) {
	errorColor.Fprintf(c.out, "[ERROR] %s\n", msg)
}

// EOF reports whether the input has run out. Loops layered on top of the
// prompts use it to stop instead of spinning on empty reads.
func (c *Console) EOF() bool {
	return c.eof
}

// readLine returns the next input line. After the input is exhausted every
// prompt gives up instead of looping forever.
func (c *Console) readLine() string {
	line, err := c.in.ReadString('\n')
	if err != nil {
		c.eof = true
	}
	return strings.TrimRight(line, "\r\n")
}

// ReadString prompts until a non-blank line arrives (unless allowEmpty).
func (c *Console) ReadString(prompt string, allowEmpty bool) string {
	for {
		fmt.Fprintf(c.out, "%s ", prompt)
		input := strings.TrimSpace(c.readLine())
		if input != "" || allowEmpty || c.eof {
			return input
		}
		c.Warn("Value cannot be empty. Try again.")
	}
}

// ReadInt prompts until a valid integer arrives.
func (c *Console) ReadInt(prompt string) int {
	return c.readIntFunc(prompt, func(int) string { return "" })
}

// ReadIntAtLeast prompts until an integer >= min arrives.
func (c *Console) ReadIntAtLeast(prompt string, min int) int {
	return c.readIntFunc(prompt, func(v int) string {
		if v < min {
			return fmt.Sprintf("Value must be >= %d.", min)
		}
		return ""
	})
}

func (c *Console) readIntFunc(prompt string, check func(int) string) int {
	for {
		fmt.Fprintf(c.out, "%s ", prompt)
		input := strings.TrimSpace(c.readLine())
		v, err := strconv.Atoi(input)
		if err != nil {
			if c.eof {
				return 0
			}
			c.Warn("Invalid whole number.")
			continue
		}
		if msg := check(v); msg != "" {
			if c.eof {
				return 0
			}
			c.Warn(msg)
			continue
		}
		return v
	}
}

// ReadFloat prompts until a decimal number >= min arrives. A comma decimal
// separator is accepted alongside the dot.
func (c *Console) ReadFloat(prompt string, min float64) float64 {
	for {
		fmt.Fprintf(c.out, "%s ", prompt)
		input := strings.ReplaceAll(strings.TrimSpace(c.readLine()), ",", ".")
		v, err := strconv.ParseFloat(input, 64)
		switch {
		case err != nil:
			if c.eof {
				return 0
			}
			c.Warn("Invalid decimal number.")
		case v < min:
			if c.eof {
				return 0
			}
			c.Warn(fmt.Sprintf("Value must be >= %.2f.", min))
		default:
			return v
		}
	}
}

// ReadDate prompts until a YYYY-MM-DD date arrives.
func (c *Console) ReadDate(prompt string) time.Time {
	for {
		fmt.Fprintf(c.out, "%s ", prompt)
		input := strings.TrimSpace(c.readLine())
		v, err := time.Parse("2006-01-02", input)
		if err == nil {
			return v
		}
		if c.eof {
			return time.Time{}
		}
		c.Warn("Invalid date, expected YYYY-MM-DD.")
	}
}

// Confirm accepts only the literal tokens y and n, case-insensitively.
func (c *Console) Confirm(prompt string) bool {
	for {
		fmt.Fprintf(c.out, "%s (y/n): ", prompt)
		input := strings.TrimSpace(c.readLine())
		switch strings.ToLower(input) {
		case "y":
			return true
		case "n":
			return false
		}
		if c.eof {
			return false
		}
		c.Warn("Enter 'y' (yes) or 'n' (no).")
	}
}

// ReadPassword reads a password without echo when the input is a terminal,
// falling back to a plain line read otherwise.
func (c *Console) ReadPassword(prompt string) string {
	fmt.Fprintf(c.out, "%s ", prompt)
	if c.fd >= 0 && term.IsTerminal(c.fd) {
		raw, err := term.ReadPassword(c.fd)
		fmt.Fprintln(c.out)
		if err == nil {
			return string(raw)
		}
		// fall through to the plain read on terminal errors
	}
	return c.readLine()
}
