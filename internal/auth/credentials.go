package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// The credential store is a flat text file, one `login,bcrypt_hash,role`
// record per line. Lines starting with # and blank lines are skipped.
// The file is re-read on every login attempt; there is no caching.

// Record is one parsed credential line.
type Record struct {
	Login        string
	PasswordHash string
	RoleName     string
}

var errWrongFieldCount = errors.New("expected exactly 3 comma-separated fields")

// readLines loads the whole credential file, preserving line order.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"), nil
}

// skippable reports whether a line is blank or a comment.
func skippable(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// parseRecord splits a non-skippable line into a Record. Anything other
// than exactly three fields is malformed.
func parseRecord(line string) (Record, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return Record{}, fmt.Errorf("%w, got %d", errWrongFieldCount, len(parts))
	}
	return Record{
		Login:        strings.TrimSpace(parts[0]),
		PasswordHash: strings.TrimSpace(parts[1]),
		RoleName:     strings.TrimSpace(parts[2]),
	}, nil
}
