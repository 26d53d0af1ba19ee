package gitlab

import (
	"bufio"
	"os"
	"strings"
)

// Token holds the GitLab authentication token, either literally or as
// a path to a file containing it. The token needs at least the
// read_api scope.
type Token string

// Resolve returns the token value. When the token names an existing
// file, its first line is read instead.
func (t Token) Resolve() (string, error) {
	if t == "" {
		return "", nil
	}
	info, err := os.Stat(string(t))
	if err != nil || info.IsDir() {
		return string(t), nil
	}

	f, err := os.Open(string(t))
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	return "", scanner.Err()
}
