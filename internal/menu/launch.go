package menu

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/google/shlex"
)

// SplitCommand splits a configured launcher command line into argv,
// honoring shell-style quoting.
func SplitCommand(cmdline string) ([]string, error) {
	parts, err := shlex.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("split launcher command: %w", err)
	}
	if len(parts) == 0 {
		return nil, errors.New("empty launcher command")
	}
	return parts, nil
}

// Launch pipes the rendered entries to the dmenu-style launcher and
// returns the line the user picked. An empty string means the menu was
// dismissed without a choice.
func Launch(argv []string, entries []string) (string, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(strings.Join(entries, "\n"))
	cmd.Stderr = os.Stderr
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		// dmenu exits 1 when the user hits escape.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", nil
		}
		return "", fmt.Errorf("run launcher: %w", err)
	}
	return strings.TrimSpace(out.String()), nil
}
