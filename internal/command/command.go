package command

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// Output is the captured result of one external command invocation.
// Success is false when the command ran but exited non-zero; callers
// decide whether that is fatal.
type Output struct {
	Stdout  []byte
	Success bool
}

// Runner runs external commands. Parsers and dispatchers take a Runner
// so tests can substitute canned output.
type Runner interface {
	Run(name string, args ...string) (Output, error)
}

// RealRunner executes commands on the host. Every invocation pins
// LC_ALL=C so column layout and decimals from external tools stay
// parsing-stable regardless of the user's locale.
type RealRunner struct{}

func (RealRunner) Run(name string, args ...string) (Output, error) {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = io.Discard
	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Output{Stdout: out.Bytes(), Success: false}, nil
		}
		return Output{}, err
	}
	return Output{Stdout: out.Bytes(), Success: true}, nil
}

// Installed reports whether cmd resolves on PATH.
func Installed(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// Lines decodes captured stdout into ordered text lines. A trailing
// newline does not produce an empty final line.
func Lines(out Output) []string {
	s := strings.TrimRight(string(out.Stdout), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]`)

// StripANSI removes SGR/CSI escape sequences. iwctl colorizes the
// connected network, which otherwise breaks field splitting.
func StripANSI(line string) string {
	return ansiEscape.ReplaceAllString(line, "")
}
