// Package commandtest provides a scripted command.Runner for tests.
package commandtest

import (
	"fmt"
	"strings"

	"netmenu/internal/command"
)

// Runner replays canned outputs keyed by the full command line. When a
// key holds several outputs they are consumed in order and the last one
// repeats.
type Runner struct {
	Outputs map[string][]command.Output
	Calls   []string
}

func New() *Runner {
	return &Runner{Outputs: map[string][]command.Output{}}
}

// Stub registers one successful invocation for cmdline.
func (r *Runner) Stub(cmdline, stdout string) {
	r.Outputs[cmdline] = append(r.Outputs[cmdline], command.Output{Stdout: []byte(stdout), Success: true})
}

// StubFail registers one failing (non-zero exit) invocation.
func (r *Runner) StubFail(cmdline, stdout string) {
	r.Outputs[cmdline] = append(r.Outputs[cmdline], command.Output{Stdout: []byte(stdout), Success: false})
}

func (r *Runner) Run(name string, args ...string) (command.Output, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	r.Calls = append(r.Calls, key)
	queue := r.Outputs[key]
	if len(queue) == 0 {
		return command.Output{}, fmt.Errorf("commandtest: no output scripted for %q", key)
	}
	out := queue[0]
	if len(queue) > 1 {
		r.Outputs[key] = queue[1:]
	}
	return out, nil
}

// Called reports whether cmdline was invoked.
func (r *Runner) Called(cmdline string) bool {
	for _, c := range r.Calls {
		if c == cmdline {
			return true
		}
	}
	return false
}
