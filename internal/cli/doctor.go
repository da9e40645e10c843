package cli

import (
	"fmt"

	"netmenu/internal/config"
	"netmenu/internal/menu"
)

type checkResult struct {
	Name   string
	Status string
	Detail string
}

// runDoctor reports on every external collaborator the launcher may
// invoke, so a half-working menu can be diagnosed in one look.
func runDoctor(installed func(string) bool, cfg config.Config) []checkResult {
	var results []checkResult
	add := func(name, status, detail string) {
		results = append(results, checkResult{Name: name, Status: status, Detail: detail})
	}

	checkBin := func(name string) {
		if installed(name) {
			add(name, "ok", "found")
		} else {
			add(name, "warn", "not found")
		}
	}

	checkBin("nmcli")
	checkBin("iwctl")
	checkBin("bluetoothctl")
	checkBin("tailscale")
	checkBin("rfkill")
	checkBin("nm-connection-editor")
	checkBin("notify-send")
	checkBin(cfg.Pinentry)

	if cfg.Menu.Command == "builtin" {
		add("launcher", "ok", "builtin picker")
	} else if argv, err := menu.SplitCommand(cfg.Menu.Command); err != nil {
		add("launcher", "err", err.Error())
	} else if installed(argv[0]) {
		add("launcher", "ok", argv[0])
	} else {
		add("launcher", "warn", argv[0]+" not found, builtin picker will be used")
	}

	add("actions", "ok", fmt.Sprintf("%d custom", len(cfg.Actions)))
	return results
}

func formatDoctor(results []checkResult) string {
	var out string
	for _, r := range results {
		out += fmt.Sprintf("[%s] %s", r.Status, r.Name)
		if r.Detail != "" {
			out += fmt.Sprintf(" -> %s", r.Detail)
		}
		out += "\n"
	}
	return out
}
