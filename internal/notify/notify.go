// Package notify delivers desktop notifications via notify-send.
package notify

import (
	"fmt"

	"netmenu/internal/command"
)

// Send shows a desktop notification. Best effort: a missing or failing
// notify-send only yields false.
func Send(r command.Runner, summary, body string) bool {
	out, err := r.Run("notify-send", summary, body)
	if err != nil {
		return false
	}
	return out.Success
}

// Connection announces a successful Wi-Fi connection.
func Connection(r command.Runner, ssid string) bool {
	return Send(r, "Wi-Fi", fmt.Sprintf("Connected to %s", ssid))
}
