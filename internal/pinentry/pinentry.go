// Package pinentry prompts for secrets through a pinentry program.
package pinentry

import (
	"errors"
	"fmt"
	"strings"

	"netmenu/internal/command"
)

// Prompt asks the user for the password of ssid and returns the
// plaintext answer. The pinentry protocol prefixes the answer line
// with "D ".
func Prompt(r command.Runner, program, ssid string) (string, error) {
	script := fmt.Sprintf("printf 'SETDESC Enter %s password\\nGETPIN\\n' | %s", ssid, program)
	out, err := r.Run("sh", "-c", script)
	if err != nil {
		return "", fmt.Errorf("run pinentry: %w", err)
	}
	for _, line := range command.Lines(out) {
		if strings.HasPrefix(line, "D ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "D ")), nil
		}
	}
	return "", errors.New("password not entered")
}
