package menu

import (
	"fmt"
	"strings"
)

// FormatEntry renders one menu line: left-padded category, separator,
// optional icon, then text. All backends go through here so category
// columns align in the launcher.
func FormatEntry(category, icon, text string) string {
	if icon == "" {
		return fmt.Sprintf("%-10s- %s", category, text)
	}
	return fmt.Sprintf("%-10s- %s %s", category, icon, text)
}

var strengthSymbols = [5]string{"_", "▂", "▄", "▆", "█"}

// SignalBars converts a star-rating signal field (trailing "*" runs as
// printed by nmcli and iwctl) into a 4-rung glyph ladder. The first
// rung is always lit; rung n lights up from n stars.
func SignalBars(raw string) string {
	stars := 0
	for i := len(raw) - 1; i >= 0 && raw[i] == '*'; i-- {
		stars++
	}
	var b strings.Builder
	b.WriteString(strengthSymbols[1])
	for rung := 2; rung <= 4; rung++ {
		if stars >= rung {
			b.WriteString(strengthSymbols[rung])
		} else {
			b.WriteString(strengthSymbols[0])
		}
	}
	return b.String()
}
