// Package iwd lists and joins Wi-Fi networks through iwctl.
package iwd

import (
	"fmt"
	"regexp"
	"strings"

	"netmenu/internal/command"
	"netmenu/internal/menu"
)

const category = "wifi"

// Network is one network from `iwctl station <iface> get-networks`.
type Network struct {
	SSID      string
	Security  string
	Signal    string
	Connected bool
}

func (n Network) Display() string {
	icon := menu.IconWifi
	if n.Connected {
		icon = menu.IconActive
	}
	text := fmt.Sprintf("%s\t%s\t%s", n.SSID, strings.ToUpper(n.Security), menu.SignalBars(n.Signal))
	return menu.FormatEntry(category, icon, text)
}

// ParseDisplay recovers the SSID and security from a rendered entry,
// mirroring the NetworkManager layout.
func ParseDisplay(display string) (ssid, security string) {
	rest := display
	for _, marker := range []string{menu.IconActive + " ", menu.IconWifi + " "} {
		if i := strings.Index(display, marker); i >= 0 {
			rest = display[i+len(marker):]
			break
		}
	}
	fields := strings.Split(rest, "\t")
	ssid = fields[0]
	if len(fields) > 1 {
		security = fields[1]
	}
	return ssid, security
}

// GetNetworks lists networks on iface, issuing one scan when nothing
// is connected yet.
func GetNetworks(r command.Runner, iface string) ([]Network, error) {
	lines, err := fetchNetworkLines(r, iface)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		return nil, nil
	}

	networks := parseNetworkLines(lines)
	for _, n := range networks {
		if n.Connected {
			return networks, nil
		}
	}

	scan, err := r.Run("iwctl", "station", iface, "scan")
	if err != nil {
		return nil, err
	}
	if !scan.Success {
		return nil, nil
	}
	lines, err = fetchNetworkLines(r, iface)
	if err != nil {
		return nil, err
	}
	return parseNetworkLines(lines), nil
}

// fetchNetworkLines returns the listing body: everything after the
// "Available networks" banner and its three separator lines.
func fetchNetworkLines(r command.Runner, iface string) ([]string, error) {
	out, err := r.Run("iwctl", "station", iface, "get-networks")
	if err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, nil
	}
	lines := command.Lines(out)
	for i, line := range lines {
		if strings.Contains(line, "Available networks") {
			if i+4 <= len(lines) {
				return lines[i+4:], nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

// parseNetworkLines splits each ANSI-stripped line from the right: the
// last token is the signal rating, the one before it the security, and
// the rest the SSID. A leading ">" marks the connected network.
func parseNetworkLines(lines []string) []Network {
	var networks []Network
	for _, raw := range lines {
		parts := strings.Fields(command.StripANSI(raw))
		if len(parts) < 3 {
			continue
		}
		connected := parts[0] == ">"
		start := 0
		if connected {
			start = 1
		}
		ssid := strings.Join(parts[start:len(parts)-2], " ")
		if ssid == "" {
			continue
		}
		networks = append(networks, Network{
			SSID:      ssid,
			Security:  parts[len(parts)-2],
			Signal:    parts[len(parts)-1],
			Connected: connected,
		})
	}
	return networks
}

// Connect joins the network named in a rendered entry, prompting for a
// passphrase only when the network is secured and not already known.
func Connect(r command.Runner, iface, display string, prompt func(ssid string) (string, error)) (bool, error) {
	ssid, security := ParseDisplay(display)
	if ssid == "" {
		return false, nil
	}
	// iwctl reports open networks as "open" rather than an empty
	// security column.
	if security == "" || strings.EqualFold(security, "open") || IsKnownNetwork(r, ssid) {
		return attemptConnection(r, iface, ssid, "")
	}
	passphrase, err := prompt(ssid)
	if err != nil {
		return false, err
	}
	return attemptConnection(r, iface, ssid, passphrase)
}

func attemptConnection(r command.Runner, iface, ssid, passphrase string) (bool, error) {
	args := []string{"station", iface, "connect", ssid}
	if passphrase != "" {
		args = append([]string{"--passphrase", passphrase}, args...)
	}
	out, err := r.Run("iwctl", args...)
	if err != nil {
		return false, err
	}
	return out.Success, nil
}

// IsKnownNetwork reports whether iwd has stored credentials for ssid.
func IsKnownNetwork(r command.Runner, ssid string) bool {
	out, err := r.Run("iwctl", "known-networks", "list")
	if err != nil || !out.Success {
		return false
	}
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(ssid) + `\b`)
	if err != nil {
		return false
	}
	for _, line := range command.Lines(out) {
		if re.MatchString(command.StripANSI(line)) {
			return true
		}
	}
	return false
}

// IsConnected reports whether the station on iface is connected.
func IsConnected(r command.Runner, iface string) (bool, error) {
	out, err := r.Run("iwctl", "station", iface, "show")
	if err != nil {
		return false, err
	}
	if !out.Success {
		return false, nil
	}
	for _, line := range command.Lines(out) {
		fields := strings.Fields(command.StripANSI(line))
		// "State" lines read e.g. "State connected"; "disconnected"
		// must not match.
		if len(fields) >= 2 && fields[0] == "State" && fields[len(fields)-1] == "connected" {
			return true, nil
		}
	}
	return false, nil
}

// Disconnect drops the station connection on iface.
func Disconnect(r command.Runner, iface string) (bool, error) {
	out, err := r.Run("iwctl", "station", iface, "disconnect")
	if err != nil {
		return false, err
	}
	return out.Success, nil
}
