// Package networkmanager lists and joins Wi-Fi networks through nmcli.
package networkmanager

import (
	"fmt"
	"regexp"
	"strings"

	"netmenu/internal/command"
	"netmenu/internal/menu"
)

const category = "wifi"

// Network is one scanned Wi-Fi network.
type Network struct {
	SSID     string
	Security string
	Bars     string
	InUse    bool
}

// Display renders the menu entry. The three logical columns (SSID,
// security, strength) are tab-separated so reversal can re-split them
// losslessly.
func (n Network) Display() string {
	icon := menu.IconWifi
	if n.InUse {
		icon = menu.IconActive
	}
	text := fmt.Sprintf("%s\t%s\t%s", n.SSID, strings.ToUpper(n.Security), menu.SignalBars(n.Bars))
	return menu.FormatEntry(category, icon, text)
}

// ParseDisplay re-derives the SSID and security type from a rendered
// entry: the SSID is the run between the status glyph and the first
// tab, security the next tab field.
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

// GetNetworks scans Wi-Fi via nmcli. When no entry is in use it issues
// one rescan and parses the rescanned listing; it never rescans twice.
func GetNetworks(r command.Runner) ([]Network, error) {
	lines, err := fetchWifiLines(r)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		return nil, nil
	}

	hasInUse := false
	for _, line := range lines {
		if strings.HasPrefix(line, "*") {
			hasInUse = true
			break
		}
	}
	if hasInUse {
		return parseWifiLines(lines), nil
	}

	rescan, err := r.Run("nmcli", "dev", "wifi", "list", "--rescan", "auto")
	if err != nil {
		return nil, err
	}
	if !rescan.Success {
		return nil, nil
	}
	lines, err = fetchWifiLines(r)
	if err != nil {
		return nil, err
	}
	return parseWifiLines(lines), nil
}

func fetchWifiLines(r command.Runner) ([]string, error) {
	out, err := r.Run("nmcli", "-t", "-f", "IN-USE,SSID,BARS,SECURITY", "device", "wifi")
	if err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, nil
	}
	return command.Lines(out), nil
}

// parseWifiLines keeps lines with exactly four colon fields and a
// non-empty SSID; hidden networks are not actionable.
func parseWifiLines(lines []string) []Network {
	var networks []Network
	for _, line := range lines {
		parts := strings.Split(line, ":")
		if len(parts) != 4 {
			continue
		}
		ssid := strings.TrimSpace(parts[1])
		if ssid == "" {
			continue
		}
		networks = append(networks, Network{
			SSID:     ssid,
			Security: strings.TrimSpace(parts[3]),
			Bars:     strings.TrimSpace(parts[2]),
			InUse:    strings.TrimSpace(parts[0]) == "*",
		})
	}
	return networks
}

// Connect joins the network named in a rendered entry. Known profiles
// and open networks are brought up without credentials; anything else
// prompts once and connects with the answer. One attempt per branch.
func Connect(r command.Runner, display string, prompt func(ssid string) (string, error)) (bool, error) {
	ssid, security := ParseDisplay(display)
	if ssid == "" {
		return false, nil
	}
	if security == "" || IsKnownConnection(r, ssid) {
		return attemptConnection(r, ssid, "")
	}
	password, err := prompt(ssid)
	if err != nil {
		return false, err
	}
	return attemptConnection(r, ssid, password)
}

func attemptConnection(r command.Runner, ssid, password string) (bool, error) {
	var out command.Output
	var err error
	if password == "" {
		out, err = r.Run("nmcli", "connection", "up", ssid)
	} else {
		out, err = r.Run("nmcli", "device", "wifi", "connect", ssid, "password", password)
	}
	if err != nil {
		return false, err
	}
	return out.Success, nil
}

// IsKnownConnection reports whether ssid already has a saved profile.
func IsKnownConnection(r command.Runner, ssid string) bool {
	out, err := r.Run("nmcli", "connection", "show")
	if err != nil || !out.Success {
		return false
	}
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(ssid) + `\b`)
	if err != nil {
		return false
	}
	for _, line := range command.Lines(out) {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// IsConnected reports whether iface is in the connected state.
func IsConnected(r command.Runner, iface string) (bool, error) {
	out, err := r.Run("nmcli", "-t", "-f", "DEVICE,STATE", "device", "status")
	if err != nil {
		return false, err
	}
	if !out.Success {
		return false, nil
	}
	for _, line := range command.Lines(out) {
		if line == iface+":connected" {
			return true, nil
		}
	}
	return false, nil
}

// Disconnect takes the interface down.
func Disconnect(r command.Runner, iface string) (bool, error) {
	out, err := r.Run("nmcli", "device", "disconnect", iface)
	if err != nil {
		return false, err
	}
	return out.Success, nil
}

// ConnectDevice re-activates the interface's last connection.
func ConnectDevice(r command.Runner, iface string) (bool, error) {
	out, err := r.Run("nmcli", "device", "connect", iface)
	if err != nil {
		return false, err
	}
	return out.Success, nil
}
