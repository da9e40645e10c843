// Package tailscale drives exit-node selection and tailscale toggles.
package tailscale

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"netmenu/internal/command"
	"netmenu/internal/menu"
)

const mullvadSuffix = "mullvad.ts.net"

var (
	columnSplit = regexp.MustCompile(`\s{2,}`)
	nodeIPv4    = regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`)
)

// ExitNode is one row of `tailscale exit-node list`.
type ExitNode struct {
	IP       string
	Hostname string
	Country  string
	Mullvad  bool
	Active   bool
}

// Display renders Mullvad nodes with their country flag and generic
// exit nodes with a shortened hostname. The active node gets the
// active marker instead of its usual icon.
func (n ExitNode) Display() string {
	if n.Mullvad {
		icon := menu.CountryFlag(n.Country)
		if n.Active {
			icon = menu.IconActive
		}
		return menu.FormatEntry("mullvad", icon, fmt.Sprintf("%-15s - %-16s %s", n.Country, n.IP, n.Hostname))
	}
	icon := menu.IconExitNode
	if n.Active {
		icon = menu.IconActive
	}
	short := strings.SplitN(n.Hostname, ".", 2)[0]
	return menu.FormatEntry("exit-node", icon, fmt.Sprintf("%-15s - %-16s %s", short, n.IP, n.Hostname))
}

// ExitNodes lists the available exit nodes, Mullvad and generic,
// sorted by the first whitespace token of their rendered entry.
func ExitNodes(r command.Runner) ([]ExitNode, error) {
	out, err := r.Run("tailscale", "exit-node", "list")
	if err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, nil
	}
	active, err := ActiveExitNode(r)
	if err != nil {
		return nil, err
	}

	var nodes []ExitNode
	for _, line := range command.Lines(out) {
		if !strings.Contains(line, "ts.net") {
			continue
		}
		parts := columnSplit.Split(strings.TrimSpace(line), -1)
		if len(parts) < 2 {
			continue
		}
		node := ExitNode{
			IP:       strings.TrimSpace(parts[0]),
			Hostname: strings.TrimSpace(parts[1]),
			Mullvad:  strings.Contains(line, mullvadSuffix),
		}
		if len(parts) > 2 {
			node.Country = strings.TrimSpace(parts[2])
		}
		node.Active = node.Hostname == active && active != ""
		nodes = append(nodes, node)
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		return firstToken(nodes[i].Display()) < firstToken(nodes[j].Display())
	})
	return nodes, nil
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

type statusPeer struct {
	DNSName  string `json:"DNSName"`
	Active   bool   `json:"Active"`
	ExitNode bool   `json:"ExitNode"`
}

type statusDoc struct {
	Peer map[string]statusPeer `json:"Peer"`
}

// ActiveExitNode returns the DNS name of the exit node traffic
// currently routes through, or "" when none is set.
func ActiveExitNode(r command.Runner) (string, error) {
	out, err := r.Run("tailscale", "status", "--json")
	if err != nil {
		return "", err
	}
	if !out.Success {
		return "", nil
	}
	var doc statusDoc
	if err := json.Unmarshal(out.Stdout, &doc); err != nil {
		return "", fmt.Errorf("parse tailscale status: %w", err)
	}
	for _, peer := range doc.Peer {
		if peer.Active && peer.ExitNode {
			return strings.TrimSuffix(peer.DNSName, "."), nil
		}
	}
	return "", nil
}

// SetExitNode routes traffic through the node whose IPv4 address is
// embedded in the rendered entry. Both the `up` and the `set` step
// must succeed.
func SetExitNode(r command.Runner, display string) (bool, error) {
	ip := nodeIPv4.FindString(display)
	if ip == "" {
		return false, nil
	}
	out, err := r.Run("tailscale", "up")
	if err != nil {
		return false, err
	}
	if !out.Success {
		return false, nil
	}
	out, err = r.Run("tailscale", "set", "--exit-node", ip, "--exit-node-allow-lan-access=true")
	if err != nil {
		return false, err
	}
	return out.Success, nil
}

// DisableExitNode clears the exit-node setting.
func DisableExitNode(r command.Runner) (bool, error) {
	out, err := r.Run("tailscale", "set", "--exit-node=")
	if err != nil {
		return false, err
	}
	return out.Success, nil
}

// SetEnabled brings tailscale up or down.
func SetEnabled(r command.Runner, enable bool) (bool, error) {
	verb := "down"
	if enable {
		verb = "up"
	}
	out, err := r.Run("tailscale", verb)
	if err != nil {
		return false, err
	}
	return out.Success, nil
}

// SetShields toggles shields-up.
func SetShields(r command.Runner, up bool) (bool, error) {
	out, err := r.Run("tailscale", "set", "--shields-up", fmt.Sprintf("%t", up))
	if err != nil {
		return false, err
	}
	return out.Success, nil
}

// IsEnabled reports whether the tailscale daemon is up.
func IsEnabled(r command.Runner) (bool, error) {
	out, err := r.Run("tailscale", "status")
	if err != nil {
		return false, err
	}
	if !out.Success {
		return false, nil
	}
	return !strings.Contains(string(out.Stdout), "Tailscale is stopped"), nil
}

// IsExitNodeActive reports whether any peer currently serves as the
// exit node, from the plain status listing.
func IsExitNodeActive(r command.Runner) (bool, error) {
	out, err := r.Run("tailscale", "status")
	if err != nil {
		return false, err
	}
	if !out.Success {
		return false, nil
	}
	for _, line := range command.Lines(out) {
		if strings.Contains(line, "active; exit node;") {
			return true, nil
		}
	}
	return false, nil
}
