// Package netif discovers the Wi-Fi interface to operate on.
package netif

import (
	"strings"

	gnet "github.com/shirou/gopsutil/v3/net"
)

const fallback = "wlan0"

// DetectWifiInterface returns the first interface with a wireless
// naming prefix, falling back to wlan0 when none is found. The
// -wifi-interface flag overrides this.
func DetectWifiInterface() string {
	ifaces, err := gnet.Interfaces()
	if err != nil {
		return fallback
	}
	names := make([]string, 0, len(ifaces))
	for _, iface := range ifaces {
		names = append(names, iface.Name)
	}
	return pickWifiInterface(names)
}

// pickWifiInterface prefers predictable wireless names (wlan0, wlp3s0)
// over anything else.
func pickWifiInterface(names []string) string {
	for _, name := range names {
		if strings.HasPrefix(name, "wl") {
			return name
		}
	}
	return fallback
}
