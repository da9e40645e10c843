package cli

import (
	"netmenu/internal/bluetooth"
	"netmenu/internal/command"
	"netmenu/internal/config"
	"netmenu/internal/iwd"
	"netmenu/internal/menu"
	"netmenu/internal/networkmanager"
	"netmenu/internal/tailscale"
)

type systemAction int

const (
	rfkillBlock systemAction = iota
	rfkillUnblock
	editConnections
)

func (a systemAction) Display() string {
	switch a {
	case rfkillBlock:
		return menu.FormatEntry("system", menu.IconCross, "Radio wifi rfkill block")
	case rfkillUnblock:
		return menu.FormatEntry("system", menu.IconWifi, "Radio wifi rfkill unblock")
	default:
		return menu.FormatEntry("system", menu.IconWifi, "Edit connections")
	}
}

type wifiToggle struct {
	connect bool
}

func (a wifiToggle) Display() string {
	if a.connect {
		return menu.FormatEntry("wifi", menu.IconWifi, "Connect")
	}
	return menu.FormatEntry("wifi", menu.IconCross, "Disconnect")
}

// registry is the full action list of one menu build plus the
// Bluetooth connected-set captured alongside it; toggles at dispatch
// time use that snapshot rather than re-querying.
type registry struct {
	actions     []menu.Action
	btConnected []string
}

func (reg registry) displays() []string {
	out := make([]string, len(reg.actions))
	for i, a := range reg.actions {
		out[i] = a.Display()
	}
	return out
}

// buildRegistry assembles the menu in presentation order: custom
// actions, exit-node disable, Wi-Fi networks and toggle, rfkill,
// connection editor, tailscale controls, Bluetooth devices.
func buildRegistry(r command.Runner, cfg config.Config, avail Availability) (registry, error) {
	var reg registry

	for _, a := range cfg.Actions {
		reg.actions = append(reg.actions, a)
	}

	if avail.Tailscale {
		active, err := tailscale.IsExitNodeActive(r)
		if err != nil {
			return registry{}, err
		}
		if active {
			reg.actions = append(reg.actions, tailscale.DisableExitNodeAction{})
		}
	}

	if avail.NetworkManager {
		networks, err := networkmanager.GetNetworks(r)
		if err != nil {
			return registry{}, err
		}
		for _, n := range networks {
			reg.actions = append(reg.actions, n)
		}
		connected, err := networkmanager.IsConnected(r, avail.WifiInterface)
		if err != nil {
			return registry{}, err
		}
		reg.actions = append(reg.actions, wifiToggle{connect: !connected})
	} else if avail.IWD {
		networks, err := iwd.GetNetworks(r, avail.WifiInterface)
		if err != nil {
			return registry{}, err
		}
		for _, n := range networks {
			reg.actions = append(reg.actions, n)
		}
		connected, err := iwd.IsConnected(r, avail.WifiInterface)
		if err != nil {
			return registry{}, err
		}
		if connected {
			reg.actions = append(reg.actions, wifiToggle{connect: false})
		}
	}

	if avail.Rfkill {
		reg.actions = append(reg.actions, rfkillBlock, rfkillUnblock)
	}
	if avail.ConnectionEditor {
		reg.actions = append(reg.actions, editConnections)
	}

	if avail.Tailscale {
		enabled, err := tailscale.IsEnabled(r)
		if err != nil {
			return registry{}, err
		}
		reg.actions = append(reg.actions,
			tailscale.EnableAction{Enable: !enabled},
			tailscale.ShieldsAction{Up: false},
			tailscale.ShieldsAction{Up: true},
		)
		nodes, err := tailscale.ExitNodes(r)
		if err != nil {
			return registry{}, err
		}
		for _, n := range nodes {
			reg.actions = append(reg.actions, n)
		}
	}

	if avail.Bluetooth {
		connected, err := bluetooth.ConnectedDevices(r)
		if err != nil {
			return registry{}, err
		}
		devices, err := bluetooth.PairedDevices(r, connected)
		if err != nil {
			return registry{}, err
		}
		reg.btConnected = connected
		for _, d := range devices {
			reg.actions = append(reg.actions, d)
		}
	}

	return reg, nil
}
