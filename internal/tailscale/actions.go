package tailscale

import "netmenu/internal/menu"

// EnableAction toggles the tailscale daemon up or down.
type EnableAction struct {
	Enable bool
}

func (a EnableAction) Display() string {
	if a.Enable {
		return menu.FormatEntry("tailscale", menu.IconActive, "Enable tailscale")
	}
	return menu.FormatEntry("tailscale", menu.IconCross, "Disable tailscale")
}

// ShieldsAction toggles shields-up.
type ShieldsAction struct {
	Up bool
}

func (a ShieldsAction) Display() string {
	if a.Up {
		return menu.FormatEntry("tailscale", menu.IconShield, "Shields up")
	}
	return menu.FormatEntry("tailscale", menu.IconShield, "Shields down")
}

// DisableExitNodeAction clears the current exit node.
type DisableExitNodeAction struct{}

func (DisableExitNodeAction) Display() string {
	return menu.FormatEntry("tailscale", menu.IconCross, "Disable exit node")
}
