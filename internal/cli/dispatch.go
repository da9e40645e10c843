package cli

import (
	"fmt"
	"net/http"

	"netmenu/internal/bluetooth"
	"netmenu/internal/command"
	"netmenu/internal/config"
	"netmenu/internal/iwd"
	"netmenu/internal/menu"
	"netmenu/internal/networkmanager"
	"netmenu/internal/notify"
	"netmenu/internal/pinentry"
	"netmenu/internal/tailscale"
)

type dispatcher struct {
	runner      command.Runner
	cfg         config.Config
	avail       Availability
	btConnected []string
	httpClient  *http.Client
}

// dispatch invokes the external command sequence for the resolved
// action. ok=false means the tool reported failure; err means it could
// not be run at all.
func (d *dispatcher) dispatch(action menu.Action) (ok bool, err error) {
	switch act := action.(type) {
	case config.CustomAction:
		out, err := d.runner.Run("sh", "-c", act.Cmd)
		if err != nil {
			return false, err
		}
		return out.Success, nil

	case systemAction:
		return d.dispatchSystem(act)

	case networkmanager.Network:
		ok, err := networkmanager.Connect(d.runner, act.Display(), d.prompt)
		if ok {
			notify.Connection(d.runner, act.SSID)
		}
		d.checkMullvad()
		return ok, err

	case iwd.Network:
		ok, err := iwd.Connect(d.runner, d.avail.WifiInterface, act.Display(), d.prompt)
		if ok {
			notify.Connection(d.runner, act.SSID)
		}
		d.checkMullvad()
		return ok, err

	case wifiToggle:
		return d.dispatchWifiToggle(act)

	case tailscale.ExitNode:
		ok, err := tailscale.SetExitNode(d.runner, act.Display())
		d.checkMullvad()
		return ok, err

	case tailscale.DisableExitNodeAction:
		ok, err := tailscale.DisableExitNode(d.runner)
		d.checkMullvad()
		return ok, err

	case tailscale.EnableAction:
		return tailscale.SetEnabled(d.runner, act.Enable)

	case tailscale.ShieldsAction:
		return tailscale.SetShields(d.runner, act.Up)

	case bluetooth.Device:
		return bluetooth.Toggle(d.runner, act.Display(), d.btConnected)

	default:
		return false, fmt.Errorf("unhandled action type %T", action)
	}
}

func (d *dispatcher) dispatchSystem(act systemAction) (bool, error) {
	var out command.Output
	var err error
	switch act {
	case rfkillBlock:
		out, err = d.runner.Run("rfkill", "block", "wlan")
	case rfkillUnblock:
		out, err = d.runner.Run("rfkill", "unblock", "wlan")
	default:
		out, err = d.runner.Run("nm-connection-editor")
	}
	if err != nil {
		return false, err
	}
	return out.Success, nil
}

func (d *dispatcher) dispatchWifiToggle(act wifiToggle) (bool, error) {
	if act.connect {
		ok, err := networkmanager.ConnectDevice(d.runner, d.avail.WifiInterface)
		d.checkMullvad()
		return ok, err
	}
	if d.avail.NetworkManager {
		return networkmanager.Disconnect(d.runner, d.avail.WifiInterface)
	}
	return iwd.Disconnect(d.runner, d.avail.WifiInterface)
}

func (d *dispatcher) prompt(ssid string) (string, error) {
	return pinentry.Prompt(d.runner, d.cfg.Pinentry, ssid)
}

// checkMullvad reports the new connectivity state after connection
// changes. Best effort: offline or blocked is not an error the user
// needs to act on.
func (d *dispatcher) checkMullvad() {
	_ = tailscale.CheckMullvad(d.httpClient, func(summary, body string) {
		notify.Send(d.runner, summary, body)
	})
}
