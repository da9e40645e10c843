// Package bluetooth toggles paired devices through bluetoothctl.
package bluetooth

import (
	"fmt"
	"regexp"

	"netmenu/internal/command"
	"netmenu/internal/menu"
)

const category = "bluetooth"

var (
	deviceLine  = regexp.MustCompile(`([0-9A-Fa-f]{2}(:[0-9A-Fa-f]{2}){5})\s+(.*)`)
	trailingMAC = regexp.MustCompile(`([0-9A-Fa-f]{2}(:[0-9A-Fa-f]{2}){5})$`)
)

// Device is one paired device; selecting it toggles the connection.
type Device struct {
	MAC       string
	Name      string
	Connected bool
}

// Display ends with the MAC address so reversal can recover it with a
// trailing-MAC match.
func (d Device) Display() string {
	icon := menu.IconBluetooth
	if d.Connected {
		icon = menu.IconActive
	}
	return menu.FormatEntry(category, icon, fmt.Sprintf("%-25s - %s", d.Name, d.MAC))
}

// PairedDevices lists paired devices, marking the ones in connected
// (as returned by ConnectedDevices). A failing bluetoothctl yields an
// empty list, not an error.
func PairedDevices(r command.Runner, connected []string) ([]Device, error) {
	out, err := r.Run("bluetoothctl", "devices")
	if err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, nil
	}
	return parseDevices(command.Lines(out), connected), nil
}

func parseDevices(lines []string, connected []string) []Device {
	var devices []Device
	for _, line := range lines {
		caps := deviceLine.FindStringSubmatch(line)
		if caps == nil {
			continue
		}
		mac, name := caps[1], caps[3]
		devices = append(devices, Device{
			MAC:       mac,
			Name:      name,
			Connected: contains(connected, mac),
		})
	}
	return devices
}

// ConnectedDevices returns the MAC addresses bluetoothctl reports as
// connected.
func ConnectedDevices(r command.Runner) ([]string, error) {
	out, err := r.Run("bluetoothctl", "info")
	if err != nil {
		return nil, err
	}
	var macs []string
	for _, line := range command.Lines(out) {
		caps := deviceLine.FindStringSubmatch(line)
		if caps == nil || len(line) < 7 || line[:7] != "Device " {
			continue
		}
		macs = append(macs, caps[1])
	}
	return macs, nil
}

// Toggle connects or disconnects the device named in a rendered entry,
// choosing the verb from the connected set captured at menu build time.
func Toggle(r command.Runner, display string, connected []string) (bool, error) {
	mac := ExtractMAC(display)
	if mac == "" {
		return false, nil
	}
	verb := "connect"
	if contains(connected, mac) {
		verb = "disconnect"
	}
	out, err := r.Run("bluetoothctl", verb, mac)
	if err != nil {
		return false, err
	}
	return out.Success, nil
}

// ExtractMAC pulls the trailing MAC address out of a rendered entry.
func ExtractMAC(display string) string {
	return trailingMAC.FindString(display)
}

func contains(set []string, mac string) bool {
	for _, m := range set {
		if m == mac {
			return true
		}
	}
	return false
}
