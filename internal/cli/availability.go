package cli

// Availability captures which external collaborators are installed,
// probed once per run and passed into the registry builder so parsers
// never query ambient state.
type Availability struct {
	NetworkManager   bool
	IWD              bool
	Bluetooth        bool
	Tailscale        bool
	Rfkill           bool
	ConnectionEditor bool
	WifiInterface    string
}

func DetectAvailability(installed func(string) bool, wifiInterface string) Availability {
	return Availability{
		NetworkManager:   installed("nmcli"),
		IWD:              installed("iwctl"),
		Bluetooth:        installed("bluetoothctl"),
		Tailscale:        installed("tailscale"),
		Rfkill:           installed("rfkill"),
		ConnectionEditor: installed("nm-connection-editor"),
		WifiInterface:    wifiInterface,
	}
}
