package bluetooth

import (
	"strings"
	"testing"

	"netmenu/internal/command/commandtest"
)

func TestPairedDevicesMarksConnected(t *testing.T) {
	r := commandtest.New()
	r.Stub("bluetoothctl devices", "Device AA:BB:CC:DD:EE:FF Headphones\nDevice 11:22:33:44:55:66 Mouse\n")
	r.Stub("bluetoothctl info", "Device AA:BB:CC:DD:EE:FF (public)\n\tName: Headphones\n\tConnected: yes\n")

	connected, err := ConnectedDevices(r)
	if err != nil {
		t.Fatalf("connected devices: %v", err)
	}
	if len(connected) != 1 || connected[0] != "AA:BB:CC:DD:EE:FF" {
		t.Fatalf("unexpected connected set: %v", connected)
	}

	devices, err := PairedDevices(r, connected)
	if err != nil {
		t.Fatalf("paired devices: %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("expected 2 devices, got %d", len(devices))
	}
	if !devices[0].Connected || devices[0].MAC != "AA:BB:CC:DD:EE:FF" {
		t.Fatalf("unexpected first device: %+v", devices[0])
	}
	if devices[1].Connected {
		t.Fatalf("mouse should not be connected: %+v", devices[1])
	}
	if !strings.Contains(devices[0].Display(), "✅") {
		t.Fatalf("connected device missing active marker: %q", devices[0].Display())
	}
}

func TestPairedDevicesDropsMalformedLines(t *testing.T) {
	r := commandtest.New()
	r.Stub("bluetoothctl devices", "Device ZZ:NOT:A:MAC Name\nnothing here\nDevice AA:BB:CC:DD:EE:FF Keyboard\n")

	devices, err := PairedDevices(r, nil)
	if err != nil {
		t.Fatalf("paired devices: %v", err)
	}
	if len(devices) != 1 || devices[0].Name != "Keyboard" {
		t.Fatalf("expected only the keyboard, got %+v", devices)
	}
}

func TestPairedDevicesFailureIsEmpty(t *testing.T) {
	r := commandtest.New()
	r.StubFail("bluetoothctl devices", "")

	devices, err := PairedDevices(r, nil)
	if err != nil {
		t.Fatalf("paired devices: %v", err)
	}
	if devices != nil {
		t.Fatalf("expected no devices, got %+v", devices)
	}
}

func TestExtractMACRoundTrip(t *testing.T) {
	d := Device{MAC: "AA:BB:CC:DD:EE:FF", Name: "Headphones"}
	if mac := ExtractMAC(d.Display()); mac != "AA:BB:CC:DD:EE:FF" {
		t.Fatalf("round-trip mac: %q from %q", mac, d.Display())
	}
}

func TestToggleDisconnectsConnectedDevice(t *testing.T) {
	r := commandtest.New()
	r.Stub("bluetoothctl disconnect AA:BB:CC:DD:EE:FF", "")

	d := Device{MAC: "AA:BB:CC:DD:EE:FF", Name: "Headphones", Connected: true}
	ok, err := Toggle(r, d.Display(), []string{"AA:BB:CC:DD:EE:FF"})
	if err != nil || !ok {
		t.Fatalf("toggle: ok=%v err=%v", ok, err)
	}
	if !r.Called("bluetoothctl disconnect AA:BB:CC:DD:EE:FF") {
		t.Fatal("expected disconnect, not connect")
	}
}

func TestToggleConnectsDisconnectedDevice(t *testing.T) {
	r := commandtest.New()
	r.Stub("bluetoothctl connect 11:22:33:44:55:66", "")

	d := Device{MAC: "11:22:33:44:55:66", Name: "Mouse"}
	ok, err := Toggle(r, d.Display(), nil)
	if err != nil || !ok {
		t.Fatalf("toggle: ok=%v err=%v", ok, err)
	}
}

func TestToggleNoMACIsNoop(t *testing.T) {
	r := commandtest.New()
	ok, err := Toggle(r, "bluetooth - something without an address", nil)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if ok || len(r.Calls) != 0 {
		t.Fatalf("expected noop, calls=%v", r.Calls)
	}
}
