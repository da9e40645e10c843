package netif

import "testing"

func TestPickWifiInterfacePrefersWirelessNames(t *testing.T) {
	got := pickWifiInterface([]string{"lo", "eth0", "wlp3s0", "docker0"})
	if got != "wlp3s0" {
		t.Fatalf("expected wlp3s0, got %s", got)
	}
}

func TestPickWifiInterfaceFallback(t *testing.T) {
	if got := pickWifiInterface([]string{"lo", "eth0"}); got != "wlan0" {
		t.Fatalf("expected wlan0 fallback, got %s", got)
	}
	if got := pickWifiInterface(nil); got != "wlan0" {
		t.Fatalf("expected wlan0 for empty list, got %s", got)
	}
}
