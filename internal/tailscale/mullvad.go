package tailscale

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

const connectedCheckURL = "https://am.i.mullvad.net/connected"

// CheckMullvad asks Mullvad's connectivity endpoint whether traffic
// leaves through Mullvad and hands the answer to notify. Callers treat
// this as best effort after connection changes.
func CheckMullvad(client *http.Client, notify func(summary, body string)) error {
	resp, err := client.Get(connectedCheckURL)
	if err != nil {
		return fmt.Errorf("mullvad check: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return fmt.Errorf("mullvad check: %w", err)
	}
	notify("Connected Status", strings.TrimSpace(string(body)))
	return nil
}
