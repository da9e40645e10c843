package paths

import (
	"os"
	"path/filepath"
)

const EnvConfig = "NETMENU_CONFIG"

// ConfigPath resolves the config file location: the NETMENU_CONFIG
// override wins, else the user config dir.
func ConfigPath() (string, error) {
	if v := os.Getenv(EnvConfig); v != "" {
		return v, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "netmenu", "config.yaml"), nil
}

// EnsureParent creates the directory holding path.
func EnsureParent(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0700)
}
