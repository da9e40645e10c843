package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"netmenu/internal/menu"
	"netmenu/internal/paths"
)

type Config struct {
	Menu     MenuConfig     `yaml:"menu"`
	Wifi     WifiConfig     `yaml:"wifi"`
	Pinentry string         `yaml:"pinentry"`
	Actions  []CustomAction `yaml:"actions"`
}

type MenuConfig struct {
	// Command is the dmenu-style launcher invocation, split with
	// shell quoting rules. "builtin" selects the internal picker.
	Command string `yaml:"command"`
}

type WifiConfig struct {
	// Interface overrides autodetection of the wireless interface.
	Interface string `yaml:"interface"`
}

// CustomAction is a user-defined menu entry running a shell command.
type CustomAction struct {
	DisplayText string `yaml:"display"`
	Cmd         string `yaml:"cmd"`
}

func (a CustomAction) Display() string {
	return menu.FormatEntry("action", "", a.DisplayText)
}

func DefaultConfig() Config {
	return Config{
		Menu:     MenuConfig{Command: "dmenu"},
		Pinentry: "pinentry-gnome3",
		Actions: []CustomAction{
			{DisplayText: "🛡️ Example", Cmd: "notify-send 'hello' 'world'"},
		},
	}
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	cfg.Actions = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadOptional(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// EnsureDefault writes a commented starter config on first run.
func EnsureDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := paths.EnsureParent(path); err != nil {
		return err
	}
	content := `# dmenu-style launcher; "builtin" uses the internal picker
menu:
  command: "dmenu"

# wifi:
#   interface: wlan0

pinentry: pinentry-gnome3

actions:
  - display: "🛡️ Example"
    cmd: "notify-send 'hello' 'world'"
`
	return os.WriteFile(path, []byte(content), 0600)
}

func validate(cfg Config) error {
	if cfg.Menu.Command == "" {
		return errors.New("menu.command is required")
	}
	if cfg.Pinentry == "" {
		return errors.New("pinentry is required")
	}
	for _, a := range cfg.Actions {
		if a.DisplayText == "" {
			return errors.New("actions entries need a display")
		}
		if a.Cmd == "" {
			return errors.New("actions entries need a cmd")
		}
	}
	return nil
}
