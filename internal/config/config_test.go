package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := validate(DefaultConfig()); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsEmptyMenuCommand(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Menu.Command = ""
	if err := validate(cfg); err == nil {
		t.Fatal("expected validation error for menu.command")
	}
}

func TestValidateRejectsActionWithoutCmd(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Actions = []CustomAction{{DisplayText: "x"}}
	if err := validate(cfg); err == nil {
		t.Fatal("expected validation error for action cmd")
	}
}

func TestLoadOptionalMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	cfg, err := LoadOptional(path)
	if err != nil {
		t.Fatalf("load optional: %v", err)
	}
	if cfg.Menu.Command != "dmenu" {
		t.Fatalf("unexpected default launcher: %s", cfg.Menu.Command)
	}
}

func TestLoadParsesActions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `menu:
  command: "rofi -dmenu"
actions:
  - display: "🔒 Lock"
    cmd: "loginctl lock-session"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Menu.Command != "rofi -dmenu" {
		t.Fatalf("launcher: %s", cfg.Menu.Command)
	}
	if len(cfg.Actions) != 1 || cfg.Actions[0].Cmd != "loginctl lock-session" {
		t.Fatalf("actions: %+v", cfg.Actions)
	}
	if cfg.Pinentry != "pinentry-gnome3" {
		t.Fatalf("pinentry default lost: %s", cfg.Pinentry)
	}
}

func TestEnsureDefaultCreatesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netmenu", "config.yaml")
	if err := EnsureDefault(path); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load generated config: %v", err)
	}
	if len(cfg.Actions) != 1 {
		t.Fatalf("expected the sample action, got %+v", cfg.Actions)
	}
}

func TestEnsureDefaultKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("menu:\n  command: bemenu\n"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := EnsureDefault(path); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Menu.Command != "bemenu" {
		t.Fatalf("existing config overwritten: %s", cfg.Menu.Command)
	}
}

func TestCustomActionDisplay(t *testing.T) {
	a := CustomAction{DisplayText: "🛡️ Example", Cmd: "true"}
	if a.Display() != "action    - 🛡️ Example" {
		t.Fatalf("unexpected display: %q", a.Display())
	}
}
