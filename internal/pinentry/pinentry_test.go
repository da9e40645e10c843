package pinentry

import (
	"testing"

	"netmenu/internal/command/commandtest"
)

func TestPromptParsesAnswerLine(t *testing.T) {
	r := commandtest.New()
	r.Stub("sh -c printf 'SETDESC Enter HomeNet password\\nGETPIN\\n' | pinentry-gnome3",
		"OK Pleased to meet you\nOK\nD hunter2\nOK\n")

	pwd, err := Prompt(r, "pinentry-gnome3", "HomeNet")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if pwd != "hunter2" {
		t.Fatalf("unexpected password: %q", pwd)
	}
}

func TestPromptCancelled(t *testing.T) {
	r := commandtest.New()
	r.Stub("sh -c printf 'SETDESC Enter HomeNet password\\nGETPIN\\n' | pinentry-gnome3",
		"OK Pleased to meet you\nERR 83886179 Operation cancelled\n")

	if _, err := Prompt(r, "pinentry-gnome3", "HomeNet"); err == nil {
		t.Fatal("expected error when no answer line is present")
	}
}
