package menu

import "errors"

// Icons shared by every backend so the menu marks state consistently.
const (
	IconActive    = "✅"
	IconWifi      = "📶"
	IconCross     = "❌"
	IconShield    = "🛡️"
	IconExitNode  = "🌿"
	IconFlagMiss  = "❓"
	IconBluetooth = " "
)

// Action is one selectable menu entry. Display must be unique within a
// menu build: resolution reverses the user's pick by exact match.
type Action interface {
	Display() string
}

// ErrNoMatch is returned when the picked text matches no known entry.
// It indicates a display/matching inconsistency, not user error.
var ErrNoMatch = errors.New("selected entry not found")

// Resolve maps the literal text the user picked back to its action.
func Resolve(actions []Action, selected string) (Action, error) {
	for _, a := range actions {
		if a.Display() == selected {
			return a, nil
		}
	}
	return nil, ErrNoMatch
}
