package input

import "github.com/gdamore/tcell/v2"

// IntentType discriminates semantic actions decoded from terminal events.
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, ESC, Ctrl+C
	IntentToggleMusic // m
	IntentResize      // terminal resize event

	// Run control
	IntentJump    // Space, Up, k
	IntentRestart // r, only meaningful after death
)

// Intent is one decoded action.
type Intent struct {
	Type IntentType
}

// Map decodes a tcell event into an intent. Unrecognized events map to
// IntentNone.
func Map(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Intent{Type: IntentQuit}
		case tcell.KeyUp:
			return Intent{Type: IntentJump}
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ', 'k':
				return Intent{Type: IntentJump}
			case 'q':
				return Intent{Type: IntentQuit}
			case 'r':
				return Intent{Type: IntentRestart}
			case 'm':
				return Intent{Type: IntentToggleMusic}
			}
		}
	}
	return Intent{Type: IntentNone}
}
