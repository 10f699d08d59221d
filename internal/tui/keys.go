package tui

// Key bindings.
const (
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keyCtrlC    = "ctrl+c"
	keyReset    = "ctrl+r"
	keyClear    = "ctrl+l"
)

// Default layout used before the first window size message.
const (
	defaultWidth  = 100
	defaultHeight = 40
)
