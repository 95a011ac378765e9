package app

// Key binding constants used in the key handlers.
const (
	KeyQuit         = "q"
	KeyCtrlC        = "ctrl+c"
	KeyBack         = "esc"
	KeyUp           = "up"
	KeyDown         = "down"
	KeyLeft         = "left"
	KeyRight        = "right"
	KeyJ            = "j"
	KeyK            = "k"
	KeyEnter        = "enter"
	KeyTab          = "tab"
	KeyShiftTab     = "shift+tab"
	KeyAdd          = "a"
	KeyEdit         = "e"
	KeyDelete       = "d"
	KeyStartMeeting = "s"
	KeyNextSpeaker  = "n"
	KeyRemoveRecord = "x"
	KeyNewAttendee  = "ctrl+n"
	KeyDropAttendee = "ctrl+d"
	KeyCycleTheme   = "ctrl+t"
	KeyBackspace    = "backspace"
)
