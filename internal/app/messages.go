package app

import "syncups/internal/speech"

// storeLoadedMsg reports the result of hydrating the store at startup.
type storeLoadedMsg struct {
	Err error
}

// tickMsg is the per-second meeting tick. Serial ties a tick to the session
// that scheduled it so ticks from a popped session are dropped.
type tickMsg struct {
	Serial int
}

// transcriptResultMsg carries one partial or final transcription result.
type transcriptResultMsg struct {
	Serial int
	Result speech.Result
}

// transcriptDoneMsg reports that the transcript stream completed normally.
type transcriptDoneMsg struct {
	Serial int
}

// transcriptFailedMsg reports a mid-session recognizer failure.
type transcriptFailedMsg struct {
	Serial int
	Err    error
}
