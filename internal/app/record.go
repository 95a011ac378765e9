package app

import (
	"syncups/internal/sound"
	"syncups/internal/speech"
	"syncups/internal/syncup"
)

// recordPhase is the meeting-session state.
type recordPhase int

const (
	recordRunning recordPhase = iota
	recordAlertShown
	recordFinished
	recordDiscarded
)

// recordEvent is what a session transition asks of the parent.
type recordEvent int

const (
	recordEventNone recordEvent = iota
	// recordEventFinished: build a meeting record from the transcript,
	// prepend it to the entity's history, pop the session.
	recordEventFinished
	// recordEventDiscarded: pop the session without recording anything.
	recordEventDiscarded
)

// recordFrame runs one meeting: a per-second tick advances a speaker pointer
// while an optional transcript stream fills the transcript buffer.
type recordFrame struct {
	serial int
	syncUp syncup.SyncUp // snapshot taken when the meeting starts

	phase recordPhase
	alert *alertOverlay // set while phase == recordAlertShown

	speakerIndex   int
	secondsElapsed int

	transcript   string
	transcribing bool
	stream       speech.Stream
}

func (r *recordFrame) frameSyncUpID() string { return r.syncUp.ID }

func newRecordFrame(serial int, su syncup.SyncUp) *recordFrame {
	return &recordFrame{serial: serial, syncUp: su}
}

// active reports whether the session still needs ticks.
func (r *recordFrame) active() bool {
	return r.phase == recordRunning || r.phase == recordAlertShown
}

func (r *recordFrame) durationRemaining() int {
	rem := r.syncUp.Duration - r.secondsElapsed
	if rem < 0 {
		rem = 0
	}
	return rem
}

func (r *recordFrame) lastSpeaker() bool {
	return r.speakerIndex >= len(r.syncUp.Attendees)-1
}

// tick advances the clock by one second. Ticks while an alert is shown are
// suppressed, not queued. At an exact multiple of the per-attendee slot the
// speaker advances with a chime, or the meeting finishes when the last
// speaker's slot ends.
func (r *recordFrame) tick(player sound.Player) recordEvent {
	if r.phase != recordRunning {
		return recordEventNone
	}
	r.secondsElapsed++

	per := r.syncUp.DurationPerAttendee()
	if per <= 0 || r.secondsElapsed%per != 0 {
		return recordEventNone
	}
	if r.lastSpeaker() {
		r.finish()
		return recordEventFinished
	}
	r.speakerIndex++
	player.Play()
	return recordEventNone
}

// nextSpeaker advances immediately, fast-forwarding the clock to the start
// of the new speaker's slot. On the last speaker it instead asks to end the
// meeting, with no discard option: a session that ran to its end is not
// thrown away by accident.
func (r *recordFrame) nextSpeaker(player sound.Player) {
	if r.phase != recordRunning {
		return
	}
	if r.lastSpeaker() {
		r.showAlert(alertEndMeeting)
		return
	}
	r.speakerIndex++
	player.Play()
	r.secondsElapsed = r.speakerIndex * r.syncUp.DurationPerAttendee()
}

// endMeeting is the user-initiated early stop.
func (r *recordFrame) endMeeting() {
	if r.phase != recordRunning {
		return
	}
	r.showAlert(alertEndMeetingDiscardable)
}

func (r *recordFrame) showAlert(kind alertKind) {
	r.phase = recordAlertShown
	r.alert = newAlert(kind)
}

// resolveAlert applies the chosen alert button. Cancel resumes the tick loop
// with the prior speaker/clock snapshot intact.
func (r *recordFrame) resolveAlert(action alertAction) recordEvent {
	if r.phase != recordAlertShown {
		return recordEventNone
	}
	switch action {
	case alertActionConfirmSave:
		r.finish()
		return recordEventFinished
	case alertActionConfirmDiscard:
		r.alert = nil
		r.phase = recordDiscarded
		r.stopStream()
		return recordEventDiscarded
	default:
		r.alert = nil
		r.phase = recordRunning
		return recordEventNone
	}
}

// applyTranscript records a partial or final result. Results always carry
// the whole transcript so far.
func (r *recordFrame) applyTranscript(res speech.Result) {
	if r.phase == recordFinished || r.phase == recordDiscarded {
		return
	}
	r.transcript = res.Text
}

// transcriptFailed marks the transcript and raises the recognizer-failure
// prompt. Continuing resumes the meeting without transcription.
func (r *recordFrame) transcriptFailed() {
	if r.phase == recordFinished || r.phase == recordDiscarded {
		return
	}
	r.transcribing = false
	if r.transcript != "" {
		r.transcript += " ❌"
	}
	r.showAlert(alertSpeechFailed)
}

// transcriptDone marks normal stream completion.
func (r *recordFrame) transcriptDone() {
	r.transcribing = false
}

func (r *recordFrame) finish() {
	r.alert = nil
	r.phase = recordFinished
	r.stopStream()
}

func (r *recordFrame) stopStream() {
	if r.stream != nil {
		r.stream.Stop()
		r.stream = nil
	}
	r.transcribing = false
}
