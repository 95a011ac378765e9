package app

// alertKind identifies one of the fixed alert prompts.
type alertKind int

const (
	alertDeleteSyncUp alertKind = iota
	alertSpeechDenied
	alertSpeechRestricted
	alertEndMeeting            // next pressed on the last speaker; no discard offered
	alertEndMeetingDiscardable // user-initiated early stop
	alertSpeechFailed
	alertLoadFailed
)

// alertAction is what a resolved alert button means.
type alertAction int

const (
	alertActionCancel alertAction = iota
	alertActionConfirmDelete
	alertActionContinueWithoutRecording
	alertActionOpenSettings
	alertActionConfirmSave
	alertActionConfirmDiscard
	alertActionLoadSampleData
	alertActionStartEmpty
)

type alertButton struct {
	label  string
	action alertAction
}

// alertOverlay is the alert form of a screen overlay: a fixed prompt plus a
// focused-button cursor.
type alertOverlay struct {
	kind  alertKind
	focus int
}

func newAlert(kind alertKind) *alertOverlay {
	return &alertOverlay{kind: kind}
}

func (a *alertOverlay) isOverlay() {}

func (a *alertOverlay) title() string {
	switch a.kind {
	case alertDeleteSyncUp:
		return "Delete?"
	case alertSpeechDenied:
		return "Speech recognition denied"
	case alertSpeechRestricted:
		return "Speech recognition restricted"
	case alertEndMeeting, alertEndMeetingDiscardable:
		return "End meeting?"
	case alertSpeechFailed:
		return "Speech recognition failure"
	case alertLoadFailed:
		return "Data failed to load"
	default:
		return ""
	}
}

func (a *alertOverlay) message() string {
	switch a.kind {
	case alertDeleteSyncUp:
		return "Are you sure you want to delete this sync-up?"
	case alertSpeechDenied:
		return "You previously denied speech recognition and so your meeting " +
			"will not be recorded. You can enable speech recognition in settings, " +
			"or you can continue without recording."
	case alertSpeechRestricted:
		return "Your device does not support speech recognition and so your " +
			"meeting will not be recorded."
	case alertEndMeeting:
		return "You have reached the end of the meeting. Save it?"
	case alertEndMeetingDiscardable:
		return "You are ending the meeting early. What would you like to do?"
	case alertSpeechFailed:
		return "The speech recognizer has failed and so your meeting will no " +
			"longer be recorded. What do you want to do?"
	case alertLoadFailed:
		return "The saved sync-ups could not be read. You can load sample data " +
			"or start with an empty list."
	default:
		return ""
	}
}

func (a *alertOverlay) buttons() []alertButton {
	switch a.kind {
	case alertDeleteSyncUp:
		return []alertButton{
			{"Yes", alertActionConfirmDelete},
			{"Nevermind", alertActionCancel},
		}
	case alertSpeechDenied:
		return []alertButton{
			{"Continue without recording", alertActionContinueWithoutRecording},
			{"Open settings", alertActionOpenSettings},
			{"Cancel", alertActionCancel},
		}
	case alertSpeechRestricted:
		return []alertButton{
			{"Continue without recording", alertActionContinueWithoutRecording},
			{"Cancel", alertActionCancel},
		}
	case alertEndMeeting:
		return []alertButton{
			{"Save and end", alertActionConfirmSave},
			{"Resume", alertActionCancel},
		}
	case alertEndMeetingDiscardable:
		return []alertButton{
			{"Save and end", alertActionConfirmSave},
			{"Discard", alertActionConfirmDiscard},
			{"Resume", alertActionCancel},
		}
	case alertSpeechFailed:
		return []alertButton{
			{"Continue meeting", alertActionCancel},
			{"Discard meeting", alertActionConfirmDiscard},
		}
	case alertLoadFailed:
		return []alertButton{
			{"Load sample data", alertActionLoadSampleData},
			{"Start empty", alertActionStartEmpty},
		}
	default:
		return nil
	}
}

// moveFocus shifts the focused button by delta, clamped.
func (a *alertOverlay) moveFocus(delta int) {
	n := len(a.buttons())
	a.focus += delta
	if a.focus < 0 {
		a.focus = 0
	}
	if a.focus >= n {
		a.focus = n - 1
	}
}

// focused returns the action of the focused button.
func (a *alertOverlay) focused() alertAction {
	btns := a.buttons()
	if a.focus < 0 || a.focus >= len(btns) {
		return alertActionCancel
	}
	return btns[a.focus].action
}
