package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"syncups/internal/syncup"
)

// formOutcome is the result of routing a key press to a form overlay.
type formOutcome int

const (
	formPending formOutcome = iota
	formConfirmed
	formCancelled
)

// handleFormKey routes editing keys to a form overlay.
func handleFormKey(f *formModel, msg tea.KeyMsg) formOutcome {
	switch msg.String() {
	case KeyBack:
		return formCancelled
	case KeyEnter:
		return formConfirmed
	case KeyTab, KeyDown:
		f.focusNext()
	case KeyShiftTab, KeyUp:
		f.focusPrev()
	case KeyNewAttendee:
		f.addAttendee()
	case KeyDropAttendee:
		f.deleteFocusedAttendee()
	case KeyLeft:
		f.adjustDuration(-60)
	case KeyRight:
		f.adjustDuration(60)
	case KeyCycleTheme:
		f.cycleTheme()
	case KeyBackspace:
		f.backspace()
	default:
		if msg.Type == tea.KeyRunes {
			f.insertRunes(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			f.insertRunes([]rune{' '})
		}
	}
	return formPending
}

// handleListKey processes keys on the sync-up list screen.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch ov := m.listOverlay.(type) {
	case *alertOverlay:
		return m.handleListAlertKey(ov, msg)
	case *formModel:
		switch handleFormKey(ov, msg) {
		case formConfirmed:
			m.store.Append(ov.finalize())
			m.listOverlay = nil
		case formCancelled:
			m.listOverlay = nil
		}
		return m, nil
	}

	switch msg.String() {
	case KeyQuit:
		return m, tea.Quit

	case KeyJ, KeyDown:
		if m.listCursor < m.store.Len()-1 {
			m.listCursor++
		}

	case KeyK, KeyUp:
		if m.listCursor > 0 {
			m.listCursor--
		}

	case KeyEnter:
		syncUps := m.store.All()
		if m.listCursor < len(syncUps) {
			m.push(&detailFrame{syncUpID: syncUps[m.listCursor].ID})
		}

	case KeyAdd:
		m.listOverlay = newFormModel(syncup.New(m.newID()), m.newID)
	}
	return m, nil
}

// handleListAlertKey resolves the load-failure prompt.
func (m Model) handleListAlertKey(a *alertOverlay, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyLeft, KeyShiftTab, KeyK:
		a.moveFocus(-1)
	case KeyRight, KeyTab, KeyJ:
		a.moveFocus(1)
	case KeyEnter:
		switch a.focused() {
		case alertActionLoadSampleData:
			m.store.Replace(syncup.SampleData(m.newID, m.now()))
			m.log.Info().Msg("sample data installed after load failure")
		}
		m.listOverlay = nil
	case KeyBack:
		m.listOverlay = nil
	}
	return m, nil
}
