package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleDetailKey processes keys on a sync-up detail screen.
func (m Model) handleDetailKey(d *detailFrame, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch ov := d.overlay.(type) {
	case *alertOverlay:
		return m.handleDetailAlertKey(d, ov, msg)
	case *formModel:
		switch handleFormKey(ov, msg) {
		case formConfirmed:
			// Done editing: commit the draft back to the entity.
			if err := m.store.Update(ov.finalize()); err != nil {
				m.log.Error().Err(err).Msg("saving edited sync-up failed")
			}
			d.overlay = nil
		case formCancelled:
			d.overlay = nil
		}
		return m, nil
	}

	switch msg.String() {
	case KeyQuit:
		return m, tea.Quit

	case KeyBack:
		m.pop()

	case KeyStartMeeting:
		return m, m.startMeeting(d)

	case KeyEdit:
		if su, ok := m.store.Get(d.syncUpID); ok {
			d.overlay = newFormModel(su, m.newID)
		}

	case KeyDelete:
		d.overlay = newAlert(alertDeleteSyncUp)

	case KeyJ, KeyDown:
		if su, ok := m.store.Get(d.syncUpID); ok && d.meetingCursor < len(su.Meetings)-1 {
			d.meetingCursor++
		}

	case KeyK, KeyUp:
		if d.meetingCursor > 0 {
			d.meetingCursor--
		}

	case KeyEnter:
		if su, ok := m.store.Get(d.syncUpID); ok && d.meetingCursor < len(su.Meetings) {
			m.push(&pastMeetingFrame{
				syncUpID:  d.syncUpID,
				meetingID: su.Meetings[d.meetingCursor].ID,
			})
		}

	case KeyRemoveRecord:
		m.deleteMeetingRecord(d, d.meetingCursor)
	}
	return m, nil
}

// deleteMeetingRecord removes one entry from the entity's history.
func (m *Model) deleteMeetingRecord(d *detailFrame, offset int) {
	su, ok := m.store.Get(d.syncUpID)
	if !ok || offset < 0 || offset >= len(su.Meetings) {
		return
	}
	su.Meetings = append(su.Meetings[:offset], su.Meetings[offset+1:]...)
	if err := m.store.Update(su); err != nil {
		m.log.Error().Err(err).Msg("removing meeting record failed")
	}
	if d.meetingCursor >= len(su.Meetings) && d.meetingCursor > 0 {
		d.meetingCursor--
	}
}

// handleDetailAlertKey resolves the detail screen's confirm prompts.
func (m Model) handleDetailAlertKey(d *detailFrame, a *alertOverlay, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyLeft, KeyShiftTab, KeyK:
		a.moveFocus(-1)
		return m, nil
	case KeyRight, KeyTab, KeyJ:
		a.moveFocus(1)
		return m, nil
	case KeyBack:
		d.overlay = nil
		return m, nil
	case KeyEnter:
		action := a.focused()
		d.overlay = nil
		switch action {
		case alertActionConfirmDelete:
			m.deleteSyncUp(d.syncUpID)
		case alertActionContinueWithoutRecording:
			return m, m.pushSession(d.syncUpID, false)
		case alertActionOpenSettings:
			m.openSettings()
		}
	}
	return m, nil
}

// handlePastKey processes keys on the past-meeting view.
func (m Model) handlePastKey(p *pastMeetingFrame, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyQuit:
		return m, tea.Quit
	case KeyBack, KeyEnter:
		m.pop()
	case KeyJ, KeyDown:
		p.scroll++
	case KeyK, KeyUp:
		if p.scroll > 0 {
			p.scroll--
		}
	}
	return m, nil
}

// handleRecordKey processes keys during a meeting session.
func (m Model) handleRecordKey(rf *recordFrame, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if rf.phase == recordAlertShown {
		// The tick loop stays scheduled while the alert is up (ticks are
		// suppressed, not stopped), so resolution never reschedules it.
		switch msg.String() {
		case KeyLeft, KeyShiftTab, KeyK:
			rf.alert.moveFocus(-1)
		case KeyRight, KeyTab, KeyJ:
			rf.alert.moveFocus(1)
		case KeyBack:
			rf.resolveAlert(alertActionCancel)
		case KeyEnter:
			ev := rf.resolveAlert(rf.alert.focused())
			if ev != recordEventNone {
				m.handleRecordEvent(rf, ev)
			}
		}
		return m, nil
	}

	switch msg.String() {
	case KeyNextSpeaker:
		rf.nextSpeaker(m.sound)
	case KeyEdit, KeyBack:
		rf.endMeeting()
	}
	return m, nil
}
