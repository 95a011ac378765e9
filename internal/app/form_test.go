package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"syncups/internal/syncup"
)

func newTestForm(attendees ...string) *formModel {
	newID := syncup.IncrementingIDSource()
	su := syncup.New(newID())
	for _, name := range attendees {
		su.Attendees = append(su.Attendees, syncup.Attendee{ID: newID(), Name: name})
	}
	return newFormModel(su, newID)
}

func TestNewFormAddsBlankAttendee(t *testing.T) {
	f := newTestForm()
	if len(f.syncUp.Attendees) != 1 {
		t.Fatalf("attendees = %d, want 1", len(f.syncUp.Attendees))
	}
	if f.syncUp.Attendees[0].Name != "" {
		t.Errorf("name = %q, want blank", f.syncUp.Attendees[0].Name)
	}
	if f.focus.kind != fieldTitle {
		t.Error("focus should start on the title")
	}
}

func TestAddAttendeeFocusesNewRow(t *testing.T) {
	f := newTestForm("Blob")
	f.addAttendee()

	if len(f.syncUp.Attendees) != 2 {
		t.Fatalf("attendees = %d, want 2", len(f.syncUp.Attendees))
	}
	last := f.syncUp.Attendees[1]
	if f.focus.kind != fieldAttendee || f.focus.attendeeID != last.ID {
		t.Errorf("focus = %+v, want new attendee %q", f.focus, last.ID)
	}
}

func TestDeleteFocusedAttendeeMovesFocusToSameIndex(t *testing.T) {
	f := newTestForm("Blob", "Blob Jr", "Blob Sr")
	f.focus = formField{kind: fieldAttendee, attendeeID: f.syncUp.Attendees[0].ID}

	f.deleteFocusedAttendee()
	if len(f.syncUp.Attendees) != 2 {
		t.Fatalf("attendees = %d, want 2", len(f.syncUp.Attendees))
	}
	// Focus lands on the row that slid into the removed slot.
	if f.focus.attendeeID != f.syncUp.Attendees[0].ID {
		t.Errorf("focus = %q, want %q", f.focus.attendeeID, f.syncUp.Attendees[0].ID)
	}
	if f.syncUp.Attendees[0].Name != "Blob Jr" {
		t.Errorf("first attendee = %q", f.syncUp.Attendees[0].Name)
	}
}

func TestDeleteLastAttendeeClampsFocus(t *testing.T) {
	f := newTestForm("Blob", "Blob Jr")
	f.focus = formField{kind: fieldAttendee, attendeeID: f.syncUp.Attendees[1].ID}

	f.deleteFocusedAttendee()
	if len(f.syncUp.Attendees) != 1 {
		t.Fatalf("attendees = %d, want 1", len(f.syncUp.Attendees))
	}
	if f.focus.attendeeID != f.syncUp.Attendees[0].ID {
		t.Errorf("focus should clamp to the remaining attendee")
	}
}

func TestDeleteOnlyAttendeeAddsPlaceholder(t *testing.T) {
	f := newTestForm("Blob")
	before := f.syncUp.Attendees[0].ID
	f.focus = formField{kind: fieldAttendee, attendeeID: before}

	f.deleteFocusedAttendee()
	if len(f.syncUp.Attendees) != 1 {
		t.Fatalf("attendees = %d, want 1 placeholder", len(f.syncUp.Attendees))
	}
	placeholder := f.syncUp.Attendees[0]
	if placeholder.ID == before {
		t.Error("placeholder should get a fresh id")
	}
	if placeholder.Name != "" {
		t.Errorf("placeholder name = %q", placeholder.Name)
	}
	if f.focus.attendeeID != placeholder.ID {
		t.Error("focus should move to the placeholder")
	}
}

func TestDeleteAttendeesMultiple(t *testing.T) {
	f := newTestForm("Blob", "Blob Jr", "Blob Sr")
	f.deleteAttendees(2, 0)

	if len(f.syncUp.Attendees) != 1 {
		t.Fatalf("attendees = %d, want 1", len(f.syncUp.Attendees))
	}
	if f.syncUp.Attendees[0].Name != "Blob Jr" {
		t.Errorf("kept = %q, want Blob Jr", f.syncUp.Attendees[0].Name)
	}
	// Focus lands at the lowest removed offset, clamped.
	if f.focus.attendeeID != f.syncUp.Attendees[0].ID {
		t.Errorf("focus = %q", f.focus.attendeeID)
	}
}

func TestFocusCycle(t *testing.T) {
	f := newTestForm("Blob", "Blob Jr")
	a0, a1 := f.syncUp.Attendees[0].ID, f.syncUp.Attendees[1].ID

	f.focusNext()
	if f.focus.attendeeID != a0 {
		t.Errorf("focus = %+v, want first attendee", f.focus)
	}
	f.focusNext()
	if f.focus.attendeeID != a1 {
		t.Errorf("focus = %+v, want second attendee", f.focus)
	}
	f.focusNext()
	if f.focus.kind != fieldTitle {
		t.Errorf("focus = %+v, want title", f.focus)
	}

	f.focusPrev()
	if f.focus.attendeeID != a1 {
		t.Errorf("focus = %+v, want last attendee", f.focus)
	}
	f.focusPrev()
	if f.focus.attendeeID != a0 {
		t.Errorf("focus = %+v, want first attendee", f.focus)
	}
	f.focusPrev()
	if f.focus.kind != fieldTitle {
		t.Errorf("focus = %+v, want title", f.focus)
	}
}

func TestInsertAndBackspace(t *testing.T) {
	f := newTestForm("Blob")

	f.insertRunes([]rune("Daily"))
	if f.syncUp.Title != "Daily" {
		t.Errorf("title = %q", f.syncUp.Title)
	}
	f.backspace()
	if f.syncUp.Title != "Dail" {
		t.Errorf("title = %q", f.syncUp.Title)
	}

	f.focus = formField{kind: fieldAttendee, attendeeID: f.syncUp.Attendees[0].ID}
	f.insertRunes([]rune(" Jr"))
	if f.syncUp.Attendees[0].Name != "Blob Jr" {
		t.Errorf("name = %q", f.syncUp.Attendees[0].Name)
	}
	f.backspace()
	f.backspace()
	f.backspace()
	if f.syncUp.Attendees[0].Name != "Blob" {
		t.Errorf("name = %q", f.syncUp.Attendees[0].Name)
	}
}

func TestBackspaceOnEmptyField(t *testing.T) {
	f := newTestForm()
	f.backspace()
	if f.syncUp.Title != "" {
		t.Errorf("title = %q", f.syncUp.Title)
	}
}

func TestAdjustDurationFloor(t *testing.T) {
	f := newTestForm("Blob")
	f.adjustDuration(60)
	if f.syncUp.Duration != 6*60 {
		t.Errorf("duration = %d, want 360", f.syncUp.Duration)
	}

	for i := 0; i < 20; i++ {
		f.adjustDuration(-60)
	}
	if f.syncUp.Duration != 60 {
		t.Errorf("duration = %d, want floor of 60", f.syncUp.Duration)
	}
}

func TestCycleThemeWraps(t *testing.T) {
	f := newTestForm("Blob")
	themes := syncup.Themes()
	seen := make(map[syncup.Theme]bool)
	for range themes {
		seen[f.syncUp.Theme] = true
		f.cycleTheme()
	}
	if len(seen) != len(themes) {
		t.Errorf("cycled %d themes, want %d", len(seen), len(themes))
	}
	if f.syncUp.Theme != syncup.ThemeBubblegum {
		t.Errorf("theme = %q, want back at start", f.syncUp.Theme)
	}
}

func TestFinalizeStripsWhitespaceAttendees(t *testing.T) {
	f := newTestForm("Blob", "   ")
	got := f.finalize()
	if len(got.Attendees) != 1 {
		t.Fatalf("attendees = %d, want 1", len(got.Attendees))
	}
	if got.Attendees[0].Name != "Blob" {
		t.Errorf("kept = %q", got.Attendees[0].Name)
	}
}

func TestHandleFormKeySpaceInsertsSpace(t *testing.T) {
	f := newTestForm("Blob")
	f.insertRunes([]rune("Daily"))

	msg := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	if out := handleFormKey(f, msg); out != formPending {
		t.Fatalf("outcome = %d", out)
	}
	if f.syncUp.Title != "Daily " {
		t.Errorf("title = %q", f.syncUp.Title)
	}
}
