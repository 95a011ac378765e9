package app

import (
	"syncups/internal/syncup"
)

// formFieldKind selects which editable field holds focus.
type formFieldKind int

const (
	fieldTitle formFieldKind = iota
	fieldAttendee
)

// formField is the focus target: the title field or one attendee row,
// addressed by attendee id so focus survives reordering.
type formField struct {
	kind       formFieldKind
	attendeeID string
}

// formModel is the transient editable copy of one sync-up, shared by the
// create and edit flows.
type formModel struct {
	syncUp syncup.SyncUp
	focus  formField
	newID  syncup.IDSource
}

func (f *formModel) isOverlay() {}

// newFormModel starts editing a draft. An empty attendee list immediately
// gains one blank attendee so the form always has an attendee row.
func newFormModel(su syncup.SyncUp, newID syncup.IDSource) *formModel {
	if len(su.Attendees) == 0 {
		su.Attendees = append(su.Attendees, syncup.Attendee{ID: newID()})
	}
	return &formModel{
		syncUp: su,
		focus:  formField{kind: fieldTitle},
		newID:  newID,
	}
}

// addAttendee appends a blank attendee and moves focus to it.
func (f *formModel) addAttendee() {
	a := syncup.Attendee{ID: f.newID()}
	f.syncUp.Attendees = append(f.syncUp.Attendees, a)
	f.focus = formField{kind: fieldAttendee, attendeeID: a.ID}
}

// deleteAttendees removes the attendees at the given offsets. If the list
// empties, one placeholder attendee is re-added. Focus lands on the attendee
// now occupying the lowest removed index, clamped to the new bounds.
func (f *formModel) deleteAttendees(offsets ...int) {
	if len(offsets) == 0 {
		return
	}
	remove := make(map[int]bool, len(offsets))
	lowest := offsets[0]
	for _, off := range offsets {
		remove[off] = true
		if off < lowest {
			lowest = off
		}
	}

	kept := f.syncUp.Attendees[:0:0]
	for i, a := range f.syncUp.Attendees {
		if !remove[i] {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		kept = append(kept, syncup.Attendee{ID: f.newID()})
	}
	f.syncUp.Attendees = kept

	idx := lowest
	if idx > len(kept)-1 {
		idx = len(kept) - 1
	}
	if idx < 0 {
		idx = 0
	}
	f.focus = formField{kind: fieldAttendee, attendeeID: kept[idx].ID}
}

// deleteFocusedAttendee removes the attendee row holding focus, if any.
func (f *formModel) deleteFocusedAttendee() {
	if f.focus.kind != fieldAttendee {
		return
	}
	for i, a := range f.syncUp.Attendees {
		if a.ID == f.focus.attendeeID {
			f.deleteAttendees(i)
			return
		}
	}
}

// focusNext cycles focus title -> attendee 0 -> ... -> last attendee -> title.
func (f *formModel) focusNext() {
	attendees := f.syncUp.Attendees
	if f.focus.kind == fieldTitle {
		if len(attendees) > 0 {
			f.focus = formField{kind: fieldAttendee, attendeeID: attendees[0].ID}
		}
		return
	}
	for i, a := range attendees {
		if a.ID == f.focus.attendeeID {
			if i+1 < len(attendees) {
				f.focus = formField{kind: fieldAttendee, attendeeID: attendees[i+1].ID}
			} else {
				f.focus = formField{kind: fieldTitle}
			}
			return
		}
	}
	f.focus = formField{kind: fieldTitle}
}

// focusPrev cycles focus in the opposite direction.
func (f *formModel) focusPrev() {
	attendees := f.syncUp.Attendees
	if f.focus.kind == fieldTitle {
		if len(attendees) > 0 {
			f.focus = formField{kind: fieldAttendee, attendeeID: attendees[len(attendees)-1].ID}
		}
		return
	}
	for i, a := range attendees {
		if a.ID == f.focus.attendeeID {
			if i == 0 {
				f.focus = formField{kind: fieldTitle}
			} else {
				f.focus = formField{kind: fieldAttendee, attendeeID: attendees[i-1].ID}
			}
			return
		}
	}
	f.focus = formField{kind: fieldTitle}
}

// insertRunes appends typed text to the focused field.
func (f *formModel) insertRunes(runes []rune) {
	switch f.focus.kind {
	case fieldTitle:
		f.syncUp.Title += string(runes)
	case fieldAttendee:
		for i := range f.syncUp.Attendees {
			if f.syncUp.Attendees[i].ID == f.focus.attendeeID {
				f.syncUp.Attendees[i].Name += string(runes)
				return
			}
		}
	}
}

// backspace removes the last rune of the focused field.
func (f *formModel) backspace() {
	trim := func(s string) string {
		r := []rune(s)
		if len(r) == 0 {
			return s
		}
		return string(r[:len(r)-1])
	}
	switch f.focus.kind {
	case fieldTitle:
		f.syncUp.Title = trim(f.syncUp.Title)
	case fieldAttendee:
		for i := range f.syncUp.Attendees {
			if f.syncUp.Attendees[i].ID == f.focus.attendeeID {
				f.syncUp.Attendees[i].Name = trim(f.syncUp.Attendees[i].Name)
				return
			}
		}
	}
}

// adjustDuration moves the target duration by delta seconds, floored at one
// minute.
func (f *formModel) adjustDuration(delta int) {
	d := f.syncUp.Duration + delta
	if d < 60 {
		d = 60
	}
	f.syncUp.Duration = d
}

// cycleTheme advances to the next theme in display order.
func (f *formModel) cycleTheme() {
	themes := syncup.Themes()
	for i, t := range themes {
		if t == f.syncUp.Theme {
			f.syncUp.Theme = themes[(i+1)%len(themes)]
			return
		}
	}
	f.syncUp.Theme = themes[0]
}

// finalize strips whitespace-only attendees and guarantees at least one
// remains.
func (f *formModel) finalize() syncup.SyncUp {
	return f.syncUp.Normalize(f.newID)
}
