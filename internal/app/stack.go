package app

// overlay is the per-screen overlay sum type: nil (none), an alert, or the
// edit form.
type overlay interface{ isOverlay() }

// frame is one entry of the navigation stack. The list screen is the base
// and never appears as a frame.
type frame interface {
	// frameSyncUpID is the entity this frame refers to, used when a deleted
	// entity's frames are popped together.
	frameSyncUpID() string
}

// detailFrame is the per-sync-up screen: info, attendees, past meetings.
type detailFrame struct {
	syncUpID      string
	overlay       overlay // nil | *alertOverlay | *formModel
	meetingCursor int
}

func (d *detailFrame) frameSyncUpID() string { return d.syncUpID }

// pastMeetingFrame is the non-interactive view of one recorded meeting.
type pastMeetingFrame struct {
	syncUpID  string
	meetingID string
	scroll    int
}

func (p *pastMeetingFrame) frameSyncUpID() string { return p.syncUpID }

// push adds a frame to the top of the stack.
func (m *Model) push(f frame) {
	m.stack = append(m.stack, f)
}

// pop removes the top frame. Popping an empty stack is a no-op.
func (m *Model) pop() {
	if len(m.stack) == 0 {
		return
	}
	m.stack = m.stack[:len(m.stack)-1]
}

// top returns the active frame, nil when the list screen is showing.
func (m *Model) top() frame {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// popWhere removes every frame matching the predicate, preserving the order
// of the rest.
func (m *Model) popWhere(match func(frame) bool) {
	kept := m.stack[:0]
	for _, f := range m.stack {
		if !match(f) {
			kept = append(kept, f)
		}
	}
	m.stack = kept
}

// detailBelow finds the nearest detail frame for the given sync-up strictly
// below position idx in the stack.
func (m *Model) detailBelow(idx int, syncUpID string) *detailFrame {
	for i := idx - 1; i >= 0; i-- {
		if d, ok := m.stack[i].(*detailFrame); ok && d.syncUpID == syncUpID {
			return d
		}
	}
	return nil
}
