// Package app is the terminal UI for the sync-up tracker: a root model
// owning a stack of screen frames (detail, meeting session, past meeting)
// above the sync-up list, with all mutations flowing through the single
// bubbletea update loop.
package app

import (
	"time"

	"github.com/rs/zerolog"

	tea "github.com/charmbracelet/bubbletea"

	"syncups/internal/sound"
	"syncups/internal/speech"
	"syncups/internal/store"
	"syncups/internal/syncup"
)

// Model is the root bubbletea model.
type Model struct {
	store        *store.Store
	speech       speech.Client
	sound        sound.Player
	openSettings func()
	log          zerolog.Logger
	now          func() time.Time
	newID        syncup.IDSource

	width  int
	height int
	loaded bool

	// Navigation: the list screen is the base, frames stack above it.
	stack       []frame
	listCursor  int
	listOverlay overlay // nil | *formModel (add flow) | *alertOverlay (load failure)

	// tickSerial increments per meeting session so stale tick and transcript
	// messages from a popped session are dropped.
	tickSerial int
}

// Option configures the Model.
type Option func(*Model)

// WithSpeech sets the speech capability.
func WithSpeech(c speech.Client) Option {
	return func(m *Model) { m.speech = c }
}

// WithSound sets the sound-effect capability.
func WithSound(p sound.Player) Option {
	return func(m *Model) { m.sound = p }
}

// WithLogger attaches a logger.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Model) { m.log = log }
}

// WithClock substitutes the wall clock used to date meeting records.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithIDSource substitutes the id generator.
func WithIDSource(src syncup.IDSource) Option {
	return func(m *Model) { m.newID = src }
}

// WithOpenSettings sets the handler for the "Open settings" alert action.
func WithOpenSettings(fn func()) Option {
	return func(m *Model) { m.openSettings = fn }
}

// New creates the root model over the given store.
func New(st *store.Store, opts ...Option) Model {
	m := Model{
		store:        st,
		speech:       speech.Restricted(),
		sound:        sound.Nop(),
		openSettings: func() {},
		log:          zerolog.Nop(),
		now:          time.Now,
		newID:        syncup.UUIDSource(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init hydrates the store.
func (m Model) Init() tea.Cmd {
	st := m.store
	return func() tea.Msg {
		return storeLoadedMsg{Err: st.Load()}
	}
}

// tickCmd schedules the next per-second meeting tick.
func tickCmd(serial int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{Serial: serial}
	})
}

// readTranscriptCmd reads the next transcription result. The update loop
// chains a fresh read command after each result, long-poll style.
func readTranscriptCmd(stream speech.Stream, serial int) tea.Cmd {
	return func() tea.Msg {
		res, ok, err := stream.Next()
		if err != nil {
			return transcriptFailedMsg{Serial: serial, Err: err}
		}
		if !ok {
			return transcriptDoneMsg{Serial: serial}
		}
		return transcriptResultMsg{Serial: serial, Result: res}
	}
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case storeLoadedMsg:
		m.loaded = true
		if msg.Err != nil {
			m.log.Error().Err(msg.Err).Msg("loading sync-ups failed")
			m.listOverlay = newAlert(alertLoadFailed)
		}
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case transcriptResultMsg:
		if rf := m.sessionFor(msg.Serial); rf != nil {
			rf.applyTranscript(msg.Result)
			if rf.transcribing && rf.stream != nil {
				return m, readTranscriptCmd(rf.stream, rf.serial)
			}
		}
		return m, nil

	case transcriptDoneMsg:
		if rf := m.sessionFor(msg.Serial); rf != nil {
			rf.transcriptDone()
		}
		return m, nil

	case transcriptFailedMsg:
		if rf := m.sessionFor(msg.Serial); rf != nil {
			m.log.Warn().Err(msg.Err).Msg("speech recognizer failed mid-session")
			rf.transcriptFailed()
		}
		return m, nil
	}

	return m, nil
}

// handleTick advances the top meeting session. Ticks from popped sessions
// and ticks raised while an alert is shown are dropped; the loop keeps
// rescheduling itself for as long as the session is alive.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	rf, ok := m.top().(*recordFrame)
	if !ok || rf.serial != msg.Serial || !rf.active() {
		return m, nil
	}
	ev := rf.tick(m.sound)
	if ev != recordEventNone {
		m.handleRecordEvent(rf, ev)
		return m, nil
	}
	return m, tickCmd(rf.serial)
}

// sessionFor finds the live session with the given serial.
func (m *Model) sessionFor(serial int) *recordFrame {
	for _, f := range m.stack {
		if rf, ok := f.(*recordFrame); ok && rf.serial == serial {
			return rf
		}
	}
	return nil
}

// handleKey routes key presses to the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == KeyCtrlC {
		return m, tea.Quit
	}
	switch f := m.top().(type) {
	case nil:
		return m.handleListKey(msg)
	case *detailFrame:
		return m.handleDetailKey(f, msg)
	case *recordFrame:
		return m.handleRecordKey(f, msg)
	case *pastMeetingFrame:
		return m.handlePastKey(f, msg)
	}
	return m, nil
}

// startMeeting runs the authorization branches of the detail screen's start
// action: authorized or undetermined starts the session, denied and
// restricted surface a choice first.
func (m *Model) startMeeting(d *detailFrame) tea.Cmd {
	switch m.speech.AuthorizationStatus() {
	case speech.AuthNotDetermined, speech.AuthAuthorized:
		return m.pushSession(d.syncUpID, true)
	case speech.AuthDenied:
		d.overlay = newAlert(alertSpeechDenied)
	case speech.AuthRestricted:
		d.overlay = newAlert(alertSpeechRestricted)
	}
	return nil
}

// pushSession pushes a meeting-session frame for the sync-up. withSpeech
// false skips transcription entirely (continue-without-recording).
func (m *Model) pushSession(syncUpID string, withSpeech bool) tea.Cmd {
	su, ok := m.store.Get(syncUpID)
	if !ok || len(su.Attendees) == 0 {
		return nil
	}

	m.tickSerial++
	rf := newRecordFrame(m.tickSerial, su)
	m.push(rf)
	m.sound.Load("ding.wav")

	cmds := []tea.Cmd{tickCmd(rf.serial)}
	if withSpeech {
		status := m.speech.AuthorizationStatus()
		if status == speech.AuthNotDetermined {
			status = m.speech.RequestAuthorization()
		}
		if status == speech.AuthAuthorized {
			rf.stream = m.speech.StartTask()
			rf.transcribing = true
			cmds = append(cmds, readTranscriptCmd(rf.stream, rf.serial))
		}
	}
	m.log.Info().Str("sync_up", su.ID).Bool("speech", withSpeech).Msg("meeting started")
	return tea.Batch(cmds...)
}

// handleRecordEvent applies a session outcome to the store and the stack.
func (m *Model) handleRecordEvent(rf *recordFrame, ev recordEvent) {
	idx := m.frameIndex(rf)
	switch ev {
	case recordEventFinished:
		// Record only when the enclosing detail screen still exists; the
		// entity may have been deleted out from under the session.
		if idx >= 0 && m.detailBelow(idx, rf.syncUp.ID) != nil {
			if su, ok := m.store.Get(rf.syncUp.ID); ok {
				meeting := syncup.Meeting{
					ID:         m.newID(),
					Date:       m.now(),
					Transcript: rf.transcript,
				}
				su.Meetings = append([]syncup.Meeting{meeting}, su.Meetings...)
				if err := m.store.Update(su); err != nil {
					m.log.Error().Err(err).Msg("saving meeting failed")
				}
			}
		}
		m.removeFrame(rf)
		m.log.Info().Str("sync_up", rf.syncUp.ID).Msg("meeting finished")

	case recordEventDiscarded:
		m.removeFrame(rf)
		m.log.Info().Str("sync_up", rf.syncUp.ID).Msg("meeting discarded")
	}
}

// frameIndex locates a frame in the stack, -1 when absent.
func (m *Model) frameIndex(f frame) int {
	for i, g := range m.stack {
		if g == f {
			return i
		}
	}
	return -1
}

// removeFrame pops a specific frame wherever it sits.
func (m *Model) removeFrame(f frame) {
	m.popWhere(func(g frame) bool { return g == f })
}

// deleteSyncUp removes the entity from the store and every stack frame
// referencing it.
func (m *Model) deleteSyncUp(id string) {
	m.store.Remove(id)
	m.popWhere(func(f frame) bool { return f.frameSyncUpID() == id })
	if m.listCursor >= m.store.Len() && m.listCursor > 0 {
		m.listCursor--
	}
	m.log.Info().Str("sync_up", id).Msg("sync-up deleted")
}
