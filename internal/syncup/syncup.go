// Package syncup holds the domain model for the sync-up tracker: recurring
// meeting definitions, their attendees, and the records of past meetings.
package syncup

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SyncUp is a recurring meeting definition with attendees, a target duration,
// and the history of completed meetings.
type SyncUp struct {
	ID        string     `json:"id"`
	Attendees []Attendee `json:"attendees"`
	Duration  int        `json:"duration"` // total meeting length in seconds
	Meetings  []Meeting  `json:"meetings"` // most recent first
	Theme     Theme      `json:"theme"`
	Title     string     `json:"title"`
}

// Attendee is a named participant. The name may be blank while a form is
// being edited; finalized sync-ups never carry whitespace-only names.
type Attendee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Meeting is the durable record of one completed session. Immutable once
// created.
type Meeting struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Transcript string    `json:"transcript"`
}

// IDSource produces unique identifiers. Injected so tests can substitute a
// deterministic incrementing source.
type IDSource func() string

// UUIDSource returns an IDSource backed by random UUIDs.
func UUIDSource() IDSource {
	return func() string { return uuid.NewString() }
}

// IncrementingIDSource returns deterministic ids in zero-padded UUID form:
// "00000000-0000-0000-0000-000000000000", "...-000000000001", and so on.
func IncrementingIDSource() IDSource {
	n := 0
	return func() string {
		id := fmt.Sprintf("00000000-0000-0000-0000-%012d", n)
		n++
		return id
	}
}

// New returns an empty sync-up with the given id.
func New(id string) SyncUp {
	return SyncUp{
		ID:       id,
		Duration: 5 * 60,
		Theme:    ThemeBubblegum,
	}
}

// DurationPerAttendee is each speaker's slot in whole seconds. Zero when
// there are no attendees; callers that tick a meeting must never see that
// case because finalized sync-ups keep at least one attendee.
func (s SyncUp) DurationPerAttendee() int {
	if len(s.Attendees) == 0 {
		return 0
	}
	return s.Duration / len(s.Attendees)
}

// Normalize strips attendees whose names are entirely whitespace and
// guarantees the result keeps at least one attendee, inserting a blank
// placeholder when the strip empties the list.
func (s SyncUp) Normalize(newID IDSource) SyncUp {
	kept := s.Attendees[:0:0]
	for _, a := range s.Attendees {
		if strings.TrimSpace(a.Name) != "" {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		kept = append(kept, Attendee{ID: newID()})
	}
	s.Attendees = kept
	return s
}

// Attendee returns the attendee with the given id, if present.
func (s SyncUp) Attendee(id string) (Attendee, bool) {
	for _, a := range s.Attendees {
		if a.ID == id {
			return a, true
		}
	}
	return Attendee{}, false
}

// Meeting returns the meeting record with the given id, if present.
func (s SyncUp) Meeting(id string) (Meeting, bool) {
	for _, m := range s.Meetings {
		if m.ID == id {
			return m, true
		}
	}
	return Meeting{}, false
}

// SampleData returns the three canonical sync-ups offered as a fallback when
// the persisted file cannot be decoded.
func SampleData(newID IDSource, now time.Time) []SyncUp {
	const loremTranscript = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, " +
		"sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad " +
		"minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea " +
		"commodo consequat."

	design := SyncUp{
		ID: newID(),
		Attendees: []Attendee{
			{ID: newID(), Name: "Blob"},
			{ID: newID(), Name: "Blob Jr"},
			{ID: newID(), Name: "Blob Sr"},
			{ID: newID(), Name: "Blob Esq"},
			{ID: newID(), Name: "Blob III"},
			{ID: newID(), Name: "Blob I"},
		},
		Duration: 60,
		Meetings: []Meeting{
			{ID: newID(), Date: now.Add(-7 * 24 * time.Hour), Transcript: loremTranscript},
		},
		Theme: ThemeAppOrange,
		Title: "Design",
	}
	engineering := SyncUp{
		ID: newID(),
		Attendees: []Attendee{
			{ID: newID(), Name: "Blob"},
			{ID: newID(), Name: "Blob Jr"},
		},
		Duration: 10 * 60,
		Theme:    ThemePeriwinkle,
		Title:    "Engineering",
	}
	product := SyncUp{
		ID: newID(),
		Attendees: []Attendee{
			{ID: newID(), Name: "Blob Sr"},
			{ID: newID(), Name: "Blob Jr"},
		},
		Duration: 30 * 60,
		Theme:    ThemePoppy,
		Title:    "Product",
	}
	return []SyncUp{design, engineering, product}
}
