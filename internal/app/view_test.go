package app

import (
	"strings"
	"testing"

	"syncups/internal/speech"
	"syncups/internal/syncup"
)

func TestViewBeforeFirstWindowSize(t *testing.T) {
	m := New(newTestStore(t))
	if got := m.View(); got != "Initializing..." {
		t.Errorf("view = %q", got)
	}
}

func TestViewWhileLoading(t *testing.T) {
	m := New(newTestStore(t))
	m.width, m.height = 80, 24
	if !strings.Contains(m.View(), "Loading") {
		t.Errorf("view = %q", m.View())
	}
}

func TestViewList(t *testing.T) {
	m := newTestModel(t, newTestStore(t, seedSyncUp()))
	out := m.View()
	if !strings.Contains(out, "DAILY SYNC-UPS") {
		t.Error("list header missing")
	}
	if !strings.Contains(out, "Design") {
		t.Error("sync-up title missing")
	}
	if !strings.Contains(out, "3 attendees") {
		t.Error("attendee count missing")
	}
}

func TestViewEmptyList(t *testing.T) {
	m := newTestModel(t, newTestStore(t))
	if !strings.Contains(m.View(), "No sync-ups yet") {
		t.Error("empty-list hint missing")
	}
}

func TestViewDetail(t *testing.T) {
	su := seedSyncUp()
	su.Meetings = []syncup.Meeting{{ID: "m-1", Date: testNow, Transcript: "hello"}}
	m := newTestModel(t, newTestStore(t, su))
	m = press(m, "enter")

	out := m.View()
	for _, want := range []string{"Sync-up Info", "Attendees", "Blob Jr", "Past meetings"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail view missing %q", want)
		}
	}
}

func TestViewRecord(t *testing.T) {
	m := newTestModel(t, newTestStore(t, seedSyncUp()), WithSpeech(speech.Denied()))
	m = press(m, "enter", "s", "enter")

	out := m.View()
	if !strings.Contains(out, "Blob is speaking") {
		t.Errorf("record view missing speaker line:\n%s", out)
	}
	if !strings.Contains(out, "Not recording.") {
		t.Error("record view should show the no-transcription state")
	}
}

func TestViewRecordAlert(t *testing.T) {
	m := newTestModel(t, newTestStore(t, seedSyncUp()), WithSpeech(speech.Denied()))
	m = press(m, "enter", "s", "enter", "e")

	out := m.View()
	if !strings.Contains(out, "End meeting?") {
		t.Error("alert title missing")
	}
	if !strings.Contains(out, "Discard") {
		t.Error("discard button missing")
	}
}

func TestViewPastMeeting(t *testing.T) {
	su := seedSyncUp()
	su.Meetings = []syncup.Meeting{{ID: "m-1", Date: testNow, Transcript: "hello world"}}
	m := newTestModel(t, newTestStore(t, su))
	m = press(m, "enter", "enter")

	out := m.View()
	if !strings.Contains(out, "hello world") {
		t.Error("transcript missing")
	}
	if !strings.Contains(out, "January 15, 2026") {
		t.Errorf("meeting date missing:\n%s", out)
	}
}

func TestViewForm(t *testing.T) {
	m := newTestModel(t, newTestStore(t))
	m = press(m, "a", "Daily")

	out := m.View()
	if !strings.Contains(out, "New sync-up") {
		t.Error("form title missing")
	}
	if !strings.Contains(out, "Daily") {
		t.Error("typed title missing")
	}
}

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{45, "45s"},
		{60, "1m"},
		{300, "5m"},
		{330, "5m30s"},
		{3605, "60m05s"},
	}
	for _, tc := range cases {
		if got := formatSeconds(tc.in); got != tc.want {
			t.Errorf("formatSeconds(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}

	if got := wrapText("", 10); len(got) != 1 || got[0] != "" {
		t.Errorf("empty input = %v", got)
	}
}
