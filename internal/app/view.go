package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"syncups/internal/ui"
)

// View renders the active screen.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if !m.loaded {
		return ui.DimStyle.Render("Loading sync-ups...")
	}

	switch f := m.top().(type) {
	case nil:
		return m.viewList()
	case *detailFrame:
		return m.viewDetail(f)
	case *recordFrame:
		return m.viewRecord(f)
	case *pastMeetingFrame:
		return m.viewPastMeeting(f)
	}
	return ""
}

func (m Model) viewList() string {
	var sections []string
	sections = append(sections, ui.TitleStyle.Render("DAILY SYNC-UPS"))
	sections = append(sections, m.divider())

	syncUps := m.store.All()
	if len(syncUps) == 0 {
		sections = append(sections, "")
		sections = append(sections, ui.DimStyle.Render("  No sync-ups yet. Press a to add one."))
	}
	for i, su := range syncUps {
		marker := "  "
		title := ui.ThemeTitleStyle(su.Theme).Render(su.Title)
		if i == m.listCursor {
			marker = ui.SelectedStyle.Render("> ")
		}
		info := ui.DimStyle.Render(fmt.Sprintf("  %d attendees · %s", len(su.Attendees), formatSeconds(su.Duration)))
		sections = append(sections, marker+title+info)
	}

	sections = append(sections, m.overlaySection(m.listOverlay, "New sync-up")...)
	sections = append(sections, m.divider())
	sections = append(sections, m.footer([][2]string{
		{"j/k", "Move"}, {"Enter", "Open"}, {"a", "Add"}, {"q", "Quit"},
	}))
	return strings.Join(sections, "\n")
}

func (m Model) viewDetail(d *detailFrame) string {
	su, ok := m.store.Get(d.syncUpID)
	if !ok {
		return ui.DimStyle.Render("Sync-up no longer exists.")
	}

	var sections []string
	sections = append(sections, ui.ThemeTitleStyle(su.Theme).Render(strings.ToUpper(su.Title)))
	sections = append(sections, m.divider())

	sections = append(sections, ui.PanelTitleStyle.Render("Sync-up Info"))
	sections = append(sections, "  Length  "+formatSeconds(su.Duration))
	sections = append(sections, "  Theme   "+ui.ThemeBadgeStyle(su.Theme).Render(" "+su.Theme.Name()+" "))

	sections = append(sections, "")
	sections = append(sections, ui.PanelTitleStyle.Render("Attendees"))
	for _, a := range su.Attendees {
		sections = append(sections, "  "+a.Name)
	}

	if len(su.Meetings) > 0 {
		sections = append(sections, "")
		sections = append(sections, ui.PanelTitleStyle.Render("Past meetings"))
		for i, meeting := range su.Meetings {
			marker := "  "
			if i == d.meetingCursor {
				marker = ui.SelectedStyle.Render("> ")
			}
			sections = append(sections, marker+ui.TimestampStyle.Render(meeting.Date.Format("Jan 2, 2006 15:04")))
		}
	}

	sections = append(sections, m.overlaySection(d.overlay, su.Title)...)
	sections = append(sections, m.divider())
	sections = append(sections, m.footer([][2]string{
		{"s", "Start meeting"}, {"e", "Edit"}, {"d", "Delete"},
		{"Enter", "Open meeting"}, {"x", "Remove meeting"}, {"Esc", "Back"},
	}))
	return strings.Join(sections, "\n")
}

func (m Model) viewRecord(rf *recordFrame) string {
	su := rf.syncUp
	var sections []string
	sections = append(sections, ui.ThemeTitleStyle(su.Theme).Render(strings.ToUpper(su.Title))+
		ui.DimStyle.Render("  · meeting in progress"))
	sections = append(sections, m.divider())

	// Progress header: elapsed / remaining.
	sections = append(sections, m.renderProgress(rf))
	sections = append(sections, fmt.Sprintf("  Elapsed %s   Remaining %s",
		formatSeconds(rf.secondsElapsed), formatSeconds(rf.durationRemaining())))
	sections = append(sections, "")

	// Current speaker.
	if rf.speakerIndex < len(su.Attendees) {
		sections = append(sections, "  "+ui.SpeakingStyle.Render(su.Attendees[rf.speakerIndex].Name)+" is speaking")
	}
	if rf.lastSpeaker() {
		sections = append(sections, ui.DimStyle.Render("  No more speakers."))
	} else {
		sections = append(sections, ui.DimStyle.Render(fmt.Sprintf("  Speaker %d of %d",
			rf.speakerIndex+1, len(su.Attendees))))
	}

	// Live transcript.
	sections = append(sections, "")
	if rf.transcribing || rf.transcript != "" {
		sections = append(sections, ui.PanelTitleStyle.Render("Transcript"))
		text := rf.transcript
		if text == "" {
			text = ui.DimStyle.Render("Listening...")
		}
		for _, line := range wrapText(text, max(20, m.width-4)) {
			sections = append(sections, "  "+line)
		}
	} else {
		sections = append(sections, ui.DimStyle.Render("  Not recording."))
	}

	if rf.phase == recordAlertShown && rf.alert != nil {
		sections = append(sections, "")
		sections = append(sections, m.renderAlert(rf.alert))
	}

	sections = append(sections, m.divider())
	sections = append(sections, m.footer([][2]string{
		{"n", "Next speaker"}, {"e", "End meeting"},
	}))
	return strings.Join(sections, "\n")
}

func (m Model) renderProgress(rf *recordFrame) string {
	barLen := max(10, m.width-6)
	var filled int
	if rf.syncUp.Duration > 0 {
		filled = rf.secondsElapsed * barLen / rf.syncUp.Duration
	}
	if filled > barLen {
		filled = barLen
	}
	return "  " + ui.ProgressFilledStyle.Render(strings.Repeat("█", filled)) +
		ui.ProgressEmptyStyle.Render(strings.Repeat("░", barLen-filled))
}

func (m Model) viewPastMeeting(p *pastMeetingFrame) string {
	su, ok := m.store.Get(p.syncUpID)
	if !ok {
		return ui.DimStyle.Render("Sync-up no longer exists.")
	}
	meeting, ok := su.Meeting(p.meetingID)
	if !ok {
		return ui.DimStyle.Render("Meeting no longer exists.")
	}

	var lines []string
	lines = append(lines, ui.TitleStyle.Render(meeting.Date.Format("January 2, 2006 15:04")))
	lines = append(lines, m.divider())
	lines = append(lines, ui.PanelTitleStyle.Render("Attendees"))
	for _, a := range su.Attendees {
		lines = append(lines, "  "+a.Name)
	}
	lines = append(lines, "")
	lines = append(lines, ui.PanelTitleStyle.Render("Transcript"))
	if meeting.Transcript == "" {
		lines = append(lines, ui.DimStyle.Render("  (empty)"))
	} else {
		for _, line := range wrapText(meeting.Transcript, max(20, m.width-4)) {
			lines = append(lines, "  "+line)
		}
	}

	// Apply scroll below the divider.
	if p.scroll > 0 && p.scroll < len(lines) {
		lines = lines[p.scroll:]
	}

	lines = append(lines, m.divider())
	lines = append(lines, m.footer([][2]string{{"j/k", "Scroll"}, {"Esc", "Back"}}))
	return strings.Join(lines, "\n")
}

// overlaySection renders an overlay (alert or form) as trailing sections.
func (m Model) overlaySection(ov overlay, formTitle string) []string {
	switch ov := ov.(type) {
	case *alertOverlay:
		return []string{"", m.renderAlert(ov)}
	case *formModel:
		return append([]string{""}, m.renderForm(ov, formTitle)...)
	}
	return nil
}

func (m Model) renderAlert(a *alertOverlay) string {
	var b strings.Builder
	b.WriteString(ui.AlertTitleStyle.Render(a.title()))
	b.WriteString("\n")
	for _, line := range wrapText(a.message(), max(20, m.width-6)) {
		b.WriteString("  " + line + "\n")
	}
	var btns []string
	for i, btn := range a.buttons() {
		style := ui.AlertButtonStyle
		if i == a.focus {
			style = ui.AlertButtonFocusStyle
		}
		btns = append(btns, style.Render("[ "+btn.label+" ]"))
	}
	b.WriteString("  " + strings.Join(btns, "  "))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorYellow).
		Padding(0, 1).
		Render(b.String())
}

func (m Model) renderForm(f *formModel, title string) []string {
	var lines []string
	lines = append(lines, ui.PanelTitleStyle.Render(title))

	renderField := func(focused bool, label, value string) string {
		cursor := ""
		style := lipgloss.NewStyle()
		if focused {
			style = ui.FocusedFieldStyle
			cursor = "▌"
		}
		return "  " + ui.DimStyle.Render(label) + " " + style.Render(value+cursor)
	}

	lines = append(lines, renderField(f.focus.kind == fieldTitle, "Title   ", f.syncUp.Title))
	lines = append(lines, "  "+ui.DimStyle.Render("Length  ")+" "+formatSeconds(f.syncUp.Duration)+
		ui.DimStyle.Render("  (←/→ adjust)"))
	lines = append(lines, "  "+ui.DimStyle.Render("Theme   ")+" "+
		ui.ThemeBadgeStyle(f.syncUp.Theme).Render(" "+f.syncUp.Theme.Name()+" ")+
		ui.DimStyle.Render("  (ctrl+t cycle)"))
	lines = append(lines, "  "+ui.DimStyle.Render("Attendees:"))
	for _, a := range f.syncUp.Attendees {
		focused := f.focus.kind == fieldAttendee && f.focus.attendeeID == a.ID
		lines = append(lines, renderField(focused, "  -    ", a.Name))
	}
	lines = append(lines, ui.DimStyle.Render("  ctrl+n new attendee · ctrl+d remove · Enter done · Esc cancel"))
	return lines
}

func (m Model) divider() string {
	return ui.DividerStyle.Render(strings.Repeat("─", max(1, m.width)))
}

func (m Model) footer(keys [][2]string) string {
	var parts []string
	for _, kv := range keys {
		parts = append(parts, ui.FooterKeyStyle.Render(kv[0])+ui.FooterDescStyle.Render(" "+kv[1]))
	}
	return strings.Join(parts, "  ")
}

// formatSeconds renders whole seconds as "5m" or "5m30s" or "45s".
func formatSeconds(s int) string {
	if s < 60 {
		return fmt.Sprintf("%ds", s)
	}
	if s%60 == 0 {
		return fmt.Sprintf("%dm", s/60)
	}
	return fmt.Sprintf("%dm%02ds", s/60, s%60)
}

// wrapText wraps words to the given width, preserving paragraph breaks.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var current string
		for _, word := range strings.Fields(paragraph) {
			switch {
			case current == "":
				current = word
			case lipgloss.Width(current)+1+lipgloss.Width(word) <= width:
				current += " " + word
			default:
				lines = append(lines, current)
				current = word
			}
		}
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
