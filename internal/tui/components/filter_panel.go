package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/pedalstats/internal/model"
	"github.com/Veraticus/pedalstats/internal/tui/themes"
)

// FilterControl identifies one control of the filter panel.
type FilterControl int

// Filter panel controls in display order.
const (
	ControlStartDate FilterControl = iota
	ControlEndDate
	ControlSeasons
	ControlHourMin
	ControlHourMax
	ControlWeather
	controlCount
)

// FilterPanelModel edits the FilterSpec: a date range, a season multi-select,
// an hour range and a weather multi-select.
type FilterPanelModel struct {
	theme         themes.Theme
	minDate       time.Time
	maxDate       time.Time
	start         textinput.Model
	end           textinput.Model
	startErr      string
	endErr        string
	spec          model.FilterSpec
	defaults      model.FilterSpec
	control       FilterControl
	seasonCursor  int
	weatherCursor int
	width         int
	focused       bool
}

// NewFilterPanel creates a panel initialized to defaults. Dates outside
// [defaults.Start, defaults.End] are rejected.
func NewFilterPanel(defaults model.FilterSpec, theme themes.Theme) FilterPanelModel {
	m := FilterPanelModel{
		theme:    theme,
		defaults: cloneSpec(defaults),
		minDate:  defaults.Start,
		maxDate:  defaults.End,
		start:    newDateInput(),
		end:      newDateInput(),
		width:    30,
	}
	m.reset()
	return m
}

func newDateInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = model.DateLayout
	ti.CharLimit = len(model.DateLayout)
	ti.Width = len(model.DateLayout) + 1
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Spec returns the current filter.
func (m FilterPanelModel) Spec() model.FilterSpec {
	return cloneSpec(m.spec)
}

// Focused reports whether the panel receives key input.
func (m FilterPanelModel) Focused() bool {
	return m.focused
}

// Control returns the selected control.
func (m FilterPanelModel) Control() FilterControl {
	return m.control
}

// Focus gives the panel key input.
func (m *FilterPanelModel) Focus() {
	m.focused = true
	m.syncInputFocus()
}

// Blur releases key input.
func (m *FilterPanelModel) Blur() {
	m.focused = false
	m.start.Blur()
	m.end.Blur()
}

// Resize sets the panel width.
func (m *FilterPanelModel) Resize(width int) {
	m.width = width
}

// Update handles key input while focused. Any change to the filter is reported
// with a FilterChangedMsg.
func (m FilterPanelModel) Update(msg tea.Msg) (FilterPanelModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	before := m.spec
	switch keyMsg.String() {
	case "esc":
		m.Blur()
		return m, nil
	case "up":
		m.control = (m.control + controlCount - 1) % controlCount
		m.syncInputFocus()
		return m, nil
	case "down", "tab":
		m.control = (m.control + 1) % controlCount
		m.syncInputFocus()
		return m, nil
	case "r":
		cmd := m.Reset()
		return m, cmd
	}

	switch m.control {
	case ControlStartDate, ControlEndDate:
		m.updateDate(keyMsg)
	case ControlSeasons:
		m.seasonCursor = m.updateMultiSelect(keyMsg, m.seasonCursor, len(model.AllSeasons()), m.toggleSeason)
	case ControlWeather:
		m.weatherCursor = m.updateMultiSelect(keyMsg, m.weatherCursor, len(model.AllWeather()), m.toggleWeather)
	case ControlHourMin:
		switch keyMsg.String() {
		case "left", "h", "-":
			m.spec.HourLo = max(model.MinHour, m.spec.HourLo-1)
		case "right", "l", "+":
			m.spec.HourLo = min(m.spec.HourHi, m.spec.HourLo+1)
		}
	case ControlHourMax:
		switch keyMsg.String() {
		case "left", "h", "-":
			m.spec.HourHi = max(m.spec.HourLo, m.spec.HourHi-1)
		case "right", "l", "+":
			m.spec.HourHi = min(model.MaxHour, m.spec.HourHi+1)
		}
	}

	if specEqual(before, m.spec) {
		return m, nil
	}
	return m, m.changed()
}

func (m *FilterPanelModel) updateDate(msg tea.KeyMsg) {
	if !dateKey(msg) {
		return
	}

	input, errText := &m.start, &m.startErr
	if m.control == ControlEndDate {
		input, errText = &m.end, &m.endErr
	}
	*input, _ = input.Update(msg)

	value := strings.TrimSpace(input.Value())
	if len(value) < len(model.DateLayout) {
		*errText = "use " + model.DateLayout
		return
	}
	t, err := time.Parse(model.DateLayout, value)
	if err != nil {
		*errText = "use " + model.DateLayout
		return
	}
	if t.Before(m.minDate) || t.After(m.maxDate) {
		*errText = fmt.Sprintf("%s to %s", m.minDate.Format(model.DateLayout), m.maxDate.Format(model.DateLayout))
		return
	}

	*errText = ""
	if m.control == ControlStartDate {
		m.spec.Start = t
	} else {
		m.spec.End = t
	}
}

// dateKey reports whether msg edits a date input: digits, dashes and
// cursor or deletion keys.
func dateKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r < '0' || r > '9') && r != '-' {
				return false
			}
		}
		return true
	}
	return false
}

func (m *FilterPanelModel) updateMultiSelect(msg tea.KeyMsg, cursorPos, n int, toggle func(int)) int {
	switch msg.String() {
	case "left", "h":
		return max(0, cursorPos-1)
	case "right", "l":
		return min(n-1, cursorPos+1)
	case " ", "enter", "x":
		toggle(cursorPos)
	}
	return cursorPos
}

func (m *FilterPanelModel) toggleSeason(i int) {
	s := model.AllSeasons()[i]
	if m.spec.HasSeason(s) {
		m.spec.Seasons = remove(m.spec.Seasons, s)
		return
	}
	var next []model.Season
	for _, candidate := range model.AllSeasons() {
		if candidate == s || m.spec.HasSeason(candidate) {
			next = append(next, candidate)
		}
	}
	m.spec.Seasons = next
}

func (m *FilterPanelModel) toggleWeather(i int) {
	w := model.AllWeather()[i]
	if m.spec.HasWeather(w) {
		m.spec.Weather = remove(m.spec.Weather, w)
		return
	}
	var next []model.Weather
	for _, candidate := range model.AllWeather() {
		if candidate == w || m.spec.HasWeather(candidate) {
			next = append(next, candidate)
		}
	}
	m.spec.Weather = next
}

func remove[T comparable](items []T, item T) []T {
	out := make([]T, 0, len(items))
	for _, v := range items {
		if v != item {
			out = append(out, v)
		}
	}
	return out
}

// Reset restores the defaults and reports the change.
func (m *FilterPanelModel) Reset() tea.Cmd {
	m.reset()
	m.syncInputFocus()
	return m.changed()
}

func (m *FilterPanelModel) reset() {
	m.spec = cloneSpec(m.defaults)
	m.start.SetValue(m.spec.Start.Format(model.DateLayout))
	m.end.SetValue(m.spec.End.Format(model.DateLayout))
	m.startErr, m.endErr = "", ""
	m.seasonCursor, m.weatherCursor = 0, 0
}

func (m *FilterPanelModel) syncInputFocus() {
	m.start.Blur()
	m.end.Blur()
	if !m.focused {
		return
	}
	switch m.control {
	case ControlStartDate:
		m.start.Focus()
	case ControlEndDate:
		m.end.Focus()
	}
}

func (m FilterPanelModel) changed() tea.Cmd {
	spec := m.Spec()
	return func() tea.Msg {
		return FilterChangedMsg{Spec: spec}
	}
}

// View renders the panel.
func (m FilterPanelModel) View() string {
	title := m.theme.Bold.Render("Filters")
	if m.focused {
		title = lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary).Render("Filters")
	}

	lines := []string{title, "", m.renderLabel(ControlStartDate, "Start date"), "  " + m.start.View()}
	lines = append(lines, m.renderErr(m.startErr)...)
	lines = append(lines, m.renderLabel(ControlEndDate, "End date"), "  "+m.end.View())
	lines = append(lines, m.renderErr(m.endErr)...)
	lines = append(lines, "", m.renderLabel(ControlSeasons, "Seasons"))
	for i, s := range model.AllSeasons() {
		lines = append(lines, m.renderOption(ControlSeasons, i == m.seasonCursor, m.spec.HasSeason(s), s.String()))
	}
	lines = append(lines,
		"",
		m.renderLabel(ControlHourMin, fmt.Sprintf("From hour  ◂ %02d ▸", m.spec.HourLo)),
		m.renderLabel(ControlHourMax, fmt.Sprintf("To hour    ◂ %02d ▸", m.spec.HourHi)),
		"",
		m.renderLabel(ControlWeather, "Weather"),
	)
	for i, w := range model.AllWeather() {
		lines = append(lines, m.renderOption(ControlWeather, i == m.weatherCursor, m.spec.HasWeather(w), w.String()))
	}

	if !m.focused {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(m.theme.Muted).Render("f to edit filters"))
	}

	return lipgloss.NewStyle().Width(m.width).Render(strings.Join(lines, "\n"))
}

func (m FilterPanelModel) renderLabel(c FilterControl, label string) string {
	if m.focused && m.control == c {
		return m.theme.Selected.Render("▸ " + label)
	}
	return m.theme.Subtitle.Render("  " + label)
}

func (m FilterPanelModel) renderOption(c FilterControl, underCursor, checked bool, label string) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	text := fmt.Sprintf("    %s %s", box, label)
	if m.focused && m.control == c && underCursor {
		return m.theme.Highlighted.Render(text)
	}
	if checked {
		return m.theme.Normal.Render(text)
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(text)
}

func (m FilterPanelModel) renderErr(text string) []string {
	if text == "" {
		return nil
	}
	return []string{"  " + m.theme.StatusWarning.Render(text)}
}

func cloneSpec(s model.FilterSpec) model.FilterSpec {
	s.Seasons = append([]model.Season(nil), s.Seasons...)
	s.Weather = append([]model.Weather(nil), s.Weather...)
	return s
}

func specEqual(a, b model.FilterSpec) bool {
	if !a.Start.Equal(b.Start) || !a.End.Equal(b.End) || a.HourLo != b.HourLo || a.HourHi != b.HourHi {
		return false
	}
	if len(a.Seasons) != len(b.Seasons) || len(a.Weather) != len(b.Weather) {
		return false
	}
	for i := range a.Seasons {
		if a.Seasons[i] != b.Seasons[i] {
			return false
		}
	}
	for i := range a.Weather {
		if a.Weather[i] != b.Weather[i] {
			return false
		}
	}
	return true
}
