package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pedalstats/internal/model"
	"github.com/Veraticus/pedalstats/internal/testutil"
	"github.com/Veraticus/pedalstats/internal/tui/themes"
	"github.com/Veraticus/pedalstats/internal/tui/tuitest"
)

func newTestPanel() FilterPanelModel {
	defaults := model.DefaultFilterSpec(testutil.Date("2011-01-01"), testutil.Date("2012-12-31"))
	p := NewFilterPanel(defaults, themes.Default)
	p.Focus()
	return p
}

func lastSpec(t *testing.T, msgs []tea.Msg) model.FilterSpec {
	t.Helper()
	require.NotEmpty(t, msgs, "expected a FilterChangedMsg")
	changed, ok := msgs[len(msgs)-1].(FilterChangedMsg)
	require.True(t, ok, "last message is %T", msgs[len(msgs)-1])
	return changed.Spec
}

func moveTo(p FilterPanelModel, c FilterControl) FilterPanelModel {
	for p.Control() != c {
		p, _ = p.Update(tuitest.Key(tea.KeyDown))
	}
	return p
}

func TestFilterPanel_IgnoresKeysWhenBlurred(t *testing.T) {
	p := newTestPanel()
	p.Blur()

	p, msgs := tuitest.Apply(p, tuitest.KeyPress("r"), tuitest.Key(tea.KeyDown))
	assert.Empty(t, msgs)
	assert.Equal(t, ControlStartDate, p.Control())
}

func TestFilterPanel_ToggleSeason(t *testing.T) {
	p := moveTo(newTestPanel(), ControlSeasons)

	p, msgs := tuitest.Apply(p, tuitest.Key(tea.KeyRight), tuitest.Space())
	spec := lastSpec(t, msgs)
	assert.Equal(t, []model.Season{model.SeasonSpring, model.SeasonFall, model.SeasonWinter}, spec.Seasons)

	_, msgs = tuitest.Apply(p, tuitest.Space())
	spec = lastSpec(t, msgs)
	assert.Equal(t, model.AllSeasons(), spec.Seasons)
}

func TestFilterPanel_EmptySeasonSelection(t *testing.T) {
	p := moveTo(newTestPanel(), ControlSeasons)

	var msgs []tea.Msg
	for range model.AllSeasons() {
		var produced []tea.Msg
		p, produced = tuitest.Apply(p, tuitest.Space(), tuitest.Key(tea.KeyRight))
		msgs = append(msgs, produced...)
	}

	assert.Empty(t, lastSpec(t, msgs).Seasons)
}

func TestFilterPanel_ToggleWeather(t *testing.T) {
	p := moveTo(newTestPanel(), ControlWeather)

	_, msgs := tuitest.Apply(p, tuitest.Space())
	assert.Equal(t, []model.Weather{model.WeatherCloudy, model.WeatherLightRain, model.WeatherHeavyRain}, lastSpec(t, msgs).Weather)
}

func TestFilterPanel_HourRange(t *testing.T) {
	p := moveTo(newTestPanel(), ControlHourMin)

	p, msgs := tuitest.Apply(p, tuitest.Key(tea.KeyRight), tuitest.Key(tea.KeyRight))
	assert.Equal(t, 2, lastSpec(t, msgs).HourLo)

	// Cannot go below zero.
	p, _ = tuitest.Apply(p, tuitest.Key(tea.KeyLeft), tuitest.Key(tea.KeyLeft), tuitest.Key(tea.KeyLeft))
	assert.Equal(t, 0, p.Spec().HourLo)

	p = moveTo(p, ControlHourMax)
	for range 30 {
		p, _ = p.Update(tuitest.Key(tea.KeyLeft))
	}
	assert.Equal(t, 0, p.Spec().HourHi, "upper bound stops at the lower bound")

	_, msgs = tuitest.Apply(p, tuitest.Key(tea.KeyLeft))
	assert.Empty(t, msgs, "no change, no message")
}

func TestFilterPanel_EditStartDate(t *testing.T) {
	p := newTestPanel()

	keys := make([]tea.Msg, 0, 20)
	for range 10 {
		keys = append(keys, tuitest.Key(tea.KeyBackspace))
	}
	keys = append(keys, tuitest.Type("2011-06-01")...)

	p, msgs := tuitest.Apply(p, keys...)
	assert.Equal(t, testutil.Date("2011-06-01"), lastSpec(t, msgs).Start)
	assert.Equal(t, testutil.Date("2011-06-01"), p.Spec().Start)
}

func TestFilterPanel_RejectsInvalidDates(t *testing.T) {
	p := moveTo(newTestPanel(), ControlEndDate)

	keys := make([]tea.Msg, 0, 20)
	for range 10 {
		keys = append(keys, tuitest.Key(tea.KeyBackspace))
	}
	keys = append(keys, tuitest.Type("2015-01-01")...)

	p, msgs := tuitest.Apply(p, keys...)
	assert.Empty(t, msgs)
	assert.Equal(t, testutil.Date("2012-12-31"), p.Spec().End)
	assert.Contains(t, tuitest.StripANSI(p.View()), "2011-01-01 to 2012-12-31")
}

func TestFilterPanel_IgnoresLettersInDateInput(t *testing.T) {
	p := newTestPanel()

	p, msgs := tuitest.Apply(p, tuitest.KeyPress("x"))
	assert.Empty(t, msgs)
	assert.Equal(t, "2011-01-01", p.start.Value())
}

func TestFilterPanel_Reset(t *testing.T) {
	p := moveTo(newTestPanel(), ControlWeather)
	p, _ = tuitest.Apply(p, tuitest.Space())
	require.Len(t, p.Spec().Weather, 3)

	p, msgs := tuitest.Apply(p, tuitest.KeyPress("r"))
	spec := lastSpec(t, msgs)
	assert.Equal(t, model.AllWeather(), spec.Weather)
	assert.Equal(t, model.AllWeather(), p.Spec().Weather)
	assert.True(t, p.Focused(), "reset keeps the panel focused")
}

func TestFilterPanel_EscBlurs(t *testing.T) {
	p := newTestPanel()

	p, _ = p.Update(tuitest.Key(tea.KeyEsc))
	assert.False(t, p.Focused())
}

func TestFilterPanel_View(t *testing.T) {
	p := newTestPanel()
	view := tuitest.StripANSI(p.View())

	assert.True(t, tuitest.ContainsInOrder(view,
		"Filters", "Start date", "2011-01-01", "End date", "2012-12-31",
		"Seasons", "[x] Spring", "[x] Winter",
		"From hour", "00", "To hour", "23",
		"Weather", "[x] Clear", "[x] Heavy Rain"))
}
