package viewmodel

import (
	"errors"

	"github.com/Veraticus/pedalstats/internal/analysis"
	"github.com/Veraticus/pedalstats/internal/model"
)

// Tone selects the bar color.
type Tone int

// Bar tones. Weather bars use ToneLight below the maximum and ToneDark at it.
const (
	ToneNormal Tone = iota
	ToneLight
	ToneDark
)

// DashboardView is the display form of one pipeline cycle.
type DashboardView struct {
	Period   string      `json:"period"`
	Metrics  []Metric    `json:"metrics"`
	Seasons  ChartView   `json:"seasons"`
	Hours    HourView    `json:"hours"`
	Weather  WeatherView `json:"weather"`
	Insights []string    `json:"insights"`
}

// Metric is one headline card.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChartView is a labelled bar chart or the reason it cannot be drawn.
type ChartView struct {
	Title   string `json:"title"`
	Warning string `json:"warning,omitempty"`
	Bars    []Bar  `json:"bars,omitempty"`
}

// Bar is one bar of a chart. Fraction is Value relative to the largest bar.
type Bar struct {
	Label    string  `json:"label"`
	Display  string  `json:"display"`
	Value    float64 `json:"value"`
	Fraction float64 `json:"-"`
	Tone     Tone    `json:"-"`
}

// HourView adds the peak and lowest hour to the hour chart. Peak and Lowest
// are display strings; the numeric fields carry the same values.
type HourView struct {
	ChartView
	Peak       string  `json:"-"`
	Lowest     string  `json:"-"`
	PeakHour   int     `json:"peak_hour"`
	PeakMean   float64 `json:"peak_mean"`
	LowestHour int     `json:"lowest_hour"`
	LowestMean float64 `json:"lowest_mean"`
}

// WeatherView adds the categorization table to the weather chart.
type WeatherView struct {
	ChartView
	Rows []WeatherRowView `json:"rows,omitempty"`
}

// WeatherRowView is one line of the categorization table.
type WeatherRowView struct {
	Condition string  `json:"condition"`
	Mean      string  `json:"mean"`
	Category  string  `json:"category"`
	Value     float64 `json:"value"`
}

// HasWarning reports whether the chart should show its warning instead of bars.
func (c ChartView) HasWarning() bool {
	return c.Warning != ""
}

// Build converts a pipeline result into its display form.
func Build(d analysis.Dashboard) DashboardView {
	v := DashboardView{
		Period: d.Spec.Start.Format(model.DateLayout) + " to " + d.Spec.End.Format(model.DateLayout),
		Metrics: []Metric{
			{Label: "Days", Value: FormatInt(d.Summary.Days)},
			{Label: "Total rentals", Value: FormatInt(d.Summary.TotalRentals)},
			{Label: "Mean per day", Value: FormatMean(d.Summary.MeanPerDay)},
		},
		Insights: d.Insights,
	}
	if v.Insights == nil {
		v.Insights = []string{}
	}

	v.Seasons = ChartView{Title: "Mean daily rentals by season"}
	if d.Season.Err != nil {
		v.Seasons.Warning = Warning(d.Season.Err)
	} else {
		v.Seasons.Bars = bars(d.Season.Groups, func(k int) string { return model.Season(k).String() }, false)
	}

	v.Hours = HourView{ChartView: ChartView{Title: "Mean rentals by hour of day"}}
	if d.Hour.Err != nil {
		v.Hours.Warning = Warning(d.Hour.Err)
	} else {
		v.Hours.Bars = bars(d.Hour.Groups, HourLabel, false)
		ext := d.Hour.Extrema
		v.Hours.Peak = HourLabel(ext.MaxKey) + " (" + FormatMean(ext.MaxValue) + ")"
		v.Hours.Lowest = HourLabel(ext.MinKey) + " (" + FormatMean(ext.MinValue) + ")"
		v.Hours.PeakHour, v.Hours.PeakMean = ext.MaxKey, Round1(ext.MaxValue)
		v.Hours.LowestHour, v.Hours.LowestMean = ext.MinKey, Round1(ext.MinValue)
	}

	v.Weather = WeatherView{ChartView: ChartView{Title: "Mean hourly rentals by weather"}}
	if d.Weather.Err != nil {
		v.Weather.Warning = Warning(d.Weather.Err)
	} else {
		v.Weather.Bars = bars(d.Weather.Groups, func(k int) string { return model.Weather(k).String() }, true)
		for _, r := range d.Weather.Rows {
			v.Weather.Rows = append(v.Weather.Rows, WeatherRowView{
				Condition: r.Weather.String(),
				Mean:      FormatMean(r.Mean),
				Value:     Round1(r.Mean),
				Category:  r.Category.String(),
			})
		}
	}

	return v
}

// Warning returns the message shown in place of a failed panel.
func Warning(perr *analysis.PanelError) string {
	if perr == nil {
		return ""
	}
	switch perr.Kind {
	case analysis.KindEmptySelection:
		return "Select at least one season and one weather condition."
	case analysis.KindNoData:
		if errors.Is(perr, analysis.ErrNoData) || errors.Is(perr, analysis.ErrEmptyInput) {
			return "No data for the selected filters. Try different filters."
		}
	}
	return "This panel could not be computed. Try different filters."
}

func bars(groups []model.GroupMean, label func(int) string, toned bool) []Bar {
	if len(groups) == 0 {
		return nil
	}
	maxMean := groups[0].Mean
	for _, g := range groups[1:] {
		maxMean = max(maxMean, g.Mean)
	}

	out := make([]Bar, 0, len(groups))
	for _, g := range groups {
		b := Bar{
			Label:   label(g.Key),
			Value:   Round1(g.Mean),
			Display: FormatMean(g.Mean),
		}
		if maxMean > 0 {
			b.Fraction = g.Mean / maxMean
		}
		if toned {
			b.Tone = ToneLight
			if g.Mean == maxMean {
				b.Tone = ToneDark
			}
		}
		out = append(out, b)
	}
	return out
}
