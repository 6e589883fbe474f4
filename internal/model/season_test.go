package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeason(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Season
		wantErr bool
	}{
		{name: "numeric code", input: "3", want: SeasonFall},
		{name: "label", input: "Winter", want: SeasonWinter},
		{name: "lowercase label with spaces", input: "  spring ", want: SeasonSpring},
		{name: "out of range code", input: "5", wantErr: true},
		{name: "unknown label", input: "monsoon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeason(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeason_RoundTrip(t *testing.T) {
	for _, s := range AllSeasons() {
		parsed, err := ParseSeason(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
		assert.True(t, s.Valid())
	}
	assert.Equal(t, "Season(9)", Season(9).String())
}

func TestParseWeather(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Weather
		wantErr bool
	}{
		{name: "numeric code", input: "1", want: WeatherClear},
		{name: "label with space", input: "Light Rain", want: WeatherLightRain},
		{name: "dashed label", input: "heavy-rain", want: WeatherHeavyRain},
		{name: "underscored label", input: "light_rain", want: WeatherLightRain},
		{name: "zero code", input: "0", wantErr: true},
		{name: "unknown", input: "snow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeather(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "High", CategoryHigh.String())
	assert.Equal(t, "Medium", CategoryMedium.String())
	assert.Equal(t, "Low", CategoryLow.String())
}
