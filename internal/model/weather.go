package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Weather is the dataset's weather situation code.
type Weather int

// Weather codes, ordered from best to worst conditions.
const (
	WeatherClear Weather = iota + 1
	WeatherCloudy
	WeatherLightRain
	WeatherHeavyRain
)

var weatherLabels = map[Weather]string{
	WeatherClear:     "Clear",
	WeatherCloudy:    "Cloudy",
	WeatherLightRain: "Light Rain",
	WeatherHeavyRain: "Heavy Rain",
}

// AllWeather returns every weather condition in code order.
func AllWeather() []Weather {
	return []Weather{WeatherClear, WeatherCloudy, WeatherLightRain, WeatherHeavyRain}
}

// Code returns the numeric dataset code.
func (w Weather) Code() int {
	return int(w)
}

// Valid reports whether w is one of the known conditions.
func (w Weather) Valid() bool {
	_, ok := weatherLabels[w]
	return ok
}

func (w Weather) String() string {
	if label, ok := weatherLabels[w]; ok {
		return label
	}
	return fmt.Sprintf("Weather(%d)", int(w))
}

// ParseWeather accepts a numeric code or a label. Labels match case-insensitively
// and tolerate '-' or '_' in place of spaces ("light-rain").
func ParseWeather(value string) (Weather, error) {
	value = strings.TrimSpace(value)
	if code, err := strconv.Atoi(value); err == nil {
		w := Weather(code)
		if !w.Valid() {
			return 0, fmt.Errorf("%w: weather code %d", ErrUnknownCode, code)
		}
		return w, nil
	}

	normalized := strings.NewReplacer("-", " ", "_", " ").Replace(value)
	for _, w := range AllWeather() {
		if strings.EqualFold(w.String(), normalized) {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: weather %q", ErrUnknownCode, value)
}
