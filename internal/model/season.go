// Package model defines the core domain types for the bike-sharing dataset.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Season is a meteorological season code as recorded in the dataset.
type Season int

// Season codes.
const (
	SeasonSpring Season = iota + 1
	SeasonSummer
	SeasonFall
	SeasonWinter
)

var seasonLabels = map[Season]string{
	SeasonSpring: "Spring",
	SeasonSummer: "Summer",
	SeasonFall:   "Fall",
	SeasonWinter: "Winter",
}

// AllSeasons returns every season in code order.
func AllSeasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}
}

// Code returns the numeric dataset code.
func (s Season) Code() int {
	return int(s)
}

// Valid reports whether s is one of the known seasons.
func (s Season) Valid() bool {
	_, ok := seasonLabels[s]
	return ok
}

func (s Season) String() string {
	if label, ok := seasonLabels[s]; ok {
		return label
	}
	return fmt.Sprintf("Season(%d)", int(s))
}

// ParseSeason accepts either a numeric code ("3") or a label ("fall").
func ParseSeason(value string) (Season, error) {
	value = strings.TrimSpace(value)
	if code, err := strconv.Atoi(value); err == nil {
		s := Season(code)
		if !s.Valid() {
			return 0, fmt.Errorf("%w: season code %d", ErrUnknownCode, code)
		}
		return s, nil
	}

	for _, s := range AllSeasons() {
		if strings.EqualFold(s.String(), value) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: season %q", ErrUnknownCode, value)
}
