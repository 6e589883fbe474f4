// Package viewmodel converts pipeline results into display-ready values shared
// by the dashboard and the text/JSON report.
package viewmodel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatInt renders n with thousands separators.
func FormatInt(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	s = groupThousands(s)
	if neg {
		return "-" + s
	}
	return s
}

// FormatMean renders v rounded to one decimal with thousands separators.
func FormatMean(v float64) string {
	s := strconv.FormatFloat(Round1(v), 'f', 1, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	s = groupThousands(whole) + "." + frac
	if neg {
		return "-" + s
	}
	return s
}

// HourLabel renders an hour of day as "HH:00".
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
