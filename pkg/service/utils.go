package service

import (
	"math"
	"unicode/utf8"
)

// Truncate shortens a response label to LabelMaxRunes runes plus "...".
func Truncate(text string) string {
	if utf8.RuneCountInString(text) <= LabelMaxRunes {
		return text
	}
	n := 0
	for i := range text {
		if n == LabelMaxRunes {
			return text[:i] + "..."
		}
		n++
	}
	return text
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
