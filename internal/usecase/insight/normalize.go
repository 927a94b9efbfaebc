package insight

import (
	"math"
	"strings"
)

// Normalize collapses all whitespace runs to single spaces and trims the
// result. Every classifier sees normalized text only.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func dedupeStrings(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
