package responsive

import (
	"math"
	"strconv"
	"strings"
)

const defaultRootFontSize = 16

// Viewport is a BoundaryMatcher for a fixed viewport width in pixels.
// Boundaries in em or rem are scaled by RootFontSize (16 when zero).
type Viewport struct {
	Width        float64
	RootFontSize float64
}

// Matches reports whether the viewport is at least as wide as boundary.
// Boundaries without a numeric prefix never match.
func (v Viewport) Matches(boundary string) bool {
	value, unit, ok := parseLength(boundary)
	if !ok {
		return false
	}
	switch unit {
	case "em", "rem":
		root := v.RootFontSize
		if root == 0 {
			root = defaultRootFontSize
		}
		value *= root
	}
	return v.Width >= value
}

func parseLength(s string) (float64, string, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	if end == 0 {
		return 0, "", false
	}
	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, "", false
	}
	return value, strings.TrimSpace(s[end:]), true
}

// leadingInt parses the leading integer of s, ignoring leading whitespace and
// any suffix. Strings without leading digits rank as zero; digit runs beyond
// the int range saturate.
func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\n")
	end := 0
	if s != "" && (s[0] == '-' || s[0] == '+') {
		end = 1
	}
	digits := end
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits == end {
		return 0
	}
	n, err := strconv.Atoi(s[:digits])
	if err != nil {
		if s[0] == '-' {
			return math.MinInt
		}
		return math.MaxInt
	}
	return n
}
