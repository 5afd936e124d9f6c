package validation

import (
	"regexp"

	"github.com/aretw0/lattice/pkg/style"
)

var (
	lengthPattern   = regexp.MustCompile(`^\d+(\.\d+)?(px|em|rem|%|vh|vw)$`)
	fontSizePattern = regexp.MustCompile(`^\d+(\.\d+)?(px|em|rem|%)$`)
)

// DefaultRules returns the built-in global rules for width, height, opacity,
// zIndex and fontSize.
func DefaultRules() []Rule {
	return []Rule{
		{
			Property:  "width",
			Validator: isLength,
			Message:   "Width must be a positive number or valid CSS unit",
		},
		{
			Property:  "height",
			Validator: isLength,
			Message:   "Height must be a positive number or valid CSS unit",
		},
		{
			Property: "opacity",
			Validator: func(v any) bool {
				f, ok := style.Number(v)
				return ok && f >= 0 && f <= 1
			},
			Message: "Opacity must be a number between 0 and 1",
		},
		{
			Property:  "zIndex",
			Validator: style.IsInteger,
			Message:   "Z-index must be an integer",
		},
		{
			Property: "fontSize",
			Validator: func(v any) bool {
				if f, ok := style.Number(v); ok {
					return f > 0
				}
				s, ok := v.(string)
				return ok && fontSizePattern.MatchString(s)
			},
			Message: "Font size must be a positive number or valid CSS unit",
		},
	}
}

func isLength(v any) bool {
	if f, ok := style.Number(v); ok {
		return f >= 0
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return s == "auto" || lengthPattern.MatchString(s)
}
