package domain

const (
	// EnvelopeKey is the reserved style key holding per-breakpoint overlays.
	// It never appears in a computed style.
	EnvelopeKey = "@media"

	// TokenPrefix marks a string style value as a theme token ("$colors.primary").
	TokenPrefix = "$"

	// DefaultThemeName is the built-in theme that always exists.
	DefaultThemeName = "default"

	// MetadataUpdatedAt is the metadata key stamped on every metadata update.
	MetadataUpdatedAt = "updatedAt"
)
