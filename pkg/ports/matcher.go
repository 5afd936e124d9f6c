package ports

// BoundaryMatcher answers "is this min-width boundary currently satisfied?".
// The host (browser, terminal, test) owns the actual viewport.
type BoundaryMatcher interface {
	Matches(boundary string) bool
}

// MatchFunc adapts a plain function to BoundaryMatcher.
type MatchFunc func(boundary string) bool

// Matches calls f(boundary).
func (f MatchFunc) Matches(boundary string) bool {
	return f(boundary)
}
