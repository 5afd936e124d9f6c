package responsive

import (
	"math"
	"testing"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeBreakpoints(opts ...Option) *Engine {
	base := []Option{WithBreakpoints(map[string]string{
		"sm": "640px",
		"md": "768px",
		"lg": "1024px",
	})}
	return New(append(base, opts...)...)
}

func cascadeStyle() domain.Style {
	return domain.Style{
		"color":   "black",
		"padding": 4,
		domain.EnvelopeKey: map[string]any{
			"sm": map[string]any{"color": "red"},
			"lg": map[string]any{"color": "blue", "padding": 16},
		},
	}
}

func TestResponsiveStyles_Cascade(t *testing.T) {
	tests := []struct {
		name    string
		width   float64
		current string
		color   string
		padding any
	}{
		{"below smallest falls back to sm", 320, "sm", "red", 4},
		{"sm", 700, "sm", "red", 4},
		{"md inherits sm rule", 800, "md", "red", 4},
		{"lg overrides", 1100, "lg", "blue", 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := threeBreakpoints(WithMatcher(Viewport{Width: tt.width}))
			assert.Equal(t, tt.current, e.CurrentBreakpoint())

			got := e.ResponsiveStyles(cascadeStyle())
			assert.Equal(t, tt.color, got["color"])
			assert.Equal(t, tt.padding, got["padding"])
			assert.NotContains(t, got, domain.EnvelopeKey)
		})
	}
}

func TestResponsiveStyles_NoEnvelope(t *testing.T) {
	e := New()
	in := domain.Style{"color": "red"}
	got := e.ResponsiveStyles(in)
	assert.Equal(t, in, got)

	got["color"] = "blue"
	assert.Equal(t, "red", in["color"], "result is a copy")
}

func TestResponsiveStyles_AcceptsStyleOverlays(t *testing.T) {
	e := threeBreakpoints(WithMatcher(Viewport{Width: 1024}))
	s := e.CreateResponsiveStyles(domain.Style{"color": "black"}, map[string]domain.Style{
		"md": {"color": "green"},
	})

	assert.Equal(t, "green", e.ResponsiveStyles(s)["color"])
}

func TestCreateResponsiveStyles_ReplacesEnvelope(t *testing.T) {
	e := New()
	first := e.CreateResponsiveStyles(domain.Style{"a": 1}, map[string]domain.Style{"sm": {"x": 1}})
	second := e.CreateResponsiveStyles(first, map[string]domain.Style{"lg": {"y": 2}})

	envelope := second[domain.EnvelopeKey].(map[string]any)
	assert.NotContains(t, envelope, "sm")
	assert.Contains(t, envelope, "lg")
	assert.Equal(t, 1, second["a"])
}

func TestCurrentBreakpoint_Fallback(t *testing.T) {
	smallest := New()
	assert.Equal(t, "sm", smallest.CurrentBreakpoint())

	def := New(WithFallback(FallbackDefault))
	assert.Equal(t, "md", def.CurrentBreakpoint())

	missingDefault := New(WithFallback(FallbackDefault), WithDefaultBreakpoint("huge"))
	assert.Equal(t, "sm", missingDefault.CurrentBreakpoint())

	empty := New(WithBreakpoints(map[string]string{}))
	assert.Equal(t, "md", empty.CurrentBreakpoint(), "no breakpoints reports the default name")
}

func TestSortedBreakpoints_NumericPrefix(t *testing.T) {
	e := New(WithBreakpoints(map[string]string{
		"wide":   "1200px",
		"narrow": "90px",
		"mid":    "640",
		"em":     "40em",
		"junk":   "auto",
	}))

	assert.Equal(t, []string{"junk", "em", "narrow", "mid", "wide"}, e.SortedBreakpoints())
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"640px", 640},
		{"  +12rem", 12},
		{"-3", -3},
		{"-", 0},
		{"auto", 0},
		{"99999999999999999999999px", math.MaxInt},
		{"-99999999999999999999999", math.MinInt},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, leadingInt(tt.in), tt.in)
	}
}

func TestSortedBreakpoints_OverflowRanksLast(t *testing.T) {
	e := New(WithBreakpoints(map[string]string{
		"huge": "99999999999999999999999px",
		"xl":   "1280px",
	}))

	assert.Equal(t, []string{"xl", "huge"}, e.SortedBreakpoints())
}

func TestNeighbours(t *testing.T) {
	e := threeBreakpoints()

	next, ok := e.NextBreakpoint("sm")
	require.True(t, ok)
	assert.Equal(t, "md", next)

	_, ok = e.NextBreakpoint("lg")
	assert.False(t, ok)

	prev, ok := e.PreviousBreakpoint("lg")
	require.True(t, ok)
	assert.Equal(t, "md", prev)

	_, ok = e.PreviousBreakpoint("sm")
	assert.False(t, ok)

	_, ok = e.NextBreakpoint("unknown")
	assert.False(t, ok)
}

func TestBreakpointTableMutations(t *testing.T) {
	e := threeBreakpoints(WithMatcher(Viewport{Width: 2000}))
	assert.Equal(t, "lg", e.CurrentBreakpoint())

	var changes []string
	unsubscribe := e.OnBreakpointChange(func(bp string) { changes = append(changes, bp) })

	e.AddBreakpoint("xl", "1280px")
	assert.True(t, e.HasBreakpoint("xl"))
	assert.Equal(t, "xl", e.CurrentBreakpoint())

	e.RemoveBreakpoint("xl")
	e.RemoveBreakpoint("ghost")
	assert.False(t, e.HasBreakpoint("xl"))

	e.SetMatcher(Viewport{Width: 700})
	assert.Equal(t, []string{"xl", "lg", "sm"}, changes)

	unsubscribe()
	e.SetMatcher(Viewport{Width: 2000})
	assert.Len(t, changes, 3)

	v, ok := e.BreakpointValue("md")
	assert.True(t, ok)
	assert.Equal(t, "768px", v)
}

func TestUpdateConfig(t *testing.T) {
	e := New()
	e.UpdateConfig(Config{DefaultBreakpoint: "lg"})
	assert.Equal(t, "lg", e.DefaultBreakpoint())
	assert.Len(t, e.Breakpoints(), 5, "nil breakpoint map keeps the table")

	e.UpdateConfig(Config{Breakpoints: map[string]string{"tablet": "600px"}})
	assert.Equal(t, []string{"tablet"}, e.SortedBreakpoints())
}

func TestIsBreakpointActive(t *testing.T) {
	e := threeBreakpoints(WithMatcher(Viewport{Width: 800}))
	assert.True(t, e.IsBreakpointActive("sm"))
	assert.True(t, e.IsBreakpointActive("md"))
	assert.False(t, e.IsBreakpointActive("lg"))
	assert.False(t, e.IsBreakpointActive("ghost"))
}

func TestViewport_Contract(t *testing.T) {
	ports.RunBoundaryMatcherContract(t, Viewport{Width: 800},
		[]string{"640px", "768px", "800", "40em", " 50rem"},
		[]string{"1024px", "51em", "auto", ""},
	)
}
