/*
Package responsive implements breakpoint detection and the mobile-first
responsive overlay.

Breakpoints map a name to a min-width boundary ("768px"). They are ranked by the
integer prefix of their boundary. The active breakpoint is the largest one whose
boundary the injected ports.BoundaryMatcher reports as satisfied.

A style may carry a responsive envelope under domain.EnvelopeKey:

	domain.Style{
	    "color": "black",
	    "@media": map[string]any{
	        "sm": map[string]any{"color": "red"},
	        "lg": map[string]any{"color": "blue"},
	    },
	}

ResponsiveStyles applies every overlay from the smallest breakpoint up to and
including the active one, then strips the envelope.
*/
package responsive
