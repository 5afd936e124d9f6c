package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Lattice ASCII art banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Cool-to-warm gradient (Sky/Indigo/Pink)
	lines := []struct {
		text, color string
	}{
		{" _       _   _   _          ", "#38bdf8"},
		{"| | __ _| |_| |_(_) ___ ___ ", "#818cf8"},
		{"| |/ _` | __| __| |/ __/ _ \\", "#a78bfa"},
		{"| | (_| | |_| |_| | (_|  __/", "#e879f9"},
		{"|_|\\__,_|\\__|\\__|_|\\___\\___|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
