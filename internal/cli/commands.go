package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/internal/presentation/graph"
	"github.com/aretw0/lattice/internal/presentation/tui"
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/node"
)

// ErrInvalidStyles is returned by Validate when at least one node fails validation.
var ErrInvalidStyles = errors.New("invalid styles")

// Resolve writes the computed style (or its hash) of one node, or of every node
// when id is empty, as a JSON object keyed by node id.
func Resolve(w io.Writer, ws *lattice.Workspace, id string, hash bool) error {
	nodes := ws.Registry().AllElements()
	if id != "" {
		n, ok := ws.Element(id)
		if !ok {
			return fmt.Errorf("%q: %w", id, domain.ErrNodeNotFound)
		}
		nodes = []*node.Node{n}
	}

	out := make(map[string]any, len(nodes))
	for _, n := range nodes {
		if !hash {
			out[n.ID()] = n.ComputedStyle()
			continue
		}
		h, err := n.StyleHash()
		if err != nil {
			return fmt.Errorf("%q: %w", n.ID(), err)
		}
		out[n.ID()] = h
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

// Validate writes a validation report of every node's own style. With pretty set
// the markdown is rendered for the terminal.
func Validate(w io.Writer, ws *lattice.Workspace, pretty bool) error {
	var reports []tui.NodeReport
	valid := true
	for _, n := range ws.Registry().AllElements() {
		res := n.ValidateStyle()
		valid = valid && res.IsValid
		reports = append(reports, tui.NodeReport{ID: n.ID(), Result: res})
	}

	md := tui.ValidationMarkdown(reports)
	if pretty {
		rendered, err := tui.NewRenderer(0)(md)
		if err == nil {
			md = rendered
		}
	}
	if _, err := io.WriteString(w, md); err != nil {
		return err
	}
	if !valid {
		return ErrInvalidStyles
	}
	return nil
}

// CSS writes the CSS variable block of the active theme.
func CSS(w io.Writer, ws *lattice.Workspace) error {
	_, err := fmt.Fprintln(w, ws.Theme().GenerateCSSVariables())
	return err
}

// Themes lists the registered themes. With pretty set each theme is shown with
// its colour swatches; otherwise one name per line, the active one starred.
func Themes(w io.Writer, ws *lattice.Workspace, pretty bool) error {
	eng := ws.Theme()
	current := eng.CurrentThemeName()
	for _, name := range eng.AvailableThemes() {
		t, _ := eng.Theme(name)
		var err error
		if pretty {
			_, err = fmt.Fprintln(w, tui.Swatches(t, name == current))
		} else {
			marker := " "
			if name == current {
				marker = "*"
			}
			_, err = fmt.Fprintf(w, "%s %s\n", marker, name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Graph writes a Mermaid diagram of the node forest. A selected node is
// highlighted together with its ancestors.
func Graph(w io.Writer, ws *lattice.Workspace, selected string) error {
	var overlay *graph.GraphOverlay
	if selected != "" {
		n, ok := ws.Element(selected)
		if !ok {
			return fmt.Errorf("%q: %w", selected, domain.ErrNodeNotFound)
		}
		overlay = &graph.GraphOverlay{Selected: selected}
		for p := n.Parent(); p != nil; p = p.Parent() {
			overlay.Highlighted = append(overlay.Highlighted, p.ID())
		}
	}
	_, err := io.WriteString(w, graph.GenerateMermaid(ws.Registry().RootElements(), overlay))
	return err
}
