package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/lattice/pkg/node"
)

// GraphOverlay contains selection data to visualize on the graph.
type GraphOverlay struct {
	Highlighted []string
	Selected    string
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a node forest.
// It applies semantic styling:
// - Root: ((Circle))
// - Node with overrides: [[Subroutine]]
// - Hidden node: [/Parallelogram/]
// - Default: [Rectangle]
// Labels carry the number of own style properties. Overlay styles are applied if provided.
func GenerateMermaid(roots []*node.Node, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, root := range roots {
		writeNode(&sb, root)
		for _, d := range root.Descendants() {
			writeNode(&sb, d)
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast on light fills in both Mermaid themes
		sb.WriteString("    classDef highlighted fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef selected fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.Highlighted {
			safeID := sanitizeMermaidID(id)
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s highlighted;\n", safeID))
			}
		}
		if overlay.Selected != "" {
			sb.WriteString(fmt.Sprintf("    class %s selected;\n", sanitizeMermaidID(overlay.Selected)))
		}
	}

	return sb.String()
}

func writeNode(sb *strings.Builder, n *node.Node) {
	safeID := sanitizeMermaidID(n.ID())

	opener, closer := "[", "]"
	switch {
	case n.Parent() == nil:
		opener, closer = "((", "))"
	case len(n.Overrides()) > 0:
		opener, closer = "[[", "]]"
	case !n.IsVisible():
		opener, closer = "[/", "/]"
	}

	label := n.ID()
	if props := len(n.Style()); props > 0 {
		label = fmt.Sprintf("%s <br/> %d props", n.ID(), props)
	}
	sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, strings.ReplaceAll(label, "\"", "'"), closer))

	for _, c := range n.Children() {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, sanitizeMermaidID(c.ID())))
	}
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
