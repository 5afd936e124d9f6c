package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/lattice/pkg/domain"
)

// NodeReport pairs a node id with the validation result of its own style.
type NodeReport struct {
	ID     string
	Result domain.ValidationResult
}

// ValidationMarkdown formats reports as a markdown document, one section per node.
func ValidationMarkdown(reports []NodeReport) string {
	var sb strings.Builder
	invalid := 0
	for _, r := range reports {
		if !r.Result.IsValid {
			invalid++
		}
	}
	sb.WriteString("# Validation report\n\n")
	sb.WriteString(fmt.Sprintf("%d nodes checked, %d invalid.\n", len(reports), invalid))

	for _, r := range reports {
		status := "✅ valid"
		if !r.Result.IsValid {
			status = "❌ invalid"
		}
		sb.WriteString(fmt.Sprintf("\n## `%s` %s\n", r.ID, status))
		for _, e := range r.Result.Errors {
			sb.WriteString(fmt.Sprintf("- **error**: %s\n", e))
		}
		for _, w := range r.Result.Warnings {
			sb.WriteString(fmt.Sprintf("- _warning_: %s\n", w))
		}
	}
	return sb.String()
}
