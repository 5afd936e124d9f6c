package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/lattice/internal/presentation/graph"
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forest(t *testing.T) []*node.Node {
	t.Helper()
	root := node.FromConfig(domain.Config{
		ID:    "page",
		Style: domain.Style{"color": "red", "margin": 0},
		Children: []domain.Config{
			{ID: "nav-bar"},
			{ID: "card.body", Children: []domain.Config{{ID: "card.title"}}},
		},
	})
	body, ok := root.FindByID("card.body")
	require.True(t, ok)
	body.OverrideStyle(domain.Style{"padding": 4})

	nav, ok := root.FindByID("nav-bar")
	require.True(t, ok)
	nav.SetVisible(false)

	return []*node.Node{root, node.New("footer", nil)}
}

func TestGenerateMermaid(t *testing.T) {
	out := graph.GenerateMermaid(forest(t), nil)

	tests := []struct {
		name     string
		contains []string
	}{
		{"header", []string{"graph TD\n"}},
		{"root shape with prop count", []string{`page(("page <br/> 2 props"))`, `footer(("footer"))`}},
		{"overridden shape", []string{`card_body[["card.body"]]`}},
		{"hidden shape", []string{`nav_bar[/"nav-bar"/]`}},
		{"default shape", []string{`card_title["card.title"]`}},
		{"edges", []string{"page --> nav_bar", "page --> card_body", "card_body --> card_title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
	assert.NotContains(t, out, "classDef")
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	out := graph.GenerateMermaid(forest(t), &graph.GraphOverlay{
		Highlighted: []string{"card.body", "card.body", "nav-bar"},
		Selected:    "card.title",
	})

	assert.Equal(t, 1, strings.Count(out, "class card_body highlighted;"))
	assert.Contains(t, out, "class nav_bar highlighted;")
	assert.Contains(t, out, "class card_title selected;")
}
