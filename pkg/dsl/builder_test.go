package dsl

import (
	"testing"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Tree(t *testing.T) {
	b := New()

	page := b.Add("page").Set("margin", 0)
	page.Child("header").Token("color", "colors.primary")
	page.Child("body").
		Style(domain.Style{"padding": "1rem", "opacity": 1}).
		Responsive("sm", domain.Style{"padding": "0.5rem"}).
		Responsive("lg", domain.Style{"padding": "2rem"})
	b.Add("title").Under("header")
	b.Add("footer")

	snap, err := b.Build()
	require.NoError(t, err)
	require.Len(t, snap.RootElements, 2)

	root := snap.RootElements[0]
	assert.Equal(t, "page", root.ID)
	assert.Equal(t, 0, root.Style["margin"])
	require.Len(t, root.Children, 2)

	header := root.Children[0]
	assert.Equal(t, "header", header.ID)
	assert.Equal(t, "$colors.primary", header.Style["color"])
	require.Len(t, header.Children, 1)
	assert.Equal(t, "title", header.Children[0].ID)

	body := root.Children[1]
	envelope := body.Style[domain.EnvelopeKey].(map[string]any)
	assert.Equal(t, domain.Style{"padding": "2rem"}, envelope["lg"])
	assert.Equal(t, domain.Style{"padding": "0.5rem"}, envelope["sm"])

	assert.Equal(t, "footer", snap.RootElements[1].ID)
}

func TestBuilder_AddIsIdempotent(t *testing.T) {
	b := New()
	first := b.Add("a").Set("x", 1)
	second := b.Add("a")
	assert.Same(t, first, second)
	assert.Equal(t, domain.Config{ID: "a", Style: domain.Style{"x": 1}}, second.Build())
}

func TestBuilder_ParentDeclaredLater(t *testing.T) {
	b := New()
	b.Add("child").Under("parent")
	b.Add("parent")

	snap, err := b.Build()
	require.NoError(t, err)
	require.Len(t, snap.RootElements, 1)
	assert.Equal(t, "child", snap.RootElements[0].Children[0].ID)
}

func TestBuilder_Errors(t *testing.T) {
	t.Run("unknown parent", func(t *testing.T) {
		b := New()
		b.Add("orphan").Under("ghost")
		_, err := b.Build()
		assert.ErrorIs(t, err, domain.ErrNodeNotFound)
	})

	t.Run("cycle", func(t *testing.T) {
		b := New()
		b.Add("root")
		b.Add("a").Under("b")
		b.Add("b").Under("a")
		_, err := b.Build()
		assert.ErrorIs(t, err, domain.ErrCyclicParent)
	})
}
