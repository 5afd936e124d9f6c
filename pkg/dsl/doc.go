/*
Package dsl provides a Go DSL for programmatically constructing style trees.

It lets developers define node hierarchies with a type-safe, fluent builder
instead of YAML, JSON or TOML snapshot files. This is particularly useful for
tests, generated component libraries and IDE autocompletion.

Example usage:

	b := dsl.New()

	card := b.Add("card").
		Token("background", "colors.background").
		Set("padding", "1rem").
		Responsive("lg", domain.Style{"padding": "2rem"})

	card.Child("card-title").
		Token("color", "colors.primary")

	snap, err := b.Build()
	if err != nil {
		return err
	}
	workspace.Import(snap)
*/
package dsl
