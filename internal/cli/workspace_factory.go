package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/pkg/adapters/file"
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/observability"
	"github.com/aretw0/lattice/pkg/responsive"
)

// Options holds the persistent CLI flags.
type Options struct {
	ThemesPath string
	Theme      string
	Width      float64 // 0 means no viewport: no breakpoint is active
	Fallback   string  // "smallest" or "default"
	Debug      bool
}

// NewWorkspace initializes a Workspace with standard CLI conventions.
func NewWorkspace(opts Options, logger *slog.Logger) (*lattice.Workspace, error) {
	wsOpts := []lattice.Option{lattice.WithLogger(logger)}

	// 1. Hooks
	if opts.Debug {
		wsOpts = append(wsOpts, lattice.WithHooks(observability.LogHooks(logger)))
	}

	// 2. Breakpoints
	fallback, err := ParseFallback(opts.Fallback)
	if err != nil {
		return nil, err
	}
	wsOpts = append(wsOpts, lattice.WithFallback(fallback))
	if opts.Width > 0 {
		wsOpts = append(wsOpts, lattice.WithMatcher(responsive.Viewport{Width: opts.Width}))
	}

	// 3. Themes
	current := opts.Theme
	if opts.ThemesPath != "" {
		tf, err := file.LoadThemes(opts.ThemesPath)
		if err != nil {
			return nil, fmt.Errorf("error loading themes: %w", err)
		}
		wsOpts = append(wsOpts, lattice.WithThemes(tf.Themes...))
		if current == "" {
			current = tf.Current
		}
	}

	ws := lattice.New(wsOpts...)
	if current != "" && current != domain.DefaultThemeName {
		if err := ws.SetTheme(current); err != nil {
			return nil, err
		}
	}
	return ws, nil
}

// LoadTree imports the snapshot file at path into ws.
func LoadTree(ws *lattice.Workspace, path string) error {
	snap, err := file.LoadSnapshot(path)
	if err != nil {
		return fmt.Errorf("error loading tree: %w", err)
	}
	ws.Import(snap)
	return nil
}

// ParseFallback maps the --fallback flag to a responsive.FallbackPolicy.
func ParseFallback(s string) (responsive.FallbackPolicy, error) {
	switch s {
	case "", "smallest":
		return responsive.FallbackSmallest, nil
	case "default":
		return responsive.FallbackDefault, nil
	default:
		return 0, fmt.Errorf("unknown fallback policy %q (want smallest or default)", s)
	}
}
