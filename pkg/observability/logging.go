package observability

import (
	"log/slog"

	"github.com/aretw0/lattice/pkg/domain"
)

// LogHooks returns hooks that write every event to logger at Info level.
func LogHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnStyleChange: func(e *domain.StyleEvent) {
			logger.Info("style_change", "node_id", e.NodeID, "kind", e.Kind, "notified", e.Notified)
		},
		OnRegister: func(e *domain.NodeEvent) {
			logger.Info("node_register", "node_id", e.NodeID, "root", e.Root)
		},
		OnUnregister: func(e *domain.NodeEvent) {
			logger.Info("node_unregister", "node_id", e.NodeID)
		},
		OnThemeChange: func(e *domain.ThemeEvent) {
			logger.Info("theme_change", "from", e.Previous, "to", e.Current)
		},
	}
}
