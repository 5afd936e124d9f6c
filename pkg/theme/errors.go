package theme

import (
	"fmt"

	"github.com/aretw0/lattice/pkg/domain"
)

// InvalidThemeError is returned when selecting a theme that is not registered.
type InvalidThemeError struct {
	Name string
}

func (e *InvalidThemeError) Error() string {
	return fmt.Sprintf("theme %q not found", e.Name)
}

// Unwrap allows errors.Is(err, domain.ErrInvalidTheme).
func (e *InvalidThemeError) Unwrap() error {
	return domain.ErrInvalidTheme
}
