package style

import (
	"reflect"

	"github.com/aretw0/lattice/pkg/domain"
)

// Diff returns the properties that differ between before and after: added or
// modified keys carry their new value, deleted keys are present with a nil value.
// A nil before yields every property of after. Diff returns nil when nothing changed.
func Diff(before, after domain.Style) domain.Style {
	delta := make(domain.Style)

	for k, v := range after {
		old, exists := before[k]
		if !exists || !reflect.DeepEqual(old, v) {
			delta[k] = v
		}
	}
	for k := range before {
		if _, exists := after[k]; !exists {
			delta[k] = nil
		}
	}

	if len(delta) == 0 {
		return nil
	}
	return delta
}
