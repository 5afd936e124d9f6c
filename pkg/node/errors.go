package node

import (
	"fmt"

	"github.com/aretw0/lattice/pkg/domain"
)

// CyclicParentError is returned by SetParent when the proposed parent is the
// node itself or one of its descendants.
type CyclicParentError struct {
	NodeID   string
	ParentID string
}

func (e *CyclicParentError) Error() string {
	return fmt.Sprintf("cannot set %q as parent of %q: would create a cycle", e.ParentID, e.NodeID)
}

func (e *CyclicParentError) Unwrap() error {
	return domain.ErrCyclicParent
}
