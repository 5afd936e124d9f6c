package ports_test

import (
	"testing"

	"github.com/aretw0/lattice/pkg/ports"
)

func TestMatchFunc_Contract(t *testing.T) {
	m := ports.MatchFunc(func(boundary string) bool { return boundary == "640px" })
	ports.RunBoundaryMatcherContract(t, m, []string{"640px"}, []string{"768px", ""})
}
