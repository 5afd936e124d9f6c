package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/lattice/pkg/node"
	"github.com/stretchr/testify/require"
)

// WriteTempFile writes content to name inside a fresh temporary directory and
// returns the absolute path. It fails the test immediately on error.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write %s", name)
	return path
}

// IDs returns the ids of nodes, preserving order.
func IDs(nodes []*node.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID())
	}
	return out
}
