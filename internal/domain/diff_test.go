package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedDiff(t *testing.T) {
	original := []byte("package main\n\nfunc main() {\n\tintrinsicPrint(\"hi\")\n}\n")
	rewritten := []byte("package main\n\nfunc main() {\n\tprint(\"[main.go:4]\", \"hi\")\n}\n")

	diff, err := unifiedDiff("main.go", original, rewritten)
	require.NoError(t, err)

	assert.Contains(t, diff, "--- a/main.go\n")
	assert.Contains(t, diff, "+++ b/main.go\n")
	assert.Contains(t, diff, "-\tintrinsicPrint(\"hi\")\n")
	assert.Contains(t, diff, "+\tprint(\"[main.go:4]\", \"hi\")\n")
	assert.Contains(t, diff, " func main() {\n")
}

func TestUnifiedDiff_NoChange(t *testing.T) {
	src := []byte("package main\n")

	diff, err := unifiedDiff("main.go", src, src)
	require.NoError(t, err)
	assert.Empty(t, diff)
}
