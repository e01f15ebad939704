package domain

import (
	"github.com/pmezard/go-difflib/difflib"

	m "gooze.dev/pkg/lograft/internal/model"
)

const diffContextLines = 3

// unifiedDiff renders the change between original and rewritten source.
func unifiedDiff(path m.Path, original, rewritten []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(rewritten)),
		FromFile: "a/" + string(path),
		ToFile:   "b/" + string(path),
		Context:  diffContextLines,
	})
}
