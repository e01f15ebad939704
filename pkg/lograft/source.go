package lograft

import (
	"bytes"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
)

// Rewrite parses src as the Go file filename, transforms it and returns the
// formatted result. Sources without intrinsic calls are returned unchanged.
func (p *Pass) Rewrite(filename string, src []byte) ([]byte, []Site, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	file, sites, err := p.TransformFile(fset, file)
	if err != nil {
		return nil, nil, err
	}

	if len(sites) == 0 {
		return src, nil, nil
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, nil, fmt.Errorf("failed to format %s: %w", filename, err)
	}

	return buf.Bytes(), sites, nil
}
