package lograft

import (
	"fmt"
	"go/ast"
	"go/token"
	"os"

	"golang.org/x/tools/go/ast/astutil"
)

// Site records what happened to one intrinsic call.
type Site struct {
	Position token.Position
	Target   Target
	Action   Action
	// Prefix is empty for stripped calls.
	Prefix string
	Level  *float64
}

// Pass holds the resolved configuration shared by every file it transforms.
// It is never modified after New returns and is safe for concurrent use.
type Pass struct {
	cfg Config
	wd  string
}

// PassOption customises a Pass.
type PassOption func(*Pass)

// WithWorkingDir sets the directory locations are made relative to. It
// defaults to the process working directory.
func WithWorkingDir(dir string) PassOption {
	return func(p *Pass) {
		p.wd = dir
	}
}

// New resolves opts and builds a Pass.
func New(opts Options, options ...PassOption) (*Pass, error) {
	p := &Pass{cfg: Resolve(opts)}

	for _, option := range options {
		option(p)
	}

	if p.wd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}

		p.wd = wd
	}

	return p, nil
}

// Config returns the resolved configuration.
func (p *Pass) Config() Config {
	return p.cfg
}

// WorkingDir returns the directory locations are relative to.
func (p *Pass) WorkingDir() string {
	return p.wd
}

// TransformFile rewrites every intrinsic call in file and returns the
// rewritten file with one Site per intrinsic call. Nodes are replaced in
// place; on error file may be partially rewritten and must be discarded.
func (p *Pass) TransformFile(fset *token.FileSet, file *ast.File) (*ast.File, []Site, error) {
	v := &visitor{
		pass:     p,
		fset:     fset,
		pending:  make(map[*ast.CallExpr]emission),
		stripped: make(map[*ast.ExprStmt]struct{}),
	}

	result, ok := astutil.Apply(file, v.pre, v.post).(*ast.File)
	if !ok {
		return nil, nil, fmt.Errorf("transform %s: root is no longer a file", fset.Position(file.Pos()).Filename)
	}

	if v.err != nil {
		return nil, nil, v.err
	}

	if len(v.sites) > 0 && !astutil.UsesImport(result, IntrinsicImportPath) {
		astutil.DeleteImport(fset, result, IntrinsicImportPath)
	}

	return result, v.sites, nil
}

// emission is an emitted call waiting for its arguments to be walked.
type emission struct {
	target Target
	prefix string
}

// visitor carries the state of a single TransformFile call. Calls are
// decided on the way down and replaced on the way up, so nested intrinsics
// are already rewritten when their enclosing call is rebuilt.
type visitor struct {
	pass     *Pass
	fset     *token.FileSet
	sites    []Site
	pending  map[*ast.CallExpr]emission
	stripped map[*ast.ExprStmt]struct{}
	err      error
}

func (v *visitor) pre(c *astutil.Cursor) bool {
	if v.err != nil {
		return false
	}

	call, ok := c.Node().(*ast.CallExpr)
	if !ok {
		return true
	}

	target := Classify(call)
	if target == TargetNone {
		return true
	}

	pos := v.fset.Position(call.Pos())

	decision, err := Decide(call, v.pass.cfg.Threshold)
	if err != nil {
		v.fail(pos, err)
		return false
	}

	site := Site{
		Position: pos,
		Target:   target,
		Action:   decision.Action,
		Level:    decision.Level,
	}

	if decision.Action == ActionStrip {
		if stmt, ok := c.Parent().(*ast.ExprStmt); ok {
			v.stripped[stmt] = struct{}{}
		}

		c.Replace(inertCall(call.Pos()))
		v.sites = append(v.sites, site)

		return false
	}

	prefix, err := FormatLocation(pos.Filename, pos.Line, v.pass.cfg, v.pass.wd)
	if err != nil {
		v.fail(pos, err)
		return false
	}

	site.Prefix = prefix
	v.sites = append(v.sites, site)
	v.pending[call] = emission{target: target, prefix: prefix}

	return true
}

func (v *visitor) post(c *astutil.Cursor) bool {
	if v.err != nil {
		return false
	}

	switch node := c.Node().(type) {
	case *ast.CallExpr:
		if e, ok := v.pending[node]; ok {
			delete(v.pending, node)

			var message ast.Expr
			if len(node.Args) > 0 {
				message = node.Args[0]
			}

			c.Replace(emitCall(node, e.target, e.prefix, message))
		}
	case *ast.ExprStmt:
		if _, ok := v.stripped[node]; ok {
			c.Replace(inertStmt(node.Pos()))
		}
	}

	return true
}

func (v *visitor) fail(pos token.Position, err error) {
	v.err = &RewriteError{Kind: kindOf(err), Pos: pos, Err: err}
}
