package lograft

import (
	"go/ast"
	"go/token"
	"strconv"
)

// emitCall builds target(prefix) or target(prefix, message). The message node
// is reused as is and positions are taken from the original call.
func emitCall(call *ast.CallExpr, target Target, prefix string, message ast.Expr) *ast.CallExpr {
	args := []ast.Expr{&ast.BasicLit{
		ValuePos: call.Lparen + 1,
		Kind:     token.STRING,
		Value:    strconv.Quote(prefix),
	}}

	if message != nil {
		args = append(args, message)
	}

	return &ast.CallExpr{
		Fun:    &ast.Ident{NamePos: call.Pos(), Name: target.RuntimeName()},
		Lparen: call.Lparen,
		Args:   args,
		Rparen: call.Rparen,
	}
}

// inertCall is func() {}(), used where a stripped call cannot simply vanish
// (defer, go, nested expressions).
func inertCall(pos token.Pos) *ast.CallExpr {
	return &ast.CallExpr{
		Fun: &ast.FuncLit{
			Type: &ast.FuncType{Func: pos, Params: &ast.FieldList{}},
			Body: &ast.BlockStmt{Lbrace: pos, Rbrace: pos},
		},
		Lparen: pos,
		Rparen: pos,
	}
}

// inertStmt prints as nothing inside a statement list.
func inertStmt(pos token.Pos) *ast.EmptyStmt {
	return &ast.EmptyStmt{Semicolon: pos, Implicit: true}
}
