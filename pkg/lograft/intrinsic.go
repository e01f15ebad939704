package lograft

import (
	"go/ast"
	"go/token"
	"go/types"
	"math"
	"strconv"
	"strings"
)

// IntrinsicImportPath is the package that declares the qualified intrinsics.
const IntrinsicImportPath = "gooze.dev/pkg/lograft/pkg/intrinsic"

// Target identifies which runtime function an intrinsic call lowers to.
type Target int

const (
	// TargetNone marks a call that is left alone.
	TargetNone Target = iota
	// TargetPrint lowers to print.
	TargetPrint
	// TargetWarn lowers to warn.
	TargetWarn
	// TargetError lowers to error. Reserved: no callee name maps to it yet.
	TargetError
)

// recognized maps exact callee text to its target.
var recognized = map[string]Target{
	"intrinsicPrint":  TargetPrint,
	"intrinsicWarn":   TargetWarn,
	"intrinsic.Print": TargetPrint,
	"intrinsic.Warn":  TargetWarn,
}

func (t Target) String() string {
	switch t {
	case TargetPrint:
		return "print"
	case TargetWarn:
		return "warn"
	case TargetError:
		return "error"
	default:
		return "none"
	}
}

// RuntimeName is the identifier the rewritten call uses.
func (t Target) RuntimeName() string {
	if t == TargetNone {
		return ""
	}

	return t.String()
}

// Classify reports which target call is, or TargetNone.
func Classify(call *ast.CallExpr) Target {
	if call == nil {
		return TargetNone
	}

	if target, ok := recognized[types.ExprString(call.Fun)]; ok {
		return target
	}

	return TargetNone
}

// Action is what happens to a target call.
type Action string

const (
	// ActionEmit rewrites the call into a runtime call.
	ActionEmit Action = "emit"
	// ActionStrip removes the call and its arguments.
	ActionStrip Action = "strip"
)

// Decision is the outcome of gating a target call.
type Decision struct {
	Action Action
	// Message is the original message argument, nil when none was given.
	Message ast.Expr
	// Level is the parsed level argument, nil when none was given.
	Level *float64
}

// Decide validates the arguments of a target call and compares its level,
// if any, with threshold.
func Decide(call *ast.CallExpr, threshold float64) (Decision, error) {
	if call.Ellipsis.IsValid() {
		return Decision{}, ErrInvalidArgumentCount
	}

	switch len(call.Args) {
	case 0:
		return Decision{Action: ActionEmit}, nil
	case 1:
		return Decision{Action: ActionEmit, Message: call.Args[0]}, nil
	case 2:
		level, err := parseLevel(call.Args[1])
		if err != nil {
			return Decision{}, err
		}

		if level <= threshold {
			return Decision{Action: ActionEmit, Message: call.Args[0], Level: &level}, nil
		}

		return Decision{Action: ActionStrip, Level: &level}, nil
	default:
		return Decision{}, ErrInvalidArgumentCount
	}
}

// parseLevel reads the integer part of a numeric literal.
func parseLevel(expr ast.Expr) (float64, error) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || (lit.Kind != token.INT && lit.Kind != token.FLOAT) {
		return 0, ErrInvalidLogLevel
	}

	text := strings.ReplaceAll(lit.Value, "_", "")

	if n, err := strconv.ParseInt(text, 0, 64); err == nil {
		return float64(n), nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// INT literals too large for int64 still parse as floats; anything
		// else is malformed.
		return 0, ErrInvalidLogLevel
	}

	return math.Trunc(f), nil
}
