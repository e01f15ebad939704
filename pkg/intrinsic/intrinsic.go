// Package intrinsic declares the logging calls that lograft rewrites.
//
// The functions exist so that sources using them type-check and show up in
// editors. They are never meant to run: lograft replaces every call with a
// call to print or warn before the package is built. Each has three forms:
//
//	intrinsic.Print()                // location only
//	intrinsic.Print(message)         // location and message
//	intrinsic.Print(message, level)  // dropped when level exceeds the threshold
//
// level must be a numeric literal.
package intrinsic

import "fmt"

// Print lowers to print("[path:line]", message).
func Print(args ...any) {
	unrewritten("Print", args)
}

// Warn lowers to warn("[path:line]", message).
func Warn(args ...any) {
	unrewritten("Warn", args)
}

// Error(message, stackDepth, level) and Print(level, args...) are reserved.

func unrewritten(name string, args []any) {
	panic(fmt.Sprintf("intrinsic.%s%v called without running lograft", name, args))
}
