// Package lograft implements the source rewrite pass that turns intrinsic
// logging calls into plain print/warn calls prefixed with their location.
//
// A Pass is built once from Options and can then transform any number of
// files, including concurrently:
//
//	pass, err := lograft.New(lograft.Options{}.WithShowPath(lograft.ShowShort))
//	if err != nil {
//		return err
//	}
//
//	file, sites, err := pass.TransformFile(fset, file)
//
// A call such as
//
//	intrinsicPrint("hello")
//
// on line 3 of src/server/main.go becomes
//
//	print("[server/main.go:3]", "hello")
//
// Calls carrying a numeric level above the configured threshold are removed
// together with their arguments. Any side effect in those arguments is
// removed as well.
package lograft

import "math"

// ShowMode selects how much of a location component is rendered.
type ShowMode string

const (
	// ShowFull renders the component as is.
	ShowFull ShowMode = "full"
	// ShowShort renders a shortened form of the component.
	ShowShort ShowMode = "short"
	// ShowOff renders the smallest form of the component.
	ShowOff ShowMode = "off"
)

// Options is a partially populated option set. Nil fields take their defaults
// when resolved.
type Options struct {
	ShowPath          *ShowMode
	ShowFileExtension *ShowMode
	ShowLine          *bool
	LogLevel          *float64
}

// WithShowPath returns a copy of o with ShowPath set.
func (o Options) WithShowPath(mode ShowMode) Options {
	o.ShowPath = &mode
	return o
}

// WithShowFileExtension returns a copy of o with ShowFileExtension set.
func (o Options) WithShowFileExtension(mode ShowMode) Options {
	o.ShowFileExtension = &mode
	return o
}

// WithShowLine returns a copy of o with ShowLine set.
func (o Options) WithShowLine(show bool) Options {
	o.ShowLine = &show
	return o
}

// WithLogLevel returns a copy of o with LogLevel set.
func (o Options) WithLogLevel(level float64) Options {
	o.LogLevel = &level
	return o
}

// Config is a fully resolved configuration. Modes are not validated until a
// location is formatted with them.
type Config struct {
	ShowPath          ShowMode
	ShowFileExtension ShowMode
	ShowLine          bool
	// Threshold is the highest level that is still emitted.
	Threshold float64
}

// Resolve fills every unset option with its default.
func Resolve(opts Options) Config {
	cfg := Config{
		ShowPath:          ShowFull,
		ShowFileExtension: ShowFull,
		ShowLine:          true,
		Threshold:         math.Inf(1),
	}

	if opts.ShowPath != nil {
		cfg.ShowPath = *opts.ShowPath
	}

	if opts.ShowFileExtension != nil {
		cfg.ShowFileExtension = *opts.ShowFileExtension
	}

	if opts.ShowLine != nil {
		cfg.ShowLine = *opts.ShowLine
	}

	if opts.LogLevel != nil {
		cfg.Threshold = *opts.LogLevel
	}

	return cfg
}
