// Package model defines the data structures shared by the lograft workflow.
package model

// Path represents a file system path.
type Path string

// File represents a source code file.
type File struct {
	FullPath  Path   `yaml:"path"`
	ShortPath Path   `yaml:"short_path"`
	Hash      string `yaml:"hash"`
}

// Source is a Go file selected for rewriting.
type Source struct {
	Origin  *File   `yaml:"origin"`
	Package *string `yaml:"package,omitempty"`
}
