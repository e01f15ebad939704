package model

// SiteAction is what the pass did with an intrinsic call.
type SiteAction string

const (
	// SiteEmitted marks a call rewritten into a runtime call.
	SiteEmitted SiteAction = "emit"
	// SiteStripped marks a call removed by the level threshold.
	SiteStripped SiteAction = "strip"
)

// Site describes one intrinsic call.
type Site struct {
	Line   int        `yaml:"line"`
	Column int        `yaml:"column"`
	Call   string     `yaml:"call"`
	Action SiteAction `yaml:"action"`
	Prefix string     `yaml:"prefix,omitempty"`
	Level  *float64   `yaml:"level,omitempty"`
}

// Report holds the outcome of rewriting a single source file.
type Report struct {
	Source  Source `yaml:"source"`
	Changed bool   `yaml:"changed"`
	Sites   []Site `yaml:"sites"`

	Original  []byte `yaml:"-"`
	Rewritten []byte `yaml:"-"`
}

// Count returns how many sites of the report ended with action.
func (r Report) Count(action SiteAction) int {
	n := 0

	for _, site := range r.Sites {
		if site.Action == action {
			n++
		}
	}

	return n
}
