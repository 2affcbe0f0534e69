package domain

// Mode selects which of the mutually exclusive operations a run performs.
type Mode uint8

const (
	// ModeCompile transpiles every resolved file once.
	ModeCompile Mode = iota
	// ModeWatch transpiles on filesystem events until the process is terminated.
	ModeWatch
	// ModeFormat rewrites every resolved file in place with its formatted text.
	ModeFormat
	// ModeStdin transpiles standard input to standard output.
	ModeStdin
)

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCompile:
		return "compile"
	case ModeWatch:
		return "watch"
	case ModeFormat:
		return "format"
	case ModeStdin:
		return "stdin"
	default:
		return "unknown"
	}
}

// Options is the run configuration derived once from the command line.
// It is passed by value and never mutated after construction.
type Options struct {
	Mode     Mode
	Force    bool
	Patterns []string
}
