package domain

import "time"

const (
	// DefaultTranspileCommand is used when no transpile command is configured.
	DefaultTranspileCommand = "piffc transpile"

	// DefaultFormatCommand is used when no format command is configured.
	DefaultFormatCommand = "piffc format"

	// DefaultDebounceWindow delays recompilation after a change event. Some
	// editors save by truncating the file and then appending to it, which shows
	// up as two writes; compiling after the first would read an empty file.
	DefaultDebounceWindow = 50 * time.Millisecond
)

// DefaultIgnoredDirs are directory names that are never watched.
func DefaultIgnoredDirs() []string {
	return []string{".git", ".jj", "node_modules"}
}

// Settings is the project configuration read from piff.yaml and the environment.
type Settings struct {
	TranspileCommand string
	FormatCommand    string
	DebounceWindow   time.Duration
	IgnoredDirs      []string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		TranspileCommand: DefaultTranspileCommand,
		FormatCommand:    DefaultFormatCommand,
		DebounceWindow:   DefaultDebounceWindow,
		IgnoredDirs:      DefaultIgnoredDirs(),
	}
}
