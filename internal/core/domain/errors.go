package domain

import "go.trai.ch/zerr"

var (
	// ErrNoPatterns is returned when stdin is a terminal and no patterns were given.
	ErrNoPatterns = zerr.New("no patterns given")

	// ErrPatternsWithStdin is returned when patterns are given while stdin is piped.
	ErrPatternsWithStdin = zerr.New("patterns given when reading from stdin")

	// ErrWatchStdin is returned when watch mode is requested while stdin is piped.
	ErrWatchStdin = zerr.New("cannot watch stdin")

	// ErrWatchAndFormat is returned when watch and format modes are both requested.
	ErrWatchAndFormat = zerr.New("cannot watch and format at the same time")

	// ErrPatternNotFound is returned when a literal pattern names a path that does not exist.
	ErrPatternNotFound = zerr.New("pattern does not exist")

	// ErrInvalidPattern is returned when a glob pattern is malformed.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrEmptyInput is returned when a source read yields no text.
	ErrEmptyInput = zerr.New("src is empty")

	// ErrReadFailed is returned when a source file cannot be read.
	ErrReadFailed = zerr.New("failed to read source")

	// ErrWriteFailed is returned when compiled or formatted output cannot be written.
	ErrWriteFailed = zerr.New("unable to save output")

	// ErrTranspileFailed is returned when the external collaborator fails without a syntax location.
	ErrTranspileFailed = zerr.New("transpiler failed")

	// ErrEmptyCommand is returned when a collaborator command line has no words.
	ErrEmptyCommand = zerr.New("collaborator command is empty")

	// ErrInvalidCommand is returned when a collaborator command line cannot be parsed.
	ErrInvalidCommand = zerr.New("invalid collaborator command")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEnvFileLoadFailed is returned when a present .env file cannot be loaded.
	ErrEnvFileLoadFailed = zerr.New("failed to load .env file")

	// ErrInvalidDebounce is returned when the debounce window is not a valid non-negative duration.
	ErrInvalidDebounce = zerr.New("invalid debounce window")

	// ErrWatcherStartFailed is returned when the filesystem watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start watcher")

	// ErrWatcherStopped is returned when the watcher's event stream ends while the run is still active.
	ErrWatcherStopped = zerr.New("watcher stopped unexpectedly")

	// ErrStdinReadFailed is returned when standard input cannot be read.
	ErrStdinReadFailed = zerr.New("failed to read standard input")
)
