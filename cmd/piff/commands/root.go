// Package commands implements the command line interface of piff.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/piff/internal/adapters/detector"
	"go.trai.ch/piff/internal/build"
	"go.trai.ch/piff/internal/core/domain"
)

// CLI represents the command line interface for piff.
type CLI struct {
	app             Application
	rootCmd         *cobra.Command
	stdinIsTerminal func() bool
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts domain.Options) error
}

// Option configures a CLI.
type Option func(*CLI)

// WithStdinTerminal replaces the check for an interactive standard input.
// Used for testing.
func WithStdinTerminal(isTerminal func() bool) Option {
	return func(c *CLI) {
		c.stdinIsTerminal = isTerminal
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	c := &CLI{
		app:             a,
		stdinIsTerminal: detector.StdinIsTerminal,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd := &cobra.Command{
		Use:           "piff [patterns...]",
		Short:         "Transpile piff sources to PHP",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runRoot,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show this help"

	rootCmd.SetUsageTemplate(usage)
	rootCmd.SetHelpTemplate(usage)

	rootCmd.Flags().BoolP("watch", "w", false, "Recompile files as they are added or changed")
	rootCmd.Flags().BoolP("force", "f", false, "Recompile even if the output is newer than the source")
	rootCmd.Flags().Bool("format", false, "Rewrite files in place with their formatted source")

	c.rootCmd = rootCmd
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	watch, _ := cmd.Flags().GetBool("watch")
	force, _ := cmd.Flags().GetBool("force")
	format, _ := cmd.Flags().GetBool("format")

	opts, err := buildOptions(args, c.stdinIsTerminal(), watch, force, format)
	if err != nil {
		cmd.PrintErr(cmd.UsageString())
		return err
	}

	return c.app.Run(cmd.Context(), opts)
}

// buildOptions validates the flag combination and selects the run mode.
// Piped standard input always selects stdin mode.
func buildOptions(patterns []string, stdinIsTerminal, watch, force, format bool) (domain.Options, error) {
	switch {
	case stdinIsTerminal && len(patterns) == 0:
		return domain.Options{}, domain.ErrNoPatterns
	case !stdinIsTerminal && len(patterns) > 0:
		return domain.Options{}, domain.ErrPatternsWithStdin
	case !stdinIsTerminal && watch:
		return domain.Options{}, domain.ErrWatchStdin
	case watch && format:
		return domain.Options{}, domain.ErrWatchAndFormat
	}

	opts := domain.Options{Force: force, Patterns: patterns}
	switch {
	case !stdinIsTerminal:
		opts.Mode = domain.ModeStdin
	case watch:
		opts.Mode = domain.ModeWatch
	case format:
		opts.Mode = domain.ModeFormat
	default:
		opts.Mode = domain.ModeCompile
	}
	return opts, nil
}
