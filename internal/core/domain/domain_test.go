package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/piff/internal/core/domain"
)

func TestNewCompilationUnit(t *testing.T) {
	tests := []struct {
		name   string
		source string
		output string
	}{
		{name: "plain file", source: "foo.piff", output: "foo.php"},
		{name: "nested file", source: "src/app/foo.piff", output: "src/app/foo.php"},
		{name: "only trailing extension replaced", source: "a.piff.d/b.piff", output: "a.piff.d/b.php"},
		{name: "explicit non-source path", source: "notes.txt", output: "notes.txt.php"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := domain.NewCompilationUnit(tt.source)
			assert.Equal(t, tt.source, unit.Source)
			assert.Equal(t, tt.output, unit.Output)
		})
	}
}

func TestIsSource(t *testing.T) {
	assert.True(t, domain.IsSource("foo.piff"))
	assert.True(t, domain.IsSource("dir/foo.piff"))
	assert.False(t, domain.IsSource("foo.php"))
	assert.False(t, domain.IsSource("foo.piff.swp"))
}

func TestSyntaxError_Error(t *testing.T) {
	err := domain.NewSyntaxError("Expected \"}\"", 3, 5)
	assert.Equal(t, "Expected \"}\" (line 3, column 5)", err.Error())

	anon := domain.NewSyntaxError("", 1, 1)
	assert.Equal(t, "syntax error (line 1, column 1)", anon.Error())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "compile", domain.ModeCompile.String())
	assert.Equal(t, "watch", domain.ModeWatch.String())
	assert.Equal(t, "format", domain.ModeFormat.String())
	assert.Equal(t, "stdin", domain.ModeStdin.String())
	assert.Equal(t, "unknown", domain.Mode(42).String())
}

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings()
	assert.Equal(t, domain.DefaultTranspileCommand, s.TranspileCommand)
	assert.Equal(t, domain.DefaultFormatCommand, s.FormatCommand)
	assert.Equal(t, domain.DefaultDebounceWindow, s.DebounceWindow)
	assert.Equal(t, []string{".git", ".jj", "node_modules"}, s.IgnoredDirs)
}
