// Package reporter renders syntax errors as source diagnostics.
package reporter

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/piff/internal/core/domain"
	"go.trai.ch/piff/internal/core/ports"
	"go.trai.ch/piff/internal/ui/output"
	"go.trai.ch/piff/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.ErrorReporter = (*Reporter)(nil)

// Reporter implements ports.ErrorReporter. It re-reads the failing source and
// prints the offending line with a caret under the reported column.
type Reporter struct {
	out *termenv.Output
}

// New creates a Reporter writing to w. A nil writer means stderr.
func New(w io.Writer) *Reporter {
	return &Reporter{out: output.New(w)}
}

// Report writes the diagnostic for err located in path.
func (r *Reporter) Report(path string, err *domain.SyntaxError) error {
	// #nosec G304 -- path is a resolved source file
	src, readErr := os.ReadFile(path)
	if readErr != nil {
		return zerr.With(zerr.Wrap(readErr, domain.ErrReadFailed.Error()), "path", path)
	}

	line := err.Location.Start.Line
	column := max(err.Location.Start.Column-1, 0)

	var b strings.Builder
	b.WriteString(style.Header(r.out, "Syntax Error "+path+" line "+strconv.Itoa(line), style.Red))
	b.WriteByte('\n')
	b.WriteString(sourceLine(string(src), line))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", column) + style.Caret)
	b.WriteString("\n\n")

	_, writeErr := r.out.WriteString(b.String())
	return writeErr
}

// sourceLine returns the 1-based line of src, or "" when out of range.
func sourceLine(src string, line int) string {
	lines := strings.Split(src, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[line-1], "\r")
}
