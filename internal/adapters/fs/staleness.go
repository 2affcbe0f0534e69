package fs

import (
	"os"
	"time"

	"go.trai.ch/piff/internal/core/ports"
)

var _ ports.StalenessOracle = (*MTimeOracle)(nil)

// MTimeOracle decides staleness by comparing modification times.
type MTimeOracle struct {
	force bool
}

// NewStalenessOracle creates a new MTimeOracle. With force set every source is
// considered stale and the filesystem is never consulted.
func NewStalenessOracle(force bool) *MTimeOracle {
	return &MTimeOracle{force: force}
}

// NeedsCompile reports whether source was modified after output.
// A timestamp that cannot be read counts as the zero time, so a missing or
// unreadable output is always stale. Equal timestamps are not stale.
func (o *MTimeOracle) NeedsCompile(source, output string) bool {
	if o.force {
		return true
	}
	return modTime(source).After(modTime(output))
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
