// Package spritepack packs a folder of transparent images into one square
// sprite sheet and describes where every sprite ended up.
package spritepack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/spritepack-go/pkg/spritepack/packer"
)

// Mode selects what a run reports.
type Mode string

const (
	// ModeLog reports human-readable progress lines.
	ModeLog Mode = "log"
	// ModeExport reports only the atlas record for an external importer.
	ModeExport Mode = "export"
)

// SupportedScales are the scale factors a run accepts.
var SupportedScales = []float64{0.25, 0.5, 1}

// Logger receives progress lines. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// Options configures a packing run.
type Options struct {
	// Mode selects log or export reporting.
	Mode Mode
	// Scale resamples every trimmed sprite; one of SupportedScales.
	Scale float64
	// Padding is the gap between sprites in pixels.
	Padding int
	// Sizes are the square sheet sizes, strictly increasing.
	// The last one is the working canvas size.
	Sizes []int
	// ColumnFudgeDivisor divides the mean sprite area in the column heuristic.
	ColumnFudgeDivisor int
	// DefaultColumnCount is used when the heuristic counts no column.
	DefaultColumnCount int
	// Logger receives progress lines. If nil, they are discarded.
	Logger Logger
}

// DefaultOptions returns the options importers expect.
func DefaultOptions() Options {
	return Options{
		Mode:               ModeLog,
		Scale:              1,
		Padding:            packer.DefaultPadding,
		Sizes:              append([]int(nil), packer.DefaultSizes...),
		ColumnFudgeDivisor: packer.DefaultColumnFudgeDivisor,
		DefaultColumnCount: packer.DefaultColumnCount,
	}
}

// ParseScale parses a scale such as "0.5" and checks it is supported.
func ParseScale(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedScale, s)
	}
	if !isSupportedScale(v) {
		return 0, fmt.Errorf("%w: %v (must be one of %v)", ErrUnsupportedScale, v, SupportedScales)
	}
	return v, nil
}

func isSupportedScale(v float64) bool {
	for _, s := range SupportedScales {
		if v == s {
			return true
		}
	}
	return false
}

// Validate reports the first problem with the options.
func (o Options) Validate() error {
	switch o.Mode {
	case ModeLog, ModeExport:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidOptions, o.Mode)
	}
	if !isSupportedScale(o.Scale) {
		return fmt.Errorf("%w: %v (must be one of %v)", ErrUnsupportedScale, o.Scale, SupportedScales)
	}
	if o.Padding < 0 {
		return fmt.Errorf("%w: negative padding %d", ErrInvalidOptions, o.Padding)
	}
	if len(o.Sizes) == 0 {
		return fmt.Errorf("%w: no sheet sizes", ErrInvalidOptions)
	}
	for i, s := range o.Sizes {
		if s <= 0 || (i > 0 && s <= o.Sizes[i-1]) {
			return fmt.Errorf("%w: sheet sizes must be positive and increasing: %v", ErrInvalidOptions, o.Sizes)
		}
	}
	if o.ColumnFudgeDivisor <= 0 {
		return fmt.Errorf("%w: column fudge divisor must be positive", ErrInvalidOptions)
	}
	if o.DefaultColumnCount < 1 {
		return fmt.Errorf("%w: default column count must be at least 1", ErrInvalidOptions)
	}
	return nil
}

// WithMaxSize returns a copy whose sizes stop at limit.
func (o Options) WithMaxSize(limit int) (Options, error) {
	var sizes []int
	for _, s := range o.Sizes {
		if s <= limit {
			sizes = append(sizes, s)
		}
	}
	if len(sizes) == 0 {
		return o, fmt.Errorf("%w: no sheet size is <= %d", ErrInvalidOptions, limit)
	}
	o.Sizes = sizes
	return o, nil
}

// CanvasSize returns the working canvas size.
func (o Options) CanvasSize() int {
	return o.Sizes[len(o.Sizes)-1]
}

// ShouldEmitRecord returns whether the run reports the atlas record.
func (o Options) ShouldEmitRecord() bool {
	return o.Mode == ModeExport
}

func (o Options) logger() Logger {
	if o.Logger == nil {
		return discard{}
	}
	return o.Logger
}

type discard struct{}

func (discard) Printf(string, ...any) {}
