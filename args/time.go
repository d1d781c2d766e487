package args

import (
	"fmt"
	"math"
	"slices"

	"github.com/reeflective/prefix/internal/extract"
	"github.com/reeflective/prefix/internal/validation"
)

// Time matches times like 1d, 12h, 5m or 10s, and yields their value in seconds
// as an int64. Decimal and negative values are not accepted.
type Time struct {
	base
	min, max         string
	minSecs, maxSecs int64
}

// TimeOption is a functional option for Time matchers.
type TimeOption func(t *Time)

// MinTime sets the minimum time accepted, inclusive, like 20m.
func MinTime(value string) TimeOption {
	return func(t *Time) { t.min = value }
}

// MaxTime sets the maximum time accepted, inclusive, like 1d.
func MaxTime(value string) TimeOption {
	return func(t *Time) { t.max = value }
}

// NewTime returns a time matcher. Bounds must be valid times,
// and the minimum must be less than the maximum if both are set.
func NewTime(name string, opts ...TimeOption) (*Time, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}

	tm := &Time{base: b, minSecs: -1, maxSecs: -1}

	for _, opt := range opts {
		opt(tm)
	}

	if tm.min != "" {
		if err := validation.TimeUnit("Min", tm.min); err != nil {
			return nil, err
		}

		tm.minSecs = mustSeconds(tm.min)
	}

	if tm.max != "" {
		if err := validation.TimeUnit("Max", tm.max); err != nil {
			return nil, err
		}

		tm.maxSecs = mustSeconds(tm.max)
	}

	if tm.min != "" && tm.max != "" {
		if err := validation.Less(tm.minSecs, tm.maxSecs, tm.min, tm.max); err != nil {
			return nil, err
		}
	}

	return tm, nil
}

// Parse returns the time in seconds, see ParseValue.
func (t *Time) Parse(text string) (any, string, error) {
	value, rest, err := t.ParseValue(text)
	if err != nil {
		return nil, text, err
	}

	return value, rest, nil
}

// ParseValue is the typed version of Parse. It fails if there is no leading
// time in the text, if its unit is unknown or if it is outside of the bounds.
func (t *Time) ParseValue(text string) (int64, string, error) {
	dur, rest, found := extract.Time(text)
	if !found {
		return 0, text, NotFound()
	}

	if t.minSecs != -1 && dur.Seconds < t.minSecs {
		return 0, text, Constraint(fmt.Sprintf("'%s' cannot be less than '%s'", dur.Token, t.min))
	}

	if t.maxSecs != -1 && dur.Seconds > t.maxSecs {
		return 0, text, Constraint(fmt.Sprintf("'%s' cannot be more than '%s'", dur.Token, t.max))
	}

	return dur.Seconds, rest, nil
}

// Help returns the argument syntax, like `Delay {time 20m~1d}`.
func (t *Time) Help() string {
	switch {
	case t.min != "" && t.max != "":
		return fmt.Sprintf("%s {time %s~%s}", t.name, t.min, t.max)
	case t.min != "":
		return fmt.Sprintf("%s {time >%s}", t.name, t.min)
	case t.max != "":
		return fmt.Sprintf("%s {time <%s}", t.name, t.max)
	default:
		return fmt.Sprintf("%s {time}", t.name)
	}
}

// Example returns a time between the bounds, in the unit of the minimum
// (or of the maximum, or seconds), or in a finer one if the time is less
// than one such unit. The minimum is a multiple of all units finer than
// its own, so truncating to them never goes below it.
func (t *Time) Example() string {
	unit := "s"

	if dur, _, found := extract.Time(t.max); found {
		unit = dur.Unit
	}

	if dur, _, found := extract.Time(t.min); found {
		unit = dur.Unit
	}

	lower := max(t.minSecs, 0)
	upper := t.maxSecs

	if upper == -1 {
		switch {
		case lower == 0:
			upper = 60
		case lower > math.MaxInt64/3:
			upper = math.MaxInt64
		default:
			upper = lower * 3
		}
	}

	mid := lower + (upper-lower)/2

	// A midpoint below one unit would show as zero: use finer units.
	for i := slices.Index(exampleUnits, unit) + 1; mid < extract.UnitSeconds(unit) && i < len(exampleUnits); i++ {
		unit = exampleUnits[i]
	}

	return fmt.Sprintf("%d%s", mid/extract.UnitSeconds(unit), unit)
}

// exampleUnits are the units used in examples, from the coarsest.
var exampleUnits = []string{"d", "h", "m", "s"}

func mustSeconds(value string) int64 {
	dur, _, _ := extract.Time(value)

	return dur.Seconds
}
