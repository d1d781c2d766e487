package args

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/reeflective/prefix/internal/extract"
	"github.com/reeflective/prefix/internal/validation"
)

// Default bounds used to compute examples when no bounds are set.
const (
	defaultExampleMin = 0
	defaultExampleMax = 100
)

// Number matches the next number, either an integer or a float depending on T.
// The leading numeric token is consumed greedily: "-2.-5" yields -2 for an
// integer and the text "-5" is left, while "25.36" is truncated to 25.
type Number[T constraints.Signed | constraints.Float] struct {
	base
	min, max *float64
	integer  bool
}

// NumberOption is a functional option for Number matchers.
type NumberOption func(b *bounds)

type bounds struct {
	min, max *float64
}

// Min sets the minimum value accepted by the matcher, inclusive.
// It is floored for integer matchers.
func Min(value float64) NumberOption {
	return func(b *bounds) { b.min = &value }
}

// Max sets the maximum value accepted by the matcher, inclusive.
// It is floored for integer matchers.
func Max(value float64) NumberOption {
	return func(b *bounds) { b.max = &value }
}

// NewInt returns a matcher for an integer.
func NewInt(name string, opts ...NumberOption) (*Number[int], error) {
	return NewNumber[int](name, opts...)
}

// NewFloat returns a matcher for a float.
func NewFloat(name string, opts ...NumberOption) (*Number[float64], error) {
	return NewNumber[float64](name, opts...)
}

// NewNumber returns a matcher for any signed integer or float type.
// It fails if a bound is outside of the range of T, or if both bounds
// are set and the minimum is not less than the maximum.
func NewNumber[T constraints.Signed | constraints.Float](name string, opts ...NumberOption) (*Number[T], error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}

	num := &Number[T]{base: b, integer: isInteger[T]()}

	var bnds bounds
	for _, opt := range opts {
		opt(&bnds)
	}

	num.min = num.bound(bnds.min)
	num.max = num.bound(bnds.max)

	lower, upper := limits[T]()

	if num.min != nil {
		if err := validation.Between("Min", *num.min, lower, upper); err != nil {
			return nil, err
		}
	}

	if num.max != nil {
		if err := validation.Between("Max", *num.max, lower, upper); err != nil {
			return nil, err
		}
	}

	if num.min != nil && num.max != nil {
		if err := validation.Less(*num.min, *num.max, num.format(*num.min), num.format(*num.max)); err != nil {
			return nil, err
		}
	}

	return num, nil
}

// Parse returns the number as a T, see ParseValue.
func (n *Number[T]) Parse(text string) (any, string, error) {
	value, rest, err := n.ParseValue(text)
	if err != nil {
		return nil, text, err
	}

	return value, rest, nil
}

// ParseValue is the typed version of Parse. It fails if there is no leading
// number in the text, or if the number is outside of the matcher's bounds.
func (n *Number[T]) ParseValue(text string) (T, string, error) {
	token, rest, found := extract.Number(text)
	if !found {
		return 0, text, NotFound()
	}

	value, converted := n.convert(token)
	if !converted {
		return 0, text, NotFound()
	}

	if n.min != nil && float64(value) < *n.min {
		return 0, text, Constraint(fmt.Sprintf("'%s' cannot be less than '%s'", token, n.format(*n.min)))
	}

	if n.max != nil && float64(value) > *n.max {
		return 0, text, Constraint(fmt.Sprintf("'%s' cannot be more than '%s'", token, n.format(*n.max)))
	}

	return value, rest, nil
}

// Help returns the argument syntax, like `<Age {int 0~99}>` or `<Height {float >0.5}>`.
func (n *Number[T]) Help() string {
	kind := "float"
	if n.integer {
		kind = "int"
	}

	switch {
	case n.min != nil && n.max != nil:
		return fmt.Sprintf("<%s {%s %s~%s}>", n.name, kind, n.format(*n.min), n.format(*n.max))
	case n.min != nil:
		return fmt.Sprintf("<%s {%s >%s}>", n.name, kind, n.format(*n.min))
	case n.max != nil:
		return fmt.Sprintf("<%s {%s <%s}>", n.name, kind, n.format(*n.max))
	default:
		return fmt.Sprintf("<%s {%s}>", n.name, kind)
	}
}

// Example returns the middle of the bounds, which default to 0 and 100.
// Floats are printed with 2 decimals when this keeps them within the
// bounds, and in full otherwise. Integers are floored.
func (n *Number[T]) Example() string {
	lower, upper := float64(defaultExampleMin), float64(defaultExampleMax)

	switch {
	case n.min != nil && n.max != nil:
		lower, upper = *n.min, *n.max
	case n.min != nil:
		lower = *n.min
		if lower >= upper {
			upper = lower + defaultExampleMax
		}
	case n.max != nil:
		upper = *n.max
		if upper <= lower {
			lower = upper - defaultExampleMax
		}
	}

	lowest, highest := limits[T]()
	lower, upper = max(lower, lowest), min(upper, highest)

	// Halves do not overflow.
	mid := min(max(lower/2+upper/2, lower), upper)

	if n.integer {
		return strconv.FormatInt(int64(math.Floor(mid)), 10)
	}

	if example := fmt.Sprintf("%.2f", mid); n.accepts(example) {
		return example
	}

	return extract.FormatFloat(mid)
}

// accepts returns true if the text is parsed into a number within the bounds.
func (n *Number[T]) accepts(text string) bool {
	_, _, err := n.ParseValue(text)

	return err == nil
}

// convert parses the longest valid number prefix of a token.
func (n *Number[T]) convert(token string) (T, bool) {
	if !n.integer {
		value, ok := extract.Float(token)

		return T(value), ok
	}

	value, ok := extract.Int(token)
	if !ok || int64(T(value)) != value {
		return 0, false
	}

	return T(value), true
}

// bound floors a bound for integer matchers.
func (n *Number[T]) bound(value *float64) *float64 {
	if value == nil || !n.integer {
		return value
	}

	floored := math.Floor(*value)

	return &floored
}

func (n *Number[T]) format(value float64) string {
	return extract.FormatFloat(value)
}

// limits returns the range of values representable by T.
// For integers, both limits are integers converting to T exactly.
func limits[T constraints.Signed | constraints.Float]() (lower, upper float64) {
	bits := reflect.TypeFor[T]().Bits()

	switch {
	case !isInteger[T]() && bits == 32:
		return -math.MaxFloat32, math.MaxFloat32
	case !isInteger[T]():
		return -math.MaxFloat64, math.MaxFloat64
	}

	limit := math.Ldexp(1, bits-1)

	return -limit, math.Floor(math.Nextafter(limit, 0))
}

func isInteger[T constraints.Signed | constraints.Float]() bool {
	var zero T

	switch any(zero).(type) {
	case float32, float64:
		return false
	default:
		return true
	}
}
