package validation

import (
	"math"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/reeflective/prefix/internal/errors"
)

func TestName(t *testing.T) {
	t.Parallel()

	require.NoError(t, Name("Age"))
	require.EqualError(t, Name(""), "Arg name '' not provided")
	require.EqualError(t, Name("Ag"), "Arg name 'Ag' should be 3+ characters")
	require.ErrorIs(t, Name("Ag"), errs.ErrDefinition)
}

func TestFlagLong(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg  string
		want bool
	}{
		{"--age", true},
		{"--ae", true},
		{"age", false},
		{"-age", false},
		{"---age", false},
		{"--age1", false},
		{"--AGE", false},
		{"--a", false},
	}
	for _, tt := range tests {
		err := FlagLong(tt.arg)
		if tt.want {
			assert.NoError(t, err, "for %v", tt.arg)
		} else {
			assert.EqualError(t, err, "Long command '"+tt.arg+"' must be in the form --command and have 2+ characters", "for %v", tt.arg)
		}
	}
}

func TestFlagShort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg  string
		want bool
	}{
		{"-a", true},
		{"-ab", true},
		{"-abc", true},
		{"a", false},
		{"-abcd", false},
		{"--abc", false},
		{"-A", false},
	}
	for _, tt := range tests {
		err := FlagShort(tt.arg)
		if tt.want {
			assert.NoError(t, err, "for %v", tt.arg)
		} else {
			assert.EqualError(t, err, "Short command '"+tt.arg+"' must be in the form -cmd and have 1-3 characters", "for %v", tt.arg)
		}
	}
}

func TestTimeUnit(t *testing.T) {
	t.Parallel()
	test := require.New(t)

	test.NoError(TimeUnit("Min", "20m"))
	test.EqualError(TimeUnit("Min", "5"), "Min value '5' must be a time unit")
	test.EqualError(TimeUnit("Max", "5.0m"), "Max value '5.0m' must be a time unit")
	test.EqualError(TimeUnit("Max", "1w"), "Max value '1w' must be a time unit")
}

func TestLess(t *testing.T) {
	t.Parallel()
	test := require.New(t)

	test.NoError(Less(int64(119), int64(120), "119s", "2m"))
	test.EqualError(Less(int64(120), int64(120), "120s", "2m"), "Min value '120s' must be less than '2m'")
	test.NoError(Less(-1.5, 1.5, "-1.5", "1.5"))
	test.EqualError(Less(10.0, 5.0, "10", "5"), "Min value '10' must be less than '5'")
}

func TestBetween(t *testing.T) {
	t.Parallel()
	test := require.New(t)

	test.NoError(Between("Min", -128, -128, 127))
	test.NoError(Between("Max", 127, -128, 127))
	test.EqualError(Between("Max", 128, -128, 127), "Max value '128' must be between '-128' and '127'")
	test.EqualError(Between("Min", -129, -128, 127), "Min value '-129' must be between '-128' and '127'")
	test.ErrorIs(Between("Min", math.NaN(), -128, 127), errs.ErrDefinition)
}

func TestPositive(t *testing.T) {
	t.Parallel()
	test := require.New(t)

	test.NoError(Positive(0))
	test.EqualError(Positive(-1), "Argument with value '-1' must be positive")
	test.NoError(GreaterThanZero(1))
	test.EqualError(GreaterThanZero(0), "Argument with value '0' must be greater than '0'")
}

func TestUnwrapValidatorErrors(t *testing.T) {
	t.Parallel()

	var fields validator.ValidationErrors
	require.ErrorAs(t, FlagLong("age"), &fields)
	require.Equal(t, TagFlagLong, fields[0].Tag())
}

func TestStruct(t *testing.T) {
	t.Parallel()

	type flag struct {
		Long string `validate:"flaglong"`
	}

	type definition struct {
		Prefix string `validate:"required"`
		Flags  []flag `validate:"dive"`
	}

	require.NoError(t, Struct(definition{Prefix: "!cmd", Flags: []flag{{Long: "--yes"}}}))

	err := Struct(definition{Flags: []flag{{Long: "--yes"}, {Long: "-n"}}})
	require.ErrorIs(t, err, errs.ErrDefinition)
	require.EqualError(t, err, "definition.Prefix: invalid value '' (required); definition.Flags[1].Long: invalid value '-n' (flaglong)")

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)

	err = Struct("not a struct")
	require.ErrorIs(t, err, errs.ErrDefinition)
}
