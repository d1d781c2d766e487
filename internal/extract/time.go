package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Time units, in seconds.
const (
	Second int64 = 1
	Minute       = 60 * Second
	Hour         = 60 * Minute
	Day          = 24 * Hour
)

// timeToken matches times like 1d, 12h, 5m or 10s. No sign and no decimals.
var timeToken = regexp.MustCompile(`^(\d+)([a-z])`)

// units maps each time unit letter to its value in seconds.
var units = map[string]int64{
	"s": Second,
	"m": Minute,
	"h": Hour,
	"d": Day,
}

// Duration is a time token decomposed in its parts.
type Duration struct {
	Token   string // The token as written, like 20m
	Amount  int64  // The number of units
	Unit    string // The unit letter
	Seconds int64  // The total value in seconds
}

// Time scans the leading time token of the trimmed text, returning it along
// with the remaining text. It returns false if there is no token, if the unit
// is not one of s, m, h or d, or if the value does not fit in seconds.
func Time(text string) (dur Duration, rest string, found bool) {
	matches := timeToken.FindStringSubmatch(strings.TrimSpace(text))
	if matches == nil {
		return dur, text, false
	}

	unit, known := units[matches[2]]
	if !known {
		return dur, text, false
	}

	amount, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil || amount > math.MaxInt64/unit {
		return dur, text, false
	}

	dur = Duration{
		Token:   matches[0],
		Amount:  amount,
		Unit:    matches[2],
		Seconds: amount * unit,
	}

	return dur, strings.TrimSpace(strings.Replace(text, matches[0], "", 1)), true
}

// IsTime returns true if the entire string is a valid time token.
func IsTime(value string) bool {
	dur, rest, found := Time(value)

	return found && rest == "" && dur.Token == value
}

// UnitSeconds returns the number of seconds in a unit letter, or 0.
func UnitSeconds(unit string) int64 {
	return units[unit]
}
