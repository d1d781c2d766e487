package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// numberToken is the greedy leading token (like -5, 5.0, or -2.-5 which
	// stops at the second minus), removed as a whole from the text.
	numberToken = regexp.MustCompile(`^-?[\d.]+`)

	// The longest valid prefixes of a token, for each kind of number.
	intPrefix   = regexp.MustCompile(`^-?\d+`)
	floatPrefix = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
)

// Number scans the leading numeric token of the trimmed text and returns it,
// along with the text from which it has been removed (trimmed).
// The token might not be a valid number as a whole: use Int or Float on it.
func Number(text string) (token, rest string, found bool) {
	token = numberToken.FindString(strings.TrimSpace(text))
	if token == "" {
		return "", text, false
	}

	return token, strings.TrimSpace(strings.Replace(text, token, "", 1)), true
}

// Int converts the longest integer prefix of a number token, thus
// truncating decimals and ignoring any trailing garbage: "25.36" is 25,
// and "-2.-5" is -2. It returns false if the token has no integer prefix.
func Int(token string) (int64, bool) {
	digits := intPrefix.FindString(token)
	if digits == "" {
		return 0, false
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// Float converts the longest decimal prefix of a number token, ignoring
// any trailing garbage: "1.2.3" is 1.2, and ".5" is 0.5.
// It returns false if the token has no decimal prefix.
func Float(token string) (float64, bool) {
	digits := floatPrefix.FindString(token)
	if digits == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// FormatFloat returns the shortest representation of a float,
// without exponent, as used in help and error messages (1.2, 30, -5.6).
func FormatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
