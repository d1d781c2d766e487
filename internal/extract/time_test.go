package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTime(t *testing.T) {
	t.Parallel()

	tt := []struct {
		text       string
		expSeconds int64
		expRest    string
		expFound   bool
	}{
		{text: "25s", expSeconds: 25, expFound: true},
		{text: "25m later", expSeconds: 1500, expRest: "later", expFound: true},
		{text: "25h", expSeconds: 90000, expFound: true},
		{text: "25d", expSeconds: 2160000, expFound: true},
		{text: "000002s", expSeconds: 2, expFound: true},
		{text: "123456789123456789s", expSeconds: 123456789123456789, expFound: true},
		{text: "123456789123456789d", expRest: "123456789123456789d"},
		{text: "1e5s", expRest: "1e5s"},
		{text: "25", expRest: "25"},
		{text: "-25d", expRest: "-25d"},
		{text: "1.5d", expRest: "1.5d"},
		{text: "two", expRest: "two"},
	}

	for _, test := range tt {
		dur, rest, found := Time(test.text)
		require.Equal(t, test.expFound, found, "for %q", test.text)
		require.Equal(t, test.expSeconds, dur.Seconds, "for %q", test.text)
		require.Equal(t, test.expRest, rest, "for %q", test.text)
	}
}

func TestIsTime(t *testing.T) {
	t.Parallel()

	valid := []string{"20m", "1d", "0s", "48h"}
	invalid := []string{"5", "5.0m", "-5d", "1w", "20m ", "20mx", ""}

	for _, value := range valid {
		require.True(t, IsTime(value), "for %q", value)
	}

	for _, value := range invalid {
		require.False(t, IsTime(value), "for %q", value)
	}
}
