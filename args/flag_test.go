package args

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlagParse(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name    string
		opts    []FlagOption
		text    string
		expVal  bool
		expRest string
	}{
		{name: "short set", opts: []FlagOption{Short("-a")}, text: "-a", expVal: true},
		{name: "long set", opts: []FlagOption{Short("-a")}, text: "--age", expVal: true},
		{name: "unset", opts: []FlagOption{Short("-a")}, text: "", expVal: false},
		{name: "store false set", opts: []FlagOption{Short("-a"), StoreFalse()}, text: "-a", expVal: false},
		{name: "store false unset", opts: []FlagOption{Short("-a"), StoreFalse()}, text: "", expVal: true},
		{name: "middle", opts: []FlagOption{Short("-a")}, text: "Elon -a Musk", expVal: true, expRest: "Elon  Musk"},
		{name: "end", text: "Elon Musk --age", expVal: true, expRest: "Elon Musk "},
		{name: "glued", opts: []FlagOption{Short("-a")}, text: "Elon-a --ages", expVal: false, expRest: "Elon-a --ages"},
		{name: "first only", text: "--age --age", expVal: true, expRest: " --age"},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			flag := Must(NewFlag("Age", "--age", test.opts...))

			val, rest, err := flag.Parse(test.text)
			require.NoError(t, err)
			require.Equal(t, test.expVal, val)
			require.Equal(t, test.expRest, rest)
		})
	}
}

func TestFlagDefinition(t *testing.T) {
	t.Parallel()

	tt := []struct {
		long   string
		short  string
		expErr string
	}{
		{long: "age", expErr: "Long command 'age' must be in the form --command"},
		{long: "-age", expErr: "Long command '-age' must be in the form --command"},
		{long: "---age", expErr: "Long command '---age' must be in the form --command"},
		{long: "--age1", expErr: "Long command '--age1' must be in the form --command"},
		{long: "--AGE", expErr: "Long command '--AGE' must be in the form --command and have 2+ characters"},
		{long: "--a", expErr: "Long command '--a' must be in the form --command and have 2+ characters"},
		{long: "--ae"},
		{long: "--age", short: "a", expErr: "Short command 'a' must be in the form -cmd"},
		{long: "--age", short: "-a"},
		{long: "--age", short: "-ab"},
		{long: "--age", short: "-abc"},
		{long: "--age", short: "-abcd", expErr: "Short command '-abcd' must be in the form -cmd and have 1-3 characters"},
		{long: "--age", short: "--abc", expErr: "Short command '--abc' must be in the form -cmd and have 1-3 characters"},
		{long: "--age", short: "-A", expErr: "Short command '-A' must be in the form -cmd"},
	}

	for _, test := range tt {
		t.Run(test.long+test.short, func(t *testing.T) {
			t.Parallel()

			var opts []FlagOption
			if test.short != "" {
				opts = append(opts, Short(test.short))
			}

			_, err := NewFlag("Age", test.long, opts...)
			if test.expErr == "" {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, ErrDefinition)
			require.ErrorContains(t, err, test.expErr)
		})
	}
}

func TestFlagHelpExample(t *testing.T) {
	t.Parallel()

	yes := Must(NewFlag("Yes", "--yes", Short("-y")))
	require.Equal(t, "Yes {--yes/-y}", yes.Help())
	require.Equal(t, "--yes", yes.Example())
	require.Equal(t, "--yes", yes.Long())
	require.Equal(t, "-y", yes.Short())

	nup := Must(NewFlag("Nup", "--nup", StoreFalse()))
	require.Equal(t, "Nup {--nup}", nup.Help())
	require.Equal(t, "--nup", nup.Example())
	require.Empty(t, nup.Short())

	help := NewHelpFlag()
	require.Equal(t, "Help {--help/-h}", help.Help())

	val, _ := help.ParseValue("!cmd -h")
	require.True(t, val)
}
