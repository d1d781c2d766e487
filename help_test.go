package prefix

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reeflective/prefix/args"
)

func TestHelp(t *testing.T) {
	t.Parallel()

	cmd := Cmd("!rate").
		Named("Rate your friends!").
		User("User").
		Int("Rating", args.Min(0), args.Max(10)).
		FlagTrue("Is Public", "--public", "-p").
		Text("Reason").
		MustBuild()

	require.Equal(t, "`!rate`  **Rate your friends!**", cmd.Title())
	require.Equal(t, "`!rate`  `<User {@user}>`  `<Rating {int 0~10}>`  `Is Public {--public/-p}`  `<Reason {text}>`", cmd.Usage())
	require.Equal(t, "`!rate <@12345> 5 lorem ipsum --public`", cmd.Example())

	expected := "`!rate`  **Rate your friends!**\n" +
		"**Usage:** `!rate`  `<User {@user}>`  `<Rating {int 0~10}>`  `Is Public {--public/-p}`  `<Reason {text}>`\n" +
		"**Example:** `!rate <@12345> 5 lorem ipsum --public`"
	require.Equal(t, expected, cmd.Help())

	var buf bytes.Buffer
	require.NoError(t, cmd.WriteHelp(&buf))
	require.Equal(t, expected+"\n", buf.String())
	require.NoError(t, cmd.WriteHelp(nil))
}

func TestHelpEmptyCommand(t *testing.T) {
	t.Parallel()

	cmd := New("!cmd")
	require.Equal(t, "`!cmd`", cmd.Title())
	require.Equal(t, "`!cmd`", cmd.Usage())
	require.Equal(t, "`!cmd`", cmd.Example())
}

// The example of a command is always a valid message for it.
func TestExampleParses(t *testing.T) {
	t.Parallel()

	tt := []Builder{
		Cmd("!rate").User("User").Int("Rating", args.Min(0), args.Max(10)).Text("Reason").Flag("Is Public", "--public"),
		Cmd("!cmd").FlagFalse("Nup", "--nup", "-n").Words("Name", 3).Float("Height", args.Min(1.5), args.Max(11.5)),
		Cmd("$send").User("Vendor").Float("Amount").Time("Delay", args.MinTime("20m")).Emoji("Emoji").Rest("Notes"),
		Cmd("!cmd").Role("Role").Channel("Channel").URL("Website").Word("Word"),
	}

	for _, builder := range tt {
		cmd := builder.MustBuild()
		example := cmd.Example()

		values, err := cmd.Parse(example[1 : len(example)-1])
		require.NoError(t, err, example)
		require.Len(t, values, len(cmd.Matchers()))

		for _, value := range values {
			require.NotNil(t, value)
		}
	}
}

func TestWroteHelp(t *testing.T) {
	t.Parallel()

	require.False(t, WroteHelp(nil))
	require.False(t, WroteHelp(errors.New("help")))
	require.False(t, WroteHelp(newError(ErrMatch, "match")))
	require.True(t, WroteHelp(newError(ErrHelp, "help")))
}

func TestErrorType(t *testing.T) {
	t.Parallel()

	require.Equal(t, "unknown", ErrUnknown.String())
	require.Equal(t, "help", ErrHelp.Error())
	require.Equal(t, "definition", ErrDefinition.String())
	require.Equal(t, "match", ErrMatch.String())
	require.Equal(t, "unrecognized error type", ErrorType(42).String())

	require.Empty(t, Message(nil))
	require.Empty(t, Message(errors.New("raw")))
}
