package args

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMentionParse(t *testing.T) {
	t.Parallel()

	user := Must(NewUserMention("User"))
	role := Must(NewRoleMention("Role"))
	channel := Must(NewChannelMention("Channel"))

	tt := []struct {
		name    string
		matcher Matcher
		text    string
		expVal  any
		expRest string
	}{
		{name: "user", matcher: user, text: "<@12345>", expVal: "12345"},
		{name: "user nickname", matcher: user, text: "<@!12345> 10 Kang", expVal: "12345", expRest: "10 Kang"},
		{name: "user id", matcher: user, text: "12345 hey", expVal: "12345", expRest: "hey"},
		{name: "user invalid", matcher: user, text: "<@!hey>", expRest: "<@!hey>"},
		{name: "user not first", matcher: user, text: "hey <@12345>", expRest: "hey <@12345>"},
		{name: "user is not role", matcher: user, text: "<@&12345>", expRest: "<@&12345>"},
		{name: "role", matcher: role, text: "<@&12345>", expVal: "12345"},
		{name: "role invalid", matcher: role, text: "<@&hey>", expRest: "<@&hey>"},
		{name: "role missing", matcher: role, text: ""},
		{name: "channel", matcher: channel, text: "<#12345> I love you all!", expVal: "12345", expRest: "I love you all!"},
		{name: "channel legacy", matcher: channel, text: "<@#13579>", expVal: "13579"},
		{name: "channel invalid", matcher: channel, text: "<#hey>", expRest: "<#hey>"},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			val, rest, err := test.matcher.Parse(test.text)
			require.Equal(t, test.expRest, rest)

			if test.expVal == nil {
				require.ErrorIs(t, err, ErrNotFound)
				require.EqualError(t, err, "missing or invalid")

				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expVal, val)
		})
	}
}

func TestMentionHelpExample(t *testing.T) {
	t.Parallel()

	tt := []struct {
		matcher    Matcher
		expHelp    string
		expExample string
	}{
		{matcher: Must(NewUserMention("User")), expHelp: "<User {@user}>", expExample: "<@12345>"},
		{matcher: Must(NewRoleMention("Role")), expHelp: "<Role {@role}>", expExample: "<@&12345>"},
		{matcher: Must(NewChannelMention("Channel")), expHelp: "<Channel {#channel}>", expExample: "<#12345>"},
		{matcher: Must(NewURL("Landing Page")), expHelp: "Landing Page {url}", expExample: "https://discord.gg"},
		{matcher: Must(NewEmoji("Emoji")), expHelp: "Emoji {emoji}", expExample: "🙂"},
	}

	for _, test := range tt {
		t.Run(test.expHelp, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, test.expHelp, test.matcher.Help())
			require.Equal(t, test.expExample, test.matcher.Example())
		})
	}
}

func TestURLParse(t *testing.T) {
	t.Parallel()

	tt := []struct {
		text    string
		expVal  any
		expRest string
	}{
		{text: "https://discord.com", expVal: "https://discord.com"},
		{text: "http://discord.com", expVal: "http://discord.com"},
		{text: "www.discord.com", expVal: "www.discord.com"},
		{text: "discord.com", expVal: "discord.com"},
		{text: "https://discord.com/invite?code=abc is here", expVal: "https://discord.com/invite?code=abc", expRest: "is here"},
		{text: "discord", expRest: "discord"},
		{text: "", expRest: ""},
	}

	matcher := Must(NewURL("Landing Page"))

	for _, test := range tt {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			val, rest, err := matcher.Parse(test.text)
			require.Equal(t, test.expRest, rest)

			if test.expVal == nil {
				require.ErrorIs(t, err, ErrNotFound)

				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expVal, val)
		})
	}
}

func TestEmojiParse(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name    string
		text    string
		expVal  any
		expRest string
	}{
		{name: "unicode", text: "🙂", expVal: "🙂"},
		{name: "unicode with selector", text: "❤️ thanks", expVal: "❤️", expRest: "thanks"},
		{name: "copyright", text: "©", expVal: "©"},
		{name: "custom", text: "<:Kangabru:1234567890>", expVal: "<:Kangabru:1234567890>"},
		{name: "animated", text: "<a:party_parrot:42> yay", expVal: "<a:party_parrot:42>", expRest: "yay"},
		{name: "missing", text: ""},
		{name: "text", text: "smile", expRest: "smile"},
	}

	matcher := Must(NewEmoji("Emoji"))

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			val, rest, err := matcher.Parse(test.text)
			require.Equal(t, test.expRest, rest)

			if test.expVal == nil {
				require.ErrorIs(t, err, ErrNotFound)

				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expVal, val)
		})
	}
}
