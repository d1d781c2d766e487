package discord

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/prefix"
	"github.com/reeflective/prefix/args"
)

// sender records replies instead of sending them.
type sender struct {
	mu      sync.Mutex
	replies []reply
	err     error
}

type reply struct {
	channelID string
	content   string
	messageID string
}

func (s *sender) ChannelMessageSendReply(channelID, content string, reference *discordgo.MessageReference,
	_ ...discordgo.RequestOption,
) (*discordgo.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	s.replies = append(s.replies, reply{channelID: channelID, content: content, messageID: reference.MessageID})

	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func message(content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        "m1",
		ChannelID: "c1",
		GuildID:   "g1",
		Content:   content,
		Author:    &discordgo.User{ID: "u1", Username: "jim"},
	}}
}

func newRouter(t *testing.T, handler HandlerFunc, opts ...Option) *Router {
	t.Helper()

	rate, err := prefix.Cmd("!rate").User("User").Int("Rating", args.Min(0), args.Max(10)).Build()
	require.NoError(t, err)

	ping, err := prefix.Cmd("!ping").Build()
	require.NoError(t, err)

	router := NewRouter(opts...)
	router.Handle(rate, handler)
	router.Handle(ping, nil)

	return router
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	var got *Context

	router := newRouter(t, func(ctx *Context) error {
		got = ctx

		return ctx.Reply("rated!")
	})

	fake := &sender{}

	handled, err := router.Dispatch(fake, message("!rate <@!42> 7"))
	require.NoError(t, err)
	require.True(t, handled)
	require.NotNil(t, got)
	require.Equal(t, []any{"42", 7}, got.Values)
	require.Equal(t, "!rate", got.Command.Prefix())
	require.Equal(t, []reply{{channelID: "c1", content: "rated!", messageID: "m1"}}, fake.replies)

	handled, err = router.Dispatch(fake, message("!ping"))
	require.NoError(t, err)
	require.True(t, handled)

	handled, err = router.Dispatch(fake, message("hello there"))
	require.NoError(t, err)
	require.False(t, handled)
	require.Len(t, fake.replies, 1)
}

func TestDispatchReplies(t *testing.T) {
	t.Parallel()

	router := newRouter(t, func(*Context) error {
		t.Error("handler should not be called")

		return nil
	}, WithReplyLimit(0, 1))

	fake := &sender{}

	handled, err := router.Dispatch(fake, message("!rate <@!42> 11"))
	require.NoError(t, err)
	require.True(t, handled)

	handled, err = router.Dispatch(fake, message("!rate --help"))
	require.NoError(t, err)
	require.True(t, handled)

	require.Len(t, fake.replies, 2)
	require.Equal(t, "`<Rating {int 0~10}>` error: '11' cannot be more than '10'. Type `!rate --help` for info.", fake.replies[0].content)
	require.Contains(t, fake.replies[1].content, "**Usage:** `!rate`  `<User {@user}>`  `<Rating {int 0~10}>`")
}

func TestDispatchIgnored(t *testing.T) {
	t.Parallel()

	called := false
	router := newRouter(t, func(*Context) error {
		called = true

		return nil
	})

	fake := &sender{}

	bot := message("!rate <@!42> 7")
	bot.Author.Bot = true

	handled, err := router.Dispatch(fake, bot)
	require.NoError(t, err)
	require.False(t, handled)

	handled, err = router.Dispatch(fake, &discordgo.MessageCreate{Message: &discordgo.Message{Content: "!ping"}})
	require.NoError(t, err)
	require.False(t, handled)

	handled, err = router.Dispatch(fake, nil)
	require.NoError(t, err)
	require.False(t, handled)
	require.False(t, called)

	// Unless bots are allowed.
	router = newRouter(t, func(*Context) error {
		called = true

		return nil
	}, AllowBots())

	handled, err = router.Dispatch(fake, bot)
	require.NoError(t, err)
	require.True(t, handled)
	require.True(t, called)
}

func TestDispatchErrors(t *testing.T) {
	t.Parallel()

	errHandler := errors.New("database down")

	router := newRouter(t, func(*Context) error { return errHandler })

	_, err := router.Dispatch(&sender{}, message("!rate 42 7"))
	require.ErrorIs(t, err, errHandler)
	require.ErrorContains(t, err, "command '!rate'")

	errSend := errors.New("missing permissions")

	_, err = router.Dispatch(&sender{err: errSend}, message("!rate"))
	require.ErrorIs(t, err, errSend)
	require.ErrorContains(t, err, "failed to reply")
}

func TestReplyRateLimit(t *testing.T) {
	t.Parallel()

	router := newRouter(t, nil, WithReplyLimit(time.Hour, 2))
	fake := &sender{}

	for range 2 {
		_, err := router.Dispatch(fake, message("!rate -h"))
		require.NoError(t, err)
	}

	_, err := router.Dispatch(fake, message("!rate -h"))
	require.ErrorIs(t, err, ErrRateLimited)
	require.Len(t, fake.replies, 2)

	// Other channels have their own limit.
	other := message("!rate -h")
	other.ChannelID = "c2"

	_, err = router.Dispatch(fake, other)
	require.NoError(t, err)
	require.Len(t, fake.replies, 3)
}

func TestCommands(t *testing.T) {
	t.Parallel()

	router := newRouter(t, nil)

	commands := router.Commands()
	require.Len(t, commands, 2)
	require.Equal(t, "!rate", commands[0].Prefix())
	require.Equal(t, "!ping", commands[1].Prefix())
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "short", truncate("short"))

	long := strings.Repeat("é", maxMessageLength+10)
	truncated := truncate(long)
	require.Len(t, []rune(truncated), maxMessageLength)
	require.True(t, strings.HasSuffix(truncated, "…"))
}
