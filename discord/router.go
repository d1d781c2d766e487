// Package discord dispatches Discord messages to prefix commands.
//
// A Router holds commands along with their handlers. When a message starts
// with the prefix of one of them, it is parsed and either passed to the
// handler, or answered with the help or the parsing error of the command.
// Replies are rate limited per channel, so that users cannot make the bot
// flood a channel with help messages.
package discord

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/reeflective/prefix"
)

// Defaults for reply rate limiting, per channel.
const (
	DefaultReplyEvery = 2 * time.Second
	DefaultReplyBurst = 3
)

// maxMessageLength is the maximum length of a Discord message, in characters.
const maxMessageLength = 2000

// ErrRateLimited is returned when a reply is dropped because
// too many replies have been sent to the channel recently.
var ErrRateLimited = errors.New("reply rate limited")

// Sender sends replies to Discord channels.
// It is implemented by *discordgo.Session.
type Sender interface {
	ChannelMessageSendReply(channelID, content string, reference *discordgo.MessageReference,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// HandlerFunc handles a successfully parsed command.
type HandlerFunc func(ctx *Context) error

// Context is passed to command handlers.
type Context struct {
	// Message is the message which triggered the command.
	Message *discordgo.MessageCreate

	// Command is the command matching the message.
	Command *prefix.Command

	// Values are the values parsed by the command, in the order
	// its matchers were added.
	Values []any

	sender Sender
	router *Router
}

// Reply replies to the message of the command, unless rate limited.
func (c *Context) Reply(content string) error {
	return c.router.reply(c.sender, c.Message, content)
}

// Router dispatches messages to the first command whose prefix they start with.
// Commands are tried in the order they were added, so commands whose prefix
// starts with the prefix of another one must be added first.
type Router struct {
	routes     []route
	log        *zap.Logger
	every      rate.Limit
	burst      int
	ignoreBots bool

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

type route struct {
	cmd     *prefix.Command
	handler HandlerFunc
}

// Option is a functional option for a Router.
type Option func(r *Router)

// WithLogger sets the logger used to report dispatch failures.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.log = logger
		}
	}
}

// WithReplyLimit allows one reply every interval per channel, with bursts
// of up to burst replies. A zero interval disables rate limiting.
func WithReplyLimit(every time.Duration, burst int) Option {
	return func(r *Router) {
		r.every = rate.Every(every)
		r.burst = max(burst, 1)
	}
}

// AllowBots makes the router handle messages sent by bots, which are ignored by default.
func AllowBots() Option {
	return func(r *Router) { r.ignoreBots = false }
}

// NewRouter returns a router without commands.
func NewRouter(opts ...Option) *Router {
	router := &Router{
		log:        zap.NewNop(),
		every:      rate.Every(DefaultReplyEvery),
		burst:      DefaultReplyBurst,
		ignoreBots: true,
		limiters:   make(map[string]*rate.Limiter),
	}

	for _, opt := range opts {
		opt(router)
	}

	return router
}

// Handle adds a command to the router. The handler can be nil,
// in which case parsed commands are only checked and answered
// with help or errors.
func (r *Router) Handle(cmd *prefix.Command, handler HandlerFunc) {
	r.routes = append(r.routes, route{cmd: cmd, handler: handler})
}

// Commands returns the commands of the router, in order.
func (r *Router) Commands() []*prefix.Command {
	commands := make([]*prefix.Command, len(r.routes))
	for i, route := range r.routes {
		commands[i] = route.cmd
	}

	return commands
}

// Dispatch parses the message with the first matching command, and either
// calls its handler or replies with the command help or parsing error. It
// returns false if no command matched the message.
func (r *Router) Dispatch(s Sender, m *discordgo.MessageCreate) (bool, error) {
	if m == nil || m.Message == nil || m.Author == nil {
		return false, nil
	}

	if m.Author.Bot && r.ignoreBots {
		return false, nil
	}

	for _, route := range r.routes {
		values, err := route.cmd.Parse(m.Content)
		if values == nil && err == nil {
			continue
		}

		if err != nil {
			if message := prefix.Message(err); message != "" {
				return true, r.reply(s, m, message)
			}

			return true, err
		}

		if route.handler == nil {
			return true, nil
		}

		ctx := &Context{
			Message: m,
			Command: route.cmd,
			Values:  values,
			sender:  s,
			router:  r,
		}

		if err := route.handler(ctx); err != nil {
			return true, fmt.Errorf("command '%s': %w", route.cmd.Prefix(), err)
		}

		return true, nil
	}

	return false, nil
}

// MessageCreate is a discordgo event handler dispatching messages,
// to be registered with (*discordgo.Session).AddHandler.
// Messages sent by the bot itself are ignored.
func (r *Router) MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author != nil && s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	handled, err := r.Dispatch(s, m)

	switch {
	case errors.Is(err, ErrRateLimited):
		r.log.Debug("Reply dropped", zap.String("channel", m.ChannelID), zap.Error(err))
	case err != nil:
		r.log.Error("Failed to handle command", zap.String("channel", m.ChannelID), zap.String("message", m.ID), zap.Error(err))
	case handled:
		r.log.Debug("Handled command", zap.String("channel", m.ChannelID), zap.String("message", m.ID))
	}
}

// reply replies to a message, if the channel rate limit allows it.
func (r *Router) reply(s Sender, m *discordgo.MessageCreate, content string) error {
	if !r.limiter(m.ChannelID).Allow() {
		return ErrRateLimited
	}

	if _, err := s.ChannelMessageSendReply(m.ChannelID, truncate(content), m.Reference()); err != nil {
		return fmt.Errorf("failed to reply: %w", err)
	}

	return nil
}

func (r *Router) limiter(channelID string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	limiter, found := r.limiters[channelID]
	if !found {
		limiter = rate.NewLimiter(r.every, r.burst)
		r.limiters[channelID] = limiter
	}

	return limiter
}

// truncate shortens a message to the maximum length accepted by Discord.
func truncate(content string) string {
	runes := []rune(content)
	if len(runes) <= maxMessageLength {
		return content
	}

	return string(runes[:maxMessageLength-1]) + "…"
}
