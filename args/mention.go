package args

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// exampleID is the snowflake used in mention examples.
const exampleID = "12345"

// mentionKind identifies what a Discord mention refers to.
type mentionKind int

const (
	mentionUser mentionKind = iota
	mentionRole
	mentionChannel
)

// Mention patterns also accept bare IDs, like 12345.
// See https://discord.com/developers/docs/reference#message-formatting
var mentionPatterns = map[mentionKind]*regexp.Regexp{
	mentionUser:    regexp.MustCompile(`^(?:<@!?\d+>|\d+\b)`),
	mentionRole:    regexp.MustCompile(`^(?:<@&\d+>|\d+\b)`),
	mentionChannel: regexp.MustCompile(`^(?:<@?#\d+>|\d+\b)`),
}

// Mention matches a Discord user, role or channel mention at the start of the
// text, like <@!12345>, <@&12345> or <#12345>, and yields the ID as a string.
type Mention struct {
	base
	pattern
	kind mentionKind
}

// NewUserMention returns a matcher for a user mention, like <@12345> or <@!12345>.
func NewUserMention(name string) (*Mention, error) {
	return newMention(name, mentionUser)
}

// NewRoleMention returns a matcher for a role mention, like <@&12345>.
func NewRoleMention(name string) (*Mention, error) {
	return newMention(name, mentionRole)
}

// NewChannelMention returns a matcher for a channel mention, like <#12345>.
func NewChannelMention(name string) (*Mention, error) {
	return newMention(name, mentionChannel)
}

func newMention(name string, kind mentionKind) (*Mention, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}

	mention := &Mention{
		base:    b,
		pattern: pattern{re: mentionPatterns[kind]},
		kind:    kind,
	}

	return mention, nil
}

// Parse returns the ID of the mentioned user, role or channel.
func (m *Mention) Parse(text string) (any, string, error) {
	value, rest, err := m.extract(text)
	if err != nil {
		return nil, text, err
	}

	return strings.Trim(value, "<@!&#>"), rest, nil
}

// Help returns the argument syntax, like `<User {@user}>`.
func (m *Mention) Help() string {
	switch m.kind {
	case mentionRole:
		return fmt.Sprintf("<%s {@role}>", m.name)
	case mentionChannel:
		return fmt.Sprintf("<%s {#channel}>", m.name)
	default:
		return fmt.Sprintf("<%s {@user}>", m.name)
	}
}

// Example returns a mention as formatted by Discord clients.
func (m *Mention) Example() string {
	switch m.kind {
	case mentionRole:
		return (&discordgo.Role{ID: exampleID}).Mention()
	case mentionChannel:
		return (&discordgo.Channel{ID: exampleID}).Mention()
	default:
		return (&discordgo.User{ID: exampleID}).Mention()
	}
}
