package args

import (
	"fmt"
	"regexp"
)

// emojiPattern matches either a unicode emoji (with an optional variation
// selector), or a custom Discord emoji like <:name:id> or <a:name:id>.
var emojiPattern = regexp.MustCompile(
	`(?:\x{00a9}|\x{00ae}|[\x{2000}-\x{3300}]|[\x{1F000}-\x{1FBFF}])\x{FE0F}?|<a?:\w+:\d+>`)

// Emoji matches a unicode or custom Discord emoji, and yields it as a string.
type Emoji struct {
	base
	pattern
}

// NewEmoji returns an emoji matcher.
func NewEmoji(name string) (*Emoji, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}

	return &Emoji{base: b, pattern: pattern{re: emojiPattern}}, nil
}

// Parse returns the emoji as a string.
func (e *Emoji) Parse(text string) (any, string, error) {
	value, rest, err := e.extract(text)
	if err != nil {
		return nil, text, err
	}

	return value, rest, nil
}

// Help returns the argument syntax, like `Reaction {emoji}`.
func (e *Emoji) Help() string {
	return fmt.Sprintf("%s {emoji}", e.name)
}

// Example returns a slightly smiling face.
func (e *Emoji) Example() string {
	return "🙂"
}
