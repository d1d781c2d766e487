package args

import (
	"fmt"
	"regexp"
)

// urlPattern is permissive: the scheme and www are optional,
// but a top-level domain is required.
var urlPattern = regexp.MustCompile(
	`(http(s)?://.)?(www\.)?[-a-zA-Z0-9@:%._\+~#=]{2,256}\.[a-z]{2,6}\b([-a-zA-Z0-9@:%_\+.~#?&/=]*)`)

// URL matches a url, like https://discord.com, www.discord.com or discord.com.
type URL struct {
	base
	pattern
}

// NewURL returns a url matcher.
func NewURL(name string) (*URL, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}

	return &URL{base: b, pattern: pattern{re: urlPattern}}, nil
}

// Parse returns the url as a string.
func (u *URL) Parse(text string) (any, string, error) {
	value, rest, err := u.extract(text)
	if err != nil {
		return nil, text, err
	}

	return value, rest, nil
}

// Help returns the argument syntax, like `Website {url}`.
func (u *URL) Help() string {
	return fmt.Sprintf("%s {url}", u.name)
}

// Example returns a Discord invite url.
func (u *URL) Example() string {
	return "https://discord.gg"
}
