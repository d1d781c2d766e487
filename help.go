package prefix

/*
   prefix - Typed arguments for chat-bot prefix commands
   Copyright (C) 2021 Maxime Landon

   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"errors"
	"io"
	"strings"

	"github.com/reeflective/prefix/args"
)

// --------------------------------------------------------------------------------------------------- //
//                                             Public                                                  //
// --------------------------------------------------------------------------------------------------- //

// Public functions to print structured help messages. All of them use
// the markdown flavor of Discord: code spans and bold titles.

// Help returns the full help of the command: its title,
// its usage and an example, each on their own line.
func (c *Command) Help() string {
	lines := []string{
		c.Title(),
		"**Usage:** " + c.Usage(),
		"**Example:** " + c.Example(),
	}

	return strings.Join(lines, "\n")
}

// WriteHelp writes the command help to the provided writer.
func (c *Command) WriteHelp(writer io.Writer) error {
	if writer == nil {
		return nil
	}

	_, err := io.WriteString(writer, c.Help()+"\n")

	return err
}

// Title returns the command prefix and its name, if any, like
//
//	`!rate`  **Rate your friends!**
func (c *Command) Title() string {
	title := wrap(c.prefix, "`")
	if c.name != "" {
		title += "  " + wrap(c.name, "**")
	}

	return title
}

// Usage returns the command prefix followed by the syntax of each matcher, like
//
//	`!rate`  `<User {@user}>`  `<Score {int 0~10}>`
func (c *Command) Usage() string {
	usage := []string{wrap(c.prefix, "`")}

	for _, m := range c.matchers {
		usage = append(usage, wrap(m.Help(), "`"))
	}

	return strings.Join(usage, "  ")
}

// Example returns a valid example of the command, like `!rate <@12345> 5`.
// Flags are optional and can be anywhere, so they are shown last.
func (c *Command) Example() string {
	var positionals, flags []string

	for _, m := range c.matchers {
		if args.IsFlag(m) {
			flags = append(flags, m.Example())
		} else {
			positionals = append(positionals, m.Example())
		}
	}

	example := append([]string{c.prefix}, positionals...)
	example = append(example, flags...)

	return wrap(strings.Join(example, " "), "`")
}

// WroteHelp is a helper to test the error from Parse() to
// determine if the help message was requested. It is safe
// to call without first checking that error is nil.
func WroteHelp(err error) bool {
	if err == nil { // No error
		return false
	}

	// Not a command error
	var cmdError *Error
	if !errors.As(err, &cmdError) {
		return false
	}

	if cmdError.Type != ErrHelp { // Did not request the help message
		return false
	}

	return true
}

// --------------------------------------------------------------------------------------------------- //
//                                             Internal                                                //
// --------------------------------------------------------------------------------------------------- //

func wrap(text, marker string) string {
	return marker + text + marker
}
