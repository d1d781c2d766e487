package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reeflective/prefix/discord"
)

var errNoToken = errors.New("no bot token: set DISCORD_TOKEN in the environment or an env file")

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run a Discord bot answering the commands with the values parsed",
		Long: `Run a Discord bot answering each command with the values parsed from the
message, or with the help or parsing error of the command. The bot token is
read from DISCORD_TOKEN.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Discord.Token == "" {
				return errNoToken
			}

			commands, err := a.commands()
			if err != nil {
				return err
			}

			router := discord.NewRouter(
				discord.WithLogger(a.log),
				discord.WithReplyLimit(a.cfg.Discord.ReplyEvery, a.cfg.Discord.ReplyBurst),
			)

			for _, c := range commands {
				router.Handle(c, echo)
			}

			session, err := discordgo.New("Bot " + a.cfg.Discord.Token)
			if err != nil {
				return fmt.Errorf("failed to create session: %w", err)
			}

			session.Identify.Intents = discordgo.IntentsGuildMessages |
				discordgo.IntentsDirectMessages |
				discordgo.IntentMessageContent
			session.AddHandler(router.MessageCreate)

			if err := session.Open(); err != nil {
				return fmt.Errorf("failed to open Discord session: %w", err)
			}
			defer session.Close()

			a.log.Info("Bot running", zap.Int("commands", len(commands)))

			<-cmd.Context().Done()

			a.log.Info("Shutting down")

			return nil
		},
	}
}

// echo replies with the values parsed from the message.
func echo(ctx *discord.Context) error {
	var reply strings.Builder

	fmt.Fprintf(&reply, "%s\n", ctx.Command.Title())

	for _, field := range fields(ctx.Command, ctx.Values) {
		fmt.Fprintf(&reply, "**%s:** `%s`\n", field.name, field.value)
	}

	return ctx.Reply(reply.String())
}
