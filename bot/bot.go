// Package bot serves rendered tables to discord through slash commands.
//
// Commands are registered up front with MustRegisterHandler and bulk
// registered with discord once the session connects. Each handler returns
// the embed to reply with; TableEmbed builds one from a table.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
)

var (
	ErrConfig           = errors.New("configuration error")
	ErrCommandInvalid   = errors.New("command invalid")
	ErrSession          = errors.New("failed to start session")
	ErrCommandSend      = errors.New("failed to send response")
	ErrCommandDuplicate = errors.New("duplicate command")
)

const (
	defaultUserAgent = "termtable (https://github.com/leighmacdonald/termtable)"
	pendingMessage   = "Laying out table..."
	handlerTimeout   = 30 * time.Second
)

// Handler responds to a slash command interaction with an embed.
type Handler func(ctx context.Context, session *discordgo.Session, interaction *discordgo.InteractionCreate) (*discordgo.MessageEmbed, error)

type Opts struct {
	// Token is the discord bot token, without any "Bot " prefix.
	Token string
	// AppID is the bot's application ID.
	AppID string
	// GuildID limits command registration to one server. When empty, commands are registered globally.
	GuildID string
	// UnregisterOnClose removes the registered commands on shutdown.
	UnregisterOnClose bool
	// UserAgent overrides the default user agent.
	UserAgent string
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

type Bot struct {
	appID              string
	guildID            string
	session            *discordgo.Session
	logger             *slog.Logger
	handlers           map[string]Handler
	commands           []*discordgo.ApplicationCommand
	registeredCommands []*discordgo.ApplicationCommand
	running            atomic.Bool
	unregister         bool
}

func New(opts Opts) (*Bot, error) {
	if opts.AppID == "" {
		return nil, fmt.Errorf("%w: invalid discord app id", ErrConfig)
	}

	if opts.Token == "" {
		return nil, fmt.Errorf("%w: invalid discord token", ErrConfig)
	}

	session, errSession := discordgo.New("Bot " + opts.Token)
	if errSession != nil {
		return nil, errors.Join(errSession, ErrConfig)
	}

	session.UserAgent = defaultUserAgent
	if opts.UserAgent != "" {
		session.UserAgent = opts.UserAgent
	}

	// Slash commands arrive as interactions, no message intents are needed.
	session.Identify.Intents = discordgo.IntentsGuilds

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	bot := &Bot{
		appID:      opts.AppID,
		guildID:    opts.GuildID,
		session:    session,
		logger:     logger.With(slog.String("component", "bot")),
		handlers:   make(map[string]Handler),
		unregister: opts.UnregisterOnClose,
	}

	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onConnect)
	session.AddHandler(bot.onDisconnect)
	session.AddHandler(bot.onInteractionCreate)

	return bot, nil
}

// Start opens the gateway session. Calling it again is a no-op.
func (b *Bot) Start(_ context.Context) error {
	if !b.running.CompareAndSwap(false, true) {
		return nil
	}

	if errOpen := b.session.Open(); errOpen != nil {
		b.running.Store(false)

		return errors.Join(errOpen, ErrSession)
	}

	return nil
}

func (b *Bot) Close() {
	if b.unregister {
		for _, cmd := range b.registeredCommands {
			if err := b.session.ApplicationCommandDelete(b.appID, b.guildID, cmd.ID); err != nil {
				b.logger.Error("Could not unregister command", slog.String("error", err.Error()), slog.String("name", cmd.Name))
			}
		}
	}

	if err := b.session.Close(); err != nil {
		b.logger.Error("Failed to close discord session cleanly", slog.String("error", err.Error()))
	}

	b.running.Store(false)
}

func (b *Bot) Session() *discordgo.Session {
	return b.session
}

// Commands returns the commands that will be registered on connect.
func (b *Bot) Commands() []*discordgo.ApplicationCommand {
	return b.commands
}

// MustRegisterHandler adds a slash command and its handler. Commands are bulk
// registered with discord on connection, not immediately. It panics with
// ErrCommandDuplicate if the name is already taken.
func (b *Bot) MustRegisterHandler(command *discordgo.ApplicationCommand, handler Handler) {
	if _, found := b.handlers[command.Name]; found {
		panic(fmt.Errorf("%w: %s", ErrCommandDuplicate, command.Name))
	}

	b.handlers[command.Name] = handler
	b.commands = append(b.commands, command)
}

func (b *Bot) onReady(session *discordgo.Session, _ *discordgo.Ready) {
	b.logger.Info("Logged in successfully", slog.String("name", session.State.User.Username))
}

func (b *Bot) onDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	b.logger.Info("Discord state changed", slog.String("state", "disconnected"))
}

func (b *Bot) onConnect(_ *discordgo.Session, _ *discordgo.Connect) {
	b.logger.Info("Discord state changed", slog.String("state", "connected"))

	if errRegister := b.overwriteCommands(); errRegister != nil {
		b.logger.Error("Failed to register discord slash commands", slog.String("error", errRegister.Error()))
	}
}

func (b *Bot) overwriteCommands() error {
	commands, errBulk := b.session.ApplicationCommandBulkOverwrite(b.appID, b.guildID, b.commands)
	if errBulk != nil {
		return errors.Join(errBulk, ErrCommandInvalid)
	}

	b.registeredCommands = commands

	return nil
}

func (b *Bot) onInteractionCreate(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	if interaction.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := interaction.ApplicationCommandData().Name

	handler, found := b.handlers[name]
	if !found {
		return
	}

	// Discord expires interactions that are not acknowledged within ~3 seconds.
	pending := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: pendingMessage},
	}

	if errRespond := session.InteractionRespond(interaction.Interaction, pending); errRespond != nil {
		b.followUp(session, interaction.Interaction, &discordgo.WebhookParams{Content: errRespond.Error()})

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	embed, errHandle := handler(ctx, session, interaction)
	if errHandle == nil && embed == nil {
		errHandle = fmt.Errorf("%w: %s returned no response", ErrCommandInvalid, name)
	}

	if errHandle != nil {
		b.logger.Warn("Command failed", slog.String("command", name), slog.String("error", errHandle.Error()))
		b.followUp(session, interaction.Interaction, &discordgo.WebhookParams{
			Embeds: []*discordgo.MessageEmbed{ErrorEmbed(errHandle)},
		})

		return
	}

	if errSend := b.sendResponse(session, interaction.Interaction, embed); errSend != nil {
		b.logger.Error("Failed sending success response for interaction", slog.String("error", errSend.Error()))
	}
}

func (b *Bot) sendResponse(session *discordgo.Session, interaction *discordgo.Interaction, embed *discordgo.MessageEmbed) error {
	embeds := []*discordgo.MessageEmbed{embed}
	content := ""

	if _, errEdit := session.InteractionResponseEdit(interaction, &discordgo.WebhookEdit{
		Content: &content,
		Embeds:  &embeds,
	}); errEdit != nil {
		if _, errFollow := session.FollowupMessageCreate(interaction, true, &discordgo.WebhookParams{
			Content: "Something went wrong: " + errEdit.Error(),
		}); errFollow != nil {
			return errors.Join(errFollow, ErrCommandSend)
		}
	}

	return nil
}

func (b *Bot) followUp(session *discordgo.Session, interaction *discordgo.Interaction, params *discordgo.WebhookParams) {
	if _, errFollow := session.FollowupMessageCreate(interaction, true, params); errFollow != nil {
		b.logger.Error("Failed sending error response for interaction", slog.String("error", errFollow.Error()))
	}
}
