package app

import (
	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/club-ladder-bot/internal/league"
	"github.com/jose-valero/club-ladder-bot/pkg/config"
)

type Bot struct {
	Sess *discordgo.Session
	Cfg  *config.Config
}

func NewBot(s *discordgo.Session, cfg *config.Config) *Bot {
	return &Bot{Sess: s, Cfg: cfg}
}

// RegisterHandlers wires the loaded league into the router and hooks the
// interaction handler into the session.
func (b *Bot) RegisterHandlers(l *league.League) {
	SetRuntimeState(l, b.Cfg.DataFile, b.Cfg.LadderChannelID)

	b.Sess.AddHandler(HandleInteraction)

	_ = RegisterCommands(b.Sess, b.Cfg.AppID, b.Cfg.GuildID)
}
