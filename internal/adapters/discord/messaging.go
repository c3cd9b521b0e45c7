// Package discord wraps the handful of discordgo interaction calls the bot
// actually uses, so the router stays free of response plumbing.
package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// SendEphemeral posts a message only visible to the user who interacted.
func SendEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, msg string) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("SendEphemeral error: %v", err)
	}
	return err
}

// SendEphemeralComplex responds ephemerally with an embed plus components
// (used for the retire select menu).
func SendEphemeralComplex(s *discordgo.Session, i *discordgo.InteractionCreate, emb *discordgo.MessageEmbed, comps []discordgo.MessageComponent) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{emb},
			Components: comps,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("SendEphemeralComplex error: %v", err)
	}
	return err
}

// SendPublicEmbed posts a public embed (optionally with components) as the
// interaction response. Used for the board and for match cards.
func SendPublicEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, emb *discordgo.MessageEmbed, comps []discordgo.MessageComponent) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{emb},
			Components: comps,
		},
	})
	if err != nil {
		log.Printf("SendPublicEmbed error: %v", err)
	}
	return err
}

// UserOf returns the invoking user for both guild and DM interactions.
func UserOf(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// SafeName is UserOf for log lines: never nil-panics.
func SafeName(u *discordgo.User) string {
	if u == nil {
		return "unknown"
	}
	return u.Username
}

// StringOption pulls a named string option out of a slash command, or "".
func StringOption(i *discordgo.InteractionCreate, name string) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}
