package app

import "github.com/bwmarrin/discordgo"

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "addplayer",
		Description: "Add a player to the ladder",
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Display name of the new player",
				Required:    true,
			},
		},
	},
	{
		Name:        "retire",
		Description: "Retire a player from the ladder",
		Type:        discordgo.ChatApplicationCommand,
	},
	{
		Name:        "rename",
		Description: "Change a player's display name",
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "player",
				Description: "Current display name",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "New display name",
				Required:    true,
			},
		},
	},
	{
		Name:        "board",
		Description: "Show the ladder standings",
		Type:        discordgo.ChatApplicationCommand,
	},
	{
		Name:        "match",
		Description: "Propose and start the next match",
		Type:        discordgo.ChatApplicationCommand,
	},
}

// RegisterCommands creates (or updates) guild-level commands.
func RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	for _, c := range commands {
		if _, err := s.ApplicationCommandCreate(appID, guildID, c); err != nil {
			return err
		}
	}
	return nil
}
