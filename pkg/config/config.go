package config

import (
	"errors"
	"fmt"
	"os"
)

type Config struct {
	Token   string
	AppID   string
	GuildID string

	// LadderChannelID is the only channel the bot answers in; empty means
	// any channel goes.
	LadderChannelID string

	// DataFile is where the league document lives on disk.
	DataFile string
}

func Load() (*Config, error) {
	cfg := &Config{
		Token:           os.Getenv("DISCORD_BOT_TOKEN"),
		AppID:           os.Getenv("DISCORD_APP_ID"),
		GuildID:         os.Getenv("DISCORD_GUILD_ID"),
		LadderChannelID: os.Getenv("LADDER_CHANNEL_ID"),
		DataFile:        firstNonEmpty(os.Getenv("LADDER_DATA_FILE"), "ladder.json"),
	}

	if cfg.Token == "" {
		return nil, errors.New("missing DISCORD_BOT_TOKEN")
	}
	if cfg.AppID == "" {
		return nil, errors.New("missing DISCORD_APP_ID")
	}
	if cfg.GuildID == "" {
		return nil, errors.New("missing DISCORD_GUILD_ID")
	}

	return cfg, nil
}

func firstNonEmpty(v, d string) string {
	if v == "" {
		return d
	}
	return v
}

func (c *Config) Redacted() string {
	tok := "[set]"
	if c.Token == "" {
		tok = "[empty]"
	}
	return fmt.Sprintf(
		"appID=%s guildID=%s ladderChannelID=%s dataFile=%s token=%s",
		c.AppID, c.GuildID, c.LadderChannelID, c.DataFile, tok,
	)
}
