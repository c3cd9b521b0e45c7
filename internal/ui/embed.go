// Package ui renders league state into discord embeds and components. No
// engine logic lives here, only formatting.
package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/club-ladder-bot/internal/league"
	"github.com/jose-valero/club-ladder-bot/internal/rating"
)

const (
	colorOpen  = 0x57F287
	colorBoard = 0x5865F2
)

// RenderBoardEmbed shows the roster sorted by rating, best first. Players
// still in their play-in window are marked provisional.
func RenderBoardEmbed(players []league.Player) *discordgo.MessageEmbed {
	if len(players) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "🏆 Club Ladder",
			Description: "Nobody on the board yet. Use `/addplayer` to get started.",
			Color:       colorBoard,
		}
	}

	sorted := append([]league.Player(nil), players...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	var b strings.Builder
	for i, p := range sorted {
		marker := ""
		if p.Matches < league.PlayInMatches {
			marker = " _(provisional)_"
		}
		fmt.Fprintf(&b, "%d) **%s** — %d (%d played)%s\n", i+1, p.Name, p.Rating, p.Matches, marker)
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Club Ladder",
		Description: b.String(),
		Color:       colorBoard,
	}
}

// RenderMatchEmbed is the public card for a started match, with the bookmaker
// line for side A.
func RenderMatchEmbed(m league.Match) *discordgo.MessageEmbed {
	odds := rating.Odds(m.A.Rating, m.B.Rating)
	return &discordgo.MessageEmbed{
		Title: "⚔️ Next match",
		Description: fmt.Sprintf("**%s** (%d) vs **%s** (%d)\n%s has a %.0f%% chance to win.",
			m.A.Name, m.A.Rating, m.B.Name, m.B.Rating, m.A.Name, odds*100),
		Color: colorOpen,
	}
}

// MatchComponents are the report buttons under a match card.
func MatchComponents(m league.Match) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    m.A.Name + " won",
				Style:    discordgo.SuccessButton,
				CustomID: "ladder_win_a",
			},
			discordgo.Button{
				Label:    m.B.Name + " won",
				Style:    discordgo.SuccessButton,
				CustomID: "ladder_win_b",
			},
			discordgo.Button{
				Label:    "Draw",
				Style:    discordgo.SecondaryButton,
				CustomID: "ladder_draw",
			},
			discordgo.Button{
				Label:    "Cancel",
				Style:    discordgo.DangerButton,
				CustomID: "ladder_cancel",
			},
		}},
	}
}

// RetireComponents is a select menu of the roster, values carrying player ids.
// Discord caps select menus at 25 options; beyond that the oldest entries are
// shown (small-club tool, not a concern in practice).
func RetireComponents(players []league.Player) []discordgo.MessageComponent {
	opts := make([]discordgo.SelectMenuOption, 0, len(players))
	for _, p := range players {
		if len(opts) == 25 {
			break
		}
		opts = append(opts, discordgo.SelectMenuOption{
			Label:       p.Name,
			Description: fmt.Sprintf("rating %d, %d played", p.Rating, p.Matches),
			Value:       "uid:" + p.ID,
		})
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    "ladder_retire",
				Placeholder: "Pick the player to retire",
				Options:     opts,
			},
		}},
	}
}
