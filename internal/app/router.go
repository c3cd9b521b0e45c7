package app

import (
	"log"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	d "github.com/jose-valero/club-ladder-bot/internal/adapters/discord"
	"github.com/jose-valero/club-ladder-bot/internal/league"
	"github.com/jose-valero/club-ladder-bot/internal/storage"
	"github.com/jose-valero/club-ladder-bot/internal/ui"
)

// The engine itself is single-threaded by contract; discordgo dispatches
// handlers concurrently, so one mutex around the league is the serialization
// boundary the engine asks its caller for.
var (
	mu              sync.Mutex
	lad             *league.League
	rng             = rand.New(rand.NewSource(time.Now().UnixNano()))
	dataFile        string
	targetChannelID string
)

// SetRuntimeState hands the router the loaded league and where to save it.
func SetRuntimeState(l *league.League, file, channelID string) {
	mu.Lock()
	defer mu.Unlock()
	lad = l
	dataFile = file
	targetChannelID = channelID
}

// persist writes the league after a mutation. Save failures are logged, not
// surfaced to the user: the in-memory state is still correct and the next
// mutation retries.
func persist() {
	if dataFile == "" {
		return
	}
	if err := storage.Save(dataFile, lad); err != nil {
		log.Printf("persist: %v", err)
	}
}

func HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		handleSlash(s, i)
	case discordgo.InteractionMessageComponent:
		handleComponent(s, i)
	}
}

// ------------------- Slash -------------------

func handleSlash(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if targetChannelID != "" && i.ChannelID != targetChannelID {
		_ = d.SendEphemeral(s, i, "Use this command in the ladder channel.")
		return
	}

	name := i.ApplicationCommandData().Name
	log.Printf("[slash] %s by %s", name, d.SafeName(d.UserOf(i)))

	mu.Lock()
	defer mu.Unlock()

	switch name {

	case "addplayer":
		playerName := strings.TrimSpace(d.StringOption(i, "name"))
		if playerName == "" {
			_ = d.SendEphemeral(s, i, "⚠️ Give the player a name.")
			return
		}
		p := lad.AddPlayer(playerName)
		persist()
		_ = d.SendEphemeral(s, i, "✅ Added **"+p.Name+"**, seeded at rating "+strconv.Itoa(p.Rating)+".")
		return

	case "retire":
		players := lad.Players()
		if len(players) == 0 {
			_ = d.SendEphemeral(s, i, "⚠️ Nobody to retire.")
			return
		}
		_ = d.SendEphemeralComplex(s, i, ui.RenderBoardEmbed(players), ui.RetireComponents(players))
		return

	case "rename":
		from := strings.TrimSpace(d.StringOption(i, "player"))
		to := strings.TrimSpace(d.StringOption(i, "name"))
		p, ok := playerByName(from)
		if !ok || to == "" {
			_ = d.SendEphemeral(s, i, "⚠️ No player called **"+from+"**.")
			return
		}
		lad.RenamePlayer(p.ID, to)
		persist()
		_ = d.SendEphemeral(s, i, "✅ **"+from+"** is now **"+to+"**.")
		return

	case "board":
		_ = d.SendPublicEmbed(s, i, ui.RenderBoardEmbed(lad.Players()), nil)
		return

	case "match":
		if _, busy := lad.Current(); busy {
			_ = d.SendEphemeral(s, i, "⚠️ A match is already in progress. Report it first.")
			return
		}
		m, ok := lad.NextMatch(rng)
		if !ok {
			_ = d.SendEphemeral(s, i, "⚠️ Need at least two players for a match.")
			return
		}
		lad.StartMatch(m)
		_ = d.SendPublicEmbed(s, i, ui.RenderMatchEmbed(m), ui.MatchComponents(m))
		return
	}
}

// ------------------- Components -------------------

func handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	log.Printf("[component] %s by %s", customID, d.SafeName(d.UserOf(i)))

	mu.Lock()
	defer mu.Unlock()

	if customID == "ladder_retire" {
		vals := i.MessageComponentData().Values
		if len(vals) == 0 {
			_ = d.SendEphemeral(s, i, "⚠️ Invalid selection.")
			return
		}
		id := strings.TrimPrefix(vals[0], "uid:")
		p, ok := lad.Player(id)
		if !ok || !lad.RetirePlayer(id) {
			_ = d.SendEphemeral(s, i, "⚠️ That player already left the ladder.")
			return
		}
		persist()
		_ = d.SendEphemeral(s, i, "👋 Retired **"+p.Name+"**.")
		return
	}

	// everything below acts on the in-flight match
	m, ok := lad.Current()
	if !ok {
		_ = d.SendEphemeral(s, i, "⚠️ No match in progress.")
		return
	}

	switch customID {
	case "ladder_win_a":
		lad.FinishMatch(league.Win{Winner: m.A, Loser: m.B})
	case "ladder_win_b":
		lad.FinishMatch(league.Win{Winner: m.B, Loser: m.A})
	case "ladder_draw":
		lad.FinishMatch(league.Draw{A: m.A, B: m.B})
	case "ladder_cancel":
		lad.CancelMatch()
		_ = d.SendEphemeral(s, i, "🚫 Match cancelled.")
		return
	default:
		return
	}

	persist()
	_ = d.SendPublicEmbed(s, i, ui.RenderBoardEmbed(lad.Players()), nil)
}

func playerByName(name string) (league.Player, bool) {
	for _, p := range lad.Players() {
		if p.Name == name {
			return p, true
		}
	}
	return league.Player{}, false
}
