// Command bot starts the club ladder discord bot.
//
// This binary:
//  1. loads config from environment variables (.env during dev)
//  2. loads the league document from disk (empty league on first run)
//  3. creates a discord session and registers the app handlers
//  4. opens the gateway connection and waits for an OS signal to exit
//
// All rating and matchmaking logic lives in internal/league; this process is
// just the shell around it.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/jose-valero/club-ladder-bot/internal/app"
	"github.com/jose-valero/club-ladder-bot/internal/storage"
	"github.com/jose-valero/club-ladder-bot/pkg/config"
)

func main() {
	// load .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg, err := storage.Load(cfg.DataFile)
	if err != nil {
		log.Fatalf("league load error: %v", err)
	}
	log.Printf("loaded %d players from %s", lg.Len(), cfg.DataFile)

	// the "Bot " prefix is required for bot tokens
	sess, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatalf("discord session error: %v", err)
	}
	sess.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	b := app.NewBot(sess, cfg)
	b.RegisterHandlers(lg)

	if err := sess.Open(); err != nil {
		log.Fatalf("open gateway error: %v", err)
	}
	defer sess.Close()

	log.Printf("🤖 ladder bot ready - %s", cfg.Redacted())

	// block until SIGINT/SIGTERM so Ctrl+C shuts down cleanly
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
}
