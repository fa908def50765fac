package main

import (
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/katy-enrqz/BSC-SOL-1/bot"
	"github.com/katy-enrqz/BSC-SOL-1/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config error", "error", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	b, err := bot.New(cfg)
	if err != nil {
		log.Fatal("bot init failed", "error", err)
	}

	log.Info("SOL-1 starting... Press CTRL+C to exit.")
	if err := b.Run(); err != nil {
		log.Fatal("bot run failed", "error", err)
	}
	log.Info("SOL-1 shutdown complete.")
}
