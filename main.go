package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wordguess/go-server/internal/ai/openai"
	"github.com/wordguess/go-server/internal/game"
	"github.com/wordguess/go-server/internal/httpserver"
	"github.com/wordguess/go-server/internal/oracle"
	"github.com/wordguess/go-server/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	db, err := openDB(getEnv("DB_PATH", "./data/app.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	provider := openai.New(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_BASE_URL"))
	gen := oracle.New(provider, getEnv("OPENAI_MODEL", "gpt-4o-mini"))

	life := game.NewLifecycle(store.NewSQLiteStore(db), gen)
	srv := httpserver.New(life, db)

	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting wordguess server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
