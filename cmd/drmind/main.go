package main

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"drmind/internal/ai"
	"drmind/internal/config"
	"drmind/internal/handlers"
	"drmind/internal/logger"
	"drmind/internal/storage"
	"drmind/internal/usecases"
	"drmind/web"
)

func main() {
	cfg := config.New()

	log := logger.New(cfg.LogFile)
	defer func() { _ = log.Sync() }()

	if cfg.AIAPIKey == "" {
		log.Warn("AI_API_KEY is empty, every entry will use the fallback responder")
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalw("unable to connect to db", "error", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalw("unable to ping db", "error", err)
	}

	log.Info("connected to db successfully")

	if err := storage.Migrate(ctx, pool); err != nil {
		log.Fatalw("unable to migrate db", "error", err)
	}

	entryStorage := storage.NewEntryStorage(pool)
	userStorage := storage.NewUserStorage(pool)

	aiClient := ai.NewChatClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)
	responder := usecases.NewResponder(aiClient, log)

	tmpl, err := handlers.ParseTemplates(web.Templates)
	if err != nil {
		log.Fatalw("unable to parse templates", "error", err)
	}

	journalHandler := handlers.NewJournalHandler(entryStorage, responder, log, tmpl)
	authHandler := handlers.NewAuthHandler(userStorage, cfg.JWTSecret, log, tmpl)
	aiTestHandler := handlers.NewAITestHandler(aiClient, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/", journalHandler.HandleIndex)
	mux.HandleFunc("/register", authHandler.HandleRegister)
	mux.HandleFunc("/login", authHandler.HandleLogin)
	mux.HandleFunc("/logout", authHandler.HandleLogout)
	mux.HandleFunc("/test/ai", aiTestHandler.HandleAITest)

	handler := handlers.RequestLogger(log, handlers.Recover(log, mux))

	log.Infow("listening", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalw("fail listen and serve", "error", err)
	}
}
