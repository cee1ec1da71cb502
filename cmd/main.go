package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/propsbot/props/internal/bot"
	"github.com/propsbot/props/internal/config"
	"github.com/propsbot/props/internal/ledger"
	"github.com/propsbot/props/internal/slack"
	"github.com/propsbot/props/internal/web"
)

var (
	loadDotEnv         = godotenv.Load
	newStore           = ledger.NewStore
	newWebHandler      = web.NewHandler
	newSlackClient     = func(token string) slack.Client { return slack.NewAPI(token) }
	defaultListenServe = http.ListenAndServe
)

func main() {
	if err := run(context.Background(), defaultListenServe); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func run(ctx context.Context, serve func(string, http.Handler) error) error {
	// Load .env file (ignore error if file doesn't exist)
	_ = loadDotEnv()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log.Printf("Starting props bot...")
	log.Printf("Port: %d", cfg.Port)
	log.Printf("Props channel: %s", cfg.PropsChannelID)
	log.Printf("Bot username: %s", cfg.BotUsername)
	log.Printf("Version: %s (branch=%s revision=%s)", cfg.AppVersion, cfg.AppBranch, cfg.AppRevision)

	// Initialize in-memory props ledger
	store := newStore()

	// Initialize Slack client
	client := newSlackClient(cfg.SlackBotToken)

	// Initialize webhook handler
	handler := bot.NewHandler(client, store, cfg)

	// Initialize leaderboard UI handler
	webHandler, err := newWebHandler(store)
	if err != nil {
		return fmt.Errorf("failed to initialize web handler: %w", err)
	}

	// Setup router
	r := mux.NewRouter()

	// Slack endpoints
	r.HandleFunc("/slack/events", handler.HandleEvent).Methods("POST")
	r.HandleFunc("/props-bot", handler.HandleSlashCommand).Methods("POST")
	r.HandleFunc("/slack/interactivity", handler.HandleInteractivity).Methods("POST")
	r.HandleFunc("/slack/message-menus", handler.HandleMessageMenus).Methods("POST")

	// Service endpoints
	r.HandleFunc("/version", handler.HandleVersion).Methods("GET")
	r.HandleFunc("/contribute.json", handler.HandleContribute).Methods("GET")

	// Props API
	r.HandleFunc("/api/props", handler.HandleListProps).Methods("GET")
	r.HandleFunc("/api/props/{target}", handler.HandleGetProps).Methods("GET")

	// Leaderboard UI
	webHandler.RegisterRoutes(r)

	// Health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	// Root endpoint with info
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"service":"props","status":"running","version":"%s"}`, cfg.AppVersion)
	}).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Events endpoint: http://localhost%s/slack/events", addr)
	log.Printf("Health check: http://localhost%s/health", addr)
	log.Printf("Leaderboard: http://localhost%s/props", addr)

	if err := serve(addr, r); err != nil {
		return fmt.Errorf("server failed to start: %w", err)
	}

	return nil
}
