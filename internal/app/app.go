package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"supportbot/internal/affiliates"
	"supportbot/internal/bot"
	"supportbot/internal/config"
	"supportbot/internal/storage"
	"supportbot/internal/storage/mongodb"
	"supportbot/internal/storage/stubs"
	"supportbot/internal/ticket"
	"supportbot/internal/verify"
)

// App represents the application
type App struct {
	config   *config.Config
	logger   *zap.Logger
	db       storage.Storage
	sessions *verify.MemoryStore
	bot      *bot.Bot
	server   *http.Server

	cancelPolling context.CancelFunc
}

// New creates and initializes a new application instance
func New() (*App, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	app := &App{config: cfg, logger: logger}

	logger.Info("Starting Support Bot...")

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initBot(); err != nil {
		return nil, err
	}
	app.initHTTPServer()

	return app, nil
}

// initDatabase initializes the database connection
func (a *App) initDatabase() error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var db storage.Storage
	if a.config.UseMockDB {
		a.logger.Info("Using mock database")
		db = stubs.NewMockDB()
	} else {
		a.logger.Info("Connecting to MongoDB",
			zap.String("database", a.config.MongoDatabase))
		mongoDB, err := mongodb.New(ctx, a.config.MongoURI, a.config.MongoDatabase)
		if err != nil {
			return fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		db = mongoDB
	}

	// Create indexes and seed default data
	if err := db.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.logger.Info("Database initialized successfully")

	a.db = db
	return nil
}

// initBot wires the verification engine, ticket materializer, and the
// Telegram transport together.
func (a *App) initBot() error {
	a.sessions = verify.NewMemoryStore(a.config.SessionTTL)

	// The notifier is created unbound so the materializer can reference it
	// before the bot API exists.
	notifier := bot.NewGroupNotifier(a.logger)
	materializer := ticket.NewMaterializer(a.db, notifier, a.logger)

	engine := verify.NewEngine(
		affiliates.Default(),
		a.sessions,
		materializer,
		verify.Config{
			MinAccountAgeDays:    a.config.MinAccountAgeDays,
			MinDepositDerivVIP:   a.config.MinDepositDerivVIP,
			MinDepositMentorship: a.config.MinDepositMentorship,
			MinDepositCurrencies: a.config.MinDepositCurrencies,
			AffiliateLink:        a.config.AffiliateLink,
			TaggingGuideURL:      a.config.TaggingGuideURL,
			AdminContactURL:      a.config.AdminContactURL,
			OctaSignupURL:        a.config.OctaSignupURL,
			VantageSignupURL:     a.config.VantageSignupURL,
		},
		a.logger,
	)

	telegramBot, err := bot.NewBot(a.config.TelegramToken, a.db, engine, materializer, bot.Config{
		AdminUserIDs:    a.config.AdminUserIDs,
		AffiliateLink:   a.config.AffiliateLink,
		TaggingGuideURL: a.config.TaggingGuideURL,
		AdminContactURL: a.config.AdminContactURL,
	}, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create Telegram bot: %w", err)
	}
	notifier.Bind(telegramBot.GetAPI())

	a.logger.Info("Bot created successfully",
		zap.Int64s("admin_user_ids", a.config.AdminUserIDs))

	a.bot = telegramBot
	return nil
}

// initHTTPServer initializes the HTTP server for health checks
func (a *App) initHTTPServer() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // Default port
	}

	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		if err := a.db.Ping(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, "database unavailable")
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	// Root endpoint
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Support Bot is running (mode: polling)")
	})

	a.server = &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Start HTTP server in background
	go func() {
		a.logger.Info("Starting HTTP server", zap.String("port", port))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("HTTP server error", zap.Error(err))
		}
	}()
}

// Run starts the application and blocks until shutdown
func (a *App) Run() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	a.cancelPolling = cancel

	// Evict abandoned verification sessions in the background.
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				a.sessions.Sweep()
			}
		}
	}()

	go func() {
		a.logger.Info("Starting bot in POLLING mode...")
		if err := a.bot.Start(ctx); err != nil {
			a.logger.Fatal("Failed to start bot", zap.Error(err))
		}
	}()

	<-sigChan

	a.logger.Info("Shutting down...")
	return a.Shutdown()
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown() error {
	if a.cancelPolling != nil {
		a.cancelPolling()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if err := a.db.Close(); err != nil {
		a.logger.Error("Error closing database", zap.Error(err))
		return err
	}

	a.logger.Info("Shutdown complete")
	return nil
}
