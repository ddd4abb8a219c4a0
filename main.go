package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/disaster-verify/chatwidget"
	"github.com/danielhkuo/disaster-verify/cliparse"
	"github.com/danielhkuo/disaster-verify/dashboard"
	"github.com/danielhkuo/disaster-verify/db"
	"github.com/danielhkuo/disaster-verify/hub"
	"github.com/danielhkuo/disaster-verify/mapview"
	"github.com/danielhkuo/disaster-verify/media"
	"github.com/danielhkuo/disaster-verify/middleware"
	"github.com/danielhkuo/disaster-verify/router"
	"github.com/danielhkuo/disaster-verify/views"
)

func main() {
	var err error

	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the media store
	dbConn, err := db.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Dashboard state
	ctrl := dashboard.NewController()
	if cfg.Seed {
		if err := ctrl.Seed(); err != nil {
			slog.Error("seeding dashboard failed", "error", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Push every change to connected browsers
	renderer := mapview.NewRenderer(cfg.MapTileURL)
	live := hub.New()
	go live.Run(ctx)
	live.Publish(views.Build(ctrl.Snapshot(), renderer))
	ctrl.Subscribe(func(s dashboard.State) {
		live.Publish(views.Build(s, renderer))
	})

	chat := chatwidget.Init(cfg.ChatbotBaseURL)
	if !chat.Enabled() {
		slog.Info("chat widget disabled")
	}

	// Create router
	mux := router.NewRouter(ctrl, media.NewSQLStore(dbConn), renderer, live, chat, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(middleware.ContentSecurityPolicy(mux, chat.Origin())),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
