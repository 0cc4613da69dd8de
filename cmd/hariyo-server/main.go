package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hariyo-app/hariyo/board/application"
	"github.com/hariyo-app/hariyo/board/persistence"
	"github.com/hariyo-app/hariyo/cache"
	"github.com/hariyo-app/hariyo/chat"
	"github.com/hariyo-app/hariyo/config"
	"github.com/hariyo-app/hariyo/internal/middleware"
	"github.com/hariyo-app/hariyo/internal/rest"
	"github.com/hariyo-app/hariyo/nav"
	"github.com/hariyo-app/hariyo/shared/db/sqlite"
	"github.com/hariyo-app/hariyo/shared/kv"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize storage
	database := sqlite.New(&sqlite.Config{Path: cfg.DBPath})
	if err := database.Connect(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	store := kv.NewSQLStore(database.DB())

	// Repositories and services
	postRepo := persistence.NewPostRepository(store)
	likedRepo := persistence.NewLikedSetRepository(store)
	sessionRepo := persistence.NewSessionRepository(store)
	prefsRepo := persistence.NewPreferencesRepository(store)

	postService := application.NewPostService(postRepo, likedRepo, sessionRepo, application.NewDescriptionRenderer(), kv.NewSQLTransactor(database.DB()))
	sessionService := application.NewSessionService(sessionRepo)
	pageController := nav.NewController(rest.LogRenderer{})

	// Offline asset cache
	var worker *cache.Worker
	if len(cfg.CacheManifest) > 0 {
		worker, err = cache.NewWorker(cache.Config{
			Version:  cfg.CacheVersion,
			Manifest: cfg.CacheManifest,
		}, cache.NewFSStore(cfg.CacheDir))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create cache worker")
		}

		if err := worker.Install(context.Background()); err != nil {
			// Degraded start: assets still proxy live, they just are
			// not guaranteed offline
			log.Error().Err(err).Msg("Cache install failed")
		}
		if err := worker.Activate(context.Background()); err != nil {
			log.Error().Err(err).Msg("Cache activate failed")
		}
	}

	// Chat assistant, enabled only when configured
	var chatClient *chat.Client
	if cfg.ChatAPIURL != "" {
		chatClient, err = chat.NewClient(chat.Config{
			APIURL:          cfg.ChatAPIURL,
			APIKey:          cfg.ChatAPIKey,
			Model:           cfg.ChatModel,
			MaxOutputTokens: cfg.ChatMaxOutputTokens,
			Temperature:     cfg.ChatTemperature,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create chat client")
		}
	}

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))

	rest.NewAPI(router, rest.Deps{
		Posts:       postService,
		Sessions:    sessionService,
		Prefs:       prefsRepo,
		Pages:       pageController,
		Chat:        chatClient,
		Assets:      worker,
		AssetOrigin: cfg.AssetOrigin,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}
