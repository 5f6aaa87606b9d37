// The translate proxy keeps the Groq API key off client machines: the
// back-office talks to this small server, which forwards single-phrase
// translation requests to the chat-completions API and normalizes the
// replies.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AsanTolepov/softwash/internal/config"
	"github.com/AsanTolepov/softwash/internal/handler"
	"github.com/AsanTolepov/softwash/internal/infra"
	"github.com/AsanTolepov/softwash/internal/middleware"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.GroqAPIKey == "" {
		log.Warn().Msg("GROQ_API_KEY is not set; translation requests will fail")
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	groq := infra.NewGroqClient(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.GroqModel)
	translateH := handler.NewTranslateHandler(groq, cfg.GroqAPIKey)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "softwash translate server is running")
	})
	r.POST("/api/translate", translateH.Translate)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.TranslatePort),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Msgf("softwash translate server listening on :%d", cfg.TranslatePort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
}
