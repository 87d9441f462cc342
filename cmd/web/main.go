package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myshop/internal/admin"
	"myshop/internal/cart"
	"myshop/internal/catalog"
	"myshop/internal/config"
	"myshop/internal/handler"
	"myshop/internal/model"
	"myshop/internal/order"
	"myshop/internal/router"
	"myshop/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting myshop server")

	// Initialize the local persistent store. With no configured directory
	// state lives in memory for the session only.
	var kv store.Store
	if cfg.Store.Dir != "" {
		kv = store.NewFileStore(cfg.Store.Dir, logger)
	} else {
		kv = store.NewMemoryStore()
		logger.Warn().Msg("no store directory configured, state will not survive restarts")
	}

	// Initialize the cart store and hydrate the previous session's cart
	cartStore := cart.New(kv, logger)
	cartStore.Hydrate()
	cartStore.Subscribe(func(items []model.CartItem) {
		logger.Debug().Int("items", len(items)).Msg("cart updated")
	})

	// Initialize the order recorder
	recorder := order.NewRecorder(kv, cartStore, logger)

	// Initialize the remote collaborators
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, logger)
	aggregator := admin.NewAggregator(cfg.Admin.APIBaseURL, logger)
	sessions := admin.NewSessions(cfg.Admin.Email, cfg.Admin.Password, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(catalogClient, logger)
	cartHandler := handler.NewCartHandler(cartStore, logger)
	checkoutHandler := handler.NewCheckoutHandler(recorder, logger)
	adminHandler := handler.NewAdminHandler(sessions, aggregator, logger)

	// Initialize router
	mux := router.New(productHandler, cartHandler, checkoutHandler, adminHandler, sessions, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
