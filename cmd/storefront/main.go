package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/codeCrafterX-33/discoverCrismyla/internal/cart"
	"github.com/codeCrafterX-33/discoverCrismyla/internal/catalog"
	"github.com/codeCrafterX-33/discoverCrismyla/internal/config"
	httpserver "github.com/codeCrafterX-33/discoverCrismyla/internal/http"
	"github.com/codeCrafterX-33/discoverCrismyla/internal/mail"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lshortfile)

	store := cart.NewStore(cart.NewFileStorage(cfg.CartFile), logger)
	products := catalog.NewRepository()

	gateway := mail.NewEmailJS()
	mailer := mail.NewClient(gateway, cfg.Mail, logger)

	handler := httpserver.NewHandler(store, products, mailer, logger)
	router := httpserver.NewRouter(handler, cfg.CORSAllowOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Printf("storefront listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
