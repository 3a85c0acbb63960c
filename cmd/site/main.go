package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"content-service/config"
	"content-service/internal/storefront"
	"content-service/internal/util"

	"github.com/gin-gonic/gin"
)

func build(ctx context.Context, cfg *config.Config) error {
	client := storefront.NewClient(cfg.Site.ContentAPIURL)
	renderer, err := storefront.NewRenderer(cfg.Site.OutputDir)
	if err != nil {
		return err
	}

	for _, locale := range cfg.Site.Locales {
		locale = strings.TrimSpace(locale)
		products := client.FetchProducts(ctx, locale)
		updates := client.FetchAllUpdates(ctx, locale)

		if err := renderer.RenderLocale(locale, products, updates); err != nil {
			return fmt.Errorf("failed to render locale %s: %w", locale, err)
		}
		log.Printf("Rendered locale %s: %d products, %d updates",
			locale, len(products), len(updates))
	}
	return nil
}

func main() {
	buildOnly := flag.Bool("build-only", false, "render the static pages and exit without serving")
	flag.Parse()

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	if err := build(ctx, cfg); err != nil {
		cancel()
		log.Fatalf("Site build failed: %v", err)
	}
	cancel()

	if *buildOnly {
		log.Printf("Site built into %s", cfg.Site.OutputDir)
		return
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := storefront.NewSiteRouter(cfg.Site.OutputDir, cfg.Site.DefaultLocale, cfg.Site.Locales)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Site.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Serving site on port %s", cfg.Site.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start site server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down site server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Site server forced to shutdown: %v", err)
	}

	log.Println("Site server exited")
}
