package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/linode/legacy-to-techdocs/internal/api"
	"github.com/linode/legacy-to-techdocs/internal/config"
	"github.com/linode/legacy-to-techdocs/internal/stats"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the URL translator over HTTP",
	Long: `Starts an HTTP service exposing the translator:

  GET  /v1/convert?url=   convert a single legacy URL
  POST /v1/convert        convert a batch of URLs
  GET  /v1/redirect?url=  302 to the TechDocs page
  GET  /v1/stats          conversion counters
  GET  /v1/events         websocket stream of live conversions
  GET  /v1/health         health check

The spec indexes are loaded once at startup and shared read-only across
requests.`,
	RunE: runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "override server port")

	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper()
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	translator, err := loadTranslator(cfg)
	if err != nil {
		return err
	}

	collector := stats.NewCollector()
	hub := api.NewHub()
	router := api.NewRouter(translator, collector, hub)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting translator service on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server stopped")
	return nil
}
