package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/marketlens/options-radar/src/analysis"
	"github.com/marketlens/options-radar/src/eventpubsub"
	"github.com/marketlens/options-radar/src/handler"
	"github.com/marketlens/options-radar/src/models"
	"github.com/marketlens/options-radar/src/services"
	"github.com/marketlens/options-radar/src/utils"
)

func main() {
	if err := utils.InitEnvironmentVariables(os.Getenv("GO_ENV")); err != nil {
		log.Fatalf("failed to initialize environment: %v", err)
	}

	// setup pubsub
	eventpubsub.Init()

	if err := eventpubsub.Subscribe(eventpubsub.ScanCompletedEvent, func(e eventpubsub.ScanCompleted) {
		log.Infof("scan %s completed: %d recommendations, %d skipped, fallback=%v", e.ScanID, e.Recommendations, e.Skipped, e.UsingFallback)
	}); err != nil {
		log.Fatalf("failed to subscribe to scan events: %v", err)
	}

	cfg := models.DefaultRadarConfig()
	if configPath := os.Getenv("RADAR_CONFIG"); configPath != "" {
		loaded, err := models.LoadRadarConfig(configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		cfg = *loaded
	}

	// setup data source: Yahoo by default, Polygon when a key is present
	var fetcher models.MarketDataFetcher = services.NewYahooClient()
	if apiKey := os.Getenv("POLYGON_API_KEY"); apiKey != "" {
		log.Info("using Polygon as the market data source")
		fetcher = services.NewPolygonFetcher(apiKey)
	}

	ranker := analysis.NewRanker(fetcher).
		WithSyntheticFallback(services.NewSyntheticDataSource(time.Now().UnixNano(), nil))

	screener := services.NewScreener(time.Hour, nil)

	h := &handler.RecommendationsHandler{
		Scanner:  ranker,
		Universe: screener,
		Params: analysis.RankParams{
			Mode:          analysis.TopPerStrategy,
			TopK:          cfg.TopPerStrategy,
			BatchSize:     cfg.BatchSize,
			BatchDelay:    cfg.BatchDelay(),
			FetchTimeout:  cfg.FetchTimeout(),
			MaxCandidates: cfg.MaxCandidates,
			Weights:       cfg.Scoring,
		},
	}

	// setup router
	router := mux.NewRouter()
	port := os.Getenv("PORT")
	if len(port) == 0 {
		port = "3000"
	}

	router.HandleFunc("/api/recommendations", h.Recommendations).Methods(http.MethodGet)
	router.HandleFunc("/api/recommendations/{strategy}", h.RecommendationsByStrategy).Methods(http.MethodGet)
	router.HandleFunc("/api/universe", h.UniverseHandler).Methods(http.MethodGet)

	// start the http server
	srv := &http.Server{
		Handler: router,
		Addr:    fmt.Sprintf(":%s", port),
	}

	go func() {
		log.Infof("listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				log.Fatalf("http: failed to listen and serve: %v", err)
			}
		}
	}()

	// Create channel for shutdown signals.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	signal.Notify(stop, syscall.SIGTERM)

	<-stop
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("error shutting down server %s", err)
	} else {
		log.Println("Server gracefully stopped")
	}
}
