package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caafimaad-ai/triage/pkg/classifier"
	"github.com/caafimaad-ai/triage/pkg/common/config"
	"github.com/caafimaad-ai/triage/pkg/common/database"
	"github.com/caafimaad-ai/triage/pkg/common/kafka"
	"github.com/caafimaad-ai/triage/pkg/common/logger"
	"github.com/caafimaad-ai/triage/pkg/pipeline"
	"github.com/caafimaad-ai/triage/pkg/schema"
	"github.com/caafimaad-ai/triage/pkg/storage"
	"github.com/caafimaad-ai/triage/pkg/triage"
	"github.com/gorilla/mux"
)

func main() {
	logger.Init()
	cfg := config.Load()

	featureSchema, err := schema.Load(cfg.FeatureSchemaPath)
	if err != nil {
		logger.Log.WithError(err).Warn("Feature schema artifact unavailable, using built-in defaults")
	}

	encoder, err := classifier.LoadEncoder(cfg.LabelEncoderPath)
	if err != nil {
		logger.Log.WithError(err).Warn("Label encoder unavailable, predictions decode as raw tokens")
		encoder = nil
	}

	// Model load failures surface per request, not at startup.
	model := classifier.NewScorer(cfg.ModelArtifactPath)

	tips, err := triage.LoadCatalog(cfg.TriageTipsPath)
	if err != nil {
		logger.Log.WithError(err).Warn("Tips catalog unavailable, using built-in defaults")
	}

	engine := pipeline.NewEngine(featureSchema, classifier.NewAdapter(model, encoder), triage.NewInterpreter(tips))

	db, err := database.GetPostgres()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to connect to database")
	}

	store := storage.NewAssessmentStore(db, database.GetRedis(), cfg.AssessmentCacheTTL)
	if err := store.AutoMigrate(); err != nil {
		logger.Log.WithError(err).Fatal("Failed to migrate assessment tables")
	}

	producer := kafka.NewProducer(cfg.KafkaAssessmentTopic)
	defer producer.Close()

	service := pipeline.NewService(engine, store, producer)
	handler := pipeline.NewHTTPHandler(service, cfg.MaxRequestBody)

	router := mux.NewRouter()
	router.HandleFunc("/health", healthCheck).Methods("GET")
	handler.Register(router.PathPrefix("/api/v1").Subrouter())

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Log.WithFields(map[string]interface{}{
			"host": cfg.ServerHost,
			"port": cfg.ServerPort,
		}).Info("Triage Service started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down Triage Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("Server forced to shutdown")
	}

	logger.Log.Info("Triage Service stopped")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
