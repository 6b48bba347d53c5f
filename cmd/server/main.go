package main

// #region imports
import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielpatrickdp/symptom-triage/internal/api"
	"github.com/danielpatrickdp/symptom-triage/internal/audit"
	"github.com/danielpatrickdp/symptom-triage/internal/config"
	"github.com/danielpatrickdp/symptom-triage/internal/dataset"
	"github.com/danielpatrickdp/symptom-triage/internal/diagnose"
	"github.com/danielpatrickdp/symptom-triage/internal/knowledge"
	"github.com/danielpatrickdp/symptom-triage/internal/llm"
	"github.com/danielpatrickdp/symptom-triage/internal/predict"
	"github.com/danielpatrickdp/symptom-triage/internal/triage"
)

// #endregion

// #region main
func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	data, err := dataset.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open dataset store: %v", err)
	}
	defer data.Close()

	var gen llm.Client
	if cfg.GenerativeEnabled {
		gen = llm.NewOpenAIClient()
	}
	kb, err := knowledge.NewStore(data.DB(), gen)
	if err != nil {
		log.Fatalf("failed to open knowledge base: %v", err)
	}

	auditLog, err := audit.NewLog(data.DB())
	if err != nil {
		log.Fatalf("failed to open audit log: %v", err)
	}

	policy := diagnose.NewPolicy(data, predict.NewNaiveBayes(), kb, auditLog)
	assistant := triage.NewAssistant(policy)
	handler := api.NewHandler(assistant, kb)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Printf("[API] listening on :%s (db=%s, generative=%v)", cfg.Port, cfg.DBPath, cfg.GenerativeEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("[API] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[API] shutdown: %v", err)
	}
}

// #endregion main
