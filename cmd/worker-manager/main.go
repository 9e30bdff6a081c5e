// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"creator-match-workers/internal/ai"
	"creator-match-workers/internal/brief"
	"creator-match-workers/internal/common/aws"
	"creator-match-workers/internal/common/camunda"
	"creator-match-workers/internal/common/config"
	"creator-match-workers/internal/common/database"
	"creator-match-workers/internal/common/logger"
	"creator-match-workers/internal/common/observability"
	"creator-match-workers/internal/store"
	"creator-match-workers/pkg/registry"

	gb "creator-match-workers/internal/workers/brief/generate-brief"
	so "creator-match-workers/internal/workers/communication/send-outreach"
	sr "creator-match-workers/internal/workers/matching/score-roster"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("config load failed: %v", err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	taskCatalog, err := registry.Load("configs/task-registry.json")
	if err != nil {
		zapLog.Warn("task registry unavailable, /registry disabled", zap.Error(err))
	} else {
		zapLog.Info("Task registry loaded",
			zap.String("version", taskCatalog.Version),
			zap.Int("tasks", len(taskCatalog.Tasks)),
		)
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Init Zeebe Client with retry ---
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camundaClient, err = camunda.NewClient(cfg.Camunda.BrokerAddress)
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zeebeClient := camundaClient.GetClient()
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Resolve the generation provider once for the process lifetime ---
	provider, err := ai.FromConfig(ctx, cfg.AI, log)
	if err != nil {
		zapLog.Fatal("generation provider init failed", zap.Error(err))
	}

	db := store.New(pg.DB)

	var workers []*camunda.CamundaWorker

	// --- Register Workers ---
	if cfg.Workers[sr.TaskType].Enabled {
		srCfg := sr.LoadConfig()
		srCfg.Timeout = time.Duration(cfg.Workers[sr.TaskType].Timeout) * time.Millisecond
		handler := sr.NewHandler(srCfg, db, log)
		workers = append(workers, startWorker(zeebeClient, sr.TaskType, cfg.Workers[sr.TaskType], handler, zapLog))
	}

	if cfg.Workers[gb.TaskType].Enabled {
		gbCfg := gb.LoadConfig()
		gbCfg.Timeout = time.Duration(cfg.Workers[gb.TaskType].Timeout) * time.Millisecond

		cache := brief.NewCache(redis.Client, time.Duration(cfg.Brief.CacheTTLSeconds)*time.Second)
		generator := brief.NewGenerator(provider, cfg.Brief.MaxRepairAttempts, log)
		handler := gb.NewHandler(gbCfg, db, cache, generator, provider.Name(), provider.ModelName(), log)
		workers = append(workers, startWorker(zeebeClient, gb.TaskType, cfg.Workers[gb.TaskType], handler, zapLog))
	}

	if cfg.Workers[so.TaskType].Enabled {
		soCfg := so.LoadConfig()
		soCfg.Enabled = cfg.Email.Enabled
		soCfg.AWSRegion = cfg.Email.AWSRegion
		soCfg.Sender = cfg.Email.Sender
		soCfg.Timeout = time.Duration(cfg.Workers[so.TaskType].Timeout) * time.Millisecond

		var sesClient so.SESService
		if cfg.Email.Enabled {
			client, err := aws.NewSESClient(ctx, cfg.Email.AWSRegion)
			if err != nil {
				zapLog.Fatal("ses client init failed", zap.Error(err))
			}
			sesClient = client
		}
		handler := so.NewHandler(soCfg, sesClient, log)
		workers = append(workers, startWorker(zeebeClient, so.TaskType, cfg.Workers[so.TaskType], handler, zapLog))
	}

	zapLog.Info("All workers registered successfully", zap.Int("count", len(workers)))

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := camundaClient.HealthCheck(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/registry", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if taskCatalog == nil {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"error": "task registry not loaded"})
				return
			}
			json.NewEncoder(w).Encode(taskCatalog)
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop(shutdownCtx)
	}

	if err := camundaClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handler camunda.JobHandler, log *zap.Logger) *camunda.CamundaWorker {
	w := camunda.NewWorker(client, taskType, wcfg.MaxJobsActive, handler, log)
	w.Start()
	return w
}
