// internal/workers/brief/generate-brief/handler.go
package generatebrief

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"creator-match-workers/internal/brief"
	apperrors "creator-match-workers/internal/common/errors"
	"creator-match-workers/internal/common/logger"
	"creator-match-workers/internal/common/metrics"
	"creator-match-workers/internal/models"
)

const (
	TaskType = "generate-brief"
)

type briefStore interface {
	GetCampaign(ctx context.Context, id string) (*models.Campaign, error)
	GetCreator(ctx context.Context, id string) (*models.Creator, error)
}

type briefCache interface {
	Get(ctx context.Context, campaignID, creatorID, fp string) (*brief.CacheEntry, error)
	Put(ctx context.Context, campaignID, creatorID, fp string, entry *brief.CacheEntry) error
}

type briefGenerator interface {
	Generate(ctx context.Context, prompt string) (*brief.Output, int, error)
}

type Handler struct {
	config       *Config
	store        briefStore
	cache        briefCache
	generator    briefGenerator
	providerName string
	modelName    string
	logger       logger.Logger
}

func NewHandler(
	config *Config,
	store briefStore,
	cache briefCache,
	generator briefGenerator,
	providerName, modelName string,
	log logger.Logger,
) *Handler {
	return &Handler{
		config:       config,
		store:        store,
		cache:        cache,
		generator:    generator,
		providerName: providerName,
		modelName:    modelName,
		logger:       log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) error {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, apperrors.NewInvalidInputError(fmt.Sprintf("parse input: %v", err)))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.Execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, err)
		return nil
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
	return nil
}

// Execute produces a brief for the campaign/creator pair, serving from the
// cache when an entry exists for the exact prompt and schema version.
// ForceRefresh skips the cache read but still writes the fresh result back.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.CampaignID == "" || input.CreatorID == "" {
		return nil, apperrors.NewInvalidInputError("campaignId and creatorId are required")
	}

	campaign, err := h.store.GetCampaign(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	creator, err := h.store.GetCreator(ctx, input.CreatorID)
	if err != nil {
		return nil, err
	}

	prompt := brief.BuildPrompt(campaign, creator)
	fp := brief.Fingerprint(prompt)

	if input.ForceRefresh {
		metrics.BriefCacheLookups.WithLabelValues("skipped").Inc()
	} else {
		entry, err := h.cache.Get(ctx, input.CampaignID, input.CreatorID, fp)
		if err != nil {
			// Storage failures are retryable and must reach the broker.
			return nil, err
		}
		if entry != nil {
			metrics.BriefCacheLookups.WithLabelValues("hit").Inc()
			return &Output{
				Brief:      entry.Brief,
				Cached:     true,
				Provider:   entry.Provider,
				Model:      entry.Model,
				PromptHash: fp,
			}, nil
		}
		metrics.BriefCacheLookups.WithLabelValues("miss").Inc()
	}

	result, attempts, err := h.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	entry := &brief.CacheEntry{
		Brief:     *result,
		Provider:  h.providerName,
		Model:     h.modelName,
		UpdatedAt: time.Now().UTC(),
	}
	if err := h.cache.Put(ctx, input.CampaignID, input.CreatorID, fp, entry); err != nil {
		return nil, err
	}

	h.logger.Info("brief generated", map[string]interface{}{
		"campaignId": input.CampaignID,
		"creatorId":  input.CreatorID,
		"attempts":   attempts,
		"provider":   h.providerName,
	})

	return &Output{
		Brief:      *result,
		Cached:     false,
		Provider:   h.providerName,
		Model:      h.modelName,
		Attempts:   attempts,
		PromptHash: fp,
	}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("Failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
		return
	}

	if _, err := cmd.Send(context.Background()); err != nil {
		h.logger.Error("Failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, err error) {
	errorCode := "UNKNOWN_ERROR"
	retries := int32(0)

	var stdErr *apperrors.StandardError
	if errors.As(err, &stdErr) {
		errorCode = string(stdErr.Code)
		if stdErr.Retryable {
			retries = 1
		}
	}

	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":    job.Key,
		"error":     err.Error(),
		"errorCode": errorCode,
		"retries":   retries,
	})

	_, _ = client.NewFailJobCommand().
		JobKey(job.Key).
		Retries(retries).
		ErrorMessage(err.Error()).
		Send(context.Background())
}
