// internal/workers/matching/score-roster/handler.go
package scoreroster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	apperrors "creator-match-workers/internal/common/errors"
	"creator-match-workers/internal/common/logger"
	"creator-match-workers/internal/common/metrics"
	"creator-match-workers/internal/models"
	"creator-match-workers/internal/scoring"
)

const (
	TaskType = "score-roster"
)

// rosterStore is the persistence surface this worker needs.
type rosterStore interface {
	GetCampaign(ctx context.Context, id string) (*models.Campaign, error)
	ListCreators(ctx context.Context) ([]models.Creator, error)
}

type Handler struct {
	config *Config
	store  rosterStore
	logger logger.Logger
}

func NewHandler(config *Config, store rosterStore, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		store:  store,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
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

// Execute scores the full creator roster against the campaign and returns
// the top matches in descending score order, ties kept in roster order.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.CampaignID == "" {
		return nil, apperrors.NewInvalidInputError("campaignId is required")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = h.config.DefaultLimit
	}
	if limit > h.config.MaxLimit {
		limit = h.config.MaxLimit
	}

	campaign, err := h.store.GetCampaign(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}

	creators, err := h.store.ListCreators(ctx)
	if err != nil {
		return nil, err
	}

	matches := scoring.Rank(campaign, creators, limit)
	metrics.CreatorsScored.Add(float64(len(creators)))

	h.logger.Info("roster scored", map[string]interface{}{
		"campaignId": campaign.ID,
		"evaluated":  len(creators),
		"returned":   len(matches),
	})

	return &Output{
		CampaignID: campaign.ID,
		Matches:    matches,
		Evaluated:  len(creators),
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
