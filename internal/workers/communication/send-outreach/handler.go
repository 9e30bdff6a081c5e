// internal/workers/communication/send-outreach/handler.go
package sendoutreach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	apperrors "creator-match-workers/internal/common/errors"
	"creator-match-workers/internal/common/logger"
	"creator-match-workers/internal/common/metrics"
)

const (
	TaskType = "send-outreach"
)

// SESService is the sending surface, interfaced for mocking.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type Handler struct {
	config    *Config
	sesClient SESService
	logger    logger.Logger
}

func NewHandler(config *Config, sesClient SESService, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		sesClient: sesClient,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
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

// Execute delivers the outreach message to the creator over email. When
// delivery is disabled the job still completes with a disabled status so
// the process can continue.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.RecipientEmail == "" || input.OutreachMessage == "" {
		return nil, apperrors.NewInvalidInputError("recipientEmail and outreachMessage are required")
	}

	outreachID := uuid.New().String()
	sentAt := time.Now().UTC().Format(time.RFC3339)

	if !h.config.Enabled {
		h.logger.Info("outreach delivery disabled, skipping send", map[string]interface{}{
			"campaignId": input.CampaignID,
			"creatorId":  input.CreatorID,
		})
		return &Output{OutreachID: outreachID, Status: StatusDisabled, SentAt: sentAt}, nil
	}

	subject := input.Subject
	if subject == "" {
		subject = "Collaboration opportunity"
	}

	if err := h.sendEmail(ctx, input.RecipientEmail, subject, input.OutreachMessage); err != nil {
		return nil, apperrors.NewOutreachSendFailedError(err)
	}

	h.logger.Info("outreach sent", map[string]interface{}{
		"campaignId": input.CampaignID,
		"creatorId":  input.CreatorID,
		"outreachId": outreachID,
	})

	return &Output{OutreachID: outreachID, Status: StatusSent, SentAt: sentAt}, nil
}

func (h *Handler) sendEmail(ctx context.Context, to, subject, body string) error {
	_, err := h.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(h.config.Sender),
	})
	return err
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
			retries = 3
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
