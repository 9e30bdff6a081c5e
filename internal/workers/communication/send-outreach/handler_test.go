// internal/workers/communication/send-outreach/handler_test.go
package sendoutreach

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "creator-match-workers/internal/common/errors"
	"creator-match-workers/internal/common/logger"
)

type mockSES struct {
	err   error
	calls []*ses.SendEmailInput
}

func (m *mockSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	m.calls = append(m.calls, params)
	if m.err != nil {
		return nil, m.err
	}
	return &ses.SendEmailOutput{}, nil
}

func enabledConfig() *Config {
	cfg := LoadConfig()
	cfg.Enabled = true
	cfg.Sender = "outreach@example.com"
	return cfg
}

func validInput() *Input {
	return &Input{
		CampaignID:      "camp-1",
		CreatorID:       "cr-1",
		RecipientEmail:  "glowgirl@example.com",
		OutreachMessage: "Hey @glowgirl! We'd love to collaborate.",
	}
}

func TestHandler_Execute_SendsEmail(t *testing.T) {
	mock := &mockSES{}
	handler := NewHandler(enabledConfig(), mock, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, StatusSent, output.Status)
	assert.NotEmpty(t, output.OutreachID)
	assert.NotEmpty(t, output.SentAt)

	require.Len(t, mock.calls, 1)
	call := mock.calls[0]
	assert.Equal(t, []string{"glowgirl@example.com"}, call.Destination.ToAddresses)
	assert.Equal(t, "outreach@example.com", *call.Source)
	assert.Equal(t, "Collaboration opportunity", *call.Message.Subject.Data)
	assert.Contains(t, *call.Message.Body.Text.Data, "@glowgirl")
}

func TestHandler_Execute_CustomSubject(t *testing.T) {
	mock := &mockSES{}
	handler := NewHandler(enabledConfig(), mock, logger.NewNoOpLogger())

	input := validInput()
	input.Subject = "GlowLab x glowgirl"
	_, err := handler.Execute(context.Background(), input)

	require.NoError(t, err)
	require.Len(t, mock.calls, 1)
	assert.Equal(t, "GlowLab x glowgirl", *mock.calls[0].Message.Subject.Data)
}

func TestHandler_Execute_DisabledSkipsDelivery(t *testing.T) {
	mock := &mockSES{}
	handler := NewHandler(LoadConfig(), mock, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, StatusDisabled, output.Status)
	assert.Empty(t, mock.calls)
}

func TestHandler_Execute_SendFailure(t *testing.T) {
	mock := &mockSES{err: errors.New("MessageRejected")}
	handler := NewHandler(enabledConfig(), mock, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), validInput())

	assert.Nil(t, output)
	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeOutreachSendFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestHandler_Execute_InputValidation(t *testing.T) {
	handler := NewHandler(enabledConfig(), &mockSES{}, logger.NewNoOpLogger())

	tests := []struct {
		name   string
		mutate func(i *Input)
	}{
		{"missing recipient", func(i *Input) { i.RecipientEmail = "" }},
		{"missing message", func(i *Input) { i.OutreachMessage = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			output, err := handler.Execute(context.Background(), input)

			assert.Nil(t, output)
			var stdErr *apperrors.StandardError
			require.ErrorAs(t, err, &stdErr)
			assert.Equal(t, apperrors.ErrCodeInvalidInput, stdErr.Code)
		})
	}
}
