// internal/workers/communication/send-outreach/models.go
package sendoutreach

const (
	StatusSent     = "sent"
	StatusDisabled = "disabled"
)

type Input struct {
	CampaignID      string `json:"campaignId"`
	CreatorID       string `json:"creatorId"`
	RecipientEmail  string `json:"recipientEmail"`
	Subject         string `json:"subject,omitempty"`
	OutreachMessage string `json:"outreachMessage"`
}

type Output struct {
	OutreachID string `json:"outreachId"`
	Status     string `json:"status"`
	SentAt     string `json:"sentAt"`
}
