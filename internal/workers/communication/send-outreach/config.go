// internal/workers/communication/send-outreach/config.go
package sendoutreach

import "time"

type Config struct {
	Enabled   bool
	AWSRegion string
	Sender    string
	Timeout   time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 15 * time.Second,
	}
}
