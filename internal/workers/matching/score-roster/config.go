// internal/workers/matching/score-roster/config.go
package scoreroster

import "time"

type Config struct {
	DefaultLimit int
	MaxLimit     int
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		DefaultLimit: 20,
		MaxLimit:     100,
		Timeout:      15 * time.Second,
	}
}
