package config

import (
	"fmt"
	"strings"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Quest.validate(); err != nil {
		return fmt.Errorf("quest: %w", err)
	}

	if c.Attendance.RewardExp < 0 || c.Attendance.RewardPoints < 0 {
		return fmt.Errorf("attendance: rewards must be >= 0")
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (q *QuestConfig) validate() error {
	if q.RewardExp < 0 || q.RewardPoints < 0 {
		return fmt.Errorf("rewards must be >= 0")
	}
	if _, err := domain.ParseTimezone(q.Timezone); err != nil {
		return err
	}
	return nil
}
