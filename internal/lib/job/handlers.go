package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/medialogapp/medialog-server/internal/config"
	"github.com/medialogapp/medialog-server/internal/lib/email"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// emailClient must be initialized through InitHandlers before the
// worker server starts processing tasks.
var emailClient *email.Client

// InitHandlers initializes dependencies required by job handlers.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	emailClient = email.NewClient(cfg, logger)
}

// handleWelcomeEmailTask processes a welcome email task. Returning an
// error marks the task failed so Asynq schedules a retry.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("processing welcome email task")

	if err := emailClient.SendWelcomeEmail(p.To, p.Name); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("sent welcome email")

	return nil
}
