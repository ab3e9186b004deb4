package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/catalog-api/internal/lib/email"
	"github.com/hibiken/asynq"
)

// handleProjectPaidTask emails the billing contact about a paid project.
//
// Returning an error makes Asynq retry the task. A missing billing
// address is not retryable, so the task is dropped with a warning.
func (j *JobService) handleProjectPaidTask(ctx context.Context, t *asynq.Task) error {
	var p ProjectPaidPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal project paid payload: %w: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", TaskProjectPaid).
		Int64("project_id", p.ProjectID).
		Logger()

	if j.billingEmail == "" {
		logger.Warn().Msg("No billing email configured, skipping project paid notification")
		return nil
	}

	logger.Info().Msg("Processing project paid task")

	err := j.mailer.SendProjectPaidEmail(j.billingEmail, email.ProjectPaidData{
		ProjectID:  p.ProjectID,
		Title:      p.Title,
		AssignedTo: p.AssignedTo,
		Category:   p.Category,
		Cost:       p.Cost,
		DueDate:    p.DueDate,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to send project paid email")
		return err
	}

	logger.Info().Msg("Successfully sent project paid email")

	return nil
}
