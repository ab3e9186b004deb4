package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/deppfellow/catalog-api/internal/model"
	"github.com/hibiken/asynq"
)

// TaskProjectPaid is the job type routed to handleProjectPaidTask.
const TaskProjectPaid = "project:paid"

// ProjectPaidPayload is the JSON payload stored in Redis for TaskProjectPaid.
type ProjectPaidPayload struct {
	ProjectID  int64  `json:"project_id"`
	Title      string `json:"titulo"`
	AssignedTo string `json:"asignado_a,omitempty"`
	Category   string `json:"categoria,omitempty"`
	Cost       string `json:"costo_proyecto,omitempty"`
	DueDate    string `json:"fecha_vencimiento,omitempty"`
}

// NewProjectPaidPayload snapshots the fields of project used by the email.
func NewProjectPaidPayload(project *model.Project) ProjectPaidPayload {
	payload := ProjectPaidPayload{
		ProjectID:  project.ID,
		Title:      deref(project.Title),
		AssignedTo: deref(project.AssignedTo),
		Category:   deref(project.Category),
	}

	if project.Cost.Valid {
		payload.Cost = project.Cost.Decimal.StringFixed(2)
	}

	if project.DueDate.Valid {
		payload.DueDate = project.DueDate.Time.Format(time.DateOnly)
	}

	return payload
}

// NewProjectPaidTask builds the task: 3 retries, default queue, 30s timeout.
func NewProjectPaidTask(payload ProjectPaidPayload) (*asynq.Task, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskProjectPaid,
		raw,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NotifyProjectPaid enqueues the payment notification for project.
func (j *JobService) NotifyProjectPaid(ctx context.Context, project *model.Project) error {
	task, err := NewProjectPaidTask(NewProjectPaidPayload(project))
	if err != nil {
		return fmt.Errorf("failed to build project paid task: %w", err)
	}

	info, err := j.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue project paid task: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Int64("project_id", project.ID).
		Msg("enqueued project paid task")

	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
