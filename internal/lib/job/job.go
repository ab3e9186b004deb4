// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - tasks are enqueued (producer) through an asynq.Client
//   - a worker server (consumer) runs the registered handlers
package job

import (
	"context"

	"github.com/deppfellow/catalog-api/internal/config"
	"github.com/deppfellow/catalog-api/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// taskClient is the producer side of asynq used by the service.
type taskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// projectPaidMailer sends the payment notification.
type projectPaidMailer interface {
	SendProjectPaidEmail(to string, data email.ProjectPaidData) error
}

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	client taskClient
	server *asynq.Server
	logger *zerolog.Logger

	mailer       projectPaidMailer
	billingEmail string
}

// NewJobService creates a JobService configured to use Redis from cfg.
//
// Worker concurrency is split across queues by weight:
// critical 6, default 3, low 1.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		client:       asynq.NewClient(redisOpt),
		server:       server,
		logger:       logger,
		mailer:       email.NewClient(cfg, logger),
		billingEmail: cfg.Integration.BillingEmail,
	}
}

// Start registers task handlers and starts the worker server.
// asynq.Server.Start does not block.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskProjectPaid, j.handleProjectPaidTask)

	j.logger.Info().Msg("Starting background job server")

	return j.server.Start(mux)
}

// Stop waits for in-flight tasks, then closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")

	if j.server != nil {
		j.server.Shutdown()
	}

	if err := j.client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
