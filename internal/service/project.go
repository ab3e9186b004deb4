package service

import (
	"context"
	"errors"

	"github.com/deppfellow/catalog-api/internal/errs"
	"github.com/deppfellow/catalog-api/internal/model"
	"github.com/deppfellow/catalog-api/internal/repository"
	"github.com/deppfellow/catalog-api/internal/server"
	"github.com/deppfellow/catalog-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

var (
	projectNotFoundCode    = "PROJECT_NOT_FOUND"
	projectAlreadyPaidCode = "PROJECT_ALREADY_PAID"
)

// ErrProjectNotFound is returned for every lookup of an unknown project id.
func ErrProjectNotFound() *errs.HTTPError {
	return errs.NewNotFoundError("Project not found", true, &projectNotFoundCode)
}

// ErrProjectAlreadyPaid is returned when MarkPaid targets a paid project.
func ErrProjectAlreadyPaid() *errs.HTTPError {
	return errs.NewBadRequestError("Project already paid", true, &projectAlreadyPaidCode, nil)
}

// PaymentNotifier is told about every project that transitions to paid.
type PaymentNotifier interface {
	NotifyProjectPaid(ctx context.Context, project *model.Project) error
}

// ProjectService applies the project error policy on top of
// ProjectRepository and owns the pay action.
type ProjectService struct {
	server   *server.Server
	repo     *repository.ProjectRepository
	notifier PaymentNotifier
}

// NewProjectService builds the service. notifier may be nil.
func NewProjectService(s *server.Server, repo *repository.ProjectRepository, notifier PaymentNotifier) *ProjectService {
	return &ProjectService{server: s, repo: repo, notifier: notifier}
}

// Create inserts a project, defaulting completada to false and prioridad to "media".
func (s *ProjectService) Create(ctx context.Context, payload *model.CreateProjectPayload) (*model.Project, error) {
	project, err := s.repo.Create(ctx, payload.WithDefaults())
	if err != nil {
		return nil, sqlerr.HandleWriteError(err)
	}
	return project, nil
}

// List returns every project, [] when there are none.
func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return projects, nil
}

// GetByID returns the project or ErrProjectNotFound.
func (s *ProjectService) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound()
		}
		return nil, sqlerr.HandleError(err)
	}
	return project, nil
}

// Update overwrites every writable column. Omitted fields become NULL,
// so omitting completada or prioridad is rejected by the store.
func (s *ProjectService) Update(ctx context.Context, payload *model.UpdateProjectPayload) (*model.Project, error) {
	project, err := s.repo.Update(ctx, payload.ID, payload.ProjectFields)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound()
		}
		return nil, sqlerr.HandleWriteError(err)
	}
	return project, nil
}

// Delete removes the project and returns the "Project deleted" confirmation.
func (s *ProjectService) Delete(ctx context.Context, id int64) (*model.MessageResponse, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound()
		}
		return nil, sqlerr.HandleError(err)
	}
	return &model.MessageResponse{Message: "Project deleted"}, nil
}

// MarkPaid moves the project from unpaid to paid and queues the billing
// notification. A notification failure is logged and does not fail the call.
func (s *ProjectService) MarkPaid(ctx context.Context, id int64) (*model.ProjectPaidResponse, error) {
	project, err := s.repo.MarkPaid(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, ErrProjectNotFound()
		case errors.Is(err, repository.ErrProjectAlreadyPaid):
			return nil, ErrProjectAlreadyPaid()
		default:
			return nil, sqlerr.HandleError(err)
		}
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyProjectPaid(ctx, project); err != nil {
			logger := zerolog.Ctx(ctx)
			if logger.GetLevel() == zerolog.Disabled {
				logger = s.server.Logger
			}

			logger.Error().
				Err(err).
				Int64("project_id", project.ID).
				Msg("failed to queue project paid notification")
		}
	}

	return &model.ProjectPaidResponse{
		Message: "Project marked as paid",
		Project: project,
	}, nil
}
