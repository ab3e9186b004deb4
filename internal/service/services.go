// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated payloads, calls repositories and translates store errors
// into errs.HTTPError values with the status codes clients expect.
package service

import (
	"github.com/deppfellow/catalog-api/internal/lib/job"
	"github.com/deppfellow/catalog-api/internal/repository"
	"github.com/deppfellow/catalog-api/internal/server"
)

type Services struct {
	Product *ProductService
	Project *ProjectService
	Job     *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var notifier PaymentNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Product: NewProductService(s, repos.Product),
		Project: NewProjectService(s, repos.Project, notifier),
		Job:     s.Job,
	}, nil
}
