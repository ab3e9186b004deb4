// Package repository handles all interactions with the database.
//
// Each repository issues parameterized SQL built with squirrel and scans
// rows straight into model structs. Errors are returned as the driver
// reports them; translating them for clients is the service layer's job.
package repository

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/deppfellow/catalog-api/internal/server"
)

// psql builds statements with Postgres "$n" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repositories is a container for all repository instances.
type Repositories struct {
	Product *ProductRepository
	Project *ProjectRepository
}

// NewRepositories builds every repository on top of the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Product: NewProductRepository(s.DB.Pool),
		Project: NewProjectRepository(s.DB.Pool),
	}
}
