package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/deppfellow/catalog-api/internal/database"
	"github.com/deppfellow/catalog-api/internal/model"
	"github.com/jackc/pgx/v5"
)

const projectColumns = "id, titulo, descripcion, completada, fecha_vencimiento, prioridad, " +
	"asignado_a, categoria, costo_proyecto, pagado"

// ErrProjectAlreadyPaid is returned by MarkPaid when pagado is already true.
var ErrProjectAlreadyPaid = errors.New("project already paid")

// ProjectRepository reads and writes the projects table.
//
// pagado is only ever written by MarkPaid; Create leaves it to the column
// default and Update does not name it.
type ProjectRepository struct {
	pool database.Pool
}

// NewProjectRepository builds a ProjectRepository on top of pool.
func NewProjectRepository(pool database.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

// Create inserts a project. pagado is left to the column default.
func (r *ProjectRepository) Create(ctx context.Context, fields model.ProjectFields) (*model.Project, error) {
	query, args, err := psql.Insert("projects").
		Columns(
			"titulo",
			"descripcion",
			"completada",
			"fecha_vencimiento",
			"prioridad",
			"asignado_a",
			"categoria",
			"costo_proyecto",
		).
		Values(
			fields.Title,
			fields.Description,
			fields.Completed.Value,
			fields.DueDate.Date,
			fields.Priority.Value,
			fields.AssignedTo,
			fields.Category,
			fields.Cost,
		).
		Suffix("RETURNING " + projectColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert project query: %w", err)
	}

	return r.collectOne(ctx, query, args...)
}

// List returns every project ordered by id. An empty table yields an empty slice.
func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	query, args, err := psql.Select(projectColumns).
		From("projects").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list projects query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	projects, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Project])
	if err != nil {
		return nil, err
	}

	if projects == nil {
		projects = []model.Project{}
	}

	return projects, nil
}

// GetByID returns pgx.ErrNoRows when no project has the id.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	query, args, err := psql.Select(projectColumns).
		From("projects").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building get project query: %w", err)
	}

	return r.collectOne(ctx, query, args...)
}

// Update overwrites every client-writable column; nil fields become NULL.
// pagado is never part of the statement.
func (r *ProjectRepository) Update(ctx context.Context, id int64, fields model.ProjectFields) (*model.Project, error) {
	query, args, err := psql.Update("projects").
		Set("titulo", fields.Title).
		Set("descripcion", fields.Description).
		Set("completada", fields.Completed.Value).
		Set("fecha_vencimiento", fields.DueDate.Date).
		Set("prioridad", fields.Priority.Value).
		Set("asignado_a", fields.AssignedTo).
		Set("categoria", fields.Category).
		Set("costo_proyecto", fields.Cost).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + projectColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update project query: %w", err)
	}

	return r.collectOne(ctx, query, args...)
}

// Delete removes the project and returns pgx.ErrNoRows when nothing was deleted.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("projects").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete project query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// MarkPaid flips pagado from false to true in a single conditional update.
//
// When the update matches nothing, an existence probe decides between
// pgx.ErrNoRows (no such project) and ErrProjectAlreadyPaid.
func (r *ProjectRepository) MarkPaid(ctx context.Context, id int64) (*model.Project, error) {
	query, args, err := psql.Update("projects").
		Set("pagado", true).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"pagado": false}).
		Suffix("RETURNING " + projectColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building mark project paid query: %w", err)
	}

	project, err := r.collectOne(ctx, query, args...)
	if err == nil {
		return project, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	exists, err := r.exists(ctx, id)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, pgx.ErrNoRows
	}

	return nil, ErrProjectAlreadyPaid
}

// exists reports whether a project with the id is stored.
func (r *ProjectRepository) exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := psql.Select("1").
		Prefix("SELECT EXISTS (").
		From("projects").
		Where(sq.Eq{"id": id}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("building project exists query: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *ProjectRepository) collectOne(ctx context.Context, query string, args ...any) (*model.Project, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	project, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Project])
	if err != nil {
		return nil, err
	}

	return &project, nil
}
