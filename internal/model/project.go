package model

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Priority values accepted by the projects.prioridad CHECK constraint.
const (
	PriorityLow    = "baja"
	PriorityMedium = "media"
	PriorityHigh   = "alta"
)

// DefaultPriority is stored when a project is created without a priority.
const DefaultPriority = PriorityMedium

// Project is a row of the projects table.
//
// Paid only moves from false to true, through the pay action.
type Project struct {
	ID          int64               `json:"id" db:"id"`
	Title       *string             `json:"titulo" db:"titulo"`
	Description *string             `json:"descripcion" db:"descripcion"`
	Completed   bool                `json:"completada" db:"completada"`
	DueDate     pgtype.Date         `json:"fecha_vencimiento" db:"fecha_vencimiento"`
	Priority    string              `json:"prioridad" db:"prioridad"`
	AssignedTo  *string             `json:"asignado_a" db:"asignado_a"`
	Category    *string             `json:"categoria" db:"categoria"`
	Cost        decimal.NullDecimal `json:"costo_proyecto" db:"costo_proyecto"`
	Paid        bool                `json:"pagado" db:"pagado"`
}

// ProjectFields are the columns a client may write.
//
// Completed and Priority track key presence: create fills defaults only
// for omitted keys, so an explicit null still reaches the store as NULL.
// Update writes NULL for both.
type ProjectFields struct {
	Title       *string             `json:"titulo"`
	Description *string             `json:"descripcion"`
	Completed   Optional[bool]      `json:"completada"`
	DueDate     Date                `json:"fecha_vencimiento"`
	Priority    Optional[string]    `json:"prioridad"`
	AssignedTo  *string             `json:"asignado_a"`
	Category    *string             `json:"categoria"`
	Cost        decimal.NullDecimal `json:"costo_proyecto"`
}

type CreateProjectPayload struct {
	ProjectFields
}

func (p *CreateProjectPayload) Validate() error {
	return validate.Struct(p)
}

// WithDefaults returns the fields with creation defaults applied to
// omitted keys.
func (p *CreateProjectPayload) WithDefaults() ProjectFields {
	fields := p.ProjectFields

	if !fields.Completed.Set {
		fields.Completed = Some(false)
	}

	if !fields.Priority.Set {
		fields.Priority = Some(DefaultPriority)
	}

	return fields
}

type UpdateProjectPayload struct {
	IDParam
	ProjectFields
}

func (p *UpdateProjectPayload) Validate() error {
	return validate.Struct(p)
}

type GetProjectByIDPayload struct {
	IDParam
}

func (p *GetProjectByIDPayload) Validate() error {
	return validate.Struct(p)
}

type DeleteProjectPayload struct {
	IDParam
}

func (p *DeleteProjectPayload) Validate() error {
	return validate.Struct(p)
}

type MarkProjectPaidPayload struct {
	IDParam
}

func (p *MarkProjectPaidPayload) Validate() error {
	return validate.Struct(p)
}

// ProjectPaidResponse is returned by the pay action.
type ProjectPaidResponse struct {
	Message string   `json:"message"`
	Project *Project `json:"project"`
}
