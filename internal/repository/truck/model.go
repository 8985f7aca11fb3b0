package truck

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type TruckDB struct {
	ID         uuid.UUID
	CreatedBy  uuid.UUID
	AssignedTo *uuid.UUID
	Name       string
	Type       string
	Status     string
	Width      float64
	Length     float64
	Height     float64
	Payload    float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (t *TruckDB) scanDest() []any {
	return []any{
		&t.ID,
		&t.CreatedBy,
		&t.AssignedTo,
		&t.Name,
		&t.Type,
		&t.Status,
		&t.Width,
		&t.Length,
		&t.Height,
		&t.Payload,
		&t.CreatedAt,
		&t.UpdatedAt,
	}
}

var truckColumns = []string{
	"id",
	"created_by",
	"assigned_to",
	"name",
	"type",
	"status",
	"width",
	"length",
	"height",
	"payload",
	"created_at",
	"updated_at",
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
