package load

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type LoadDB struct {
	ID              uuid.UUID
	CreatedBy       uuid.UUID
	AssignedTo      *uuid.UUID
	TruckID         *uuid.UUID
	Status          string
	State           string
	Width           float64
	Length          float64
	Height          float64
	Payload         float64
	PickupAddress   string
	DeliveryAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type LoadLogDB struct {
	LoadID    uuid.UUID
	Message   string
	CreatedAt time.Time
}

// scanDest - порядок совпадает с loadColumns.
func (l *LoadDB) scanDest() []any {
	return []any{
		&l.ID,
		&l.CreatedBy,
		&l.AssignedTo,
		&l.TruckID,
		&l.Status,
		&l.State,
		&l.Width,
		&l.Length,
		&l.Height,
		&l.Payload,
		&l.PickupAddress,
		&l.DeliveryAddress,
		&l.CreatedAt,
		&l.UpdatedAt,
	}
}

var loadColumns = []string{
	"id",
	"created_by",
	"assigned_to",
	"truck_id",
	"status",
	"state",
	"width",
	"length",
	"height",
	"payload",
	"pickup_address",
	"delivery_address",
	"created_at",
	"updated_at",
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
