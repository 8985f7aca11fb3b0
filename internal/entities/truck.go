package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxTrucksPerDriver = 50
	MaxTruckNameLength = 64
	DefaultTruckName   = "Truck"
)

type Truck struct {
	ID         uuid.UUID
	CreatedBy  uuid.UUID
	AssignedTo *uuid.UUID
	Name       string
	Type       TruckType
	Status     TruckStatus
	Capacity   TruckCapacity
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type TruckCapacity struct {
	Width   float64
	Length  float64
	Height  float64
	Payload float64
}

// CanCarry - предикат подбора машины под груз: за рулем есть водитель,
// машина свободна и по всем измерениям не меньше груза.
func (t *Truck) CanCarry(load *Load) bool {
	if t == nil || load == nil {
		return false
	}
	return t.AssignedTo != nil &&
		t.Status == TruckInService &&
		t.Capacity.Payload >= load.Payload &&
		t.Capacity.Width >= load.Dimensions.Width &&
		t.Capacity.Length >= load.Dimensions.Length &&
		t.Capacity.Height >= load.Dimensions.Height
}

// AssignedToDriver - водитель сейчас ездит именно на этой машине.
func (t *Truck) AssignedToDriver(driverID uuid.UUID) bool {
	return t.AssignedTo != nil && *t.AssignedTo == driverID
}

type TruckStatus string

const (
	TruckInService TruckStatus = "IN_SERVICE"
	TruckOnLoad    TruckStatus = "ON_LOAD"
)

var TruckStatuses = []TruckStatus{TruckInService, TruckOnLoad}

func (s TruckStatus) String() string {
	return string(s)
}

func (s TruckStatus) Valid() bool {
	switch s {
	case TruckInService, TruckOnLoad:
		return true
	default:
		return false
	}
}

type TruckType string

const (
	Sprinter      TruckType = "SPRINTER"
	SmallStraight TruckType = "SMALL STRAIGHT"
	LargeStraight TruckType = "LARGE STRAIGHT"
)

func (t TruckType) String() string {
	return string(t)
}

// Capacity - габариты и грузоподъемность по типу кузова.
func (t TruckType) Capacity() (TruckCapacity, bool) {
	switch t {
	case Sprinter:
		return TruckCapacity{Width: 300, Length: 250, Height: 170, Payload: 1700}, true
	case SmallStraight:
		return TruckCapacity{Width: 500, Length: 250, Height: 170, Payload: 2500}, true
	case LargeStraight:
		return TruckCapacity{Width: 700, Length: 350, Height: 200, Payload: 4000}, true
	default:
		return TruckCapacity{}, false
	}
}

type TruckModify struct {
	ID        *uuid.UUID
	CreatedBy *uuid.UUID
	Name      *string
	Type      *TruckType
	Status    *TruckStatus
	Capacity  *TruckCapacity
}
