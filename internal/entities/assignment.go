package entities

import "github.com/google/uuid"

type AssignmentOutcome string

const (
	OutcomeAssigned         AssignmentOutcome = "assigned"
	OutcomeNoTruckAvailable AssignmentOutcome = "no_truck_available"
)

func (o AssignmentOutcome) String() string {
	return string(o)
}

// LoadAssignment - результат публикации груза. DriverID и TruckID
// заполнены только при OutcomeAssigned.
type LoadAssignment struct {
	LoadID   uuid.UUID
	Outcome  AssignmentOutcome
	DriverID *uuid.UUID
	TruckID  *uuid.UUID
}

// StateTransition - результат одного шага доставки.
type StateTransition struct {
	LoadID         uuid.UUID
	From           LoadState
	To             LoadState
	Status         LoadStatus
	AlreadyArrived bool
}
