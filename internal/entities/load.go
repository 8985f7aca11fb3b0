package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	MaxDimension = 1000
	MaxPayload   = 5000
)

var ErrUnknownLoadState = errors.New("unknown load state")

type Load struct {
	ID              uuid.UUID
	CreatedBy       uuid.UUID
	AssignedTo      *uuid.UUID
	TruckID         *uuid.UUID
	Status          LoadStatus
	State           LoadState
	Dimensions      Dimensions
	Payload         float64
	PickupAddress   string
	DeliveryAddress string
	Logs            []LoadLog
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Dimensions struct {
	Width  float64
	Length float64
	Height float64
}

// DimensionsModify - габариты из запроса, nil поле не задано.
type DimensionsModify struct {
	Width  *float64
	Length *float64
	Height *float64
}

// Complete возвращает габариты, только если заданы все три.
func (d DimensionsModify) Complete() (Dimensions, bool) {
	if d.Width == nil || d.Length == nil || d.Height == nil {
		return Dimensions{}, false
	}
	return Dimensions{Width: *d.Width, Length: *d.Length, Height: *d.Height}, true
}

func (d DimensionsModify) Empty() bool {
	return d.Width == nil && d.Length == nil && d.Height == nil
}

// MergeInto накладывает заданные поля поверх base.
func (d DimensionsModify) MergeInto(base Dimensions) Dimensions {
	if d.Width != nil {
		base.Width = *d.Width
	}
	if d.Length != nil {
		base.Length = *d.Length
	}
	if d.Height != nil {
		base.Height = *d.Height
	}
	return base
}

type LoadLog struct {
	Message string
	Time    time.Time
}

type LoadStatus string

const (
	LoadNew      LoadStatus = "NEW"
	LoadPosted   LoadStatus = "POSTED"
	LoadAssigned LoadStatus = "ASSIGNED"
	LoadShipped  LoadStatus = "SHIPPED"
)

var LoadStatuses = []LoadStatus{LoadNew, LoadPosted, LoadAssigned, LoadShipped}

func (s LoadStatus) String() string {
	return string(s)
}

func (s LoadStatus) Valid() bool {
	switch s {
	case LoadNew, LoadPosted, LoadAssigned, LoadShipped:
		return true
	default:
		return false
	}
}

// LoadState - положение груза в пути, имеет смысл только при статусе ASSIGNED.
type LoadState string

const (
	ReadyToPickUp       LoadState = "Ready to Pick Up"
	EnRouteToPickUp     LoadState = "En route to Pick Up"
	ArrivedToPickUp     LoadState = "Arrived to Pick Up"
	EnRouteToDelivery   LoadState = "En route to Delivery"
	ArrivedToDelivery   LoadState = "Arrived to Delivery"
	DefaultLoadState              = ReadyToPickUp
	AssignmentLoadState           = EnRouteToPickUp
)

func (s LoadState) String() string {
	return string(s)
}

func (s LoadState) Valid() bool {
	switch s {
	case ReadyToPickUp, EnRouteToPickUp, ArrivedToPickUp, EnRouteToDelivery, ArrivedToDelivery:
		return true
	default:
		return false
	}
}

// Terminal - дальше ArrivedToDelivery переходов нет.
func (s LoadState) Terminal() bool {
	return s == ArrivedToDelivery
}

// Next возвращает следующее состояние. Для терминального состояния
// возвращает его же, для неизвестного - ErrUnknownLoadState.
func (s LoadState) Next() (LoadState, error) {
	switch s {
	case ReadyToPickUp:
		return EnRouteToPickUp, nil
	case EnRouteToPickUp:
		return ArrivedToPickUp, nil
	case ArrivedToPickUp:
		return EnRouteToDelivery, nil
	case EnRouteToDelivery:
		return ArrivedToDelivery, nil
	case ArrivedToDelivery:
		return ArrivedToDelivery, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLoadState, string(s))
	}
}

type LoadModify struct {
	ID              *uuid.UUID
	CreatedBy       *uuid.UUID
	AssignedTo      *uuid.UUID
	TruckID         *uuid.UUID
	Status          *LoadStatus
	State           *LoadState
	Dimensions      *DimensionsModify
	Payload         *float64
	PickupAddress   *string
	DeliveryAddress *string
}

type LoadFilter struct {
	CreatedBy  *uuid.UUID
	AssignedTo *uuid.UUID
	Status     *LoadStatus
	Limit      uint64
	Offset     uint64
}

// Записи журнала груза.
const (
	LogLoadCreated  = "Load created"
	LogLoadPosted   = "Load posted."
	LogNoTruckFound = "No appropriate truck found"
	LogLoadAssigned = "Load assigned, driver en route"
)

func StateChangedLog(state LoadState) string {
	return fmt.Sprintf("Current state of load is %s", state)
}
