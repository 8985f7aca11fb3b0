package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Role      UserRole
	Email     string
	Username  string
	FirstName string
	LastName  string
	CreatedAt time.Time
}

type UserRole string

const (
	RoleDriver  UserRole = "driver"
	RoleShipper UserRole = "shipper"
)

func (r UserRole) String() string {
	return string(r)
}
