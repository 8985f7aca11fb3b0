package user

import (
	"time"

	"github.com/google/uuid"
)

type UserDB struct {
	ID        uuid.UUID
	Role      string
	Email     string
	Username  string
	FirstName string
	LastName  string
	CreatedAt time.Time
}
