package policy

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrAccessDenied = errors.New("access denied")
	ErrInvalidState = errors.New("invalid state")

	// ErrForbidden - операция в принципе разрешена роли, но не в текущем
	// состоянии сущности. errors.Is(ErrForbidden, ErrInvalidState) == true.
	ErrForbidden = fmt.Errorf("forbidden: %w", ErrInvalidState)
)
