package truck

import (
	"unicode/utf8"

	"freight/internal/entities"
)

func normalizeName(name *string) (string, error) {
	if name == nil || *name == "" {
		return entities.DefaultTruckName, nil
	}
	if utf8.RuneCountInString(*name) > entities.MaxTruckNameLength {
		return "", ErrInvalidTruckName
	}
	return *name, nil
}

func isValidName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n > 0 && n <= entities.MaxTruckNameLength
}
