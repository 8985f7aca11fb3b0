package load

import "freight/internal/entities"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

func isValidDimension(v float64) bool {
	return v >= 0 && v <= entities.MaxDimension
}

// isValidDimensions проверяет только переданные поля.
func isValidDimensions(d entities.DimensionsModify) bool {
	for _, v := range []*float64{d.Width, d.Length, d.Height} {
		if v != nil && !isValidDimension(*v) {
			return false
		}
	}
	return true
}

func isValidPayload(v float64) bool {
	return v >= 0 && v <= entities.MaxPayload
}

func validateModify(loadModify entities.LoadModify) error {
	if loadModify.Dimensions != nil && !isValidDimensions(*loadModify.Dimensions) {
		return ErrInvalidDimensions
	}
	if loadModify.Payload != nil && !isValidPayload(*loadModify.Payload) {
		return ErrInvalidPayload
	}
	return nil
}
