package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/enigma/internal/core/entities/alphabet"
)

// ValidateLetterPair accepts two-letter strings of distinct uppercase
// letters, such as "AB".
func ValidateLetterPair(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != 2 {
		return false
	}
	return alphabet.Contains(value[0]) && alphabet.Contains(value[1]) && value[0] != value[1]
}
