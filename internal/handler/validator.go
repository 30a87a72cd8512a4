package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/yjsong/item-simulator/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for equipment slots
	_ = v.RegisterValidation("mountinglocation", validateMountingLocation)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateMountingLocation accepts any known slot name; empty passes so the
// tag composes with omitempty on optional fields.
func validateMountingLocation(fl validator.FieldLevel) bool {
	loc := domain.MountingLocation(fl.Field().String())
	if loc == "" {
		return true
	}
	return loc.Valid()
}
