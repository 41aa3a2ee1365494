package api

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"breezy.app/pkg/validation"
)

const maxCityNameLength = 100

// RegisterValidators installs the request validators on gin's binding engine
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("units", validateUnits); err != nil {
		return fmt.Errorf("register units validator: %w", err)
	}
	if err := v.RegisterValidation("cityname", validateCityName); err != nil {
		return fmt.Errorf("register cityname validator: %w", err)
	}
	return nil
}

// validateUnits accepts an empty value or a supported unit system
func validateUnits(fl validator.FieldLevel) bool {
	units := fl.Field().String()
	return units == "" || validation.IsValidUnits(units)
}

// validateCityName rejects blank names, control characters and oversize input
func validateCityName(fl validator.FieldLevel) bool {
	name, ok := validation.TrimAndValidate(fl.Field().String())
	if !ok || len(name) > maxCityNameLength {
		return false
	}
	return strings.IndexFunc(name, unicode.IsControl) < 0
}
