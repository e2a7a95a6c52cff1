// Package validator checks movement and user input before persistence and
// registers the custom tags used by Gin's binding engine.
package validator

import (
	"financeapp/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("movement_type", validateMovementType)
		_ = v.RegisterValidation("role", validateRole)
	}
}

func validateMovementType(fl validator.FieldLevel) bool {
	return models.MovementType(fl.Field().String()).IsValid()
}

func validateRole(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).IsValid()
}
