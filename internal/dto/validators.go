package dto

import (
	"github.com/SscSPs/budget_tracker/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by this package's request types.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("txkind", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseTransactionKind(fl.Field().String())
		return err == nil
	})
}
