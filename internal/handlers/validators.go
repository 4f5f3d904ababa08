package handlers

import (
	"log/slog"
	"sync"

	"github.com/SscSPs/budget_tracker/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// ensureBindingValidators installs the dto package's custom tags on gin's validator.
func ensureBindingValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("Gin validator engine is not go-playground/validator; custom tags unavailable")
			return
		}
		if err := dto.RegisterValidators(v); err != nil {
			slog.Error("Failed to register custom validators", slog.String("error", err.Error()))
		}
	})
}
