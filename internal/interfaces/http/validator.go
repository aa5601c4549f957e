// Package http wires gin-level concerns shared by all handlers.
package http

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "redress/internal/domain/complaint/valueobjects"
)

// RegisterCustomValidators adds domain rules to gin's validator engine.
// The complaintstatus tag accepts exactly the three lifecycle values.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine type")
	}
	return v.RegisterValidation("complaintstatus", func(fl validator.FieldLevel) bool {
		return vo.Status(fl.Field().String()).IsValid()
	})
}
