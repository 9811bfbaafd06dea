package controllers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// phonePattern mirrors the service-side check so malformed phones are
// rejected at binding time, before the handler runs.
var phonePattern = regexp.MustCompile(`^\+?[0-9 ()\-\.]{7,20}$`)

// RegisterCustomValidators installs the custom binding rules used by the
// request payloads. Call once at startup.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
	}
}
