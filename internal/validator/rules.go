package validator

import (
	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds platform-specific validation tags.
func registerCustomRules(v *validator.Validate) error {
	// package_tier: empty is allowed (defaults to basic pricing downstream).
	return v.RegisterValidation("package_tier", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "basic", "standard", "premium":
			return true
		default:
			return false
		}
	})
}
