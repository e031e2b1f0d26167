package utils

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Brazilian tax identifiers: CPF (11 digits) or CNPJ (14 digits), digits only.
var taxIDPattern = regexp.MustCompile(`^(\d{11}|\d{14})$`)

// validTaxID implements the "tax_id" binding rule.
func validTaxID(fl validator.FieldLevel) bool {
	return taxIDPattern.MatchString(fl.Field().String())
}

// RegisterBindingValidations installs custom rules into gin's binding
// validator. Call once before the engine starts serving.
func RegisterBindingValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("tax_id", validTaxID)
}

// IsValidTaxID reports whether s is a well-formed tax identifier. Used where
// the value arrives outside a bound request body.
func IsValidTaxID(s string) bool {
	return taxIDPattern.MatchString(s)
}
