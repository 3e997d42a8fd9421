// Package validator wires go-playground/validator into echo's request
// validation hook.
package validator

import (
	"persons/internal/domain/entity"
	domainerrors "persons/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *playground.Validate
}

// New builds the validator and registers the custom "cep" rule: the value
// must normalize to exactly 8 digits.
func New() *RequestValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	// Registration only fails for an empty tag name.
	_ = validate.RegisterValidation("cep", func(fl playground.FieldLevel) bool {
		_, err := entity.NewCEP(fl.Field().String())

		return err == nil
	})

	return &RequestValidator{validate: validate}
}

// Validate validates the bound request payload. Violations of any rule fail
// the whole payload; the field-level details are carried to the client.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
