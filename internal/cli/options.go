package cli

import (
	"errors"
	"fmt"
	"strings"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/tuanvumaihuynh/food-catalog/pkg/validator"
)

var optionsValidator = validator.MustNewDefaultValidator()

// validateOptions checks the validate tags of a flag struct and reports the
// first failure in terms of its flag.
func validateOptions(opts any) error {
	err := optionsValidator.Validate(opts)

	var validationErrs govalidator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Errorf("invalid --%s: %s", strings.ToLower(fe.Field()), validator.ValidationErrorMessage(fe))
	}
	return err
}
