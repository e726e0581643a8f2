package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/food-catalog/pkg/validator"
)

type direction string

func (d direction) Validate() error {
	if d != "asc" && d != "desc" {
		return errors.New("invalid direction")
	}
	return nil
}

type params struct {
	Code  string    `validate:"required,max=8"`
	Term  string    `validate:"omitempty,printable"`
	Order direction `validate:"enum"`
}

func TestDefaultValidator(t *testing.T) {
	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	t.Run("Should accept valid params", func(t *testing.T) {
		assert.NoError(t, v.Validate(params{Code: "ABC123", Term: "choco", Order: "asc"}))
	})

	t.Run("Should report failed tags", func(t *testing.T) {
		err := v.Validate(params{Code: "a b c d e f", Term: "x\x00", Order: "up"})
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
		assert.Equal(t, map[string]string{
			"Code":  "max",
			"Term":  "printable",
			"Order": "enum",
		}, validator.FailedTags(err))
	})

	t.Run("Should report required", func(t *testing.T) {
		err := v.Validate(params{Order: "desc"})
		assert.Equal(t, map[string]string{"Code": "required"}, validator.FailedTags(err))
	})
}

func TestFailedTagsOnOtherError(t *testing.T) {
	assert.Nil(t, validator.FailedTags(errors.New("boom")))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
}
