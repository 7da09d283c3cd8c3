package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required"`
	Order int    `validate:"gte=1"`
}

func TestValidate(t *testing.T) {
	_, err := Validate(sample{Name: "Hall", Order: 1})
	assert.NoError(t, err)

	_, err = Validate(sample{Order: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'Name': rule 'required'")
}

func TestValidateSlice(t *testing.T) {
	err := ValidateSlice([]sample{{Name: "a", Order: 1}, {Name: "b", Order: 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")
	assert.Contains(t, err.Error(), "rule 'gte'")

	assert.NoError(t, ValidateSlice([]sample{}))
}
