package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	type form struct {
		Title string `validate:"required"`
		Seats int    `validate:"min=1"`
	}

	assert.Nil(t, Validate(form{Title: "Sahara Expedition", Seats: 4}))

	errs := Validate(form{})
	assert.Equal(t, "required", errs["Title"])
	assert.Equal(t, "min", errs["Seats"])

	assert.NotEmpty(t, Validate("not a struct"))
}
