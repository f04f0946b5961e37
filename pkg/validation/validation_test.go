package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowtrack/pkg/apperr"
)

type item struct {
	OwnerID uint `json:"ownerId" validate:"required"`
}

type order struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Driver string `json:"driver" validate:"oneof=sqlite postgres"`
	Items  []item `json:"items" validate:"min=1,dive"`
}

func TestStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		err := Struct(order{Date: "2024-03-01", Driver: "sqlite", Items: []item{{OwnerID: 1}}})
		assert.NoError(t, err)
	})

	t.Run("reports json field paths", func(t *testing.T) {
		err := Struct(order{Date: "03/01/2024", Driver: "mysql", Items: []item{{OwnerID: 0}}})
		require.Error(t, err)
		assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))

		var ae *apperr.Error
		require.ErrorAs(t, err, &ae)
		assert.ElementsMatch(t, []apperr.FieldError{
			{Field: "date", Error: "must be a date formatted as 2006-01-02"},
			{Field: "driver", Error: "must be one of: sqlite postgres"},
			{Field: "items[0].ownerId", Error: "is required"},
		}, ae.Fields)
	})

	t.Run("empty slice", func(t *testing.T) {
		err := Struct(order{Date: "2024-03-01", Driver: "postgres"})
		var ae *apperr.Error
		require.ErrorAs(t, err, &ae)
		require.Len(t, ae.Fields, 1)
		assert.Equal(t, "items", ae.Fields[0].Field)
		assert.Equal(t, "must contain at least 1 item", ae.Fields[0].Error)
	})
}
