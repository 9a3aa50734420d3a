package cardex_test

import (
	"testing"

	"github.com/fwojciec/cardex"
	"github.com/stretchr/testify/assert"
)

func TestTable_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, cardex.NewTable("t", []string{"name"}).Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()
		err := cardex.NewTable("", []string{"name"}).Validate()
		assert.Equal(t, cardex.EINVALID, cardex.ErrorCode(err))
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		err := cardex.NewTable("t", nil).Validate()
		assert.Equal(t, cardex.EINVALID, cardex.ErrorCode(err))
	})
}

func TestTable_Records(t *testing.T) {
	t.Parallel()

	table := cardex.NewTable("t", []string{"name", "quantity", "version"})
	table.Rows = []cardex.Row{
		{"name": "Blitz", "quantity": "1", "version": "pok", "ignored": "x"},
		{"name": "Sabotage"},
	}

	assert.Equal(t, [][]string{
		{"Blitz", "1", "pok"},
		{"Sabotage", "", ""},
	}, table.Records())
}
