package fs_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/cardex"
	"github.com/fwojciec/cardex/csv"
	"github.com/fwojciec/cardex/fs"
	"github.com/fwojciec/cardex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic table output
// Tables are encoded to a temp file and renamed into place

func newTable() *cardex.Table {
	table := cardex.NewTable("action_cards", []string{"name", "version"})
	table.Rows = []cardex.Row{{"name": "Sabotage", "version": "base game"}}
	return table
}

func TestWriter_WritesEncodedTable(t *testing.T) {
	t.Parallel()

	// Given a writer targeting a nested path
	path := filepath.Join(t.TempDir(), "out", "action_cards.csv")
	w := fs.NewWriter(path, csv.NewEncoder())

	// When I write a table
	err := w.WriteTable(context.Background(), newTable())

	// Then the file holds the encoded table
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,version\nSabotage,base game\n", string(data))

	// And no temp file is left behind
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestWriter_ReplacesExistingFile(t *testing.T) {
	t.Parallel()

	// Given an existing output file
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	// When I write a table
	err := fs.NewWriter(path, csv.NewEncoder()).WriteTable(context.Background(), newTable())

	// Then the old content is replaced
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestWriter_EncodeFailureKeepsExistingFile(t *testing.T) {
	t.Parallel()

	// Given an existing output file and an encoder that fails midway
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0644))
	enc := &mock.TableEncoder{
		EncodeFn: func(w io.Writer, _ *cardex.Table) error {
			_, _ = io.WriteString(w, "partial")
			return errors.New("boom")
		},
	}

	// When I write a table
	err := fs.NewWriter(path, enc).WriteTable(context.Background(), newTable())

	// Then the error is returned and the previous file survives
	require.Error(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestWriter_RejectsInvalidTable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.csv")

	err := fs.NewWriter(path, csv.NewEncoder()).WriteTable(context.Background(), cardex.NewTable("", nil))

	assert.Equal(t, cardex.EINVALID, cardex.ErrorCode(err))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriter_HonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := filepath.Join(t.TempDir(), "out.csv")

	err := fs.NewWriter(path, csv.NewEncoder()).WriteTable(ctx, newTable())

	assert.ErrorIs(t, err, context.Canceled)
}
