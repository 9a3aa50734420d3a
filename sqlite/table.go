package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/cardex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ cardex.TableService = (*TableService)(nil)

// TableService implements cardex.TableService using SQLite. Each table is a
// dataset row plus one record per table row, stored as a JSON object and
// ordered by position.
type TableService struct {
	db *DB
}

// NewTableService creates a new TableService.
func NewTableService(db *DB) *TableService {
	return &TableService{db: db}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// WriteTable stores t, replacing any table with the same name.
func (s *TableService) WriteTable(ctx context.Context, t *cardex.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	fields, err := json.Marshal(t.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode fields: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM datasets WHERE name = ?", t.Name); err != nil {
		return err
	}

	id := uuid.New().String()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO datasets (id, name, fields, created_at)
		VALUES (?, ?, ?, ?)
	`, id, t.Name, string(fields), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (dataset_id, position, content_hash, data)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		data, err := json.Marshal(restrict(row, t.Fields))
		if err != nil {
			return fmt.Errorf("failed to encode row %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, id, i, hashContent(data), string(data)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// restrict returns the values of row for fields, with missing fields empty.
func restrict(row cardex.Row, fields []string) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f] = row[f]
	}
	return out
}

// FindTable retrieves a table by name with its rows in stored order. Each
// record is checked against its stored content hash; a mismatch returns
// EINTERNAL.
func (s *TableService) FindTable(ctx context.Context, name string) (*cardex.Table, error) {
	var id, fields string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, fields FROM datasets WHERE name = ?
	`, name).Scan(&id, &fields)
	if err == sql.ErrNoRows {
		return nil, cardex.Errorf(cardex.ENOTFOUND, "table %q not found", name)
	}
	if err != nil {
		return nil, err
	}

	t := &cardex.Table{Name: name}
	if err := json.Unmarshal([]byte(fields), &t.Fields); err != nil {
		return nil, fmt.Errorf("failed to parse fields: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT position, content_hash, data FROM records WHERE dataset_id = ? ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			position   int
			hash, data string
		)
		if err := rows.Scan(&position, &hash, &data); err != nil {
			return nil, err
		}
		if hashContent([]byte(data)) != hash {
			return nil, cardex.Errorf(cardex.EINTERNAL, "record %d of table %q does not match its content hash", position, name)
		}
		var row cardex.Row
		if err := json.Unmarshal([]byte(data), &row); err != nil {
			return nil, fmt.Errorf("failed to parse record: %w", err)
		}
		t.Rows = append(t.Rows, row)
	}

	return t, rows.Err()
}

// FindTableNames returns the names of all stored tables, sorted.
func (s *TableService) FindTableNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM datasets ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteTable permanently removes a table and its records.
func (s *TableService) DeleteTable(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM datasets WHERE name = ?", name)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return cardex.Errorf(cardex.ENOTFOUND, "table %q not found", name)
	}
	return nil
}
