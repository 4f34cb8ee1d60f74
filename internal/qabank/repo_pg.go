package qabank

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Tags live in a text[] column;
// they cross the driver boundary as JSON, cast in SQL, because
// database/sql has no native array support.
type PGRepo struct {
	DB *sql.DB
}

const entryColumns = `id, question, answer, category, array_to_json(tags)::text, created_at, updated_at`

// Create inserts a new entry and returns the stored row.
func (r *PGRepo) Create(ctx context.Context, entry Entry) (Entry, error) {
	const query = `
INSERT INTO qa_bank (id, question, answer, category, tags, created_at, updated_at)
VALUES ($1, $2, $3, $4, ARRAY(SELECT jsonb_array_elements_text($5::jsonb)), $6, $7)`

	tags, err := marshalTags(entry.Tags)
	if err != nil {
		return Entry{}, err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.Question,
		entry.Answer,
		string(entry.Category),
		tags,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// List returns all entries, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM qa_bank ORDER BY created_at DESC`, entryColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

// ListByCategory returns entries in one category, newest first.
func (r *PGRepo) ListByCategory(ctx context.Context, category Category) ([]Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM qa_bank WHERE category = $1 ORDER BY created_at DESC`, entryColumns)
	rows, err := r.DB.QueryContext(ctx, query, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

// GetByID returns the entry or ErrNotFound.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM qa_bank WHERE id = $1`, entryColumns)

	entry, err := scanEntry(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}
	return entry, nil
}

// Update replaces the stored row with the given entry. ErrNotFound is
// returned if no row matched the id.
func (r *PGRepo) Update(ctx context.Context, entry Entry) (Entry, error) {
	const query = `
UPDATE qa_bank
SET question = $1, answer = $2, category = $3, tags = ARRAY(SELECT jsonb_array_elements_text($4::jsonb)), updated_at = $5
WHERE id = $6`

	tags, err := marshalTags(entry.Tags)
	if err != nil {
		return Entry{}, err
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		entry.Question,
		entry.Answer,
		string(entry.Category),
		tags,
		entry.UpdatedAt,
		entry.ID,
	)
	if err != nil {
		return Entry{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Entry{}, err
	}
	if affected == 0 {
		return Entry{}, ErrNotFound
	}
	return entry, nil
}

// Delete removes the entry, reporting whether a row was removed.
func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM qa_bank WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var entry Entry
	var category string
	var tags sql.NullString

	if err := row.Scan(
		&entry.ID,
		&entry.Question,
		&entry.Answer,
		&category,
		&tags,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	); err != nil {
		return Entry{}, err
	}

	entry.Category = Category(category)
	entry.Tags = []string{}
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &entry.Tags); err != nil {
			return Entry{}, fmt.Errorf("decode tags: %w", err)
		}
	}
	return entry, nil
}

func collectEntries(rows *sql.Rows) ([]Entry, error) {
	out := []Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	out, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	return out, nil
}

var _ Repo = (*PGRepo)(nil)
