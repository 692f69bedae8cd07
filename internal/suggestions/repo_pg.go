package suggestions

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new suggestion.
func (r *PGRepo) Create(ctx context.Context, suggestion Suggestion) error {
	const query = `
INSERT INTO suggestions (id, user_id, category, title, description, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		suggestion.ID,
		suggestion.UserID,
		suggestion.Category,
		suggestion.Title,
		suggestion.Description,
		suggestion.Status,
		suggestion.CreatedAt,
	)
	return err
}

// GetByID returns a suggestion by ID.
func (r *PGRepo) GetByID(ctx context.Context, suggestionID string) (Suggestion, error) {
	const query = `
SELECT id, user_id, category, title, description, status, created_at
FROM suggestions
WHERE id = $1
LIMIT 1`
	var s Suggestion
	var category sql.NullString
	var title sql.NullString
	var description sql.NullString
	err := r.DB.QueryRowContext(ctx, query, suggestionID).Scan(
		&s.ID,
		&s.UserID,
		&category,
		&title,
		&description,
		&s.Status,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Suggestion{}, ErrNotFound
		}
		return Suggestion{}, err
	}
	applyNullable(&s, category, title, description)
	return s, nil
}

// ListByStatus returns all suggestions with the given status, oldest first.
func (r *PGRepo) ListByStatus(ctx context.Context, status string) ([]Suggestion, error) {
	const query = `
SELECT id, user_id, category, title, description, status, created_at
FROM suggestions
WHERE status = $1
ORDER BY created_at ASC, id ASC`
	rows, err := r.DB.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Suggestion{}
	for rows.Next() {
		var s Suggestion
		var category sql.NullString
		var title sql.NullString
		var description sql.NullString
		if err := rows.Scan(&s.ID, &s.UserID, &category, &title, &description, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		applyNullable(&s, category, title, description)
		out = append(out, s)
	}
	return out, rows.Err()
}

// applyNullable maps NULL text columns to empty strings so one sparse row
// cannot abort a whole analysis run.
func applyNullable(s *Suggestion, category, title, description sql.NullString) {
	if category.Valid {
		s.Category = category.String
	}
	if title.Valid {
		s.Title = title.String
	}
	if description.Valid {
		s.Description = description.String
	}
}
