package storage

import (
	"context"

	"github.com/akyairhashvil/tempo/internal/models"
)

// AddNote inserts a note and returns its ID.
func (d *Database) AddNote(ctx context.Context, title, body string) (int64, error) {
	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO notes (title, body) VALUES (?, ?)", title, body)
	if err != nil {
		return 0, wrapNoteErr("add", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapNoteErr("add", 0, err)
	}
	return id, nil
}

// UpdateNote replaces a note's title and body and bumps updated_at.
func (d *Database) UpdateNote(ctx context.Context, id int64, title, body string) error {
	_, err := d.DB.ExecContext(ctx,
		"UPDATE notes SET title = ?, body = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		title, body, id)
	return wrapNoteErr("update", id, err)
}

// DeleteNote removes a note.
func (d *Database) DeleteNote(ctx context.Context, id int64) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	return wrapNoteErr("delete", id, err)
}

// GetNotes lists notes, most recently edited first.
func (d *Database) GetNotes(ctx context.Context) ([]models.Note, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, title, body, created_at, updated_at
		FROM notes
		ORDER BY updated_at DESC`)
	if err != nil {
		return nil, wrapNoteErr("list", 0, err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, wrapNoteErr("scan", 0, err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
