package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mww/card_binder/model"
)

const upsertTemplateQuery = `INSERT INTO templates (id, name, position, statLines)
	VALUES (?,?,?,?)
	ON CONFLICT(id) DO UPDATE SET
		name=excluded.name,
		position=excluded.position,
		statLines=excluded.statLines`

func (db *sqliteDB) ListTemplates(ctx context.Context) ([]model.Template, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT id, name, position, statLines FROM templates`)
	if err != nil {
		return nil, fmt.Errorf("error listing templates: %w", err)
	}
	defer rows.Close()

	results := make([]model.Template, 0, 16)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *t)
	}
	return results, rows.Err()
}

func (db *sqliteDB) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	row := db.conn.QueryRowContext(ctx, `SELECT id, name, position, statLines FROM templates WHERE id=?`, id)
	t, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("error scanning template %s: %w", id, err)
	}
	return t, nil
}

func (db *sqliteDB) SaveTemplate(ctx context.Context, t *model.Template) error {
	statLines, err := toJSON(t.StatLines)
	if err != nil {
		return err
	}

	_, err = db.conn.ExecContext(ctx, upsertTemplateQuery, t.ID, t.Name, t.Position, statLines)
	if err != nil {
		return fmt.Errorf("error saving template (%s): %w", t.ID, err)
	}
	return nil
}

// DeleteTemplate removes the template and its sheets. Games that reference the
// template are left orphaned; readers handle the missing reference.
func (db *sqliteDB) DeleteTemplate(ctx context.Context, id string) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sheets WHERE templateId=?`, id); err != nil {
		return fmt.Errorf("error deleting sheets for template %s: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM templates WHERE id=?`, id); err != nil {
		return fmt.Errorf("error deleting template %s: %w", id, err)
	}
	return tx.Commit()
}

func scanTemplate(row interface{ Scan(...any) error }) (*model.Template, error) {
	var result model.Template
	var statLines string
	if err := row.Scan(&result.ID, &result.Name, &result.Position, &statLines); err != nil {
		return nil, err
	}
	if err := fromJSON(statLines, &result.StatLines); err != nil {
		return nil, fmt.Errorf("error parsing stat lines for %s: %w", result.ID, err)
	}
	return &result, nil
}
