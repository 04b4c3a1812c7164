package db

import (
	"context"
	"fmt"

	"github.com/mww/card_binder/model"
)

const upsertSheetQuery = `INSERT INTO sheets (id, playerId, templateId, seasonYear, data)
	VALUES (?,?,?,?,?)
	ON CONFLICT(id) DO UPDATE SET
		playerId=excluded.playerId,
		templateId=excluded.templateId,
		seasonYear=excluded.seasonYear,
		data=excluded.data`

func (db *sqliteDB) ListSheets(ctx context.Context) ([]model.Sheet, error) {
	return db.querySheets(ctx, `SELECT id, playerId, templateId, seasonYear, data FROM sheets`)
}

func (db *sqliteDB) ListSheetsForPlayer(ctx context.Context, playerID string) ([]model.Sheet, error) {
	return db.querySheets(ctx,
		`SELECT id, playerId, templateId, seasonYear, data FROM sheets WHERE playerId=? ORDER BY seasonYear`,
		playerID)
}

func (db *sqliteDB) SaveSheet(ctx context.Context, s *model.Sheet) error {
	data, err := toJSON(s.Values)
	if err != nil {
		return err
	}

	_, err = db.conn.ExecContext(ctx, upsertSheetQuery, s.ID, s.PlayerID, s.TemplateID, s.SeasonYear, data)
	if err != nil {
		return fmt.Errorf("error saving sheet (%s): %w", s.ID, err)
	}
	return nil
}

func (db *sqliteDB) DeleteSheet(ctx context.Context, id string) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM sheets WHERE id=?`, id); err != nil {
		return fmt.Errorf("error deleting sheet %s: %w", id, err)
	}
	return nil
}

func (db *sqliteDB) querySheets(ctx context.Context, query string, args ...any) ([]model.Sheet, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing sheets: %w", err)
	}
	defer rows.Close()

	results := make([]model.Sheet, 0, 8)
	for rows.Next() {
		var s model.Sheet
		var data string
		if err := rows.Scan(&s.ID, &s.PlayerID, &s.TemplateID, &s.SeasonYear, &data); err != nil {
			return nil, err
		}
		if err := fromJSON(data, &s.Values); err != nil {
			return nil, fmt.Errorf("error parsing values for sheet %s: %w", s.ID, err)
		}
		if s.Values == nil {
			s.Values = model.StatValues{}
		}
		results = append(results, s)
	}
	return results, rows.Err()
}
