package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mww/card_binder/model"
)

// The logoUrl column is owned by the upload pipeline, same as players.photoUrl.
const upsertTeamQuery = `INSERT INTO teams (
		id, name, code, city, colorPrimary, colorSecondary, conference, division
	) VALUES (?,?,?,?,?,?,?,?)
	ON CONFLICT(id) DO UPDATE SET
		name=excluded.name,
		code=excluded.code,
		city=excluded.city,
		colorPrimary=excluded.colorPrimary,
		colorSecondary=excluded.colorSecondary,
		conference=excluded.conference,
		division=excluded.division`

const selectTeamColumns = `SELECT id, name, code, city, colorPrimary,
		colorSecondary, logoUrl, conference, division
	FROM teams`

func (db *sqliteDB) ListTeams(ctx context.Context) ([]model.Team, error) {
	rows, err := db.conn.QueryContext(ctx, selectTeamColumns+` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}
	defer rows.Close()

	results := make([]model.Team, 0, 32)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *t)
	}
	return results, rows.Err()
}

func (db *sqliteDB) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	row := db.conn.QueryRowContext(ctx, selectTeamColumns+` WHERE id=?`, id)
	t, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error scanning team %s: %w", id, err)
	}
	return t, nil
}

func (db *sqliteDB) SaveTeam(ctx context.Context, t *model.Team) error {
	_, err := db.conn.ExecContext(ctx, upsertTeamQuery,
		t.ID, t.Name, t.Code, nullable(t.City),
		nullable(t.ColorPrimary), nullable(t.ColorSecondary),
		nullable(t.Conference), nullable(t.Division))
	if err != nil {
		return fmt.Errorf("error saving team (%s): %w", t.ID, err)
	}
	return nil
}

func (db *sqliteDB) DeleteTeam(ctx context.Context, id string) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM teams WHERE id=?`, id); err != nil {
		return fmt.Errorf("error deleting team %s: %w", id, err)
	}
	return nil
}

func (db *sqliteDB) SetTeamLogoURL(ctx context.Context, id, url string) error {
	res, err := db.conn.ExecContext(ctx, `UPDATE teams SET logoUrl=? WHERE id=?`, url, id)
	if err != nil {
		return fmt.Errorf("error setting logo for team %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func (db *sqliteDB) ListHelmetPaths(ctx context.Context) (map[string]string, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT abbr, path FROM helmets`)
	if err != nil {
		return nil, fmt.Errorf("error listing helmet paths: %w", err)
	}
	defer rows.Close()

	paths := make(map[string]string)
	for rows.Next() {
		var abbr, path string
		if err := rows.Scan(&abbr, &path); err != nil {
			return nil, err
		}
		paths[abbr] = path
	}
	return paths, rows.Err()
}

func (db *sqliteDB) SetHelmetPath(ctx context.Context, abbr, path string) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO helmets (abbr, path) VALUES (?,?)
		 ON CONFLICT(abbr) DO UPDATE SET path=excluded.path`, abbr, path)
	if err != nil {
		return fmt.Errorf("error setting helmet path for %s: %w", abbr, err)
	}
	return nil
}

func scanTeam(row interface{ Scan(...any) error }) (*model.Team, error) {
	var result model.Team
	var city, colorPrimary, colorSecondary, logoURL, conference, division sql.NullString

	err := row.Scan(&result.ID, &result.Name, &result.Code, &city,
		&colorPrimary, &colorSecondary, &logoURL, &conference, &division)
	if err != nil {
		return nil, err
	}
	result.City = valueOrEmpty(city)
	result.ColorPrimary = valueOrEmpty(colorPrimary)
	result.ColorSecondary = valueOrEmpty(colorSecondary)
	result.LogoURL = valueOrEmpty(logoURL)
	result.Conference = valueOrEmpty(conference)
	result.Division = valueOrEmpty(division)
	return &result, nil
}
