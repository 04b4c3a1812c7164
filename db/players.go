package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mww/card_binder/model"
)

// The photoUrl column is deliberately absent from the upsert: it is owned by
// the upload pipeline (SetPlayerPhotoURL) so that a form save without the
// field does not wipe an uploaded photo.
const upsertPlayerQuery = `INSERT INTO players (
		id, name, team, position, colleges, draftYear, draftPick,
		isRookie, isBrownsStarter, notes, templateId, created, updated
	) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)
	ON CONFLICT(id) DO UPDATE SET
		name=excluded.name,
		team=excluded.team,
		position=excluded.position,
		colleges=excluded.colleges,
		draftYear=excluded.draftYear,
		draftPick=excluded.draftPick,
		isRookie=excluded.isRookie,
		isBrownsStarter=excluded.isBrownsStarter,
		notes=excluded.notes,
		templateId=excluded.templateId,
		updated=?`

const selectPlayerColumns = `SELECT id, name, team, position, colleges,
		draftYear, draftPick, isRookie, isBrownsStarter, notes,
		templateId, photoUrl
	FROM players`

func (db *sqliteDB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	rows, err := db.conn.QueryContext(ctx, selectPlayerColumns+` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}
	defer rows.Close()

	results := make([]model.Player, 0, 32)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}
	return results, rows.Err()
}

func (db *sqliteDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	row := db.conn.QueryRowContext(ctx, selectPlayerColumns+` WHERE id=?`, id)
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %s: %w", id, err)
	}
	return p, nil
}

func (db *sqliteDB) SavePlayer(ctx context.Context, p *model.Player) error {
	if err := db.upsertPlayer(ctx, db.conn, p); err != nil {
		return fmt.Errorf("error saving player (%s): %w", p.ID, err)
	}
	return nil
}

func (db *sqliteDB) SavePlayerWithRookiePage(ctx context.Context, p *model.Player, page *model.BinderPage) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := db.upsertPlayer(ctx, tx, p); err != nil {
		return fmt.Errorf("error saving player (%s): %w", p.ID, err)
	}

	var existing string
	err = tx.QueryRowContext(ctx, `SELECT id FROM binderPages WHERE playerId=?`, p.ID).Scan(&existing)
	if err == nil {
		// Already has a page, nothing to provision.
		return tx.Commit()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("error checking binder page for %s: %w", p.ID, err)
	}

	var rookiePages int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM binderPages WHERE type=?`, model.PageTypeRookie).Scan(&rookiePages)
	if err != nil {
		return fmt.Errorf("error counting rookie pages: %w", err)
	}
	if rookiePages >= model.MaxRookiePages {
		// Rolls back the player write too. A capacity rejection must not
		// leave an orphaned player row behind.
		return ErrRookiePageLimit
	}

	if err := upsertBinderPage(ctx, tx, page); err != nil {
		return fmt.Errorf("error provisioning rookie page for %s: %w", p.ID, err)
	}
	return tx.Commit()
}

func (db *sqliteDB) DeletePlayer(ctx context.Context, id string) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	cascade := []string{
		`DELETE FROM games WHERE playerId=?`,
		`DELETE FROM sheets WHERE playerId=?`,
		`DELETE FROM binderPages WHERE playerId=?`,
		`DELETE FROM players WHERE id=?`,
	}
	for _, q := range cascade {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("error deleting player %s: %w", id, err)
		}
	}
	return tx.Commit()
}

func (db *sqliteDB) SetPlayerPhotoURL(ctx context.Context, id, url string) error {
	res, err := db.conn.ExecContext(ctx, `UPDATE players SET photoUrl=? WHERE id=?`, url, id)
	if err != nil {
		return fmt.Errorf("error setting photo for player %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (db *sqliteDB) upsertPlayer(ctx context.Context, e execer, p *model.Player) error {
	colleges, err := toJSON(p.Colleges)
	if err != nil {
		return err
	}

	team := ""
	if p.Team != nil {
		team = p.Team.Abbr()
	}

	now := db.clock.Now().UTC()
	_, err = e.ExecContext(ctx, upsertPlayerQuery,
		p.ID,
		p.Name,
		team,
		string(p.Position),
		colleges,
		nullableInt(p.DraftYear),
		nullableInt(p.DraftPick),
		p.IsPlayer,
		p.IsBrownsStarter,
		nullable(p.Notes),
		nullable(p.TemplateID),
		now,
		now,
		now)
	return err
}

func scanPlayer(row interface{ Scan(...any) error }) (*model.Player, error) {
	var result model.Player
	var team, pos, colleges string
	var notes, templateID, photoURL sql.NullString
	var draftYear, draftPick sql.NullInt64

	err := row.Scan(
		&result.ID,
		&result.Name,
		&team,
		&pos,
		&colleges,
		&draftYear,
		&draftPick,
		&result.IsPlayer,
		&result.IsBrownsStarter,
		&notes,
		&templateID,
		&photoURL)
	if err != nil {
		return nil, err
	}

	result.Team = model.ParseTeam(team)
	result.Position = model.ParsePosition(pos)
	result.DraftYear = intPtr(draftYear)
	result.DraftPick = intPtr(draftPick)
	result.Notes = valueOrEmpty(notes)
	result.TemplateID = valueOrEmpty(templateID)
	result.PhotoURL = valueOrEmpty(photoURL)
	if err := fromJSON(colleges, &result.Colleges); err != nil {
		return nil, fmt.Errorf("error parsing colleges for %s: %w", result.ID, err)
	}
	if result.Colleges == nil {
		result.Colleges = []string{}
	}
	return &result, nil
}
