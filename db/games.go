package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mww/card_binder/model"
)

const upsertGameQuery = `INSERT INTO games (
		id, playerId, templateId, date, isBye, opponentAbbr, teamScore, oppScore, data
	) VALUES (?,?,?,?,?,?,?,?,?)
	ON CONFLICT(id) DO UPDATE SET
		playerId=excluded.playerId,
		templateId=excluded.templateId,
		date=excluded.date,
		isBye=excluded.isBye,
		opponentAbbr=excluded.opponentAbbr,
		teamScore=excluded.teamScore,
		oppScore=excluded.oppScore,
		data=excluded.data`

const selectGameColumns = `SELECT id, playerId, templateId, date, isBye,
		opponentAbbr, teamScore, oppScore, data
	FROM games`

func (db *sqliteDB) ListGamesForPlayer(ctx context.Context, playerID string) ([]model.Game, error) {
	return db.queryGames(ctx, selectGameColumns+` WHERE playerId=? ORDER BY date`, playerID)
}

func (db *sqliteDB) SaveGame(ctx context.Context, g *model.Game) error {
	data, err := toJSON(g.Values)
	if err != nil {
		return err
	}

	_, err = db.conn.ExecContext(ctx, upsertGameQuery,
		g.ID,
		g.PlayerID,
		g.TemplateID,
		nullable(g.Date),
		g.IsBye,
		nullable(g.OpponentAbbr),
		nullableInt(g.TeamScore),
		nullableInt(g.OppScore),
		data)
	if err != nil {
		return fmt.Errorf("error saving game (%s): %w", g.ID, err)
	}
	return nil
}

func (db *sqliteDB) DeleteGame(ctx context.Context, id string) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM games WHERE id=?`, id); err != nil {
		return fmt.Errorf("error deleting game %s: %w", id, err)
	}
	return nil
}

func (db *sqliteDB) queryGames(ctx context.Context, query string, args ...any) ([]model.Game, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}
	defer rows.Close()

	results := make([]model.Game, 0, 18)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *g)
	}
	return results, rows.Err()
}

func scanGame(row interface{ Scan(...any) error }) (*model.Game, error) {
	var result model.Game
	var date, opponent sql.NullString
	var teamScore, oppScore sql.NullInt64
	var data string

	err := row.Scan(
		&result.ID,
		&result.PlayerID,
		&result.TemplateID,
		&date,
		&result.IsBye,
		&opponent,
		&teamScore,
		&oppScore,
		&data)
	if err != nil {
		return nil, err
	}

	result.Date = valueOrEmpty(date)
	result.OpponentAbbr = valueOrEmpty(opponent)
	result.TeamScore = intPtr(teamScore)
	result.OppScore = intPtr(oppScore)
	if err := fromJSON(data, &result.Values); err != nil {
		return nil, fmt.Errorf("error parsing values for game %s: %w", result.ID, err)
	}
	if result.Values == nil {
		result.Values = model.StatValues{}
	}
	return &result, nil
}
