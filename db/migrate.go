package db

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mww/card_binder/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS players (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	team TEXT NOT NULL,
	position TEXT NOT NULL,
	colleges TEXT NOT NULL,
	draftYear INTEGER,
	draftPick INTEGER,
	isRookie INTEGER NOT NULL,
	isBrownsStarter INTEGER NOT NULL,
	notes TEXT,
	created TIMESTAMP,
	updated TIMESTAMP
);

CREATE TABLE IF NOT EXISTS templates (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	position TEXT NOT NULL,
	statLines TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sheets (
	id TEXT PRIMARY KEY,
	playerId TEXT NOT NULL,
	templateId TEXT NOT NULL,
	seasonYear INTEGER NOT NULL,
	data TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sheets_player ON sheets(playerId);
CREATE INDEX IF NOT EXISTS idx_sheets_template ON sheets(templateId);

CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	playerId TEXT NOT NULL,
	templateId TEXT NOT NULL,
	date TEXT,
	isBye INTEGER NOT NULL,
	opponentAbbr TEXT,
	teamScore INTEGER,
	oppScore INTEGER,
	data TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_games_player ON games(playerId);
CREATE INDEX IF NOT EXISTS idx_games_date ON games(date);

CREATE TABLE IF NOT EXISTS binders (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	year INTEGER,
	pageCount INTEGER,
	pageSize INTEGER,
	coverUrl TEXT
);

CREATE TABLE IF NOT EXISTS binderPages (
	id TEXT PRIMARY KEY,
	type TEXT NOT NULL,
	playerId TEXT,
	slots TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_binderPages_player ON binderPages(playerId);

CREATE TABLE IF NOT EXISTS binderPageTemplates (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	rows INTEGER NOT NULL,
	cols INTEGER NOT NULL,
	orientation TEXT NOT NULL,
	unit TEXT NOT NULL,
	slotWidth REAL NOT NULL,
	slotHeight REAL NOT NULL,
	marginTop REAL,
	marginRight REAL,
	marginBottom REAL,
	marginLeft REAL,
	gutterX REAL,
	gutterY REAL
);

CREATE TABLE IF NOT EXISTS teams (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	code TEXT NOT NULL,
	city TEXT,
	colorPrimary TEXT,
	colorSecondary TEXT,
	logoUrl TEXT,
	conference TEXT,
	division TEXT
);

CREATE TABLE IF NOT EXISTS helmets (
	abbr TEXT PRIMARY KEY,
	path TEXT NOT NULL
);
`

// Columns added after the original schema shipped. Applied additively; the
// "duplicate column name" failure on an up-to-date database is swallowed.
var columnAdds = []string{
	`ALTER TABLE players ADD COLUMN templateId TEXT`,
	`ALTER TABLE players ADD COLUMN photoUrl TEXT`,
	`ALTER TABLE binderPages ADD COLUMN binderId TEXT`,
}

// migrate brings the schema up to date and seeds first-run defaults. It is
// idempotent and runs before the web layer accepts any traffic.
func (db *sqliteDB) migrate(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("error creating tables: %w", err)
	}

	for _, stmt := range columnAdds {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			if !isDuplicateColumn(err) {
				return fmt.Errorf("error adding column: %w", err)
			}
		}
	}

	if err := db.seedDefaultTemplates(ctx); err != nil {
		return err
	}
	return db.seedDefaultBinder(ctx)
}

func isDuplicateColumn(err error) bool {
	return strings.Contains(err.Error(), "duplicate column name")
}

// seedDefaultTemplates inserts one default template per recognized position
// the first time the application runs against an empty database.
func (db *sqliteDB) seedDefaultTemplates(ctx context.Context) error {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(1) FROM templates`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, t := range defaultTemplates() {
		if err := db.SaveTemplate(ctx, &t); err != nil {
			return fmt.Errorf("error seeding template %s: %w", t.ID, err)
		}
	}
	log.Printf("seeded %d default position templates", len(model.AllPositions))
	return nil
}

// seedDefaultBinder creates a single binder on first run and adopts any pages
// that predate binder support.
func (db *sqliteDB) seedDefaultBinder(ctx context.Context) error {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(1) FROM binders`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	b := &model.Binder{
		ID:       "binder-default",
		Name:     "Main Binder",
		PageSize: model.DefaultPageSize,
	}
	if err := db.SaveBinder(ctx, b); err != nil {
		return fmt.Errorf("error seeding default binder: %w", err)
	}

	res, err := db.conn.ExecContext(ctx,
		`UPDATE binderPages SET binderId=? WHERE binderId IS NULL OR binderId=''`, b.ID)
	if err != nil {
		return fmt.Errorf("error adopting orphaned binder pages: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		log.Printf("attached %d orphaned binder pages to %s", n, b.ID)
	}
	return nil
}

func defaultTemplates() []model.Template {
	num := func(key, label string, order int) model.StatLineDef {
		return model.StatLineDef{Key: key, Label: label, Type: model.StatTypeNumber, Order: order}
	}

	return []model.Template{
		{ID: "tmpl-qb", Name: "QB Default", Position: "QB", StatLines: []model.StatLineDef{
			num("GP", "GP", 1), num("GS", "GS", 2), num("CMP", "CMP", 3),
			num("ATT", "ATT", 4), num("YDS", "YDS", 5), num("TD", "TD", 6),
			num("INT", "INT", 7), num("SACK", "SACK", 8), num("RATE", "RATE", 9),
			num("RUSH", "RUSH", 10), num("RUSHYDS", "RUSH YDS", 11), num("RUSHTD", "RUSH TD", 12),
		}},
		{ID: "tmpl-rb", Name: "RB Default", Position: "RB", StatLines: []model.StatLineDef{
			num("GP", "GP", 1), num("ATT", "ATT", 2), num("YDS", "YDS", 3),
			num("AVG", "AVG", 4), num("TD", "TD", 5), num("TGT", "TGT", 6),
			num("REC", "REC", 7), num("RECYDS", "REC YDS", 8), num("RECTD", "REC TD", 9),
			num("FUM", "FUM", 10),
		}},
		{ID: "tmpl-wr", Name: "WR Default", Position: "WR", StatLines: []model.StatLineDef{
			num("GP", "GP", 1), num("TGT", "TGT", 2), num("REC", "REC", 3),
			num("YDS", "YDS", 4), num("AVG", "AVG", 5), num("TD", "TD", 6),
			num("LONG", "LONG", 7), num("RUSH", "RUSH", 8), num("RUSHYDS", "RUSH YDS", 9),
			num("FUM", "FUM", 10),
		}},
		{ID: "tmpl-te", Name: "TE Default", Position: "TE", StatLines: []model.StatLineDef{
			num("GP", "GP", 1), num("TGT", "TGT", 2), num("REC", "REC", 3),
			num("YDS", "YDS", 4), num("AVG", "AVG", 5), num("TD", "TD", 6),
			num("LONG", "LONG", 7), num("FUM", "FUM", 8),
		}},
		{ID: "tmpl-ol", Name: "OL Default", Position: "OL", StatLines: []model.StatLineDef{
			num("GP", "GP", 1), num("GS", "GS", 2), num("PEN", "PEN", 3),
			num("SACKSALLOWED", "SACKS ALLOWED", 4),
		}},
		{ID: "tmpl-dl", Name: "DL Default", Position: "DL", StatLines: []model.StatLineDef{
			num("GP", "GP", 1), num("TKL", "TKL", 2), num("TFL", "TFL", 3),
			num("SACK", "SACK", 4), num("QBHIT", "QB HIT", 5), num("FF", "FF", 6),
		}},
		{ID: "tmpl-edge", Name: "EDGE Default", Position: "EDGE", StatLines: []model.StatLineDef{
			num("GP", "GP", 1), num("TKL", "TKL", 2), num("TFL", "TFL", 3),
			num("SACK", "SACK", 4), num("QBHIT", "QB HIT", 5), num("PRSR", "PRSR", 6),
			num("FF", "FF", 7),
		}},
		{ID: "tmpl-lb", Name: "LB Default", Position: "LB", StatLines: []model.StatLineDef{
			num("GP", "GP", 1), num("TKL", "TKL", 2), num("SOLO", "SOLO", 3),
			num("TFL", "TFL", 4), num("SACK", "SACK", 5), num("INT", "INT", 6),
			num("PD", "PD", 7), num("FF", "FF", 8),
		}},
		{ID: "tmpl-cb", Name: "CB Default", Position: "CB", StatLines: []model.StatLineDef{
			num("GP", "GP", 1), num("TKL", "TKL", 2), num("INT", "INT", 3),
			num("PD", "PD", 4), num("TD", "TD", 5), num("FF", "FF", 6),
		}},
		{ID: "tmpl-s", Name: "S Default", Position: "S", StatLines: []model.StatLineDef{
			num("GP", "GP", 1), num("TKL", "TKL", 2), num("SOLO", "SOLO", 3),
			num("INT", "INT", 4), num("PD", "PD", 5), num("FF", "FF", 6),
		}},
		{ID: "tmpl-k", Name: "K Default", Position: "K", StatLines: []model.StatLineDef{
			num("GP", "GP", 1), num("FGM", "FGM", 2), num("FGA", "FGA", 3),
			num("LONG", "LONG", 4), num("XPM", "XPM", 5), num("XPA", "XPA", 6),
		}},
		{ID: "tmpl-p", Name: "P Default", Position: "P", StatLines: []model.StatLineDef{
			num("GP", "GP", 1), num("PUNTS", "PUNTS", 2), num("YDS", "YDS", 3),
			num("AVG", "AVG", 4), num("IN20", "IN20", 5), num("LONG", "LONG", 6),
		}},
	}
}
