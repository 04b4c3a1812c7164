package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mww/card_binder/model"
)

// The coverUrl column is owned by the upload pipeline, same as players.photoUrl.
const upsertBinderQuery = `INSERT INTO binders (id, name, year, pageCount, pageSize)
	VALUES (?,?,?,?,?)
	ON CONFLICT(id) DO UPDATE SET
		name=excluded.name,
		year=excluded.year,
		pageCount=excluded.pageCount,
		pageSize=excluded.pageSize`

const upsertBinderPageQuery = `INSERT INTO binderPages (id, type, binderId, playerId, slots)
	VALUES (?,?,?,?,?)
	ON CONFLICT(id) DO UPDATE SET
		type=excluded.type,
		binderId=excluded.binderId,
		playerId=excluded.playerId,
		slots=excluded.slots`

const upsertBinderPageTemplateQuery = `INSERT INTO binderPageTemplates (
		id, name, description, rows, cols, orientation, unit,
		slotWidth, slotHeight, marginTop, marginRight, marginBottom, marginLeft,
		gutterX, gutterY
	) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	ON CONFLICT(id) DO UPDATE SET
		name=excluded.name,
		description=excluded.description,
		rows=excluded.rows,
		cols=excluded.cols,
		orientation=excluded.orientation,
		unit=excluded.unit,
		slotWidth=excluded.slotWidth,
		slotHeight=excluded.slotHeight,
		marginTop=excluded.marginTop,
		marginRight=excluded.marginRight,
		marginBottom=excluded.marginBottom,
		marginLeft=excluded.marginLeft,
		gutterX=excluded.gutterX,
		gutterY=excluded.gutterY`

func (db *sqliteDB) ListBinders(ctx context.Context) ([]model.Binder, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, year, pageCount, pageSize, coverUrl FROM binders`)
	if err != nil {
		return nil, fmt.Errorf("error listing binders: %w", err)
	}
	defer rows.Close()

	results := make([]model.Binder, 0, 4)
	for rows.Next() {
		b, err := scanBinder(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *b)
	}
	return results, rows.Err()
}

func (db *sqliteDB) GetBinder(ctx context.Context, id string) (*model.Binder, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT id, name, year, pageCount, pageSize, coverUrl FROM binders WHERE id=?`, id)
	b, err := scanBinder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBinderNotFound
		}
		return nil, fmt.Errorf("error scanning binder %s: %w", id, err)
	}
	return b, nil
}

func (db *sqliteDB) SaveBinder(ctx context.Context, b *model.Binder) error {
	pageSize := sql.NullInt64{}
	if b.PageSize != 0 {
		pageSize = sql.NullInt64{Int64: int64(b.PageSize), Valid: true}
	}

	_, err := db.conn.ExecContext(ctx, upsertBinderQuery,
		b.ID, b.Name, nullableInt(b.Year), nullableInt(b.PageCount), pageSize)
	if err != nil {
		return fmt.Errorf("error saving binder (%s): %w", b.ID, err)
	}
	return nil
}

func (db *sqliteDB) SetBinderCoverURL(ctx context.Context, id, url string) error {
	res, err := db.conn.ExecContext(ctx, `UPDATE binders SET coverUrl=? WHERE id=?`, url, id)
	if err != nil {
		return fmt.Errorf("error setting cover for binder %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrBinderNotFound
	}
	return nil
}

func (db *sqliteDB) ListBinderPages(ctx context.Context) ([]model.BinderPage, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, type, binderId, playerId, slots FROM binderPages`)
	if err != nil {
		return nil, fmt.Errorf("error listing binder pages: %w", err)
	}
	defer rows.Close()

	results := make([]model.BinderPage, 0, 32)
	for rows.Next() {
		var p model.BinderPage
		var pageType string
		var binderID, playerID sql.NullString
		var slots string
		if err := rows.Scan(&p.ID, &pageType, &binderID, &playerID, &slots); err != nil {
			return nil, err
		}
		p.Type = model.BinderPageType(pageType)
		p.BinderID = valueOrEmpty(binderID)
		p.PlayerID = valueOrEmpty(playerID)
		if err := fromJSON(slots, &p.Slots); err != nil {
			return nil, fmt.Errorf("error parsing slots for page %s: %w", p.ID, err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

func (db *sqliteDB) SaveBinderPage(ctx context.Context, p *model.BinderPage) error {
	if err := upsertBinderPage(ctx, db.conn, p); err != nil {
		return fmt.Errorf("error saving binder page (%s): %w", p.ID, err)
	}
	return nil
}

func (db *sqliteDB) DeleteBinderPage(ctx context.Context, id string) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM binderPages WHERE id=?`, id); err != nil {
		return fmt.Errorf("error deleting binder page %s: %w", id, err)
	}
	return nil
}

func upsertBinderPage(ctx context.Context, e execer, p *model.BinderPage) error {
	slots, err := toJSON(p.Slots)
	if err != nil {
		return err
	}

	_, err = e.ExecContext(ctx, upsertBinderPageQuery,
		p.ID, string(p.Type), nullable(p.BinderID), nullable(p.PlayerID), slots)
	return err
}

func (db *sqliteDB) ListBinderPageTemplates(ctx context.Context) ([]model.BinderPageTemplate, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, description, rows, cols, orientation, unit,
			slotWidth, slotHeight, marginTop, marginRight, marginBottom, marginLeft,
			gutterX, gutterY
		FROM binderPageTemplates`)
	if err != nil {
		return nil, fmt.Errorf("error listing binder page templates: %w", err)
	}
	defer rows.Close()

	results := make([]model.BinderPageTemplate, 0, 4)
	for rows.Next() {
		var t model.BinderPageTemplate
		var description sql.NullString
		var marginTop, marginRight, marginBottom, marginLeft, gutterX, gutterY sql.NullFloat64
		err := rows.Scan(&t.ID, &t.Name, &description, &t.Rows, &t.Cols,
			&t.Orientation, &t.Unit, &t.SlotWidth, &t.SlotHeight,
			&marginTop, &marginRight, &marginBottom, &marginLeft, &gutterX, &gutterY)
		if err != nil {
			return nil, err
		}
		t.Description = valueOrEmpty(description)
		t.MarginTop = marginTop.Float64
		t.MarginRight = marginRight.Float64
		t.MarginBottom = marginBottom.Float64
		t.MarginLeft = marginLeft.Float64
		t.GutterX = gutterX.Float64
		t.GutterY = gutterY.Float64
		results = append(results, t)
	}
	return results, rows.Err()
}

func (db *sqliteDB) SaveBinderPageTemplate(ctx context.Context, t *model.BinderPageTemplate) error {
	_, err := db.conn.ExecContext(ctx, upsertBinderPageTemplateQuery,
		t.ID, t.Name, nullable(t.Description), t.Rows, t.Cols, t.Orientation, t.Unit,
		t.SlotWidth, t.SlotHeight, t.MarginTop, t.MarginRight, t.MarginBottom, t.MarginLeft,
		t.GutterX, t.GutterY)
	if err != nil {
		return fmt.Errorf("error saving binder page template (%s): %w", t.ID, err)
	}
	return nil
}

func (db *sqliteDB) DeleteBinderPageTemplate(ctx context.Context, id string) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM binderPageTemplates WHERE id=?`, id); err != nil {
		return fmt.Errorf("error deleting binder page template %s: %w", id, err)
	}
	return nil
}

func scanBinder(row interface{ Scan(...any) error }) (*model.Binder, error) {
	var result model.Binder
	var year, pageCount, pageSize sql.NullInt64
	var coverURL sql.NullString

	if err := row.Scan(&result.ID, &result.Name, &year, &pageCount, &pageSize, &coverURL); err != nil {
		return nil, err
	}
	result.Year = intPtr(year)
	result.PageCount = intPtr(pageCount)
	if pageSize.Valid {
		result.PageSize = int(pageSize.Int64)
	}
	result.CoverURL = valueOrEmpty(coverURL)
	return &result, nil
}
