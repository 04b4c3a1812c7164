package mockdb

import (
	"context"

	"github.com/mww/card_binder/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := db.Called(ctx)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) SavePlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) SavePlayerWithRookiePage(ctx context.Context, p *model.Player, page *model.BinderPage) error {
	args := db.Called(ctx, p, page)
	return args.Error(0)
}

func (db *DB) DeletePlayer(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) SetPlayerPhotoURL(ctx context.Context, id, url string) error {
	args := db.Called(ctx, id, url)
	return args.Error(0)
}

func (db *DB) ListTemplates(ctx context.Context) ([]model.Template, error) {
	args := db.Called(ctx)

	var r []model.Template
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Template)
	}
	return r, args.Error(1)
}

func (db *DB) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	args := db.Called(ctx, id)

	var t *model.Template
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Template)
	}
	return t, args.Error(1)
}

func (db *DB) SaveTemplate(ctx context.Context, t *model.Template) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) DeleteTemplate(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListSheets(ctx context.Context) ([]model.Sheet, error) {
	args := db.Called(ctx)

	var r []model.Sheet
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Sheet)
	}
	return r, args.Error(1)
}

func (db *DB) ListSheetsForPlayer(ctx context.Context, playerID string) ([]model.Sheet, error) {
	args := db.Called(ctx, playerID)

	var r []model.Sheet
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Sheet)
	}
	return r, args.Error(1)
}

func (db *DB) SaveSheet(ctx context.Context, s *model.Sheet) error {
	args := db.Called(ctx, s)
	return args.Error(0)
}

func (db *DB) DeleteSheet(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListGamesForPlayer(ctx context.Context, playerID string) ([]model.Game, error) {
	args := db.Called(ctx, playerID)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (db *DB) SaveGame(ctx context.Context, g *model.Game) error {
	args := db.Called(ctx, g)
	return args.Error(0)
}

func (db *DB) DeleteGame(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListBinders(ctx context.Context) ([]model.Binder, error) {
	args := db.Called(ctx)

	var r []model.Binder
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Binder)
	}
	return r, args.Error(1)
}

func (db *DB) GetBinder(ctx context.Context, id string) (*model.Binder, error) {
	args := db.Called(ctx, id)

	var b *model.Binder
	if args.Get(0) != nil {
		b = args.Get(0).(*model.Binder)
	}
	return b, args.Error(1)
}

func (db *DB) SaveBinder(ctx context.Context, b *model.Binder) error {
	args := db.Called(ctx, b)
	return args.Error(0)
}

func (db *DB) SetBinderCoverURL(ctx context.Context, id, url string) error {
	args := db.Called(ctx, id, url)
	return args.Error(0)
}

func (db *DB) ListBinderPages(ctx context.Context) ([]model.BinderPage, error) {
	args := db.Called(ctx)

	var r []model.BinderPage
	if args.Get(0) != nil {
		r = args.Get(0).([]model.BinderPage)
	}
	return r, args.Error(1)
}

func (db *DB) SaveBinderPage(ctx context.Context, p *model.BinderPage) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) DeleteBinderPage(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListBinderPageTemplates(ctx context.Context) ([]model.BinderPageTemplate, error) {
	args := db.Called(ctx)

	var r []model.BinderPageTemplate
	if args.Get(0) != nil {
		r = args.Get(0).([]model.BinderPageTemplate)
	}
	return r, args.Error(1)
}

func (db *DB) SaveBinderPageTemplate(ctx context.Context, t *model.BinderPageTemplate) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) DeleteBinderPageTemplate(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := db.Called(ctx)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (db *DB) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	args := db.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) SaveTeam(ctx context.Context, t *model.Team) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) DeleteTeam(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) SetTeamLogoURL(ctx context.Context, id, url string) error {
	args := db.Called(ctx, id, url)
	return args.Error(0)
}

func (db *DB) ListHelmetPaths(ctx context.Context) (map[string]string, error) {
	args := db.Called(ctx)

	var r map[string]string
	if args.Get(0) != nil {
		r = args.Get(0).(map[string]string)
	}
	return r, args.Error(1)
}

func (db *DB) SetHelmetPath(ctx context.Context, abbr, path string) error {
	args := db.Called(ctx, abbr, path)
	return args.Error(0)
}

func (db *DB) GetStats(ctx context.Context) (*model.Stats, error) {
	args := db.Called(ctx)

	var s *model.Stats
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Stats)
	}
	return s, args.Error(1)
}

func (db *DB) Close() error {
	args := db.Called()
	return args.Error(0)
}
