package mockcontroller

import (
	"context"

	"github.com/mww/card_binder/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := c.Called(ctx)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) SavePlayer(ctx context.Context, p *model.Player) error {
	args := c.Called(ctx, p)
	return args.Error(0)
}

func (c *C) DeletePlayer(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ListTemplates(ctx context.Context) ([]model.Template, error) {
	args := c.Called(ctx)

	var r []model.Template
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Template)
	}
	return r, args.Error(1)
}

func (c *C) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	args := c.Called(ctx, id)

	var t *model.Template
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Template)
	}
	return t, args.Error(1)
}

func (c *C) SaveTemplate(ctx context.Context, t *model.Template) error {
	args := c.Called(ctx, t)
	return args.Error(0)
}

func (c *C) DeleteTemplate(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ListSheets(ctx context.Context) ([]model.Sheet, error) {
	args := c.Called(ctx)

	var r []model.Sheet
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Sheet)
	}
	return r, args.Error(1)
}

func (c *C) ListSheetsForPlayer(ctx context.Context, playerID string) ([]model.Sheet, error) {
	args := c.Called(ctx, playerID)

	var r []model.Sheet
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Sheet)
	}
	return r, args.Error(1)
}

func (c *C) SaveSheet(ctx context.Context, s *model.Sheet) error {
	args := c.Called(ctx, s)
	return args.Error(0)
}

func (c *C) DeleteSheet(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ListGamesForPlayer(ctx context.Context, playerID string) ([]model.Game, error) {
	args := c.Called(ctx, playerID)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (c *C) SaveGame(ctx context.Context, g *model.Game) error {
	args := c.Called(ctx, g)
	return args.Error(0)
}

func (c *C) DeleteGame(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ListBinders(ctx context.Context) ([]model.Binder, error) {
	args := c.Called(ctx)

	var r []model.Binder
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Binder)
	}
	return r, args.Error(1)
}

func (c *C) GetBinder(ctx context.Context, id string) (*model.Binder, error) {
	args := c.Called(ctx, id)

	var b *model.Binder
	if args.Get(0) != nil {
		b = args.Get(0).(*model.Binder)
	}
	return b, args.Error(1)
}

func (c *C) SaveBinder(ctx context.Context, b *model.Binder) error {
	args := c.Called(ctx, b)
	return args.Error(0)
}

func (c *C) ListBinderPages(ctx context.Context) ([]model.BinderPage, error) {
	args := c.Called(ctx)

	var r []model.BinderPage
	if args.Get(0) != nil {
		r = args.Get(0).([]model.BinderPage)
	}
	return r, args.Error(1)
}

func (c *C) SaveBinderPage(ctx context.Context, p *model.BinderPage) error {
	args := c.Called(ctx, p)
	return args.Error(0)
}

func (c *C) DeleteBinderPage(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ListBinderPageTemplates(ctx context.Context) ([]model.BinderPageTemplate, error) {
	args := c.Called(ctx)

	var r []model.BinderPageTemplate
	if args.Get(0) != nil {
		r = args.Get(0).([]model.BinderPageTemplate)
	}
	return r, args.Error(1)
}

func (c *C) SaveBinderPageTemplate(ctx context.Context, t *model.BinderPageTemplate) error {
	args := c.Called(ctx, t)
	return args.Error(0)
}

func (c *C) DeleteBinderPageTemplate(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := c.Called(ctx)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (c *C) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	args := c.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (c *C) SaveTeam(ctx context.Context, t *model.Team) error {
	args := c.Called(ctx, t)
	return args.Error(0)
}

func (c *C) DeleteTeam(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) MetaTeams(ctx context.Context) ([]model.MetaTeam, error) {
	args := c.Called(ctx)

	var r []model.MetaTeam
	if args.Get(0) != nil {
		r = args.Get(0).([]model.MetaTeam)
	}
	return r, args.Error(1)
}

func (c *C) Positions() []model.Position {
	args := c.Called()

	var r []model.Position
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Position)
	}
	return r
}

func (c *C) UploadTeamHelmet(ctx context.Context, abbr, dataURI string) (string, error) {
	args := c.Called(ctx, abbr, dataURI)
	return args.String(0), args.Error(1)
}

func (c *C) UploadPlayerPhoto(ctx context.Context, playerID, dataURI string) (string, error) {
	args := c.Called(ctx, playerID, dataURI)
	return args.String(0), args.Error(1)
}

func (c *C) UploadBinderCover(ctx context.Context, binderID, dataURI string) (string, error) {
	args := c.Called(ctx, binderID, dataURI)
	return args.String(0), args.Error(1)
}

func (c *C) GetStats(ctx context.Context) (*model.Stats, error) {
	args := c.Called(ctx)

	var s *model.Stats
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Stats)
	}
	return s, args.Error(1)
}

func (c *C) Export(ctx context.Context) (*model.Export, error) {
	args := c.Called(ctx)

	var e *model.Export
	if args.Get(0) != nil {
		e = args.Get(0).(*model.Export)
	}
	return e, args.Error(1)
}

func (c *C) Import(ctx context.Context, data *model.Export) error {
	args := c.Called(ctx, data)
	return args.Error(0)
}

func (c *C) SeedDraftClass(ctx context.Context) (*model.SeedReport, error) {
	args := c.Called(ctx)

	var r *model.SeedReport
	if args.Get(0) != nil {
		r = args.Get(0).(*model.SeedReport)
	}
	return r, args.Error(1)
}
