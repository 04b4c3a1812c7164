package controller

import (
	"context"
	"errors"

	"github.com/itbasis/go-clock"
	"github.com/mww/card_binder/db"
	"github.com/mww/card_binder/model"
)

var (
	// ErrInvalidImage covers malformed or unsupported upload payloads.
	ErrInvalidImage error = errors.New("invalid image payload")
	// ErrInvalidValues is returned when a sheet or game carries values for
	// keys its template does not declare.
	ErrInvalidValues error = errors.New("values do not match template stat lines")
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	ListPlayers(ctx context.Context) ([]model.Player, error)
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	// SavePlayer upserts the player and, for roster players without a binder
	// page, provisions their Rookie page subject to the 32-page cap.
	SavePlayer(ctx context.Context, p *model.Player) error
	DeletePlayer(ctx context.Context, id string) error

	ListTemplates(ctx context.Context) ([]model.Template, error)
	GetTemplate(ctx context.Context, id string) (*model.Template, error)
	SaveTemplate(ctx context.Context, t *model.Template) error
	DeleteTemplate(ctx context.Context, id string) error

	ListSheets(ctx context.Context) ([]model.Sheet, error)
	ListSheetsForPlayer(ctx context.Context, playerID string) ([]model.Sheet, error)
	SaveSheet(ctx context.Context, s *model.Sheet) error
	DeleteSheet(ctx context.Context, id string) error

	ListGamesForPlayer(ctx context.Context, playerID string) ([]model.Game, error)
	SaveGame(ctx context.Context, g *model.Game) error
	DeleteGame(ctx context.Context, id string) error

	ListBinders(ctx context.Context) ([]model.Binder, error)
	GetBinder(ctx context.Context, id string) (*model.Binder, error)
	SaveBinder(ctx context.Context, b *model.Binder) error

	ListBinderPages(ctx context.Context) ([]model.BinderPage, error)
	SaveBinderPage(ctx context.Context, p *model.BinderPage) error
	DeleteBinderPage(ctx context.Context, id string) error

	ListBinderPageTemplates(ctx context.Context) ([]model.BinderPageTemplate, error)
	SaveBinderPageTemplate(ctx context.Context, t *model.BinderPageTemplate) error
	DeleteBinderPageTemplate(ctx context.Context, id string) error

	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id string) (*model.Team, error)
	SaveTeam(ctx context.Context, t *model.Team) error
	DeleteTeam(ctx context.Context, id string) error

	// MetaTeams returns the static NFL reference list with stored helmet paths.
	MetaTeams(ctx context.Context) ([]model.MetaTeam, error)
	Positions() []model.Position

	// Uploads decode a base64 image data URI, replace any previous file for
	// the owning entity, and return the servable relative path.
	UploadTeamHelmet(ctx context.Context, abbr, dataURI string) (string, error)
	UploadPlayerPhoto(ctx context.Context, playerID, dataURI string) (string, error)
	UploadBinderCover(ctx context.Context, binderID, dataURI string) (string, error)

	GetStats(ctx context.Context) (*model.Stats, error)

	Export(ctx context.Context) (*model.Export, error)
	Import(ctx context.Context, data *model.Export) error

	// SeedDraftClass inserts the fixed 2025 draft-pick roster, skipping picks
	// that already exist or whose team cannot be resolved.
	SeedDraftClass(ctx context.Context) (*model.SeedReport, error)
}

type controller struct {
	clock      clock.Clock
	db         db.DB
	uploadsDir string
}

func New(clock clock.Clock, db db.DB, uploadsDir string) (C, error) {
	c := &controller{
		clock:      clock,
		db:         db,
		uploadsDir: uploadsDir,
	}
	return c, nil
}

func (c *controller) GetStats(ctx context.Context) (*model.Stats, error) {
	return c.db.GetStats(ctx)
}

func (c *controller) Positions() []model.Position {
	return model.AllPositions
}

func (c *controller) MetaTeams(ctx context.Context) ([]model.MetaTeam, error) {
	helmets, err := c.db.ListHelmetPaths(ctx)
	if err != nil {
		return nil, err
	}

	teams := make([]model.MetaTeam, 0, len(model.AllTeams))
	for _, t := range model.AllTeams {
		teams = append(teams, model.MetaTeam{
			Abbr:       t.Abbr(),
			Name:       t.Friendly(),
			City:       t.City(),
			Conference: t.Conference(),
			Division:   t.Division(),
			HelmetURL:  helmets[t.Abbr()],
		})
	}
	return teams, nil
}
