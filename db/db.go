package db

import (
	"context"

	"github.com/mww/card_binder/model"
)

type DB interface {
	ListPlayers(ctx context.Context) ([]model.Player, error)
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	SavePlayer(ctx context.Context, p *model.Player) error
	// SavePlayerWithRookiePage upserts the player and, when no binder page
	// exists for them yet, provisions the given Rookie page. Both writes happen
	// in one transaction: if the rookie page cap is hit the player write is
	// rolled back and ErrRookiePageLimit is returned.
	SavePlayerWithRookiePage(ctx context.Context, p *model.Player, page *model.BinderPage) error
	// DeletePlayer removes the player and cascades to their games, sheets, and
	// binder page. Deleting an id that doesn't exist is not an error.
	DeletePlayer(ctx context.Context, id string) error
	SetPlayerPhotoURL(ctx context.Context, id, url string) error

	ListTemplates(ctx context.Context) ([]model.Template, error)
	GetTemplate(ctx context.Context, id string) (*model.Template, error)
	SaveTemplate(ctx context.Context, t *model.Template) error
	// DeleteTemplate cascades to sheets referencing the template. Games are
	// left in place and readers tolerate the orphaned reference.
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
	SetBinderCoverURL(ctx context.Context, id, url string) error

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
	SetTeamLogoURL(ctx context.Context, id, url string) error

	// Helmet image paths for the static NFL team list, keyed by abbreviation.
	ListHelmetPaths(ctx context.Context) (map[string]string, error)
	SetHelmetPath(ctx context.Context, abbr, path string) error

	GetStats(ctx context.Context) (*model.Stats, error)

	Close() error
}
