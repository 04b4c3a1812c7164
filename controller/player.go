package controller

import (
	"context"

	"github.com/mww/card_binder/model"
)

func (c *controller) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return c.db.ListPlayers(ctx)
}

func (c *controller) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	return c.db.GetPlayer(ctx, id)
}

func (c *controller) SavePlayer(ctx context.Context, p *model.Player) error {
	if !p.IsPlayer {
		return c.db.SavePlayer(ctx, p)
	}

	// Roster players get a rookie binder page the first time they are saved.
	// The db layer skips the page if one already exists, and rolls the whole
	// save back if the rookie page cap is hit.
	return c.db.SavePlayerWithRookiePage(ctx, p, model.NewRookiePage(p.ID))
}

func (c *controller) DeletePlayer(ctx context.Context, id string) error {
	return c.db.DeletePlayer(ctx, id)
}
