package controller

import (
	"context"

	"github.com/google/uuid"
	"github.com/mww/card_binder/model"
)

func (c *controller) ListGamesForPlayer(ctx context.Context, playerID string) ([]model.Game, error) {
	return c.db.ListGamesForPlayer(ctx, playerID)
}

func (c *controller) SaveGame(ctx context.Context, g *model.Game) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if err := c.checkValues(ctx, g.TemplateID, g.Values); err != nil {
		return err
	}
	return c.db.SaveGame(ctx, g)
}

func (c *controller) DeleteGame(ctx context.Context, id string) error {
	return c.db.DeleteGame(ctx, id)
}
