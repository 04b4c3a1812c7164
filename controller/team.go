package controller

import (
	"context"

	"github.com/mww/card_binder/model"
)

func (c *controller) ListTeams(ctx context.Context) ([]model.Team, error) {
	return c.db.ListTeams(ctx)
}

func (c *controller) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	return c.db.GetTeam(ctx, id)
}

func (c *controller) SaveTeam(ctx context.Context, t *model.Team) error {
	return c.db.SaveTeam(ctx, t)
}

func (c *controller) DeleteTeam(ctx context.Context, id string) error {
	return c.db.DeleteTeam(ctx, id)
}
