package controller

import (
	"context"

	"github.com/mww/card_binder/model"
)

func (c *controller) ListBinders(ctx context.Context) ([]model.Binder, error) {
	return c.db.ListBinders(ctx)
}

func (c *controller) GetBinder(ctx context.Context, id string) (*model.Binder, error) {
	return c.db.GetBinder(ctx, id)
}

func (c *controller) SaveBinder(ctx context.Context, b *model.Binder) error {
	return c.db.SaveBinder(ctx, b)
}

func (c *controller) ListBinderPages(ctx context.Context) ([]model.BinderPage, error) {
	return c.db.ListBinderPages(ctx)
}

func (c *controller) SaveBinderPage(ctx context.Context, p *model.BinderPage) error {
	return c.db.SaveBinderPage(ctx, p)
}

func (c *controller) DeleteBinderPage(ctx context.Context, id string) error {
	return c.db.DeleteBinderPage(ctx, id)
}

func (c *controller) ListBinderPageTemplates(ctx context.Context) ([]model.BinderPageTemplate, error) {
	return c.db.ListBinderPageTemplates(ctx)
}

func (c *controller) SaveBinderPageTemplate(ctx context.Context, t *model.BinderPageTemplate) error {
	return c.db.SaveBinderPageTemplate(ctx, t)
}

func (c *controller) DeleteBinderPageTemplate(ctx context.Context, id string) error {
	return c.db.DeleteBinderPageTemplate(ctx, id)
}
