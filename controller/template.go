package controller

import (
	"context"

	"github.com/mww/card_binder/model"
)

func (c *controller) ListTemplates(ctx context.Context) ([]model.Template, error) {
	return c.db.ListTemplates(ctx)
}

func (c *controller) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	return c.db.GetTemplate(ctx, id)
}

func (c *controller) SaveTemplate(ctx context.Context, t *model.Template) error {
	// Keys are normalized on the way in so that sheets and games always match
	// against the canonical form, no matter what the editor sent.
	for i := range t.StatLines {
		t.StatLines[i].Key = model.NormalizeStatKey(t.StatLines[i].Key)
	}
	return c.db.SaveTemplate(ctx, t)
}

func (c *controller) DeleteTemplate(ctx context.Context, id string) error {
	return c.db.DeleteTemplate(ctx, id)
}
