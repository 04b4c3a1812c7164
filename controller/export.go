package controller

import (
	"context"

	"github.com/mww/card_binder/model"
)

func (c *controller) Export(ctx context.Context) (*model.Export, error) {
	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	templates, err := c.db.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	sheets, err := c.db.ListSheets(ctx)
	if err != nil {
		return nil, err
	}
	binders, err := c.db.ListBinders(ctx)
	if err != nil {
		return nil, err
	}
	pages, err := c.db.ListBinderPages(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Export{
		Players:     players,
		Templates:   templates,
		Sheets:      sheets,
		Binders:     binders,
		BinderPages: pages,
	}, nil
}

// Import replays the export arrays through the regular upsert paths in
// dependency order. Binder pages land last, after player saves may have
// provisioned rookie pages, so the imported pages win. The regular upserts
// leave image URL columns alone, so exported URLs are restored explicitly.
func (c *controller) Import(ctx context.Context, data *model.Export) error {
	for i := range data.Binders {
		b := &data.Binders[i]
		if err := c.SaveBinder(ctx, b); err != nil {
			return err
		}
		if b.CoverURL != "" {
			if err := c.db.SetBinderCoverURL(ctx, b.ID, b.CoverURL); err != nil {
				return err
			}
		}
	}
	for i := range data.Templates {
		if err := c.SaveTemplate(ctx, &data.Templates[i]); err != nil {
			return err
		}
	}
	for i := range data.Players {
		p := &data.Players[i]
		if err := c.SavePlayer(ctx, p); err != nil {
			return err
		}
		if p.PhotoURL != "" {
			if err := c.db.SetPlayerPhotoURL(ctx, p.ID, p.PhotoURL); err != nil {
				return err
			}
		}
	}
	for i := range data.Sheets {
		if err := c.SaveSheet(ctx, &data.Sheets[i]); err != nil {
			return err
		}
	}
	for i := range data.BinderPages {
		if err := c.SaveBinderPage(ctx, &data.BinderPages[i]); err != nil {
			return err
		}
	}
	return nil
}
