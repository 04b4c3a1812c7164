package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mww/card_binder/db"
	"github.com/mww/card_binder/model"
)

func (c *controller) ListSheets(ctx context.Context) ([]model.Sheet, error) {
	return c.db.ListSheets(ctx)
}

func (c *controller) ListSheetsForPlayer(ctx context.Context, playerID string) ([]model.Sheet, error) {
	return c.db.ListSheetsForPlayer(ctx, playerID)
}

func (c *controller) SaveSheet(ctx context.Context, s *model.Sheet) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if err := c.checkValues(ctx, s.TemplateID, s.Values); err != nil {
		return err
	}
	return c.db.SaveSheet(ctx, s)
}

func (c *controller) DeleteSheet(ctx context.Context, id string) error {
	return c.db.DeleteSheet(ctx, id)
}

// checkValues rejects values keyed by stat lines the template does not
// declare (or declares as calc, which never take entered values). A missing
// template is tolerated: games may legitimately outlive their template.
func (c *controller) checkValues(ctx context.Context, templateID string, values model.StatValues) error {
	t, err := c.db.GetTemplate(ctx, templateID)
	if err != nil {
		if errors.Is(err, db.ErrTemplateNotFound) {
			return nil
		}
		return err
	}

	keys := t.ValueKeys()
	for k := range values {
		if !keys[k] {
			return fmt.Errorf("%w: %q is not an entry line of template %s", ErrInvalidValues, k, templateID)
		}
	}
	return nil
}
