package controller

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mww/card_binder/model"
)

// Every extension an entity image may have been stored under. Replacing an
// image removes all of these so an entity never has two files on disk.
var imageExtensions = []string{"png", "jpg", "jpeg", "webp"}

func (c *controller) UploadTeamHelmet(ctx context.Context, abbr, dataURI string) (string, error) {
	team := model.ParseTeam(abbr)
	if team == model.TEAM_FA || team.Abbr() != strings.ToUpper(strings.TrimSpace(abbr)) {
		return "", fmt.Errorf("%w: unknown team %q", ErrInvalidImage, abbr)
	}

	p, err := c.saveImage("teams", team.Abbr(), dataURI)
	if err != nil {
		return "", err
	}
	if err := c.db.SetHelmetPath(ctx, team.Abbr(), p); err != nil {
		return "", err
	}
	return p, nil
}

func (c *controller) UploadPlayerPhoto(ctx context.Context, playerID, dataURI string) (string, error) {
	if _, err := c.db.GetPlayer(ctx, playerID); err != nil {
		return "", err
	}

	p, err := c.saveImage("players", playerID, dataURI)
	if err != nil {
		return "", err
	}
	if err := c.db.SetPlayerPhotoURL(ctx, playerID, p); err != nil {
		return "", err
	}
	return p, nil
}

func (c *controller) UploadBinderCover(ctx context.Context, binderID, dataURI string) (string, error) {
	if _, err := c.db.GetBinder(ctx, binderID); err != nil {
		return "", err
	}

	p, err := c.saveImage("binders", binderID, dataURI)
	if err != nil {
		return "", err
	}
	if err := c.db.SetBinderCoverURL(ctx, binderID, p); err != nil {
		return "", err
	}
	return p, nil
}

// saveImage writes the decoded image as {entityID}.{ext} under the uploads
// directory for kind, removing any previous file for the entity first. The
// returned path is relative and servable under /uploads/.
func (c *controller) saveImage(kind, entityID, dataURI string) (string, error) {
	ext, data, err := decodeImageDataURI(dataURI)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(c.uploadsDir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating upload dir: %w", err)
	}

	for _, e := range imageExtensions {
		os.Remove(filepath.Join(dir, entityID+"."+e))
	}

	name := entityID + "." + ext
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("error writing image: %w", err)
	}
	return path.Join("/uploads", kind, name), nil
}

// decodeImageDataURI parses a data:image/...;base64,... URI and returns the
// file extension to store the payload under along with the decoded bytes.
func decodeImageDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:image/")
	if !ok {
		return "", nil, fmt.Errorf("%w: not an image data URI", ErrInvalidImage)
	}

	mime, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing base64 payload", ErrInvalidImage)
	}

	var ext string
	switch mime {
	case "png", "jpeg", "jpg", "webp":
		ext = mime
	default:
		return "", nil, fmt.Errorf("%w: unsupported image type %q", ErrInvalidImage, mime)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return ext, data, nil
}
