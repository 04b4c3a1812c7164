package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_QB      Position = "QB"
	POS_RB      Position = "RB"
	POS_WR      Position = "WR"
	POS_TE      Position = "TE"
	POS_OL      Position = "OL"
	POS_DL      Position = "DL"
	POS_EDGE    Position = "EDGE"
	POS_LB      Position = "LB"
	POS_CB      Position = "CB"
	POS_S       Position = "S"
	POS_K       Position = "K"
	POS_P       Position = "P"
)

// AllPositions lists every recognized position in display order. Used for the
// /api/meta/positions endpoint and for seeding the default templates.
var AllPositions = []Position{
	POS_QB, POS_RB, POS_WR, POS_TE, POS_OL,
	POS_DL, POS_EDGE, POS_LB, POS_CB, POS_S,
	POS_K, POS_P,
}

func ParsePosition(pos string) Position {
	// Two-way designations like "WR/CB" collapse to the primary position.
	if i := strings.IndexByte(pos, '/'); i >= 0 {
		pos = pos[:i]
	}

	switch strings.ToUpper(strings.TrimSpace(pos)) {
	case "QB":
		return POS_QB
	case "RB", "HB", "FB":
		return POS_RB
	case "WR":
		return POS_WR
	case "TE":
		return POS_TE
	case "OL", "OT", "OG", "C", "G", "T":
		return POS_OL
	case "DL", "DT", "NT", "DE":
		return POS_DL
	case "EDGE":
		return POS_EDGE
	case "LB", "ILB", "OLB", "MLB":
		return POS_LB
	case "CB":
		return POS_CB
	case "S", "FS", "SS", "SAF":
		return POS_S
	case "K":
		return POS_K
	case "P":
		return POS_P
	default:
		return POS_UNKNOWN
	}
}

// DefaultTemplateID returns the id of the seeded default template for a
// position, e.g. "tmpl-qb" for QB.
func DefaultTemplateID(pos Position) string {
	return "tmpl-" + strings.ToLower(string(pos))
}
