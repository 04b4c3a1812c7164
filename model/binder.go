package model

type BinderPageType string

const (
	PageTypeRookie BinderPageType = "Rookie"
	PageTypeBrowns BinderPageType = "Browns"
	PageTypeExtra  BinderPageType = "Extra"
)

func ParseBinderPageType(s string) (BinderPageType, bool) {
	switch BinderPageType(s) {
	case PageTypeRookie, PageTypeBrowns, PageTypeExtra:
		return BinderPageType(s), true
	default:
		return "", false
	}
}

// DefaultPageSize is the number of card slots on a standard binder page.
const DefaultPageSize = 9

// MaxRookiePages caps how many Rookie-type pages can be auto-provisioned
// system-wide. The binder physically holds 32 rookie pages.
const MaxRookiePages = 32

// Binder is a physical binder that contains pages.
type Binder struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Year      *int   `json:"year,omitempty"`
	PageCount *int   `json:"pageCount,omitempty"`
	PageSize  int    `json:"pageSize,omitempty"` // slots per page
	CoverURL  string `json:"coverUrl,omitempty"`
}

// Slot is one card position on a binder page.
type Slot struct {
	Index int    `json:"index"`
	Note  string `json:"note,omitempty"`
}

// BinderPage is one page-worth of card slots. Rookie pages are tied 1:1 to a
// player. Pages created before binders existed may have no BinderID; the
// migrator adopts those into the default binder.
type BinderPage struct {
	ID       string         `json:"id"`
	Type     BinderPageType `json:"type"`
	BinderID string         `json:"binderId,omitempty"`
	PlayerID string         `json:"playerId,omitempty"`
	Slots    []Slot         `json:"slots"`
}

// NewRookiePage builds the auto-provisioned page for a player: 9 empty slots
// indexed from 1.
func NewRookiePage(playerID string) *BinderPage {
	slots := make([]Slot, DefaultPageSize)
	for i := range slots {
		slots[i] = Slot{Index: i + 1}
	}
	return &BinderPage{
		ID:       "bp-" + playerID,
		Type:     PageTypeRookie,
		PlayerID: playerID,
		Slots:    slots,
	}
}

// BinderPageTemplate describes a printable page layout archetype. It is a
// configuration catalog entry and is not linked to BinderPage instances.
type BinderPageTemplate struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Rows         int     `json:"rows"`
	Cols         int     `json:"cols"`
	Orientation  string  `json:"orientation"` // portrait or landscape
	Unit         string  `json:"unit"`        // in or mm
	SlotWidth    float64 `json:"slotWidth"`
	SlotHeight   float64 `json:"slotHeight"`
	MarginTop    float64 `json:"marginTop,omitempty"`
	MarginRight  float64 `json:"marginRight,omitempty"`
	MarginBottom float64 `json:"marginBottom,omitempty"`
	MarginLeft   float64 `json:"marginLeft,omitempty"`
	GutterX      float64 `json:"gutterX,omitempty"`
	GutterY      float64 `json:"gutterY,omitempty"`
}
