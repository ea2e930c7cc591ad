package model

import (
	"strings"
	"time"
)

// DateLayout is the layout of promotion expiry and product launch dates.
const DateLayout = "2006-01-02"

type PromotionType string

const (
	PromotionClearance      PromotionType = "clearance"
	PromotionFlashSale      PromotionType = "flash_sale"
	PromotionVolumeDiscount PromotionType = "volume_discount"
	PromotionBlackFriday    PromotionType = "black_friday"
	PromotionLaunch         PromotionType = "launch"
)

// PromotionTypes lists every type in the order the generator draws from.
var PromotionTypes = []PromotionType{
	PromotionClearance,
	PromotionFlashSale,
	PromotionVolumeDiscount,
	PromotionBlackFriday,
	PromotionLaunch,
}

// Label returns the human form of the type, e.g. "flash sale".
func (t PromotionType) Label() string {
	return strings.ReplaceAll(string(t), "_", " ")
}

// Promotion is a time-bounded extra discount on one product. Volume promotions
// only apply from MinQuantity units and never change the listed price.
type Promotion struct {
	Type          PromotionType `json:"tipo"`
	ExtraDiscount int           `json:"descuento_extra"`
	MinQuantity   int           `json:"minimo_cantidad,omitempty"`
	ValidUntil    string        `json:"valido_hasta"`
	Description   string        `json:"descripcion"`
}

func (p Promotion) IsVolume() bool {
	return p.Type == PromotionVolumeDiscount
}

// ActiveAt reports whether t falls on or before the ValidUntil day (UTC).
// An unparsable date is treated as expired.
func (p Promotion) ActiveAt(t time.Time) bool {
	until, err := time.Parse(DateLayout, p.ValidUntil)
	if err != nil {
		return false
	}
	return t.UTC().Before(until.AddDate(0, 0, 1))
}

// Promotions maps product name to its promotion.
type Promotions map[string]Promotion

// Active returns the product's promotion if it is still valid at t.
func (ps Promotions) Active(name string, t time.Time) (Promotion, bool) {
	p, ok := ps[name]
	if !ok || !p.ActiveAt(t) {
		return Promotion{}, false
	}
	return p, true
}

// Dangling returns promotion keys that are not in the catalog.
func (ps Promotions) Dangling(c *Catalog) []string {
	var out []string
	for name := range ps {
		if !c.Has(name) {
			out = append(out, name)
		}
	}
	return out
}
