package model

type LookupStatus string

const (
	LookupFound     LookupStatus = "found"
	LookupAmbiguous LookupStatus = "ambiguous"
	LookupNotFound  LookupStatus = "not_found"
)

// PriceBreakdown shows how the final price is derived. TotalDiscount includes
// the extra discount of an active non-volume promotion.
type PriceBreakdown struct {
	Original      int     `json:"original"`
	TotalDiscount int     `json:"total_discount"`
	Final         float64 `json:"final"`
}

// ProductView is a product together with its effective price and promotion.
type ProductView struct {
	Name      string         `json:"name"`
	Product   Product        `json:"product"`
	Price     PriceBreakdown `json:"price"`
	Promotion *Promotion     `json:"promotion,omitempty"`
}

// LookupResult is the outcome of an advanced product search. Matches holds at
// most MaxSimilar names when Status is LookupAmbiguous.
type LookupResult struct {
	Status  LookupStatus `json:"status"`
	Query   string       `json:"query"`
	Product *ProductView `json:"product,omitempty"`
	Matches []string     `json:"matches,omitempty"`
}

const (
	// MaxSimilar caps the names listed for an ambiguous search.
	MaxSimilar = 5
	// MaxSuggestions caps the names suggested for an unknown product in a stock check.
	MaxSuggestions = 3
	// MaxAlternatives caps the substitutes proposed when stock is short.
	MaxAlternatives = 3
)

// VolumePromotion tells whether a volume discount applies to an order size.
type VolumePromotion struct {
	Applies       bool   `json:"applies"`
	ExtraDiscount int    `json:"extra_discount,omitempty"`
	Description   string `json:"description,omitempty"`
}

// StockCheck is the outcome of a stock verification.
//
// Found=false: Message and Suggestions are set.
// Success=true: Remaining, DeliveryDays and VolumePromotion are set.
// Success=false with Found: Deficit, RestockDays, Alternatives and
// PartialOrderPossible are set.
type StockCheck struct {
	Success              bool             `json:"success"`
	Found                bool             `json:"found"`
	Product              string           `json:"product"`
	Message              string           `json:"message,omitempty"`
	Suggestions          []string         `json:"suggestions,omitempty"`
	Available            int              `json:"available_stock"`
	Requested            int              `json:"requested_quantity"`
	Remaining            int              `json:"remaining_stock"`
	DeliveryDays         int              `json:"delivery_days,omitempty"`
	VolumePromotion      *VolumePromotion `json:"volume_promotion,omitempty"`
	Deficit              int              `json:"deficit,omitempty"`
	RestockDays          int              `json:"restock_days,omitempty"`
	Alternatives         []string         `json:"alternatives,omitempty"`
	PartialOrderPossible bool             `json:"partial_order_possible"`
	Recommendation       string           `json:"recommendation,omitempty"`
}
