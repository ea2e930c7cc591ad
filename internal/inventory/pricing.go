package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
)

var hundred = decimal.NewFromInt(100)

// Price applies the product discount plus the extra of a non-volume promotion.
// Volume promotions depend on order size and leave the listed price alone.
func Price(p model.Product, promo *model.Promotion) model.PriceBreakdown {
	total := p.Discount
	if promo != nil && !promo.IsVolume() {
		total += promo.ExtraDiscount
	}

	final := decimal.NewFromInt(int64(p.Price)).
		Mul(hundred.Sub(decimal.NewFromInt(int64(total)))).
		Div(hundred).
		Round(2)

	return model.PriceBreakdown{
		Original:      p.Price,
		TotalDiscount: total,
		Final:         final.InexactFloat64(),
	}
}

func formatCents(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
