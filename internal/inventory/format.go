package inventory

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
)

// FormatProduct renders the product card shown to users and agents.
func FormatProduct(v model.ProductView) string {
	p := v.Product

	var b strings.Builder
	fmt.Fprintf(&b, "📦 %s\n", strings.ToUpper(strings.ReplaceAll(v.Name, "_", " ")))
	fmt.Fprintf(&b, "💰 Price: €%d → €%s (%d%% off)\n", v.Price.Original, formatCents(v.Price.Final), v.Price.TotalDiscount)
	fmt.Fprintf(&b, "📊 Stock: %d units\n", p.Stock)
	fmt.Fprintf(&b, "⭐ Rating: %.1f/5.0\n", p.Rating)
	fmt.Fprintf(&b, "🏷️ Brand: %s\n", p.Brand)
	fmt.Fprintf(&b, "📦 Category: %s\n", p.Category)
	fmt.Fprintf(&b, "🚚 Delivery: %d days\n", p.DeliveryDays)
	fmt.Fprintf(&b, "🔧 Warranty: %d months\n", p.WarrantyMonths)
	fmt.Fprintf(&b, "⚖️ Weight: %.1f kg\n", p.WeightKg)
	fmt.Fprintf(&b, "🎨 Color: %s\n", p.Color)
	fmt.Fprintf(&b, "🌐 Online: %s\n", yesNo(p.AvailableOnline, "Yes", "Store only"))
	fmt.Fprintf(&b, "📮 Shipping: %s", yesNo(p.FreeShipping, "Free", "Paid"))

	if promo := v.Promotion; promo != nil {
		if promo.IsVolume() {
			fmt.Fprintf(&b, "\n🎯 %s - %d%% extra", promo.Description, promo.ExtraDiscount)
		} else {
			fmt.Fprintf(&b, "\n🔥 %s - %d%% extra!", promo.Description, promo.ExtraDiscount)
		}
	}
	return b.String()
}

// FormatLookup renders a lookup outcome as a single message.
func FormatLookup(r model.LookupResult) string {
	switch r.Status {
	case model.LookupFound:
		return FormatProduct(*r.Product)
	case model.LookupAmbiguous:
		return "Similar products found: " + strings.Join(r.Matches, ", ")
	default:
		return fmt.Sprintf("Product '%s' not found in our catalog", r.Query)
	}
}

// WriteSummary prints catalog totals, products per category, stock and price range.
func (inv *Inventory) WriteSummary(w io.Writer) error {
	inv.mu.RLock()
	catalog := inv.catalog()
	active := 0
	now := inv.clock.Now()
	for name := range inv.promos {
		if _, ok := inv.promos.Active(name, now); ok {
			active++
		}
	}
	inv.mu.RUnlock()

	var b strings.Builder
	b.WriteString("\n🏪 INVENTORY SUMMARY\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")
	fmt.Fprintf(&b, "📦 Total products: %d\n", catalog.Len())
	fmt.Fprintf(&b, "🎯 Active promotions: %d\n", active)

	counts := catalog.CountByCategory()
	categories := make([]string, 0, len(counts))
	for c := range counts {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	b.WriteString("\n📊 By category:\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "  • %s: %d products\n", c, counts[c])
	}

	fmt.Fprintf(&b, "\n📦 Total stock: %s units\n", humanize.Comma(int64(catalog.TotalStock())))
	if lo, hi, err := catalog.PriceRange(); err == nil {
		fmt.Fprintf(&b, "💰 Price range: €%d - €%d\n", lo, hi)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func yesNo(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}
