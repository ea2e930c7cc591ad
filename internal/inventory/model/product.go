package model

// Product is one catalog entry. JSON keys follow the export file format
// consumed by the agent experiments; Name is the catalog key and is not repeated.
type Product struct {
	Name            string  `json:"-"`
	Price           int     `json:"precio"`
	Stock           int     `json:"stock"`
	Category        string  `json:"categoria"`
	Brand           string  `json:"marca"`
	Rating          float64 `json:"rating"`
	Discount        int     `json:"descuento"`
	DeliveryDays    int     `json:"tiempo_entrega"`
	WarrantyMonths  int     `json:"garantia_meses"`
	WeightKg        float64 `json:"peso_kg"`
	Popularity      int     `json:"popularidad"`
	Color           string  `json:"color"`
	AvailableOnline bool    `json:"disponible_online"`
	FreeShipping    bool    `json:"envio_gratis"`
	LaunchDate      string  `json:"fecha_lanzamiento"`
}

// FreeShippingThreshold is the price above which shipping is free.
const FreeShippingThreshold = 50

// QualifiesForFreeShipping reports whether a price earns free shipping.
func QualifiesForFreeShipping(price int) bool {
	return price > FreeShippingThreshold
}
