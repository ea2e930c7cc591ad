package repo

import (
	"github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
	"github.com/Chative-core-poc-v1/inventory/pkg/schema"
)

func toSchema(s *model.Snapshot) schema.SnapshotV1 {
	products := s.Catalog.Products()
	out := schema.SnapshotV1{
		ID:          s.ID,
		GeneratedAt: s.GeneratedAt.UTC(),
		Products:    make([]schema.ProductV1, 0, len(products)),
	}
	for _, p := range products {
		out.Products = append(out.Products, schema.ProductV1{
			Name:            p.Name,
			Price:           p.Price,
			Stock:           p.Stock,
			Category:        p.Category,
			Brand:           p.Brand,
			Rating:          p.Rating,
			Discount:        p.Discount,
			DeliveryDays:    p.DeliveryDays,
			WarrantyMonths:  p.WarrantyMonths,
			WeightKg:        p.WeightKg,
			Popularity:      p.Popularity,
			Color:           p.Color,
			AvailableOnline: p.AvailableOnline,
			FreeShipping:    p.FreeShipping,
			LaunchDate:      p.LaunchDate,
		})
	}
	return out
}

// fromSchema rebuilds a snapshot; a payload that violates catalog rules is an error.
func fromSchema(v schema.SnapshotV1) (*model.Snapshot, error) {
	products := make([]model.Product, 0, len(v.Products))
	for _, p := range v.Products {
		products = append(products, model.Product{
			Name:            p.Name,
			Price:           p.Price,
			Stock:           p.Stock,
			Category:        p.Category,
			Brand:           p.Brand,
			Rating:          p.Rating,
			Discount:        p.Discount,
			DeliveryDays:    p.DeliveryDays,
			WarrantyMonths:  p.WarrantyMonths,
			WeightKg:        p.WeightKg,
			Popularity:      p.Popularity,
			Color:           p.Color,
			AvailableOnline: p.AvailableOnline,
			FreeShipping:    p.FreeShipping,
			LaunchDate:      p.LaunchDate,
		})
	}

	catalog, err := model.NewCatalog(products)
	if err != nil {
		return nil, err
	}
	return &model.Snapshot{
		ID:          v.ID,
		GeneratedAt: v.GeneratedAt.UTC(),
		Catalog:     catalog,
	}, nil
}
