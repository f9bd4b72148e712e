package model

import (
	"wbrent/internal/domains/pricing"
	"wbrent/shared/model"
)

const (
	TableName  = "products"
	EntityName = "product"

	FieldID               = "id"
	FieldCategoryID       = "category_id"
	FieldName             = "name"
	FieldPricePerDay      = "price_per_day"
	FieldPriceNextDay     = "price_next_day"
	FieldPriceWeekend     = "price_weekend"
	FieldTransportPrice   = "transport_price"
	FieldWeekendPickupFee = "weekend_pickup_fee"
	FieldAvailable        = "available"
)

// Product is seeded reference data. Prices are in grosze.
type Product struct {
	ID               string `db:"id"`
	CategoryID       string `db:"category_id"`
	Name             string `db:"name"`
	PricePerDay      int64  `db:"price_per_day"`
	PriceNextDay     int64  `db:"price_next_day"`
	PriceWeekend     int64  `db:"price_weekend"`
	TransportPrice   int64  `db:"transport_price"`
	WeekendPickupFee int64  `db:"weekend_pickup_fee"`
	Available        bool   `db:"available"`
	model.Metadata
}

func (p Product) Tariff() pricing.Tariff {
	return pricing.Tariff{
		PricePerDay:      p.PricePerDay,
		PriceNextDay:     p.PriceNextDay,
		PriceWeekend:     p.PriceWeekend,
		WeekendPickupFee: p.WeekendPickupFee,
	}
}
