package model

import (
	"wbrent/internal/domains/pricing"
	productModel "wbrent/internal/domains/product/model"
)

// Input is what a customer chooses before seeing a price.
type Input struct {
	ProductID string
	StartDate string
	EndDate   string
	StartTime string
	EndTime   string
	Delivery  bool
}

// Quote is a priced rental period for one product.
type Quote struct {
	Product   productModel.Product
	Range     pricing.Range
	Days      int
	Flags     pricing.Flags
	Breakdown pricing.Breakdown
}
