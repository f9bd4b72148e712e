package dto

import "wbrent/internal/domains/quote/model"

type QuoteRequest struct {
	ProductID string `json:"productId" validate:"required,max=100"`
	StartDate string `json:"startDate" validate:"required,date"`
	EndDate   string `json:"endDate"   validate:"required,date"`
	StartTime string `json:"startTime" validate:"omitempty,clock"`
	EndTime   string `json:"endTime"   validate:"omitempty,clock"`
	Delivery  bool   `json:"delivery"`
}

func (r *QuoteRequest) ToInput() model.Input {
	return model.Input{
		ProductID: r.ProductID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Delivery:  r.Delivery,
	}
}

type QuoteResponse struct {
	ProductID              string `json:"productId"`
	Days                   int    `json:"days"`
	IsWeekend              bool   `json:"isWeekend"`
	WeekendPickup          bool   `json:"weekendPickup"`
	BasePrice              int64  `json:"basePrice"`
	DeliveryFee            int64  `json:"deliveryFee"`
	WeekendPickupFeeAmount int64  `json:"weekendPickupFeeAmount"`
	Total                  int64  `json:"total"`
}

func (r *QuoteResponse) FromModel(quote model.Quote) {
	r.ProductID = quote.Product.ID
	r.Days = quote.Days
	r.IsWeekend = quote.Flags.IsWeekend
	r.WeekendPickup = quote.Flags.WeekendPickup
	r.BasePrice = quote.Breakdown.BasePrice
	r.DeliveryFee = quote.Breakdown.DeliveryFee
	r.WeekendPickupFeeAmount = quote.Breakdown.WeekendPickupFeeAmount
	r.Total = quote.Breakdown.Total
}
