package pricing

import "fmt"

// Tariff is the price list of one product, in grosze.
type Tariff struct {
	PricePerDay      int64
	PriceNextDay     int64
	PriceWeekend     int64
	WeekendPickupFee int64
}

// Flags are the booking options that affect the price. The engine takes them as given.
type Flags struct {
	WithDelivery  bool
	IsWeekend     bool
	WeekendPickup bool
}

// Fees are the shop-wide charges that do not depend on the product.
type Fees struct {
	// DeliveryUnitFee is a one-way delivery charge; delivery is billed both ways.
	DeliveryUnitFee int64
}

type Breakdown struct {
	BasePrice              int64
	DeliveryFee            int64
	WeekendPickupFeeAmount int64
	Total                  int64
}

// Calculate prices a rental of the given length.
func Calculate(tariff Tariff, days int, flags Flags, fees Fees) (Breakdown, error) {
	if days < 1 {
		return Breakdown{}, fmt.Errorf("%w: got %d", ErrInvalidDays, days)
	}

	var res Breakdown

	switch {
	case flags.IsWeekend && days <= maxWeekendDays:
		res.BasePrice = tariff.PriceWeekend
	case days == 1:
		res.BasePrice = tariff.PricePerDay
	default:
		res.BasePrice = tariff.PricePerDay + tariff.PriceNextDay*int64(days-1)
	}

	if flags.WithDelivery {
		res.DeliveryFee = 2 * fees.DeliveryUnitFee
	}

	if flags.WeekendPickup {
		res.WeekendPickupFeeAmount = tariff.WeekendPickupFee
	}

	res.Total = res.BasePrice + res.DeliveryFee + res.WeekendPickupFeeAmount

	return res, nil
}
