package service

import "github.com/shopspring/decimal"

// Monetary values carry exactly two fractional digits. Every intermediate
// result is quantized immediately; nothing is carried at higher precision
// between steps. decimal.Round rounds the half-way case away from zero.
const moneyPlaces = 2

func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// ServiceCost is round2(price_per_unit × quantity). The quantity is assumed
// already quantized (see ParseQuantity).
func ServiceCost(pricePerUnit, quantity decimal.Decimal) decimal.Decimal {
	return Round2(pricePerUnit.Mul(quantity))
}

// TotalCost is round2(service_cost + delivery_cost).
func TotalCost(serviceCost, deliveryCost decimal.Decimal) decimal.Decimal {
	return Round2(serviceCost.Add(deliveryCost))
}

// ParseQuantity quantizes a raw decimal string to two places and rejects
// anything that does not remain strictly positive.
func ParseQuantity(raw string) (decimal.Decimal, error) {
	q, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidQuantity
	}
	q = Round2(q)
	if !q.IsPositive() {
		return decimal.Zero, ErrInvalidQuantity
	}
	return q, nil
}

// ParseDeliveryCost defaults an empty value to zero and rejects negatives.
func ParseDeliveryCost(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	dc, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidDeliveryCost
	}
	if dc.IsNegative() {
		return decimal.Zero, ErrInvalidDeliveryCost
	}
	return Round2(dc), nil
}
