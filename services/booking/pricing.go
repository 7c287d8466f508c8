package booking

import (
	"math"

	"pawspa/models"
	"pawspa/utils"
)

// TierPrice returns the price whose tier label exactly equals the weight
// label, or 0 when no tier matches. There is no fuzzy matching and no
// fallback tier.
func TierPrice(tiers []models.PriceTier, weightLabel string) float64 {
	for _, tier := range tiers {
		if tier.Label == weightLabel {
			return tier.Price
		}
	}
	return 0
}

// CalculateTotalPrice computes the price breakdown for the current wizard
// state against the given catalogs. The booking-fee discount uses the
// session's recorded fee when one is present and falls back to the fixed
// default otherwise.
func CalculateTotalPrice(
	state models.BookingState,
	packages map[string]models.GroomingPackage,
	addOns map[string]models.AddOn,
	singles map[string]models.SingleService,
) models.PriceBreakdown {
	var breakdown models.PriceBreakdown

	if pkg, ok := packages[state.PackageID]; ok {
		breakdown.PackagePrice = TierPrice(pkg.Tiers, state.PetWeight)
	}

	if state.PackageID == models.PackageSingleService {
		for _, id := range state.SingleServices {
			if svc, ok := singles[id]; ok {
				breakdown.SingleServicesTotal += TierPrice(svc.Tiers, state.PetWeight)
			}
		}
	} else {
		for _, id := range state.AddOns {
			if addOn, ok := addOns[id]; ok {
				breakdown.AddOnsTotal += TierPrice(addOn.Tiers, state.PetWeight)
			}
		}
	}

	breakdown.Subtotal = breakdown.PackagePrice + breakdown.SingleServicesTotal + breakdown.AddOnsTotal

	if state.BookingFeePaid {
		fee := state.BookingFeeAmount
		if fee <= 0 {
			fee = utils.DefaultBookingFee
		}
		breakdown.BookingFeeDiscount = fee
		breakdown.HasBookingFeeDiscount = true
	}

	breakdown.TotalAmount = breakdown.Subtotal
	breakdown.AmountToPay = math.Max(0, breakdown.Subtotal-breakdown.BookingFeeDiscount)
	return breakdown
}

// CalculateTotalAmount computes the admin-side total for the deposit model:
// the booking fee is added on top of the subtotal. Invalid numeric input
// degrades gracefully rather than propagating NaN.
func CalculateTotalAmount(subtotal, bookingFee float64) float64 {
	if !isValidAmount(subtotal) {
		return 0
	}
	if !isValidAmount(bookingFee) {
		return round2(subtotal)
	}
	return round2(subtotal + bookingFee)
}

// CalculateAmountToPayOnArrival computes the admin-side balance due at the
// shop: the deposited booking fee is subtracted from the subtotal, floored
// at zero.
func CalculateAmountToPayOnArrival(subtotal, bookingFee float64) float64 {
	if !isValidAmount(subtotal) {
		return 0
	}
	if !isValidAmount(bookingFee) {
		return round2(subtotal)
	}
	return round2(math.Max(0, subtotal-bookingFee))
}

func isValidAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
