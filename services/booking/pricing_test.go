package booking

import (
	"math"
	"testing"

	"pawspa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierPriceExactLabelMatch(t *testing.T) {
	pkg := Packages()["shampoo-bath"]

	assert.Equal(t, 350.0, TierPrice(pkg.Tiers, "5kg & below"))
	assert.Equal(t, 750.0, TierPrice(pkg.Tiers, "21kg & above"))

	// No fuzzy matching and no fallback tier.
	assert.Equal(t, 0.0, TierPrice(pkg.Tiers, "5kg and below"))
	assert.Equal(t, 0.0, TierPrice(pkg.Tiers, "5 kg & below"))
	assert.Equal(t, 0.0, TierPrice(pkg.Tiers, ""))
}

func TestCalculateTotalPricePackageWithoutFee(t *testing.T) {
	state := models.BookingState{
		PackageID: "shampoo-bath",
		PetWeight: "5kg & below",
	}

	breakdown := CalculateTotalPrice(state, Packages(), AddOns(), SingleServices())

	assert.Equal(t, 350.0, breakdown.PackagePrice)
	assert.Equal(t, 350.0, breakdown.Subtotal)
	assert.Equal(t, 350.0, breakdown.TotalAmount)
	assert.Equal(t, 350.0, breakdown.AmountToPay)
	assert.False(t, breakdown.HasBookingFeeDiscount)
}

func TestCalculateTotalPriceAppliesBookingFeeDiscount(t *testing.T) {
	state := models.BookingState{
		PackageID:      "shampoo-bath",
		PetWeight:      "5kg & below",
		BookingFeePaid: true,
	}

	breakdown := CalculateTotalPrice(state, Packages(), AddOns(), SingleServices())

	assert.Equal(t, 350.0, breakdown.Subtotal)
	assert.Equal(t, 100.0, breakdown.BookingFeeDiscount)
	assert.Equal(t, 250.0, breakdown.AmountToPay)
	assert.True(t, breakdown.HasBookingFeeDiscount)
}

func TestCalculateTotalPriceUsesRecordedFeeAmount(t *testing.T) {
	state := models.BookingState{
		PackageID:        "full-package",
		PetWeight:        "6-10kg",
		BookingFeePaid:   true,
		BookingFeeAmount: 150,
	}

	breakdown := CalculateTotalPrice(state, Packages(), AddOns(), SingleServices())

	assert.Equal(t, 650.0, breakdown.Subtotal)
	assert.Equal(t, 150.0, breakdown.BookingFeeDiscount)
	assert.Equal(t, 500.0, breakdown.AmountToPay)
}

func TestCalculateTotalPriceWithAddOns(t *testing.T) {
	state := models.BookingState{
		PackageID: "deluxe-spa",
		PetWeight: "11-15kg",
		AddOns:    []string{"flea-tick-treatment", "paw-pad-care"},
	}

	breakdown := CalculateTotalPrice(state, Packages(), AddOns(), SingleServices())

	assert.Equal(t, 1000.0, breakdown.PackagePrice)
	assert.Equal(t, 370.0, breakdown.AddOnsTotal)
	assert.Equal(t, 1370.0, breakdown.Subtotal)
}

func TestCalculateTotalPriceSingleServiceFlow(t *testing.T) {
	state := models.BookingState{
		PackageID:      models.PackageSingleService,
		PetWeight:      "5kg & below",
		SingleServices: []string{"nail-trim", "bath-only"},
		// Add-ons are ignored outside the bundle flow.
		AddOns: []string{"flea-tick-treatment"},
	}

	breakdown := CalculateTotalPrice(state, Packages(), AddOns(), SingleServices())

	assert.Equal(t, 0.0, breakdown.PackagePrice)
	assert.Equal(t, 300.0, breakdown.SingleServicesTotal)
	assert.Equal(t, 0.0, breakdown.AddOnsTotal)
	assert.Equal(t, 300.0, breakdown.Subtotal)
}

func TestCalculateTotalPriceUnmatchedWeightIsZero(t *testing.T) {
	state := models.BookingState{
		PackageID: "shampoo-bath",
		PetWeight: "medium",
	}

	breakdown := CalculateTotalPrice(state, Packages(), AddOns(), SingleServices())
	assert.Equal(t, 0.0, breakdown.Subtotal)
	assert.Equal(t, 0.0, breakdown.AmountToPay)
}

func TestAmountToPayNeverNegative(t *testing.T) {
	state := models.BookingState{
		PackageID:        models.PackageSingleService,
		PetWeight:        "5kg & below",
		SingleServices:   []string{"teeth-brushing"},
		BookingFeePaid:   true,
		BookingFeeAmount: 500,
	}

	breakdown := CalculateTotalPrice(state, Packages(), AddOns(), SingleServices())
	require.Equal(t, 100.0, breakdown.Subtotal)
	assert.Equal(t, 0.0, breakdown.AmountToPay)
}

func TestCalculateTotalAmount(t *testing.T) {
	assert.Equal(t, 450.0, CalculateTotalAmount(350, 100))
	assert.Equal(t, 350.56, CalculateTotalAmount(250.555, 100))

	// Invalid subtotal degrades to zero; invalid fee degrades to subtotal.
	assert.Equal(t, 0.0, CalculateTotalAmount(math.NaN(), 100))
	assert.Equal(t, 0.0, CalculateTotalAmount(math.Inf(1), 100))
	assert.Equal(t, 350.0, CalculateTotalAmount(350, math.NaN()))
	assert.Equal(t, 350.0, CalculateTotalAmount(350, math.Inf(-1)))
}

func TestCalculateAmountToPayOnArrival(t *testing.T) {
	assert.Equal(t, 250.0, CalculateAmountToPayOnArrival(350, 100))
	assert.Equal(t, 0.0, CalculateAmountToPayOnArrival(50, 100))
	assert.Equal(t, 150.56, CalculateAmountToPayOnArrival(250.555, 100))

	assert.Equal(t, 0.0, CalculateAmountToPayOnArrival(math.NaN(), 100))
	assert.Equal(t, 350.0, CalculateAmountToPayOnArrival(350, math.NaN()))
}

func TestCatalogAccessorsReturnCopies(t *testing.T) {
	pkgs := Packages()
	pkg := pkgs["shampoo-bath"]
	pkg.Tiers[0].Price = 1

	fresh := Packages()["shampoo-bath"]
	assert.Equal(t, 350.0, fresh.Tiers[0].Price)

	tiers := WeightTiers()
	tiers[0] = "mutated"
	assert.Equal(t, "5kg & below", WeightTiers()[0])
}

func TestPackagesForPetType(t *testing.T) {
	catOnly := PackagesForPetType(models.PetTypeCat)
	for _, pkg := range catOnly {
		assert.NotEqual(t, "dog", pkg.PetType)
	}

	dogPkgs := PackagesForPetType(models.PetTypeDog)
	ids := make([]string, 0, len(dogPkgs))
	for _, pkg := range dogPkgs {
		ids = append(ids, pkg.ID)
	}
	assert.Contains(t, ids, "deluxe-spa")
	assert.NotContains(t, ids, "cat-basic")
}

func TestPackageByID(t *testing.T) {
	pkg, err := PackageByID("full-package")
	require.NoError(t, err)
	assert.Equal(t, "Full Grooming Package", pkg.Name)

	_, err = PackageByID("no-such-package")
	assert.Error(t, err)
}
