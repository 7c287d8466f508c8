package booking

import (
	"fmt"

	"pawspa/models"
)

// Weight tier labels. Tier prices are matched against these labels exactly.
var weightTiers = []string{
	"5kg & below",
	"6-10kg",
	"11-15kg",
	"16-20kg",
	"21kg & above",
}

// prices are in PHP
var packagesMap = map[string]models.GroomingPackage{
	"shampoo-bath": {
		ID:       "shampoo-bath",
		Name:     "Shampoo & Bath",
		PetType:  "any",
		Duration: 60,
		Tiers: []models.PriceTier{
			{Label: "5kg & below", Price: 350},
			{Label: "6-10kg", Price: 450},
			{Label: "11-15kg", Price: 550},
			{Label: "16-20kg", Price: 650},
			{Label: "21kg & above", Price: 750},
		},
		Includes: []string{"Bath", "Blow dry", "Brush out", "Cologne"},
	},
	"full-package": {
		ID:       "full-package",
		Name:     "Full Grooming Package",
		PetType:  "any",
		Duration: 120,
		Tiers: []models.PriceTier{
			{Label: "5kg & below", Price: 550},
			{Label: "6-10kg", Price: 650},
			{Label: "11-15kg", Price: 800},
			{Label: "16-20kg", Price: 950},
			{Label: "21kg & above", Price: 1100},
		},
		Includes: []string{"Bath", "Haircut", "Nail trim", "Ear cleaning", "Teeth brushing", "Cologne"},
	},
	"deluxe-spa": {
		ID:       "deluxe-spa",
		Name:     "Deluxe Spa Package",
		PetType:  "dog",
		Duration: 150,
		Tiers: []models.PriceTier{
			{Label: "5kg & below", Price: 700},
			{Label: "6-10kg", Price: 850},
			{Label: "11-15kg", Price: 1000},
			{Label: "16-20kg", Price: 1150},
			{Label: "21kg & above", Price: 1300},
		},
		Includes: []string{"Full grooming", "Medicated shampoo", "Paw balm", "Aromatherapy rinse"},
	},
	"cat-basic": {
		ID:       "cat-basic",
		Name:     "Cat Basic Groom",
		PetType:  "cat",
		Duration: 90,
		Tiers: []models.PriceTier{
			{Label: "5kg & below", Price: 400},
			{Label: "6-10kg", Price: 500},
			{Label: "11-15kg", Price: 600},
			{Label: "16-20kg", Price: 700},
			{Label: "21kg & above", Price: 800},
		},
		Includes: []string{"Bath", "Brush out", "Nail trim", "Ear cleaning"},
	},
}

var singleServicesMap = map[string]models.SingleService{
	"nail-trim": {
		ID:       "nail-trim",
		Name:     "Nail Trim",
		Duration: 15,
		Tiers: []models.PriceTier{
			{Label: "5kg & below", Price: 100},
			{Label: "6-10kg", Price: 120},
			{Label: "11-15kg", Price: 150},
			{Label: "16-20kg", Price: 180},
			{Label: "21kg & above", Price: 200},
		},
	},
	"ear-cleaning": {
		ID:       "ear-cleaning",
		Name:     "Ear Cleaning",
		Duration: 15,
		Tiers: []models.PriceTier{
			{Label: "5kg & below", Price: 120},
			{Label: "6-10kg", Price: 140},
			{Label: "11-15kg", Price: 160},
			{Label: "16-20kg", Price: 180},
			{Label: "21kg & above", Price: 200},
		},
	},
	"bath-only": {
		ID:       "bath-only",
		Name:     "Bath Only",
		Duration: 30,
		Tiers: []models.PriceTier{
			{Label: "5kg & below", Price: 200},
			{Label: "6-10kg", Price: 250},
			{Label: "11-15kg", Price: 300},
			{Label: "16-20kg", Price: 350},
			{Label: "21kg & above", Price: 400},
		},
	},
	"teeth-brushing": {
		ID:       "teeth-brushing",
		Name:     "Teeth Brushing",
		Duration: 15,
		Tiers: []models.PriceTier{
			{Label: "5kg & below", Price: 100},
			{Label: "6-10kg", Price: 100},
			{Label: "11-15kg", Price: 120},
			{Label: "16-20kg", Price: 120},
			{Label: "21kg & above", Price: 150},
		},
	},
	"de-shedding": {
		ID:       "de-shedding",
		Name:     "De-shedding Treatment",
		Duration: 45,
		Tiers: []models.PriceTier{
			{Label: "5kg & below", Price: 250},
			{Label: "6-10kg", Price: 300},
			{Label: "11-15kg", Price: 350},
			{Label: "16-20kg", Price: 400},
			{Label: "21kg & above", Price: 450},
		},
	},
}

var addOnsMap = map[string]models.AddOn{
	"flea-tick-treatment": {
		ID:   "flea-tick-treatment",
		Name: "Flea & Tick Treatment",
		Tiers: []models.PriceTier{
			{Label: "5kg & below", Price: 150},
			{Label: "6-10kg", Price: 200},
			{Label: "11-15kg", Price: 250},
			{Label: "16-20kg", Price: 300},
			{Label: "21kg & above", Price: 350},
		},
	},
	"whitening-shampoo": {
		ID:   "whitening-shampoo",
		Name: "Whitening Shampoo Upgrade",
		Tiers: []models.PriceTier{
			{Label: "5kg & below", Price: 100},
			{Label: "6-10kg", Price: 120},
			{Label: "11-15kg", Price: 150},
			{Label: "16-20kg", Price: 180},
			{Label: "21kg & above", Price: 200},
		},
	},
	"paw-pad-care": {
		ID:   "paw-pad-care",
		Name: "Paw Pad Care",
		Tiers: []models.PriceTier{
			{Label: "5kg & below", Price: 80},
			{Label: "6-10kg", Price: 100},
			{Label: "11-15kg", Price: 120},
			{Label: "16-20kg", Price: 140},
			{Label: "21kg & above", Price: 160},
		},
	},
}

// WeightTiers returns the selectable weight tier labels.
func WeightTiers() []string {
	tiers := make([]string, len(weightTiers))
	copy(tiers, weightTiers)
	return tiers
}

// Packages returns a copy of the grooming package catalog.
func Packages() map[string]models.GroomingPackage {
	out := make(map[string]models.GroomingPackage, len(packagesMap))
	for id, pkg := range packagesMap {
		out[id] = copyPackage(pkg)
	}
	return out
}

// PackagesForPetType returns the packages bookable for the given pet type.
func PackagesForPetType(petType string) []models.GroomingPackage {
	out := make([]models.GroomingPackage, 0, len(packagesMap))
	for _, pkg := range packagesMap {
		if pkg.PetType == "any" || pkg.PetType == petType {
			out = append(out, copyPackage(pkg))
		}
	}
	return out
}

// PackageByID returns one package from the catalog.
func PackageByID(id string) (*models.GroomingPackage, error) {
	pkg, exists := packagesMap[id]
	if !exists {
		return nil, fmt.Errorf("package with ID %s not found", id)
	}
	copied := copyPackage(pkg)
	return &copied, nil
}

// SingleServices returns a copy of the à-la-carte service catalog.
func SingleServices() map[string]models.SingleService {
	out := make(map[string]models.SingleService, len(singleServicesMap))
	for id, svc := range singleServicesMap {
		copied := svc
		copied.Tiers = make([]models.PriceTier, len(svc.Tiers))
		copy(copied.Tiers, svc.Tiers)
		out[id] = copied
	}
	return out
}

// AddOns returns a copy of the add-on catalog.
func AddOns() map[string]models.AddOn {
	out := make(map[string]models.AddOn, len(addOnsMap))
	for id, addOn := range addOnsMap {
		copied := addOn
		copied.Tiers = make([]models.PriceTier, len(addOn.Tiers))
		copy(copied.Tiers, addOn.Tiers)
		out[id] = copied
	}
	return out
}

func copyPackage(pkg models.GroomingPackage) models.GroomingPackage {
	copied := pkg
	copied.Tiers = make([]models.PriceTier, len(pkg.Tiers))
	copy(copied.Tiers, pkg.Tiers)
	copied.Includes = make([]string, len(pkg.Includes))
	copy(copied.Includes, pkg.Includes)
	return copied
}
