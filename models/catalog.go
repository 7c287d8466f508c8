package models

// PriceTier is one weight bracket's price for a package, service, or add-on.
// Tier labels are matched exactly against the pet's weight label.
type PriceTier struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// GroomingPackage is a bundle of grooming services with a tiered price list.
type GroomingPackage struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	PetType  string      `json:"petType"`  // dog, cat, or any
	Duration int         `json:"duration"` // minutes
	Tiers    []PriceTier `json:"tiers"`
	Includes []string    `json:"includes"`
}

// SingleService is one à-la-carte grooming service bookable under the
// single-service flow.
type SingleService struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Duration int         `json:"duration"`
	Tiers    []PriceTier `json:"tiers"`
}

// AddOn is an optional extra bookable alongside a bundle package, priced per
// weight tier.
type AddOn struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Tiers []PriceTier `json:"tiers"`
}
