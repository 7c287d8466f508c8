package models

import "time"

// Booking represents a confirmed grooming appointment record.
type Booking struct {
	ID                 string    `bson:"id" json:"id"`
	OwnerID            string    `bson:"ownerId" json:"ownerId"`
	OwnerName          string    `bson:"ownerName" json:"ownerName"`
	ContactNumber      string    `bson:"contactNumber" json:"contactNumber"`
	OwnerAddress       string    `bson:"ownerAddress" json:"ownerAddress"`
	PetName            string    `bson:"petName" json:"petName"`
	PetType            string    `bson:"petType" json:"petType"`
	PetBreed           string    `bson:"petBreed" json:"petBreed"`
	PetWeight          string    `bson:"petWeight" json:"petWeight"`
	PetAge             string    `bson:"petAge" json:"petAge"`
	PackageID          string    `bson:"packageId" json:"packageId"`
	SingleServices     []string  `bson:"singleServices,omitempty" json:"singleServices,omitempty"`
	AddOns             []string  `bson:"addOns,omitempty" json:"addOns,omitempty"`
	Date               string    `bson:"date" json:"date"` // YYYY-MM-DD
	Time               string    `bson:"time" json:"time"`
	PackagePrice       float64   `bson:"packagePrice" json:"packagePrice"`
	AddOnsTotal        float64   `bson:"addOnsTotal" json:"addOnsTotal"`
	Subtotal           float64   `bson:"subtotal" json:"subtotal"`
	BookingFeeDiscount float64   `bson:"bookingFeeDiscount" json:"bookingFeeDiscount"`
	TotalAmount        float64   `bson:"totalAmount" json:"totalAmount"`
	AmountToPay        float64   `bson:"amountToPay" json:"amountToPay"`
	BookingFeePaid     bool      `bson:"bookingFeePaid" json:"bookingFeePaid"`
	Status             string    `bson:"status" json:"status"` // e.g. "confirmed", "cancelled"
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
}

// PriceBreakdown is the pricing engine's output for the current wizard state.
type PriceBreakdown struct {
	PackagePrice          float64 `json:"packagePrice"`
	SingleServicesTotal   float64 `json:"singleServicesTotal"`
	AddOnsTotal           float64 `json:"addOnsTotal"`
	Subtotal              float64 `json:"subtotal"`
	BookingFeeDiscount    float64 `json:"bookingFeeDiscount"`
	TotalAmount           float64 `json:"totalAmount"`
	AmountToPay           float64 `json:"amountToPay"`
	HasBookingFeeDiscount bool    `json:"hasBookingFeeDiscount"`
}

// BookingFeeIntent is the client-facing view of a booking-fee payment intent.
type BookingFeeIntent struct {
	IntentID     string  `json:"intentId"`
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}
