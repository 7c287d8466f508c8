package models

import "time"

// Pet types selectable in the first wizard step.
const (
	PetTypeDog = "dog"
	PetTypeCat = "cat"
)

// PackageSingleService is the sentinel package id meaning the customer picks
// individual à-la-carte services instead of a bundle.
const PackageSingleService = "single-service"

// Vaccination statuses.
const (
	Vaccinated    = "vaccinated"
	NotVaccinated = "not-vaccinated"
)

// BookingState is the full wizard state for one booking session. It is owned
// by a single state manager and only ever replaced wholesale, never mutated
// in place.
type BookingState struct {
	PetType           string            `json:"petType"`
	PackageID         string            `json:"packageId"`
	SingleServices    []string          `json:"singleServices"`
	AddOns            []string          `json:"addOns"`
	PetWeight         string            `json:"petWeight"`
	PetAge            string            `json:"petAge"`
	Date              string            `json:"date"`
	Time              string            `json:"time"`
	OwnerName         string            `json:"ownerName"`
	ContactNumber     string            `json:"contactNumber"`
	OwnerAddress      string            `json:"ownerAddress"`
	PetName           string            `json:"petName"`
	PetBreed          string            `json:"petBreed"`
	VaccinationStatus string            `json:"vaccinationStatus"`
	BookingFeePaid    bool              `json:"bookingFeePaid"`
	BookingFeeAmount  float64           `json:"bookingFeeAmount"`
	CurrentStep       int               `json:"currentStep"`
	Errors            map[string]string `json:"errors,omitempty"`
}

// StateUpdate is a partial update applied through the state manager.
// Nil fields are left untouched; the whole update is rejected if any
// present field fails validation.
type StateUpdate struct {
	PetType           *string   `json:"petType,omitempty"`
	PackageID         *string   `json:"packageId,omitempty"`
	SingleServices    *[]string `json:"singleServices,omitempty"`
	AddOns            *[]string `json:"addOns,omitempty"`
	PetWeight         *string   `json:"petWeight,omitempty"`
	PetAge            *string   `json:"petAge,omitempty"`
	Date              *string   `json:"date,omitempty"`
	Time              *string   `json:"time,omitempty"`
	OwnerName         *string   `json:"ownerName,omitempty"`
	ContactNumber     *string   `json:"contactNumber,omitempty"`
	OwnerAddress      *string   `json:"ownerAddress,omitempty"`
	PetName           *string   `json:"petName,omitempty"`
	PetBreed          *string   `json:"petBreed,omitempty"`
	VaccinationStatus *string   `json:"vaccinationStatus,omitempty"`
	BookingFeePaid    *bool     `json:"bookingFeePaid,omitempty"`
	BookingFeeAmount  *float64  `json:"bookingFeeAmount,omitempty"`
	CurrentStep       *int      `json:"currentStep,omitempty"`
}

// FieldChange records one field's old and new value in a change-log entry.
type FieldChange struct {
	Old interface{} `json:"old"`
	New interface{} `json:"new"`
}

// ChangeEntry is one entry in the state manager's bounded change log.
type ChangeEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Action    string                 `json:"action"`
	Changes   map[string]FieldChange `json:"changes"`
}

// SubmissionCheck reports the outcome of a pre-submission validation pass.
type SubmissionCheck struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
