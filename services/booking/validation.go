package booking

import (
	"fmt"
	"strings"

	"pawspa/models"
)

// FieldResult is the outcome of a single field-level check.
type FieldResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// StepValidation collects every rule violated for a wizard step. Errors holds
// all violations; GateErrors is the subset coming from the vaccination and
// pet-age gates, which a relaxed policy may downgrade to warnings.
type StepValidation struct {
	Valid      bool     `json:"valid"`
	Errors     []string `json:"errors"`
	GateErrors []string `json:"gateErrors,omitempty"`
}

// Passes reports whether the step may proceed under the given policy. Relaxed
// mode ignores gate violations but never required-field ones.
func (v StepValidation) Passes(relaxed bool) bool {
	if !relaxed {
		return v.Valid
	}
	return len(v.Errors) == len(v.GateErrors)
}

// ValidatePhoneNumber checks a Philippine mobile number. Spaces are stripped
// and a +63 prefix is normalized to a leading 0; the result must be exactly
// 11 digits starting with 0.
func ValidatePhoneNumber(raw string) FieldResult {
	normalized := strings.ReplaceAll(raw, " ", "")
	if strings.HasPrefix(normalized, "+63") {
		normalized = "0" + normalized[3:]
	}
	if len(normalized) != 11 {
		return FieldResult{Error: "contact number must be 11 digits"}
	}
	if normalized[0] != '0' {
		return FieldResult{Error: "contact number must start with 0"}
	}
	for _, r := range normalized[1:] {
		if r < '0' || r > '9' {
			return FieldResult{Error: "contact number must contain digits only"}
		}
	}
	return FieldResult{Valid: true}
}

// NormalizePhoneNumber applies the same normalization ValidatePhoneNumber
// performs, for storage.
func NormalizePhoneNumber(raw string) string {
	normalized := strings.ReplaceAll(raw, " ", "")
	if strings.HasPrefix(normalized, "+63") {
		normalized = "0" + normalized[3:]
	}
	return normalized
}

// AgeToMonths converts an age label ("6 months", "2 years", "less than 1
// month") to a month count. Unparseable labels map to 999, which no package
// gate restricts.
func AgeToMonths(label string) int {
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "less"):
		return 0
	case strings.Contains(lower, "month"):
		return leadingInt(lower)
	case strings.Contains(lower, "year"):
		return leadingInt(lower) * 12
	default:
		return 999
	}
}

func leadingInt(s string) int {
	n := 0
	seen := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			seen = true
			continue
		}
		if seen {
			break
		}
	}
	return n
}

// ValidatePetAge checks the pet's age against the chosen package. Bundle
// packages require at least 6 months; the single-service flow accepts any
// parseable age.
func ValidatePetAge(ageLabel, packageID string) FieldResult {
	months := AgeToMonths(ageLabel)
	if packageID == models.PackageSingleService {
		if months >= 0 {
			return FieldResult{Valid: true}
		}
		return FieldResult{Error: "pet age is invalid"}
	}
	if months < 6 {
		return FieldResult{Error: "pets must be at least 6 months old for grooming packages"}
	}
	return FieldResult{Valid: true}
}

// ValidateVaccinationStatus accepts only vaccinated pets.
func ValidateVaccinationStatus(status string) FieldResult {
	if status == models.Vaccinated {
		return FieldResult{Valid: true}
	}
	return FieldResult{Error: "pet must be vaccinated to book an appointment"}
}

// ValidateStep runs every check for the given wizard step and collects all
// violations; it never stops at the first failure.
func ValidateStep(step int, state models.BookingState) StepValidation {
	var errs []string
	var gated []string

	switch step {
	case StepPetType:
		if state.PetType == "" {
			errs = append(errs, "please select a pet type")
		}
	case StepPackage:
		if state.PackageID == "" {
			errs = append(errs, "please select a grooming package")
		}
		if state.PackageID == models.PackageSingleService && len(state.SingleServices) == 0 {
			errs = append(errs, "please select at least one service")
		}
		if state.PackageID != "" && state.PetAge != "" {
			if res := ValidatePetAge(state.PetAge, state.PackageID); !res.Valid {
				errs = append(errs, res.Error)
				gated = append(gated, res.Error)
			}
		}
	case StepServices:
		if state.PackageID == models.PackageSingleService && len(state.SingleServices) == 0 {
			errs = append(errs, "please select at least one service")
		}
	case StepSchedule:
		if state.Date == "" {
			errs = append(errs, "please choose an appointment date")
		}
		if state.Time == "" {
			errs = append(errs, "please choose an appointment time")
		}
	case StepOwnerDetails:
		if state.OwnerName == "" {
			errs = append(errs, "owner name is required")
		}
		if state.ContactNumber == "" {
			errs = append(errs, "contact number is required")
		} else if res := ValidatePhoneNumber(state.ContactNumber); !res.Valid {
			errs = append(errs, res.Error)
		}
		if state.PetName == "" {
			errs = append(errs, "pet name is required")
		}
		if res := ValidateVaccinationStatus(state.VaccinationStatus); !res.Valid {
			errs = append(errs, res.Error)
			gated = append(gated, res.Error)
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown step %d", step))
	}

	return StepValidation{
		Valid:      len(errs) == 0,
		Errors:     errs,
		GateErrors: gated,
	}
}

// errorFields maps step validation messages to their field keys for the
// transient per-field error map.
func errorFields(step int, errs []string) map[string]string {
	fields := map[string]string{}
	for _, msg := range errs {
		switch {
		case strings.Contains(msg, "pet type"):
			fields["petType"] = msg
		case strings.Contains(msg, "package"):
			fields["packageId"] = msg
		case strings.Contains(msg, "service"):
			fields["singleServices"] = msg
		case strings.Contains(msg, "date"):
			fields["date"] = msg
		case strings.Contains(msg, "time") && step == StepSchedule:
			fields["time"] = msg
		case strings.Contains(msg, "owner name"):
			fields["ownerName"] = msg
		case strings.Contains(msg, "contact number"):
			fields["contactNumber"] = msg
		case strings.Contains(msg, "pet name"):
			fields["petName"] = msg
		case strings.Contains(msg, "vaccinated"):
			fields["vaccinationStatus"] = msg
		case strings.Contains(msg, "age") || strings.Contains(msg, "months old"):
			fields["petAge"] = msg
		default:
			fields["general"] = msg
		}
	}
	return fields
}
