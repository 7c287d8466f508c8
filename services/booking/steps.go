package booking

import "pawspa/models"

// Wizard steps. Forward movement is gated by ValidateStep; backward movement
// is always free.
const (
	StepPetType      = 1
	StepPackage      = 2
	StepServices     = 3
	StepSchedule     = 4
	StepOwnerDetails = 5

	MinStep = StepPetType
	MaxStep = StepOwnerDetails
)

// GetNextStep returns the step after currentStep, clamped at the last step.
// From step 1 with a bundle package already chosen the service-picker steps
// are skipped and the wizard jumps straight to scheduling; the
// single-service flow never skips.
func GetNextStep(currentStep int, state models.BookingState) int {
	if currentStep == StepPetType &&
		state.PackageID != "" &&
		state.PackageID != models.PackageSingleService {
		return StepSchedule
	}
	next := currentStep + 1
	if next > MaxStep {
		return MaxStep
	}
	return next
}

// GetPreviousStep returns the step before currentStep, floored at the first
// step. Backward transitions require no validation.
func GetPreviousStep(currentStep int) int {
	if currentStep <= MinStep {
		return MinStep
	}
	return currentStep - 1
}

// CanProgressToStep reports whether the given step's validation passes for
// the current state.
func CanProgressToStep(step int, state models.BookingState) bool {
	return ValidateStep(step, state).Valid
}
