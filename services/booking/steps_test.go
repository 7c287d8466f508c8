package booking

import (
	"testing"

	"pawspa/models"

	"github.com/stretchr/testify/assert"
)

func TestGetNextStepSkipsToScheduleForBundlePackage(t *testing.T) {
	state := models.BookingState{PackageID: "full-package"}
	assert.Equal(t, StepSchedule, GetNextStep(StepPetType, state))
}

func TestGetNextStepNoSkipForSingleService(t *testing.T) {
	state := models.BookingState{PackageID: models.PackageSingleService}
	assert.Equal(t, StepPackage, GetNextStep(StepPetType, state))
}

func TestGetNextStepNoSkipWithoutPackage(t *testing.T) {
	assert.Equal(t, StepPackage, GetNextStep(StepPetType, models.BookingState{}))
}

func TestGetNextStepOnlySkipsFromFirstStep(t *testing.T) {
	state := models.BookingState{PackageID: "full-package"}
	assert.Equal(t, StepServices, GetNextStep(StepPackage, state))
}

func TestGetNextStepClampsAtLastStep(t *testing.T) {
	assert.Equal(t, MaxStep, GetNextStep(MaxStep, models.BookingState{}))
}

func TestGetPreviousStep(t *testing.T) {
	assert.Equal(t, StepSchedule, GetPreviousStep(StepOwnerDetails))
	assert.Equal(t, MinStep, GetPreviousStep(StepPackage))
	assert.Equal(t, MinStep, GetPreviousStep(MinStep))
	assert.Equal(t, MinStep, GetPreviousStep(0))
}

func TestCanProgressToStep(t *testing.T) {
	assert.False(t, CanProgressToStep(StepPetType, models.BookingState{}))
	assert.True(t, CanProgressToStep(StepPetType, models.BookingState{PetType: models.PetTypeDog}))

	assert.False(t, CanProgressToStep(StepSchedule, models.BookingState{Date: "2026-09-01"}))
	assert.True(t, CanProgressToStep(StepSchedule, models.BookingState{
		Date: "2026-09-01",
		Time: "10:00",
	}))
}
