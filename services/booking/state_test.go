package booking

import (
	"fmt"
	"testing"
	"time"

	"pawspa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string       { return &s }
func intPtr(i int) *int             { return &i }
func boolPtr(b bool) *bool          { return &b }
func slicePtr(s ...string) *[]string { return &s }

func TestSetStateAppliesPartialUpdate(t *testing.T) {
	m := NewStateManager(nil)

	result := m.SetState(models.StateUpdate{
		PetType: strPtr(models.PetTypeDog),
		PetName: strPtr("Bogart"),
	})

	require.True(t, result.Applied)
	require.Empty(t, result.Errors)

	state := m.GetState()
	assert.Equal(t, models.PetTypeDog, state.PetType)
	assert.Equal(t, "Bogart", state.PetName)
	assert.Equal(t, MinStep, state.CurrentStep)
}

func TestSetStateIdenticalUpdateKeepsStateEqual(t *testing.T) {
	m := NewStateManager(nil)
	m.SetState(models.StateUpdate{PetType: strPtr(models.PetTypeCat)})

	before := m.GetState()
	result := m.SetState(models.StateUpdate{PetType: strPtr(models.PetTypeCat)})
	require.True(t, result.Applied)

	assert.Equal(t, before, m.GetState())
}

func TestGetStateReturnsIndependentCopy(t *testing.T) {
	m := NewStateManager(nil)
	m.SetState(models.StateUpdate{
		PackageID:      strPtr(models.PackageSingleService),
		SingleServices: slicePtr("nail-trim"),
	})

	state := m.GetState()
	state.SingleServices[0] = "mutated"
	state.PetName = "mutated"

	fresh := m.GetState()
	assert.Equal(t, []string{"nail-trim"}, fresh.SingleServices)
	assert.Empty(t, fresh.PetName)
}

func TestSetStateRejectsInvalidPhoneWholesale(t *testing.T) {
	m := NewStateManager(nil)

	result := m.SetState(models.StateUpdate{
		OwnerName:     strPtr("Maria"),
		ContactNumber: strPtr("12345"),
	})

	require.False(t, result.Applied)
	require.NotEmpty(t, result.Errors)

	// No partial application: the valid field must not have been committed.
	state := m.GetState()
	assert.Empty(t, state.OwnerName)
	assert.Empty(t, state.ContactNumber)
	assert.Empty(t, m.History())
}

func TestSetStateRejectsOutOfRangeStep(t *testing.T) {
	m := NewStateManager(nil)

	for _, step := range []int{0, -1, MaxStep + 1, 42} {
		result := m.SetState(models.StateUpdate{CurrentStep: intPtr(step)})
		assert.False(t, result.Applied, "step %d must be rejected", step)
	}
	assert.Equal(t, MinStep, m.GetState().CurrentStep)
}

func TestSetStateNormalizesContactNumber(t *testing.T) {
	m := NewStateManager(nil)

	result := m.SetState(models.StateUpdate{ContactNumber: strPtr("+63 917 123 4567")})
	require.True(t, result.Applied)
	assert.Equal(t, "09171234567", m.GetState().ContactNumber)
}

func TestPetTypeChangeClearsDependentSelections(t *testing.T) {
	m := NewStateManager(nil)
	m.SetState(models.StateUpdate{
		PetType:   strPtr(models.PetTypeDog),
		PackageID: strPtr("full-package"),
		AddOns:    slicePtr("paw-pad-care"),
	})

	result := m.SetState(models.StateUpdate{PetType: strPtr(models.PetTypeCat)})
	require.True(t, result.Applied)

	state := m.GetState()
	assert.Equal(t, models.PetTypeCat, state.PetType)
	assert.Empty(t, state.PackageID)
	assert.Empty(t, state.SingleServices)
	assert.Empty(t, state.AddOns)
}

func TestPackageChangeClearsSingleServices(t *testing.T) {
	m := NewStateManager(nil)
	m.SetState(models.StateUpdate{
		PackageID:      strPtr(models.PackageSingleService),
		SingleServices: slicePtr("nail-trim", "bath-only"),
	})

	m.SetState(models.StateUpdate{PackageID: strPtr("full-package")})

	state := m.GetState()
	assert.Equal(t, "full-package", state.PackageID)
	assert.Empty(t, state.SingleServices)
}

func TestSwitchToSingleServiceClearsAddOns(t *testing.T) {
	m := NewStateManager(nil)
	m.SetState(models.StateUpdate{
		PackageID: strPtr("shampoo-bath"),
		AddOns:    slicePtr("whitening-shampoo"),
	})

	m.SetState(models.StateUpdate{PackageID: strPtr(models.PackageSingleService)})

	state := m.GetState()
	assert.Equal(t, models.PackageSingleService, state.PackageID)
	assert.Empty(t, state.AddOns)
}

func TestSetStateClearsTransientErrors(t *testing.T) {
	m := NewStateManager(nil)
	m.RecordErrors(map[string]string{"petType": "please select a pet type"})
	require.NotEmpty(t, m.GetState().Errors)

	m.SetState(models.StateUpdate{PetType: strPtr(models.PetTypeDog)})
	assert.Empty(t, m.GetState().Errors)
}

func TestHistoryRecordsDiffsWithActionLabels(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	nowFunc = func() time.Time { return fixed }
	defer func() { nowFunc = time.Now }()

	m := NewStateManager(nil)
	m.SetState(models.StateUpdate{
		PetType: strPtr(models.PetTypeDog),
		PetName: strPtr("Bogart"),
	})

	history := m.History()
	require.Len(t, history, 1)
	entry := history[0]
	assert.Equal(t, fixed, entry.Timestamp)
	assert.Equal(t, "update:petName,petType", entry.Action)
	assert.Equal(t, models.FieldChange{Old: "", New: models.PetTypeDog}, entry.Changes["petType"])
	assert.Equal(t, models.FieldChange{Old: "", New: "Bogart"}, entry.Changes["petName"])
}

func TestHistoryEvictsOldestBeyondCapacity(t *testing.T) {
	m := NewStateManager(nil)

	for i := 0; i < m.capacity+10; i++ {
		m.SetState(models.StateUpdate{PetName: strPtr(fmt.Sprintf("pet-%d", i))})
	}

	history := m.History()
	require.Len(t, history, m.capacity)
	// Oldest ten entries were evicted; the first surviving one is pet-10.
	assert.Equal(t, "pet-10", history[0].Changes["petName"].New)
	assert.Equal(t, fmt.Sprintf("pet-%d", m.capacity+9), history[len(history)-1].Changes["petName"].New)
}

func TestSubscribersNotifiedInOrderWithCopies(t *testing.T) {
	m := NewStateManager(nil)

	var order []string
	m.Subscribe(func(newState, oldState models.BookingState) {
		order = append(order, "first")
		assert.Equal(t, models.PetTypeDog, newState.PetType)
		assert.Empty(t, oldState.PetType)
	})
	m.Subscribe(func(newState, oldState models.BookingState) {
		order = append(order, "second")
		// Mutating the delivered copy must not leak into the manager.
		newState.PetType = "mutated"
	})

	m.SetState(models.StateUpdate{PetType: strPtr(models.PetTypeDog)})

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, models.PetTypeDog, m.GetState().PetType)
}

func TestSubscriberPanicDoesNotStopOthers(t *testing.T) {
	m := NewStateManager(nil)

	notified := false
	m.Subscribe(func(newState, oldState models.BookingState) {
		panic("subscriber failure")
	})
	m.Subscribe(func(newState, oldState models.BookingState) {
		notified = true
	})

	require.NotPanics(t, func() {
		m.SetState(models.StateUpdate{PetType: strPtr(models.PetTypeCat)})
	})
	assert.True(t, notified)
}

func TestSubscriberCanReadStateDuringNotification(t *testing.T) {
	m := NewStateManager(nil)

	var observed string
	m.Subscribe(func(newState, oldState models.BookingState) {
		observed = m.GetState().PetType
	})

	m.SetState(models.StateUpdate{PetType: strPtr(models.PetTypeDog)})
	assert.Equal(t, models.PetTypeDog, observed)
}

func TestUnsubscribeOnlyRemovesOwnCallback(t *testing.T) {
	m := NewStateManager(nil)

	var firstCount, secondCount int
	unsubFirst := m.Subscribe(func(newState, oldState models.BookingState) { firstCount++ })
	m.Subscribe(func(newState, oldState models.BookingState) { secondCount++ })

	m.SetState(models.StateUpdate{PetType: strPtr(models.PetTypeDog)})
	unsubFirst()
	unsubFirst() // double unsubscribe is a no-op
	m.SetState(models.StateUpdate{PetName: strPtr("Bogart")})

	assert.Equal(t, 1, firstCount)
	assert.Equal(t, 2, secondCount)
}

func TestNoNotificationOnRejectedUpdate(t *testing.T) {
	m := NewStateManager(nil)

	notified := 0
	m.Subscribe(func(newState, oldState models.BookingState) { notified++ })

	m.SetState(models.StateUpdate{ContactNumber: strPtr("bad")})
	assert.Zero(t, notified)
}

func TestResetRestoresInitialStateAndNotifies(t *testing.T) {
	m := NewStateManager(nil)
	m.SetState(models.StateUpdate{
		PetType:   strPtr(models.PetTypeDog),
		PackageID: strPtr("full-package"),
		PetName:   strPtr("Bogart"),
	})

	notified := false
	m.Subscribe(func(newState, oldState models.BookingState) {
		notified = true
		assert.Empty(t, newState.PetType)
		assert.Equal(t, models.PetTypeDog, oldState.PetType)
	})

	m.Reset()

	state := m.GetState()
	assert.Empty(t, state.PetType)
	assert.Empty(t, state.PackageID)
	assert.Equal(t, MinStep, state.CurrentStep)
	assert.True(t, notified)

	history := m.History()
	require.NotEmpty(t, history)
	assert.Equal(t, "reset", history[len(history)-1].Action)
}

func TestNewStateManagerFromResumesSnapshotAndHistory(t *testing.T) {
	first := NewStateManager(nil)
	first.SetState(models.StateUpdate{
		PetType:   strPtr(models.PetTypeDog),
		PackageID: strPtr("shampoo-bath"),
	})

	resumed := NewStateManagerFrom(first.GetState(), first.History(), nil)
	assert.Equal(t, first.GetState(), resumed.GetState())
	assert.Equal(t, first.History(), resumed.History())

	resumed.SetState(models.StateUpdate{PetWeight: strPtr("6-10kg")})
	assert.Len(t, resumed.History(), 2)
	assert.Len(t, first.History(), 1)
}

func TestValidateForSubmission(t *testing.T) {
	m := NewStateManager(nil)
	check := m.ValidateForSubmission()
	require.False(t, check.Valid)
	assert.Contains(t, check.Errors, "owner name is required")
	assert.Contains(t, check.Errors, "a package or at least one service is required")

	m.SetState(models.StateUpdate{
		PetType:       strPtr(models.PetTypeDog),
		PackageID:     strPtr("shampoo-bath"),
		Date:          strPtr("2026-09-01"),
		Time:          strPtr("10:00"),
		OwnerName:     strPtr("Maria Santos"),
		ContactNumber: strPtr("09171234567"),
		PetName:       strPtr("Bogart"),
	})

	check = m.ValidateForSubmission()
	assert.True(t, check.Valid)
	assert.Empty(t, check.Errors)
}
