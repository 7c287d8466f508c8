package booking

import (
	"sort"
	"strings"
	"time"

	"pawspa/models"
)

// nowFunc is swapped out in tests.
var nowFunc = time.Now

// appendHistory adds an entry to the change log, evicting the oldest entry
// once the capacity is reached.
func (m *StateManager) appendHistory(entry models.ChangeEntry) {
	m.history = append(m.history, entry)
	m.trimHistory()
}

func (m *StateManager) trimHistory() {
	if excess := len(m.history) - m.capacity; excess > 0 {
		m.history = append(m.history[:0:0], m.history[excess:]...)
	}
}

// actionLabel derives a history action from the changed field set.
func actionLabel(changes map[string]models.FieldChange) string {
	if len(changes) == 0 {
		return "update"
	}
	fields := make([]string, 0, len(changes))
	for field := range changes {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "update:" + strings.Join(fields, ",")
}

// diffStates records the changed fields only, with old and new values.
// Fields are compared explicitly; the transient error map is not part of
// the log.
func diffStates(oldState, newState models.BookingState) map[string]models.FieldChange {
	changes := map[string]models.FieldChange{}

	diffString(changes, "petType", oldState.PetType, newState.PetType)
	diffString(changes, "packageId", oldState.PackageID, newState.PackageID)
	diffStrings(changes, "singleServices", oldState.SingleServices, newState.SingleServices)
	diffStrings(changes, "addOns", oldState.AddOns, newState.AddOns)
	diffString(changes, "petWeight", oldState.PetWeight, newState.PetWeight)
	diffString(changes, "petAge", oldState.PetAge, newState.PetAge)
	diffString(changes, "date", oldState.Date, newState.Date)
	diffString(changes, "time", oldState.Time, newState.Time)
	diffString(changes, "ownerName", oldState.OwnerName, newState.OwnerName)
	diffString(changes, "contactNumber", oldState.ContactNumber, newState.ContactNumber)
	diffString(changes, "ownerAddress", oldState.OwnerAddress, newState.OwnerAddress)
	diffString(changes, "petName", oldState.PetName, newState.PetName)
	diffString(changes, "petBreed", oldState.PetBreed, newState.PetBreed)
	diffString(changes, "vaccinationStatus", oldState.VaccinationStatus, newState.VaccinationStatus)
	if oldState.BookingFeePaid != newState.BookingFeePaid {
		changes["bookingFeePaid"] = models.FieldChange{Old: oldState.BookingFeePaid, New: newState.BookingFeePaid}
	}
	if oldState.BookingFeeAmount != newState.BookingFeeAmount {
		changes["bookingFeeAmount"] = models.FieldChange{Old: oldState.BookingFeeAmount, New: newState.BookingFeeAmount}
	}
	if oldState.CurrentStep != newState.CurrentStep {
		changes["currentStep"] = models.FieldChange{Old: oldState.CurrentStep, New: newState.CurrentStep}
	}

	return changes
}

func diffString(changes map[string]models.FieldChange, field, oldVal, newVal string) {
	if oldVal != newVal {
		changes[field] = models.FieldChange{Old: oldVal, New: newVal}
	}
}

func diffStrings(changes map[string]models.FieldChange, field string, oldVal, newVal []string) {
	if !equalStrings(oldVal, newVal) {
		changes[field] = models.FieldChange{
			Old: append([]string{}, oldVal...),
			New: append([]string{}, newVal...),
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
