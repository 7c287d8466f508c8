package booking

import (
	"fmt"

	"pawspa/models"
	"pawspa/utils"

	"go.uber.org/zap"
)

// Subscriber is notified synchronously after every committed state change,
// in subscription order. Subscribers receive independent copies and may call
// GetState to observe the post-update value.
type Subscriber func(newState, oldState models.BookingState)

// UpdateResult reports the outcome of a SetState call. A rejected update is
// a no-op: the state is unchanged and no subscriber fires.
type UpdateResult struct {
	Applied bool     `json:"applied"`
	Errors  []string `json:"errors,omitempty"`
}

type subscriberEntry struct {
	id int
	cb Subscriber
}

// StateManager is the sole mutator of a wizard session's BookingState. Every
// change goes through SetState, which validates the whole partial update
// before committing it, notifies subscribers, and records a bounded change
// log.
type StateManager struct {
	state     models.BookingState
	initial   models.BookingState
	history   []models.ChangeEntry
	capacity  int
	subs      []subscriberEntry
	nextSubID int
	logger    *zap.Logger
}

// NewStateManager returns a manager holding a fresh wizard state at step 1.
func NewStateManager(logger *zap.Logger) *StateManager {
	return NewStateManagerFrom(defaultState(), nil, logger)
}

// NewStateManagerFrom resumes a manager from a state snapshot and its prior
// change log, e.g. when a session is reloaded from the cache.
func NewStateManagerFrom(snapshot models.BookingState, history []models.ChangeEntry, logger *zap.Logger) *StateManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &StateManager{
		state:    cloneState(snapshot),
		initial:  defaultState(),
		capacity: utils.HistoryCapacity,
		logger:   logger,
	}
	if len(history) > 0 {
		m.history = make([]models.ChangeEntry, len(history))
		copy(m.history, history)
		m.trimHistory()
	}
	return m
}

func defaultState() models.BookingState {
	return models.BookingState{
		SingleServices: []string{},
		AddOns:         []string{},
		CurrentStep:    MinStep,
	}
}

// GetState returns a deep, independent copy of the current state. Mutating
// the returned value never affects the manager.
func (m *StateManager) GetState() models.BookingState {
	return cloneState(m.state)
}

// SetState validates and applies a partial update. The whole update is
// rejected when any present field fails validation; rejection is logged and
// reported in the result, never raised as an error. On commit the state
// reference is replaced atomically, a change-log entry is appended, and all
// subscribers are notified in order.
func (m *StateManager) SetState(update models.StateUpdate) UpdateResult {
	if errs := validateUpdate(update); len(errs) > 0 {
		m.logger.Warn("rejected state update", zap.Strings("errors", errs))
		return UpdateResult{Errors: errs}
	}

	oldState := m.state
	newState := applyUpdate(oldState, update)
	newState.Errors = nil

	changes := diffStates(oldState, newState)
	m.appendHistory(models.ChangeEntry{
		Timestamp: nowFunc(),
		Action:    actionLabel(changes),
		Changes:   changes,
	})

	m.state = newState
	m.notify(newState, oldState)
	return UpdateResult{Applied: true}
}

// RecordErrors replaces the transient per-field error map and notifies
// subscribers so the UI can surface the messages. No change-log entry is
// written; errors are cleared again by the next committed update.
func (m *StateManager) RecordErrors(fields map[string]string) {
	oldState := m.state
	newState := cloneState(oldState)
	if len(fields) == 0 {
		newState.Errors = nil
	} else {
		newState.Errors = make(map[string]string, len(fields))
		for k, v := range fields {
			newState.Errors[k] = v
		}
	}
	m.state = newState
	m.notify(newState, oldState)
}

// Subscribe registers a callback and returns its unsubscribe function.
// Unsubscribing one callback never affects the others.
func (m *StateManager) Subscribe(cb Subscriber) func() {
	id := m.nextSubID
	m.nextSubID++
	m.subs = append(m.subs, subscriberEntry{id: id, cb: cb})
	return func() {
		for i, entry := range m.subs {
			if entry.id == id {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

// Reset replaces the state with the initial snapshot, logs a reset entry,
// and notifies subscribers.
func (m *StateManager) Reset() {
	oldState := m.state
	newState := cloneState(m.initial)
	m.appendHistory(models.ChangeEntry{
		Timestamp: nowFunc(),
		Action:    "reset",
		Changes:   diffStates(oldState, newState),
	})
	m.state = newState
	m.notify(newState, oldState)
}

// ValidateForSubmission checks the fields required to confirm a booking
// without mutating state.
func (m *StateManager) ValidateForSubmission() models.SubmissionCheck {
	var errs []string
	state := m.state

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
	if state.Date == "" {
		errs = append(errs, "appointment date is required")
	}
	if state.Time == "" {
		errs = append(errs, "appointment time is required")
	}
	if state.PackageID == "" && len(state.SingleServices) == 0 {
		errs = append(errs, "a package or at least one service is required")
	}

	return models.SubmissionCheck{Valid: len(errs) == 0, Errors: errs}
}

// History returns a copy of the bounded change log, oldest first.
func (m *StateManager) History() []models.ChangeEntry {
	out := make([]models.ChangeEntry, len(m.history))
	copy(out, m.history)
	return out
}

func (m *StateManager) notify(newState, oldState models.BookingState) {
	subs := make([]subscriberEntry, len(m.subs))
	copy(subs, m.subs)
	for _, entry := range subs {
		m.invoke(entry, newState, oldState)
	}
}

// invoke runs one subscriber; a panicking subscriber is logged and must not
// prevent the remaining subscribers from running.
func (m *StateManager) invoke(entry subscriberEntry, newState, oldState models.BookingState) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("booking state subscriber panicked",
				zap.Int("subscriber", entry.id),
				zap.Any("error", r))
		}
	}()
	entry.cb(cloneState(newState), cloneState(oldState))
}

// validateUpdate checks every present field; any failure rejects the entire
// update with no partial application.
func validateUpdate(update models.StateUpdate) []string {
	var errs []string
	if update.ContactNumber != nil {
		if res := ValidatePhoneNumber(*update.ContactNumber); !res.Valid {
			errs = append(errs, res.Error)
		}
	}
	if update.CurrentStep != nil {
		if *update.CurrentStep < MinStep || *update.CurrentStep > MaxStep {
			errs = append(errs, fmt.Sprintf("step %d is out of range", *update.CurrentStep))
		}
	}
	return errs
}

// applyUpdate merges the partial update into a fresh copy of the state and
// enforces the cross-field invariants: a pet-type change clears the package,
// and a package change clears the single-service picks unless the new
// package is the single-service sentinel. Add-ons only accompany bundle
// packages.
func applyUpdate(state models.BookingState, update models.StateUpdate) models.BookingState {
	next := cloneState(state)

	if update.PetType != nil && *update.PetType != next.PetType {
		next.PetType = *update.PetType
		next.PackageID = ""
		next.SingleServices = []string{}
		next.AddOns = []string{}
	}
	if update.PackageID != nil && *update.PackageID != next.PackageID {
		next.PackageID = *update.PackageID
		if next.PackageID != models.PackageSingleService {
			next.SingleServices = []string{}
		} else {
			next.AddOns = []string{}
		}
	}
	if update.SingleServices != nil {
		next.SingleServices = append([]string{}, (*update.SingleServices)...)
	}
	if update.AddOns != nil {
		next.AddOns = append([]string{}, (*update.AddOns)...)
	}
	if update.PetWeight != nil {
		next.PetWeight = *update.PetWeight
	}
	if update.PetAge != nil {
		next.PetAge = *update.PetAge
	}
	if update.Date != nil {
		next.Date = *update.Date
	}
	if update.Time != nil {
		next.Time = *update.Time
	}
	if update.OwnerName != nil {
		next.OwnerName = *update.OwnerName
	}
	if update.ContactNumber != nil {
		next.ContactNumber = NormalizePhoneNumber(*update.ContactNumber)
	}
	if update.OwnerAddress != nil {
		next.OwnerAddress = *update.OwnerAddress
	}
	if update.PetName != nil {
		next.PetName = *update.PetName
	}
	if update.PetBreed != nil {
		next.PetBreed = *update.PetBreed
	}
	if update.VaccinationStatus != nil {
		next.VaccinationStatus = *update.VaccinationStatus
	}
	if update.BookingFeePaid != nil {
		next.BookingFeePaid = *update.BookingFeePaid
	}
	if update.BookingFeeAmount != nil {
		next.BookingFeeAmount = *update.BookingFeeAmount
	}
	if update.CurrentStep != nil {
		next.CurrentStep = *update.CurrentStep
	}

	return next
}

func cloneState(state models.BookingState) models.BookingState {
	copied := state
	copied.SingleServices = append([]string{}, state.SingleServices...)
	copied.AddOns = append([]string{}, state.AddOns...)
	if state.Errors != nil {
		copied.Errors = make(map[string]string, len(state.Errors))
		for k, v := range state.Errors {
			copied.Errors[k] = v
		}
	}
	return copied
}
