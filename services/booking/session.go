// File: booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pawspa/config"
	"pawspa/models"
	"pawspa/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func sessionTTL() time.Duration {
	if minutes := config.AppConfig.SessionTTLMinutes; minutes > 0 {
		return time.Duration(minutes) * time.Minute
	}
	return utils.DefaultSessionTTL
}

// StartSession creates a new wizard session with a fresh state at step 1,
// assigns it a unique SessionID, and stores it in the session cache.
func (s *DefaultWizardSessionService) StartSession(userID, deviceID, deviceName, fcmToken string) (*models.BookingSession, error) {
	manager := NewStateManager(s.Logger)

	session := models.BookingSession{
		SessionID:  uuid.New().String(),
		UserID:     userID,
		DeviceID:   deviceID,
		DeviceName: deviceName,
		FCMToken:   fcmToken,
		State:      manager.GetState(),
		CreatedAt:  time.Now(),
	}

	if err := s.saveSession(&session); err != nil {
		return nil, err
	}

	s.Logger.Info("started booking session",
		zap.String("sessionID", session.SessionID),
		zap.String("userID", userID))
	return &session, nil
}

// GetSession retrieves a session from the cache.
func (s *DefaultWizardSessionService) GetSession(sessionID string) (*models.BookingSession, error) {
	return s.loadSession(sessionID)
}

// ApplyUpdate runs a partial state update through the session's state
// manager. A rejected update leaves the session untouched; the result
// carries the field errors either way.
func (s *DefaultWizardSessionService) ApplyUpdate(sessionID string, update models.StateUpdate) (*models.BookingSession, UpdateResult, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, UpdateResult{}, err
	}

	manager := NewStateManagerFrom(session.State, session.History, s.Logger)
	result := manager.SetState(update)
	if !result.Applied {
		return session, result, nil
	}

	session.State = manager.GetState()
	session.History = manager.History()
	if err := s.saveSession(session); err != nil {
		return nil, UpdateResult{}, err
	}
	return session, result, nil
}

// AdvanceStep validates the current step and, when it passes, moves the
// wizard forward — skipping the service-picker steps for preselected bundle
// packages. Failed validation records the field errors on the state and
// leaves the step unchanged.
func (s *DefaultWizardSessionService) AdvanceStep(sessionID string) (*models.BookingSession, StepValidation, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, StepValidation{}, err
	}

	manager := NewStateManagerFrom(session.State, session.History, s.Logger)
	state := manager.GetState()

	validation := ValidateStep(state.CurrentStep, state)
	if !validation.Passes(s.Relaxed) {
		manager.RecordErrors(errorFields(state.CurrentStep, validation.Errors))
		session.State = manager.GetState()
		session.History = manager.History()
		if err := s.saveSession(session); err != nil {
			return nil, StepValidation{}, err
		}
		return session, validation, nil
	}
	if len(validation.GateErrors) > 0 {
		s.Logger.Warn("step gate bypassed by relaxed validation policy",
			zap.String("sessionID", sessionID),
			zap.Int("step", state.CurrentStep),
			zap.Strings("gateErrors", validation.GateErrors))
	}

	next := GetNextStep(state.CurrentStep, state)
	manager.SetState(models.StateUpdate{CurrentStep: &next})

	session.State = manager.GetState()
	session.History = manager.History()
	if err := s.saveSession(session); err != nil {
		return nil, StepValidation{}, err
	}
	return session, validation, nil
}

// RegressStep moves the wizard one step back. Backward movement never
// requires validation.
func (s *DefaultWizardSessionService) RegressStep(sessionID string) (*models.BookingSession, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	manager := NewStateManagerFrom(session.State, session.History, s.Logger)
	prev := GetPreviousStep(session.State.CurrentStep)
	manager.SetState(models.StateUpdate{CurrentStep: &prev})

	session.State = manager.GetState()
	session.History = manager.History()
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Quote computes the price breakdown for the session's current state.
func (s *DefaultWizardSessionService) Quote(sessionID string) (*models.PriceBreakdown, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	breakdown := CalculateTotalPrice(session.State, Packages(), AddOns(), SingleServices())
	return &breakdown, nil
}

// RecordBookingFee marks the booking fee as paid with the actual amount
// charged, enabling the fee discount in the quote.
func (s *DefaultWizardSessionService) RecordBookingFee(sessionID string, amount float64) (*models.BookingSession, error) {
	paid := true
	session, result, err := s.ApplyUpdate(sessionID, models.StateUpdate{
		BookingFeePaid:   &paid,
		BookingFeeAmount: &amount,
	})
	if err != nil {
		return nil, err
	}
	if !result.Applied {
		return nil, NewValidationError(result.Errors...)
	}
	return session, nil
}

// ConfirmBooking finalizes the wizard: it validates the full state, prices
// it, persists the booking record, notifies the customer, and clears the
// session.
func (s *DefaultWizardSessionService) ConfirmBooking(ctx context.Context, sessionID string) (*models.Booking, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	manager := NewStateManagerFrom(session.State, session.History, s.Logger)
	state := manager.GetState()

	check := manager.ValidateForSubmission()
	if !check.Valid {
		return nil, NewValidationError(check.Errors...)
	}

	if res := ValidateVaccinationStatus(state.VaccinationStatus); !res.Valid {
		if !s.Relaxed {
			return nil, NewValidationError(res.Error)
		}
		s.Logger.Warn("vaccination gate bypassed by relaxed validation policy",
			zap.String("sessionID", sessionID))
	}
	if state.PetAge != "" {
		if res := ValidatePetAge(state.PetAge, state.PackageID); !res.Valid {
			if !s.Relaxed {
				return nil, NewValidationError(res.Error)
			}
			s.Logger.Warn("pet-age gate bypassed by relaxed validation policy",
				zap.String("sessionID", sessionID))
		}
	}

	breakdown := CalculateTotalPrice(state, Packages(), AddOns(), SingleServices())

	booking := models.Booking{
		ID:                 uuid.New().String(),
		OwnerID:            session.UserID,
		OwnerName:          state.OwnerName,
		ContactNumber:      state.ContactNumber,
		OwnerAddress:       state.OwnerAddress,
		PetName:            state.PetName,
		PetType:            state.PetType,
		PetBreed:           state.PetBreed,
		PetWeight:          state.PetWeight,
		PetAge:             state.PetAge,
		PackageID:          state.PackageID,
		SingleServices:     append([]string{}, state.SingleServices...),
		AddOns:             append([]string{}, state.AddOns...),
		Date:               state.Date,
		Time:               state.Time,
		PackagePrice:       breakdown.PackagePrice,
		AddOnsTotal:        breakdown.AddOnsTotal,
		Subtotal:           breakdown.Subtotal,
		BookingFeeDiscount: breakdown.BookingFeeDiscount,
		TotalAmount:        breakdown.TotalAmount,
		AmountToPay:        breakdown.AmountToPay,
		BookingFeePaid:     state.BookingFeePaid,
		Status:             "confirmed",
		CreatedAt:          time.Now(),
	}

	if _, err := s.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmation(ctx, booking, session.FCMToken); err != nil {
			s.Logger.Warn("failed to send booking confirmation",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	s.deleteSession(sessionID)
	return &booking, nil
}

// CancelSession allows the client to explicitly cancel a wizard session.
func (s *DefaultWizardSessionService) CancelSession(sessionID string) error {
	ctx := context.Background()
	if err := s.Cache.Del(ctx, utils.SessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func (s *DefaultWizardSessionService) loadSession(sessionID string) (*models.BookingSession, error) {
	if sessionID == "" {
		return nil, NewSessionError("booking not initialized")
	}
	ctx := context.Background()
	data, err := s.Cache.Get(ctx, utils.SessionKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, NewSessionError(fmt.Sprintf("booking session not found or expired: %v", err))
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultWizardSessionService) saveSession(session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ctx := context.Background()
	if err := s.Cache.Set(ctx, utils.SessionKeyPrefix+session.SessionID, data, sessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *DefaultWizardSessionService) deleteSession(sessionID string) {
	ctx := context.Background()
	if err := s.Cache.Del(ctx, utils.SessionKeyPrefix+sessionID).Err(); err != nil {
		s.Logger.Warn("failed to delete booking session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}
