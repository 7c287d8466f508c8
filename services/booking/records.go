package booking

import (
	"context"
	"fmt"

	"pawspa/models"

	"go.uber.org/zap"
)

// ListBookings returns the customer's confirmed bookings, newest first per the
// repository's owner index.
func (s *DefaultWizardSessionService) ListBookings(ctx context.Context, ownerID string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// CancelBooking marks a confirmed booking as cancelled. Only the owner may
// cancel it.
func (s *DefaultWizardSessionService) CancelBooking(ctx context.Context, ownerID, bookingID string) error {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return NewSessionError("booking not found")
	}
	if booking.OwnerID != ownerID {
		return NewValidationError("booking does not belong to this customer")
	}
	if booking.Status == "cancelled" {
		return nil
	}

	if err := s.Repo.UpdateStatus(ctx, bookingID, "cancelled"); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	s.Logger.Info("cancelled booking",
		zap.String("bookingID", bookingID),
		zap.String("ownerID", ownerID))
	return nil
}
