package booking

import (
	"context"

	bookingRepo "pawspa/database/repository/booking"
	"pawspa/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// WizardSessionService manages the stateful booking wizard: one session per
// customer visit, moving through pet type, package, services, schedule, and
// owner details before confirmation.
type WizardSessionService interface {
	StartSession(userID, deviceID, deviceName, fcmToken string) (*models.BookingSession, error)
	GetSession(sessionID string) (*models.BookingSession, error)
	ApplyUpdate(sessionID string, update models.StateUpdate) (*models.BookingSession, UpdateResult, error)
	AdvanceStep(sessionID string) (*models.BookingSession, StepValidation, error)
	RegressStep(sessionID string) (*models.BookingSession, error)
	Quote(sessionID string) (*models.PriceBreakdown, error)
	RecordBookingFee(sessionID string, amount float64) (*models.BookingSession, error)
	ConfirmBooking(ctx context.Context, sessionID string) (*models.Booking, error)
	CancelSession(sessionID string) error
	ListBookings(ctx context.Context, ownerID string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, ownerID, bookingID string) error
}

// DefaultWizardSessionService implements WizardSessionService on top of a
// Redis session cache and a booking repository.
type DefaultWizardSessionService struct {
	Cache    *redis.Client
	Repo     bookingRepo.BookingRepository
	Notifier NotificationService
	Logger   *zap.Logger
	// Relaxed downgrades the vaccination and pet-age gates to warnings.
	Relaxed bool
}
