package booking

import (
	"context"
	"fmt"
	"math"

	"pawspa/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentService creates booking-fee payment intents. The fee is a deposit
// the customer pays up front; it is later applied as a discount on the
// amount due at the shop.
type PaymentService interface {
	CreateBookingFeeIntent(ctx context.Context, sessionID, userID string, amount float64) (*models.BookingFeeIntent, error)
}

// StripePaymentService implements PaymentService with Stripe payment
// intents. The API key is set globally at startup.
type StripePaymentService struct {
	Logger *zap.Logger
}

func (p *StripePaymentService) CreateBookingFeeIntent(ctx context.Context, sessionID, userID string, amount float64) (*models.BookingFeeIntent, error) {
	if amount <= 0 {
		return nil, NewValidationError("booking fee amount must be positive")
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(int64(math.Round(amount * 100))),
		Currency:    stripe.String(string(stripe.CurrencyPHP)),
		Description: stripe.String("Pawspa booking fee"),
	}
	params.Context = ctx
	params.AddMetadata("sessionId", sessionID)
	params.AddMetadata("userId", userID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking-fee payment intent: %w", err)
	}

	p.Logger.Info("created booking-fee payment intent",
		zap.String("sessionID", sessionID),
		zap.String("intentID", pi.ID))

	return &models.BookingFeeIntent{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       amount,
		Currency:     string(stripe.CurrencyPHP),
	}, nil
}
