package booking

import (
	"context"
	"fmt"

	"pawspa/models"
	"pawspa/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService delivers booking confirmations to the customer.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, booking models.Booking, deviceToken string) error
}

// FCMNotificationService sends confirmations as Firebase Cloud Messaging
// pushes.
type FCMNotificationService struct {
	Logger *zap.Logger
}

func (n *FCMNotificationService) SendBookingConfirmation(ctx context.Context, booking models.Booking, deviceToken string) error {
	if deviceToken == "" {
		n.Logger.Debug("no FCM token on session, skipping confirmation push",
			zap.String("bookingID", booking.ID))
		return nil
	}
	client := utils.FCMClient
	if client == nil {
		return fmt.Errorf("FCM client not initialized")
	}

	msg := &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: "Booking confirmed",
			Body: fmt.Sprintf("%s is booked for %s at %s. Amount due on arrival: PHP %.2f.",
				booking.PetName, booking.Date, booking.Time, booking.AmountToPay),
		},
		Data: map[string]string{
			"bookingId": booking.ID,
			"date":      booking.Date,
			"time":      booking.Time,
		},
	}

	id, err := client.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send FCM confirmation: %w", err)
	}
	n.Logger.Info("sent booking confirmation",
		zap.String("bookingID", booking.ID), zap.String("messageID", id))
	return nil
}
