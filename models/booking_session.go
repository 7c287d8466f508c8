package models

import "time"

// BookingSession holds wizard context between steps. It is serialized into
// the session cache under its SessionID and expires with the cache TTL.
type BookingSession struct {
	SessionID  string        `json:"sessionId"`
	UserID     string        `json:"userId"`
	DeviceID   string        `json:"deviceId,omitempty"`
	DeviceName string        `json:"deviceName,omitempty"`
	FCMToken   string        `json:"fcmToken,omitempty"`
	State      BookingState  `json:"state"`
	History    []ChangeEntry `json:"history,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// BookingResponse is the common wire shape for wizard endpoints.
type BookingResponse struct {
	SessionID string          `json:"sessionId,omitempty"`
	State     *BookingState   `json:"state,omitempty"`
	Errors    []string        `json:"errors,omitempty"`
	Quote     *PriceBreakdown `json:"quote,omitempty"`
	Booking   *Booking        `json:"booking,omitempty"`
}
