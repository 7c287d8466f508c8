// File: utils/constants.go
package utils

import "time"

// SessionKeyPrefix is the prefix used for wizard session cache keys.
const SessionKeyPrefix = "wizard:"

// DefaultSessionTTL is the time-to-live for wizard sessions when the
// configured TTL is missing or zero.
const DefaultSessionTTL = 30 * time.Minute

// HistoryCapacity bounds the state manager's change log; oldest entries are
// evicted first.
const HistoryCapacity = 50

// DefaultBookingFee is the fallback booking-fee amount (PHP) used when a
// session has no recorded fee.
const DefaultBookingFee = 100.0
