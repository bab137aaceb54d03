// Package shipping computes delivery fees and estimates for a checkout
// subtotal and destination pincode.
package shipping

import (
	"errors"
	"regexp"
)

const (
	// FreeShippingThreshold is the subtotal above which shipping is free
	// regardless of destination.
	FreeShippingThreshold = 2500

	// MetroFee applies to metro-area pincodes, NationalFee everywhere else.
	MetroFee    = 50
	NationalFee = 100

	metroPrefix = "400"
)

// ErrInvalidDestination means the pincode is not a 6-digit code and no quote
// can be produced; the caller must not proceed to charge.
var ErrInvalidDestination = errors.New("invalid destination pincode")

var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// Quote is a computed shipping fee and delivery estimate. It is derived at
// request time and never persisted.
type Quote struct {
	Fee     float64 `json:"fee"`
	ETA     string  `json:"eta"`
	Carrier string  `json:"carrier"`
}

// Calculate quotes shipping for a subtotal and destination pincode.
// Orders over FreeShippingThreshold ship free regardless of destination,
// including a malformed or empty one. Below the threshold the pincode must
// be exactly 6 digits: metro-area codes get MetroFee with a faster window,
// everything else NationalFee.
func Calculate(subtotal float64, pincode string) (Quote, error) {
	if subtotal > FreeShippingThreshold {
		return Quote{Fee: 0, ETA: "1-2 business days", Carrier: "Free Shipping"}, nil
	}

	if !pincodePattern.MatchString(pincode) {
		return Quote{}, ErrInvalidDestination
	}

	if pincode[:len(metroPrefix)] == metroPrefix {
		return Quote{Fee: MetroFee, ETA: "1-2 business days", Carrier: "Shiprocket"}, nil
	}
	return Quote{Fee: NationalFee, ETA: "3-5 business days", Carrier: "Shiprocket"}, nil
}
