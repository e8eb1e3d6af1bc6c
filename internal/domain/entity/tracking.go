package entity

import (
	"crypto/rand"
	"math/big"
	"regexp"
)

const (
	trackingPrefix   = "PCL"
	trackingLength   = 8
	trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var trackingNumberPattern = regexp.MustCompile(`^PCL[A-Z0-9]{8}$`)

// NewTrackingNumber returns "PCL" followed by 8 random upper-case alphanumerics.
func NewTrackingNumber() (string, error) {
	buf := make([]byte, 0, len(trackingPrefix)+trackingLength)
	buf = append(buf, trackingPrefix...)

	alphabetSize := big.NewInt(int64(len(trackingAlphabet)))
	for range trackingLength {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		buf = append(buf, trackingAlphabet[n.Int64()])
	}

	return string(buf), nil
}

// IsTrackingNumber reports whether s has the generated tracking number shape.
func IsTrackingNumber(s string) bool {
	return trackingNumberPattern.MatchString(s)
}
