package domain

import "strings"

// LoginStep is a custom type for the login wizard ENUM
type LoginStep string

const (
	LoginStepPhone   LoginStep = "PHONE"
	LoginStepOTP     LoginStep = "OTP"
	LoginStepAadhaar LoginStep = "AADHAAR"
)

// Exact digit counts each login step accepts.
const (
	PhoneDigits   = 10
	OTPDigits     = 4
	AadhaarDigits = 10
)

// SanitizeDigits drops every non-digit and keeps at most max digits.
func SanitizeDigits(raw string, max int) string {
	var b strings.Builder
	for _, r := range raw {
		if b.Len() >= max {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CanSubmitPhone reports whether the phone buffer is complete.
func (s LoginScreen) CanSubmitPhone() bool {
	return !s.Verifying && len(s.Phone) == PhoneDigits
}

// CanSubmitOTP reports whether the OTP buffer is complete.
func (s LoginScreen) CanSubmitOTP() bool {
	return !s.Verifying && len(s.OTP) == OTPDigits
}

// CanSubmitAadhaar reports whether the ID buffer is complete.
func (s LoginScreen) CanSubmitAadhaar() bool {
	return !s.Verifying && len(s.Aadhaar) == AadhaarDigits
}

// CanSkipAadhaar reports whether the ID step may be skipped. A partially
// typed ID does not block skipping; it is discarded.
func (s LoginScreen) CanSkipAadhaar() bool {
	return !s.Verifying
}

// MaskAadhaar hides all but the last four digits.
func MaskAadhaar(id string) string {
	if len(id) <= 4 {
		return id
	}
	return strings.Repeat("X", len(id)-4) + id[len(id)-4:]
}
