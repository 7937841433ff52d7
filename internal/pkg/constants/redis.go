package constants

// Redis key formats
const (
	// Fingerprints of OTP tokens that have already been redeemed.
	// Format: otp:consumed:{sha256(token)}
	KeyOTPConsumed = "otp:consumed:%s"
)
