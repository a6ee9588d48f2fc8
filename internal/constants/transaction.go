package constants

const (
	// Date Layout
	DateFormat = "2006-01-02"

	CentsPerUnit = 100
)

const (
	// Largest absolute amount (in cents) accepted on import
	MaxAmountCents = int64(9223372036854775)
	MaxMerchantLen = 200
)
