package model

const PaymentReleased = "released"

// Earnings is the released total for a payee. TotalCents is nil when the
// payee has no released payments.
type Earnings struct {
	PayeeID    int64
	TotalCents *int64
}
