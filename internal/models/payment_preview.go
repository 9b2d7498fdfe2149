package models

// Payment preview decisions.
const (
	DecisionApproved = "approved"
	DecisionRejected = "rejected"
)

// PaymentPreview records a user's decision on a previewed payment.
// Nothing is ever submitted on-chain.
type PaymentPreview struct {
	EventID      string   `json:"event_id"`      // Unique identifier of the event
	SessionID    string   `json:"session_id"`    // Session the decision was made in
	Timestamp    int64    `json:"timestamp"`     // Unix timestamp in seconds
	Decision     string   `json:"decision"`      // "approved" or "rejected"
	BillUSD      string   `json:"bill_usd"`      // Raw bill input
	AdaAmount    string   `json:"ada_amount"`    // Bill converted to ADA
	TotalPayable string   `json:"total_payable"` // ADA amount plus processing fee
	Rate         *float64 `json:"rate"`          // Conversion rate at decision time
}
