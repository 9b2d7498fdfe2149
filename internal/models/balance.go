package models

// BalanceResponse is the payload of the balance lookup service.
type BalanceResponse struct {
	// Balance in ADA
	// example: 120.5
	Balance *float64 `json:"balance"`
}
