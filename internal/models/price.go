package models

// PriceResponse is the payload of the simple price endpoint.
type PriceResponse struct {
	Cardano struct {
		USD float64 `json:"usd"`
	} `json:"cardano"`
}
