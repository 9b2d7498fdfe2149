package models

// SessionView is the rendered form of a session state.
// swagger:model SessionView
type SessionView struct {
	// USD to ADA display
	// example: 2.2222 ADA
	UsdToAda string `json:"usd_to_ada"`

	// ADA to USD display
	// example: 0.4500 $
	AdaToUsd string `json:"ada_to_usd"`

	// Raw bill input
	// example: 10
	BillAmount string `json:"bill_amount"`

	// Bill converted to ADA
	// example: 22.2222
	AdaAmount string `json:"ada_amount"`

	// Processing fee in ADA
	// example: 5
	ProcessingFee string `json:"processing_fee"`

	// ADA amount plus processing fee
	// example: 27.22
	TotalPayable string `json:"total_payable"`

	// Whether the payment panel is open
	ModalVisible bool `json:"modal_visible"`

	// Wallet address
	// example: addr1qxy...
	WalletAddress string `json:"wallet_address"`

	// Balance display, "Fetching..." until fetched
	// example: 120.5
	Balance string `json:"balance"`

	// Whether a balance has been fetched
	HasBalance bool `json:"has_balance"`

	// Current error message
	Error string `json:"error,omitempty"`

	// Advisory notice
	Notice string `json:"notice,omitempty"`
}

// SessionCreatedResponse is returned when a new session is created.
// swagger:model SessionCreatedResponse
type SessionCreatedResponse struct {
	// Session token for the Authorization header
	// example: JWT_TOKEN
	Token string `json:"token"`

	// Initial session view
	Session SessionView `json:"session"`
}

// BillRequest is the JSON body for updating the bill amount.
// swagger:model BillRequest
type BillRequest struct {
	// Bill amount in USD
	// required: true
	// example: 10
	BillAmount string `json:"bill_amount"`
}

// WalletAddressRequest is the JSON body for updating the wallet address.
// swagger:model WalletAddressRequest
type WalletAddressRequest struct {
	// Wallet address
	// required: true
	// example: addr1qxy...
	WalletAddress string `json:"wallet_address"`
}

// ConvertResponse is the result of a stateless conversion.
// swagger:model ConvertResponse
type ConvertResponse struct {
	// Bill converted to ADA
	// example: 22.2222
	AdaAmount string `json:"ada_amount"`

	// ADA amount plus processing fee
	// example: 27.22
	TotalPayable string `json:"total_payable"`
}

// ErrorResponse is the JSON error body.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: session not found
	Error string `json:"error"`
}
