package models

// State is the view state owned by one checkout session.
// A nil pointer or empty string means the value is unset.
type State struct {
	ConversionRate *float64 `json:"conversion_rate"` // USD price of one ADA, set once per session
	WalletAddress  string   `json:"wallet_address"`  // Address typed by the user or granted by the provider
	BillAmount     string   `json:"bill_amount"`     // Raw bill input in USD
	Balance        *float64 `json:"balance"`         // Last fetched balance in ADA
	ErrorMessage   string   `json:"error_message"`   // Replaced on every failing operation
	ModalVisible   bool     `json:"modal_visible"`   // Payment panel visibility
}

// User-facing error messages.
const (
	ErrMsgRateFetch      = "Error fetching conversion rate"
	ErrMsgBalanceFetch   = "Error fetching balance"
	ErrMsgWalletRejected = "User rejected the connection request"
	ErrMsgWalletConnect  = "Error connecting to wallet"
)

// NoticeWalletNotInstalled is shown when no wallet provider is available.
const NoticeWalletNotInstalled = "Wallet provider is not installed. Please install a wallet extension and try again."
