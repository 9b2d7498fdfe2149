// Package reducer holds the pure state transitions of a checkout session.
package reducer

import "github.com/sbilibin2017/ada-checkout/internal/models"

// ActionType identifies a state transition.
type ActionType string

const (
	RateFetched        ActionType = "rate_fetched"
	RateFetchFailed    ActionType = "rate_fetch_failed"
	BillChanged        ActionType = "bill_changed"
	AddressChanged     ActionType = "address_changed"
	ModalOpened        ActionType = "modal_opened"
	ModalClosed        ActionType = "modal_closed"
	WalletConnected    ActionType = "wallet_connected"
	WalletRejected     ActionType = "wallet_rejected"
	WalletFailed       ActionType = "wallet_failed"
	BalanceRequested   ActionType = "balance_requested"
	BalanceFetched     ActionType = "balance_fetched"
	BalanceFetchFailed ActionType = "balance_fetch_failed"
)

// Action is a transition request. Only the payload field matching Type is read.
type Action struct {
	Type     ActionType
	Rate     float64  // RateFetched
	Value    string   // BillChanged, AddressChanged
	Accounts []string // WalletConnected
	Balance  float64  // BalanceFetched
}

// Reduce returns the state that results from applying a to s.
// s is not modified. Unknown action types leave the state unchanged.
func Reduce(s models.State, a Action) models.State {
	switch a.Type {
	case RateFetched:
		if s.ConversionRate == nil && a.Rate > 0 {
			rate := a.Rate
			s.ConversionRate = &rate
		}
	case RateFetchFailed:
		s.ErrorMessage = models.ErrMsgRateFetch
	case BillChanged:
		s.BillAmount = a.Value
	case AddressChanged:
		s.WalletAddress = a.Value
	case ModalOpened:
		s.ModalVisible = true
	case ModalClosed:
		s.ModalVisible = false
	case WalletConnected:
		if len(a.Accounts) == 0 {
			s.ErrorMessage = models.ErrMsgWalletConnect
			break
		}
		s.WalletAddress = a.Accounts[0]
	case WalletRejected:
		s.ErrorMessage = models.ErrMsgWalletRejected
	case WalletFailed:
		s.ErrorMessage = models.ErrMsgWalletConnect
	case BalanceRequested:
		s.ErrorMessage = ""
	case BalanceFetched:
		balance := a.Balance
		s.Balance = &balance
	case BalanceFetchFailed:
		s.ErrorMessage = models.ErrMsgBalanceFetch
	}
	return s
}
