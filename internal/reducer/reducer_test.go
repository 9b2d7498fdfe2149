package reducer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/ada-checkout/internal/models"
)

func ptr(v float64) *float64 { return &v }

func TestReduce(t *testing.T) {
	tests := []struct {
		name     string
		state    models.State
		action   Action
		expected models.State
	}{
		{
			name:     "rate fetched sets rate",
			action:   Action{Type: RateFetched, Rate: 0.45},
			expected: models.State{ConversionRate: ptr(0.45)},
		},
		{
			name:     "rate is immutable once set",
			state:    models.State{ConversionRate: ptr(0.45)},
			action:   Action{Type: RateFetched, Rate: 0.9},
			expected: models.State{ConversionRate: ptr(0.45)},
		},
		{
			name:     "non-positive rate ignored",
			action:   Action{Type: RateFetched, Rate: 0},
			expected: models.State{},
		},
		{
			name:     "rate fetch failure sets error, rate stays unset",
			action:   Action{Type: RateFetchFailed},
			expected: models.State{ErrorMessage: models.ErrMsgRateFetch},
		},
		{
			name:     "bill changed",
			state:    models.State{BillAmount: "1"},
			action:   Action{Type: BillChanged, Value: "10"},
			expected: models.State{BillAmount: "10"},
		},
		{
			name:     "address changed",
			action:   Action{Type: AddressChanged, Value: "addr1"},
			expected: models.State{WalletAddress: "addr1"},
		},
		{
			name:     "wallet connected takes first account",
			state:    models.State{WalletAddress: "typed"},
			action:   Action{Type: WalletConnected, Accounts: []string{"0xabc", "0xdef"}},
			expected: models.State{WalletAddress: "0xabc"},
		},
		{
			name:     "wallet connected without accounts is a failure",
			state:    models.State{WalletAddress: "typed"},
			action:   Action{Type: WalletConnected},
			expected: models.State{WalletAddress: "typed", ErrorMessage: models.ErrMsgWalletConnect},
		},
		{
			name:     "wallet rejected replaces previous error",
			state:    models.State{ErrorMessage: models.ErrMsgBalanceFetch},
			action:   Action{Type: WalletRejected},
			expected: models.State{ErrorMessage: models.ErrMsgWalletRejected},
		},
		{
			name:     "wallet failed",
			action:   Action{Type: WalletFailed},
			expected: models.State{ErrorMessage: models.ErrMsgWalletConnect},
		},
		{
			name:     "balance requested clears error",
			state:    models.State{ErrorMessage: models.ErrMsgRateFetch, Balance: ptr(3)},
			action:   Action{Type: BalanceRequested},
			expected: models.State{Balance: ptr(3)},
		},
		{
			name:     "balance fetched",
			action:   Action{Type: BalanceFetched, Balance: 120.5},
			expected: models.State{Balance: ptr(120.5)},
		},
		{
			name:     "balance fetch failure keeps balance",
			state:    models.State{Balance: ptr(3)},
			action:   Action{Type: BalanceFetchFailed},
			expected: models.State{Balance: ptr(3), ErrorMessage: models.ErrMsgBalanceFetch},
		},
		{
			name:     "unknown action",
			state:    models.State{BillAmount: "7"},
			action:   Action{Type: "nope"},
			expected: models.State{BillAmount: "7"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reduce(tt.state, tt.action))
		})
	}
}

func TestReduce_ModalPreservesState(t *testing.T) {
	s := models.State{
		WalletAddress: "addr1",
		Balance:       ptr(42),
		ErrorMessage:  models.ErrMsgBalanceFetch,
	}

	opened := Reduce(s, Action{Type: ModalOpened})
	assert.True(t, opened.ModalVisible)

	closed := Reduce(opened, Action{Type: ModalClosed})
	assert.False(t, closed.ModalVisible)
	assert.Equal(t, s, closed)
}

func TestReduce_DoesNotAliasInput(t *testing.T) {
	s := models.State{}
	next := Reduce(s, Action{Type: BalanceFetched, Balance: 1})
	assert.Nil(t, s.Balance)
	assert.NotNil(t, next.Balance)
}
