package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/ada-checkout/internal/converter"
	"github.com/sbilibin2017/ada-checkout/internal/models"
)

func ptr(v float64) *float64 { return &v }

func TestBuildView(t *testing.T) {
	t.Run("rate loaded", func(t *testing.T) {
		v := BuildView(models.State{ConversionRate: ptr(0.45), BillAmount: "10"}, "")

		assert.Equal(t, "2.2222 ADA", v.UsdToAda)
		assert.Equal(t, "0.4500 $", v.AdaToUsd)
		assert.Equal(t, "22.2222", v.AdaAmount)
		assert.Equal(t, "5", v.ProcessingFee)
		assert.Equal(t, "27.22", v.TotalPayable)
		assert.Equal(t, converter.Fetching, v.Balance)
		assert.False(t, v.HasBalance)
	})

	t.Run("rate fetch failed", func(t *testing.T) {
		v := BuildView(models.State{BillAmount: "10", ErrorMessage: models.ErrMsgRateFetch}, "")

		assert.Equal(t, converter.Fetching, v.UsdToAda)
		assert.Equal(t, converter.Fetching, v.AdaToUsd)
		assert.Equal(t, "0", v.AdaAmount)
		assert.Equal(t, "5.00", v.TotalPayable)
		assert.Equal(t, models.ErrMsgRateFetch, v.Error)
	})

	t.Run("balance and notice", func(t *testing.T) {
		v := BuildView(models.State{Balance: ptr(120.5), ModalVisible: true, WalletAddress: "addr1"}, models.NoticeWalletNotInstalled)

		assert.Equal(t, "120.5", v.Balance)
		assert.True(t, v.HasBalance)
		assert.True(t, v.ModalVisible)
		assert.Equal(t, "addr1", v.WalletAddress)
		assert.Equal(t, models.NoticeWalletNotInstalled, v.Notice)
	})
}
