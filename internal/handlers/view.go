package handlers

import (
	"strconv"

	"github.com/sbilibin2017/ada-checkout/internal/converter"
	"github.com/sbilibin2017/ada-checkout/internal/models"
)

// BuildView renders a session state for display.
func BuildView(state models.State, notice string) models.SessionView {
	ada := converter.AdaAmount(state.BillAmount, state.ConversionRate)
	return models.SessionView{
		UsdToAda:      converter.UsdToAda(state.ConversionRate),
		AdaToUsd:      converter.AdaToUsd(state.ConversionRate),
		BillAmount:    state.BillAmount,
		AdaAmount:     ada,
		ProcessingFee: strconv.Itoa(converter.ProcessingFee),
		TotalPayable:  converter.TotalPayable(ada),
		ModalVisible:  state.ModalVisible,
		WalletAddress: state.WalletAddress,
		Balance:       converter.Balance(state.Balance),
		HasBalance:    state.Balance != nil,
		Error:         state.ErrorMessage,
		Notice:        notice,
	}
}
