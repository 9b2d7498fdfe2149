package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sbilibin2017/ada-checkout/internal/converter"
	"github.com/sbilibin2017/ada-checkout/internal/logger"
	"github.com/sbilibin2017/ada-checkout/internal/models"
)

// NewCreateSessionHandler returns an HTTP handler that mounts a new session.
// @Summary Create session
// @Description Creates an empty checkout session and starts loading the conversion rate
// @Tags session
// @Produce json
// @Success 201 {object} models.SessionCreatedResponse "Session created"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /sessions [post]
func NewCreateSessionHandler(svc Checkout, issuer TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, state, err := svc.Mount(ctx)
		if err != nil {
			logger.Log.Errorw("failed to mount session", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		token, err := issuer.Generate(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to issue session token", "session_id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, models.SessionCreatedResponse{
			Token:   token,
			Session: BuildView(state, ""),
		})
	}
}

// NewGetSessionHandler returns an HTTP handler for reading the session view.
// @Summary Get session
// @Description Returns the rendered state of the caller's session
// @Tags session
// @Produce json
// @Success 200 {object} models.SessionView "Session view"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Router /session [get]
// @Security BearerAuth
func NewGetSessionHandler(svc Checkout, getSession SessionGetter) http.HandlerFunc {
	return newSessionActionHandler(getSession, func(ctx context.Context, id uuid.UUID, r *http.Request) (models.State, error) {
		return svc.State(ctx, id)
	})
}

// NewUpdateBillHandler returns an HTTP handler for updating the bill amount.
// @Summary Update bill amount
// @Description Stores the raw USD bill input; non-numeric input converts to 0
// @Tags session
// @Accept json
// @Produce json
// @Param billRequest body models.BillRequest true "Bill amount"
// @Success 200 {object} models.SessionView "Session view"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Router /session/bill [put]
// @Security BearerAuth
func NewUpdateBillHandler(svc Checkout, getSession SessionGetter) http.HandlerFunc {
	return newSessionActionHandler(getSession, func(ctx context.Context, id uuid.UUID, r *http.Request) (models.State, error) {
		var req models.BillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return models.State{}, errInvalidBody
		}
		return svc.SetBillAmount(ctx, id, req.BillAmount)
	})
}

// NewUpdateWalletAddressHandler returns an HTTP handler for updating the wallet address.
// @Summary Update wallet address
// @Description Stores a manually entered wallet address; the address is not validated
// @Tags wallet
// @Accept json
// @Produce json
// @Param walletAddressRequest body models.WalletAddressRequest true "Wallet address"
// @Success 200 {object} models.SessionView "Session view"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Router /session/wallet-address [put]
// @Security BearerAuth
func NewUpdateWalletAddressHandler(svc Checkout, getSession SessionGetter) http.HandlerFunc {
	return newSessionActionHandler(getSession, func(ctx context.Context, id uuid.UUID, r *http.Request) (models.State, error) {
		var req models.WalletAddressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return models.State{}, errInvalidBody
		}
		return svc.SetWalletAddress(ctx, id, req.WalletAddress)
	})
}

// NewOpenModalHandler returns an HTTP handler that approves the payment preview.
// @Summary Approve payment
// @Description Opens the payment panel and records the preview decision
// @Tags payment
// @Produce json
// @Success 200 {object} models.SessionView "Session view"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Router /session/modal/open [post]
// @Security BearerAuth
func NewOpenModalHandler(svc Checkout, getSession SessionGetter) http.HandlerFunc {
	return newSessionActionHandler(getSession, func(ctx context.Context, id uuid.UUID, r *http.Request) (models.State, error) {
		return svc.ApprovePayment(ctx, id)
	})
}

// NewCloseModalHandler returns an HTTP handler that closes the payment panel.
// @Summary Close payment panel
// @Description Hides the payment panel; wallet address, balance and error are kept
// @Tags payment
// @Produce json
// @Success 200 {object} models.SessionView "Session view"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Router /session/modal/close [post]
// @Security BearerAuth
func NewCloseModalHandler(svc Checkout, getSession SessionGetter) http.HandlerFunc {
	return newSessionActionHandler(getSession, func(ctx context.Context, id uuid.UUID, r *http.Request) (models.State, error) {
		return svc.CloseModal(ctx, id)
	})
}

// NewRejectPaymentHandler returns an HTTP handler that rejects the payment preview.
// @Summary Reject payment
// @Description Records a rejected preview decision; the session state is unchanged
// @Tags payment
// @Produce json
// @Success 200 {object} models.SessionView "Session view"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Router /session/payment/reject [post]
// @Security BearerAuth
func NewRejectPaymentHandler(svc Checkout, getSession SessionGetter) http.HandlerFunc {
	return newSessionActionHandler(getSession, func(ctx context.Context, id uuid.UUID, r *http.Request) (models.State, error) {
		return svc.RejectPayment(ctx, id)
	})
}

// NewConnectWalletHandler returns an HTTP handler that requests wallet account access.
// @Summary Connect wallet
// @Description Requests account access from the wallet provider; without a provider the view carries a notice
// @Tags wallet
// @Produce json
// @Success 200 {object} models.SessionView "Session view"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Failure 409 {object} models.ErrorResponse "Superseded by a newer request"
// @Router /session/wallet/connect [post]
// @Security BearerAuth
func NewConnectWalletHandler(svc Checkout, getSession SessionGetter) http.HandlerFunc {
	return newSessionActionHandler(getSession, func(ctx context.Context, id uuid.UUID, r *http.Request) (models.State, error) {
		return svc.ConnectWallet(ctx, id)
	})
}

// NewFetchBalanceHandler returns an HTTP handler that looks up the wallet balance.
// @Summary Fetch balance
// @Description Looks up the balance of the session's wallet address
// @Tags wallet
// @Produce json
// @Success 200 {object} models.SessionView "Session view"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Failure 409 {object} models.ErrorResponse "Superseded by a newer request"
// @Router /session/balance [post]
// @Security BearerAuth
func NewFetchBalanceHandler(svc Checkout, getSession SessionGetter) http.HandlerFunc {
	return newSessionActionHandler(getSession, func(ctx context.Context, id uuid.UUID, r *http.Request) (models.State, error) {
		return svc.FetchBalance(ctx, id)
	})
}

// NewConvertHandler returns an HTTP handler for a stateless bill conversion.
// @Summary Convert bill
// @Description Converts a USD bill to ADA at the given rate and adds the processing fee
// @Tags convert
// @Produce json
// @Param bill query string true "Bill amount in USD"
// @Param rate query number true "USD price of one ADA"
// @Success 200 {object} models.ConvertResponse "Conversion"
// @Failure 400 {object} models.ErrorResponse "Invalid rate"
// @Router /convert [get]
func NewConvertHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		rate, err := strconv.ParseFloat(q.Get("rate"), 64)
		if err != nil || rate <= 0 {
			writeError(w, http.StatusBadRequest, "rate must be a positive number")
			return
		}

		ada := converter.AdaAmount(q.Get("bill"), &rate)
		writeJSON(w, http.StatusOK, models.ConvertResponse{
			AdaAmount:    ada,
			TotalPayable: converter.TotalPayable(ada),
		})
	}
}

var errInvalidBody = errors.New("invalid request body")

type sessionAction func(ctx context.Context, id uuid.UUID, r *http.Request) (models.State, error)

func newSessionActionHandler(getSession SessionGetter, act sessionAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := getSession(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		state, err := act(ctx, id, r)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, BuildView(state, ""))
		case errors.Is(err, models.ErrWalletNotInstalled):
			writeJSON(w, http.StatusOK, BuildView(state, models.NoticeWalletNotInstalled))
		case errors.Is(err, errInvalidBody):
			writeError(w, http.StatusBadRequest, errInvalidBody.Error())
		case errors.Is(err, models.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, "session not found")
		case errors.Is(err, models.ErrSuperseded):
			writeError(w, http.StatusConflict, "request superseded")
		default:
			logger.Log.Errorw("session action failed", "session_id", id, "path", r.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}
