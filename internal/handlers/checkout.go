package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/ada-checkout/internal/models"
)

// Checkout is the session service used by the handlers.
type Checkout interface {
	Mount(ctx context.Context) (uuid.UUID, models.State, error)
	State(ctx context.Context, id uuid.UUID) (models.State, error)
	SetBillAmount(ctx context.Context, id uuid.UUID, bill string) (models.State, error)
	SetWalletAddress(ctx context.Context, id uuid.UUID, address string) (models.State, error)
	ApprovePayment(ctx context.Context, id uuid.UUID) (models.State, error)
	RejectPayment(ctx context.Context, id uuid.UUID) (models.State, error)
	CloseModal(ctx context.Context, id uuid.UUID) (models.State, error)
	ConnectWallet(ctx context.Context, id uuid.UUID) (models.State, error)
	FetchBalance(ctx context.Context, id uuid.UUID) (models.State, error)
}

// TokenIssuer issues session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, sessionID uuid.UUID) (string, error)
	SetCookie(w http.ResponseWriter, token string)
}

// SessionGetter returns the session id attached to a request context.
type SessionGetter func(ctx context.Context) (uuid.UUID, bool)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}
