package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/ada-checkout/internal/models"
)

// newWalletBridge answers eth_requestAccounts with either result or rpcErr.
func newWalletBridge(t *testing.T, result []string, rpcErr map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal(t, "eth_requestAccounts", req.Method)

		resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestEIP1193Provider_RequestAccounts(t *testing.T) {
	ctx := context.Background()

	t.Run("grants", func(t *testing.T) {
		srv := newWalletBridge(t, []string{"0xabc", "0xdef"}, nil)
		defer srv.Close()

		p, err := NewEIP1193Provider(ctx, srv.URL)
		assert.NoError(t, err)
		defer p.Close()

		accounts, err := p.RequestAccounts(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []string{"0xabc", "0xdef"}, accounts)
	})

	t.Run("denies", func(t *testing.T) {
		srv := newWalletBridge(t, nil, map[string]interface{}{"code": 4001, "message": "User rejected the request."})
		defer srv.Close()

		p, err := NewEIP1193Provider(ctx, srv.URL)
		assert.NoError(t, err)
		defer p.Close()

		_, err = p.RequestAccounts(ctx)
		assert.ErrorIs(t, err, models.ErrUserRejected)
	})

	t.Run("errors", func(t *testing.T) {
		srv := newWalletBridge(t, nil, map[string]interface{}{"code": -32603, "message": "internal error"})
		defer srv.Close()

		p, err := NewEIP1193Provider(ctx, srv.URL)
		assert.NoError(t, err)
		defer p.Close()

		_, err = p.RequestAccounts(ctx)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrUserRejected)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := newWalletBridge(t, nil, nil)
		url := srv.URL
		srv.Close()

		p, err := NewEIP1193Provider(ctx, url)
		assert.NoError(t, err)
		defer p.Close()

		_, err = p.RequestAccounts(ctx)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrUserRejected)
	})
}
