package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/ada-checkout/internal/logger"
	"github.com/sbilibin2017/ada-checkout/internal/metrics"
	"github.com/sbilibin2017/ada-checkout/internal/models"
)

// DefaultBalanceURL is the base address of the local balance service.
const DefaultBalanceURL = "http://localhost:4000"

// BalanceHTTPFacade looks up ADA balances at {base}/api/ada/balance/{address}.
type BalanceHTTPFacade struct {
	client  *http.Client
	baseURL string
}

// NewBalanceHTTPFacade creates a facade for the given base URL.
func NewBalanceHTTPFacade(client *http.Client, baseURL string) *BalanceHTTPFacade {
	return &BalanceHTTPFacade{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// GetBalance returns the balance of address. The address is forwarded
// without validation.
func (f *BalanceHTTPFacade) GetBalance(ctx context.Context, address string) (float64, error) {
	start := time.Now()
	balance, err := f.fetch(ctx, address)
	if err != nil {
		metrics.RecordUpstreamCall("balance", metrics.OutcomeError, time.Since(start))
		logger.Log.Errorw("failed to fetch balance", "address", address, "error", err)
		return 0, err
	}
	metrics.RecordUpstreamCall("balance", metrics.OutcomeOK, time.Since(start))
	return balance, nil
}

func (f *BalanceHTTPFacade) fetch(ctx context.Context, address string) (float64, error) {
	endpoint := f.baseURL + "/api/ada/balance/" + url.PathEscape(address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("balance service returned status %d", resp.StatusCode)
	}

	var payload models.BalanceResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode balance response: %w", err)
	}
	if payload.Balance == nil {
		return 0, errors.New("balance response has no balance field")
	}
	return *payload.Balance, nil
}
