package facades

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/sbilibin2017/ada-checkout/internal/logger"
	"github.com/sbilibin2017/ada-checkout/internal/metrics"
)

// DefaultPriceURL is the public simple price endpoint for ADA in USD.
const DefaultPriceURL = "https://api.coingecko.com/api/v3/simple/price?ids=cardano&vs_currencies=usd"

const maxBodySize = 1 << 20

// PriceHTTPFacade reads the ADA spot price from a simple price endpoint
// answering {"cardano":{"usd":<number>}}.
type PriceHTTPFacade struct {
	client *http.Client
	url    string
}

// NewPriceHTTPFacade creates a facade for the given endpoint URL.
func NewPriceHTTPFacade(client *http.Client, url string) *PriceHTTPFacade {
	return &PriceHTTPFacade{client: client, url: url}
}

// GetADAPrice returns the USD price of one ADA.
func (f *PriceHTTPFacade) GetADAPrice(ctx context.Context) (float64, error) {
	start := time.Now()
	rate, err := f.fetch(ctx)
	if err != nil {
		metrics.RecordUpstreamCall("price", metrics.OutcomeError, time.Since(start))
		logger.Log.Errorw("failed to fetch ADA price", "url", f.url, "error", err)
		return 0, err
	}
	metrics.RecordUpstreamCall("price", metrics.OutcomeOK, time.Since(start))
	return rate, nil
}

func (f *PriceHTTPFacade) fetch(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("price feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, err
	}
	if !gjson.ValidBytes(body) {
		return 0, errors.New("price feed returned invalid JSON")
	}

	usd := gjson.GetBytes(body, "cardano.usd")
	if usd.Type != gjson.Number {
		return 0, errors.New("price feed payload has no numeric cardano.usd")
	}
	rate := usd.Float()
	if rate <= 0 {
		return 0, fmt.Errorf("price feed returned non-positive rate %v", rate)
	}
	return rate, nil
}
