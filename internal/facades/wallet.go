package facades

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/sbilibin2017/ada-checkout/internal/logger"
	"github.com/sbilibin2017/ada-checkout/internal/metrics"
	"github.com/sbilibin2017/ada-checkout/internal/models"
)

// EIP1193Provider bridges to a wallet provider over JSON-RPC.
type EIP1193Provider struct {
	client *rpc.Client
}

// NewEIP1193Provider dials the wallet bridge at url.
func NewEIP1193Provider(ctx context.Context, url string) (*EIP1193Provider, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial wallet provider: %w", err)
	}
	return &EIP1193Provider{client: client}, nil
}

// RequestAccounts asks the provider for account access and returns the
// granted addresses in provider order. A denial by the user is reported as
// models.ErrUserRejected.
func (p *EIP1193Provider) RequestAccounts(ctx context.Context) ([]string, error) {
	start := time.Now()

	var accounts []string
	err := p.client.CallContext(ctx, &accounts, "eth_requestAccounts")
	if err != nil {
		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == models.UserRejectedCode {
			metrics.RecordUpstreamCall("wallet", metrics.OutcomeRejected, time.Since(start))
			logger.Log.Warnw("wallet connection rejected by user", "error", err)
			return nil, fmt.Errorf("%w: %s", models.ErrUserRejected, rpcErr.Error())
		}
		metrics.RecordUpstreamCall("wallet", metrics.OutcomeError, time.Since(start))
		logger.Log.Errorw("failed to request wallet accounts", "error", err)
		return nil, fmt.Errorf("eth_requestAccounts: %w", err)
	}

	metrics.RecordUpstreamCall("wallet", metrics.OutcomeOK, time.Since(start))
	logger.Log.Infow("wallet accounts granted", "count", len(accounts))
	return accounts, nil
}

// Close releases the underlying connection.
func (p *EIP1193Provider) Close() {
	p.client.Close()
}
