package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/ada-checkout/internal/logger"
	"github.com/sbilibin2017/ada-checkout/internal/models"
	"github.com/sbilibin2017/ada-checkout/internal/reducer"
)

// PriceReader fetches the ADA/USD spot price from the price feed.
type PriceReader interface {
	GetADAPrice(ctx context.Context) (float64, error)
}

// PriceCache caches the spot price between sessions.
type PriceCache interface {
	GetADAPrice(ctx context.Context) (float64, error)
	SetADAPrice(ctx context.Context, rate float64) error
}

// BalanceReader looks up the balance of a wallet address.
type BalanceReader interface {
	GetBalance(ctx context.Context, address string) (float64, error)
}

// WalletProvider requests account access from a wallet.
type WalletProvider interface {
	RequestAccounts(ctx context.Context) ([]string, error)
}

// SessionStore owns the state of every live session.
type SessionStore interface {
	Create(ctx context.Context, id uuid.UUID, state models.State) error
	Get(ctx context.Context, id uuid.UUID) (models.State, error)
	Update(ctx context.Context, id uuid.UUID, fn func(models.State) models.State) (models.State, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	actionWallet  = "wallet"
	actionBalance = "balance"
)

// CheckoutService drives the session state through the reducer and talks to
// the price feed, the balance service and the wallet provider.
type CheckoutService struct {
	sessions    SessionStore
	price       PriceReader
	cache       PriceCache     // optional
	balances    BalanceReader
	wallet      WalletProvider // nil when no provider is installed
	kafkaWriter KafkaWriter    // optional

	calls *inflight
	wg    sync.WaitGroup
}

// NewCheckoutService creates a new CheckoutService. cache, wallet and
// kafkaWriter may be nil.
func NewCheckoutService(
	sessions SessionStore,
	price PriceReader,
	cache PriceCache,
	balances BalanceReader,
	wallet WalletProvider,
	kafkaWriter KafkaWriter,
) *CheckoutService {
	return &CheckoutService{
		sessions:    sessions,
		price:       price,
		cache:       cache,
		balances:    balances,
		wallet:      wallet,
		kafkaWriter: kafkaWriter,
		calls:       newInflight(),
	}
}

// Mount creates an empty session and starts loading its conversion rate in
// the background.
func (s *CheckoutService) Mount(ctx context.Context) (uuid.UUID, models.State, error) {
	id := uuid.New()
	if err := s.sessions.Create(ctx, id, models.State{}); err != nil {
		logger.Log.Errorw("failed to create session", "error", err)
		return uuid.Nil, models.State{}, err
	}
	logger.Log.Infow("session mounted", "session_id", id)

	bg := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		_, _ = s.LoadRate(bg, id)
	}()

	return id, models.State{}, nil
}

// Wait blocks until background rate loads have finished.
func (s *CheckoutService) Wait() {
	s.wg.Wait()
}

// LoadRate fetches the conversion rate once and records the outcome.
func (s *CheckoutService) LoadRate(ctx context.Context, id uuid.UUID) (models.State, error) {
	action := reducer.Action{Type: reducer.RateFetchFailed}

	if rate, err := s.readRate(ctx); err == nil {
		action = reducer.Action{Type: reducer.RateFetched, Rate: rate}
	}

	return s.dispatch(ctx, id, action)
}

func (s *CheckoutService) readRate(ctx context.Context) (float64, error) {
	if s.cache != nil {
		if rate, err := s.cache.GetADAPrice(ctx); err == nil && rate > 0 {
			return rate, nil
		}
	}

	rate, err := s.price.GetADAPrice(ctx)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.SetADAPrice(ctx, rate); err != nil {
			logger.Log.Warnw("failed to cache conversion rate", "rate", rate, "error", err)
		}
	}
	return rate, nil
}

// State returns the current state of a session.
func (s *CheckoutService) State(ctx context.Context, id uuid.UUID) (models.State, error) {
	return s.sessions.Get(ctx, id)
}

// SetBillAmount stores the raw bill input.
func (s *CheckoutService) SetBillAmount(ctx context.Context, id uuid.UUID, bill string) (models.State, error) {
	return s.dispatch(ctx, id, reducer.Action{Type: reducer.BillChanged, Value: bill})
}

// SetWalletAddress stores a manually entered wallet address.
func (s *CheckoutService) SetWalletAddress(ctx context.Context, id uuid.UUID, address string) (models.State, error) {
	return s.dispatch(ctx, id, reducer.Action{Type: reducer.AddressChanged, Value: address})
}

// ApprovePayment opens the payment panel and records the decision.
func (s *CheckoutService) ApprovePayment(ctx context.Context, id uuid.UUID) (models.State, error) {
	state, err := s.dispatch(ctx, id, reducer.Action{Type: reducer.ModalOpened})
	if err != nil {
		return state, err
	}
	s.publishPreview(ctx, id, state, models.DecisionApproved)
	return state, nil
}

// RejectPayment records the decision without changing the state.
func (s *CheckoutService) RejectPayment(ctx context.Context, id uuid.UUID) (models.State, error) {
	state, err := s.sessions.Get(ctx, id)
	if err != nil {
		return state, err
	}
	s.publishPreview(ctx, id, state, models.DecisionRejected)
	return state, nil
}

// CloseModal hides the payment panel. Nothing else is reset.
func (s *CheckoutService) CloseModal(ctx context.Context, id uuid.UUID) (models.State, error) {
	return s.dispatch(ctx, id, reducer.Action{Type: reducer.ModalClosed})
}

// ConnectWallet requests account access from the wallet provider. Without
// a provider it returns models.ErrWalletNotInstalled and leaves the state
// untouched.
func (s *CheckoutService) ConnectWallet(ctx context.Context, id uuid.UUID) (models.State, error) {
	state, err := s.sessions.Get(ctx, id)
	if err != nil {
		return state, err
	}
	if s.wallet == nil {
		logger.Log.Warnw("wallet connect requested without provider", "session_id", id)
		return state, models.ErrWalletNotInstalled
	}

	key := callKey(id, actionWallet)
	callCtx, gen := s.calls.begin(ctx, key)
	defer s.calls.end(key, gen)

	accounts, err := s.wallet.RequestAccounts(callCtx)

	var action reducer.Action
	switch {
	case err == nil:
		action = reducer.Action{Type: reducer.WalletConnected, Accounts: accounts}
	case errors.Is(err, models.ErrUserRejected):
		action = reducer.Action{Type: reducer.WalletRejected}
	default:
		action = reducer.Action{Type: reducer.WalletFailed}
	}

	return s.commit(ctx, id, key, gen, action)
}

// FetchBalance looks up the balance of the session's current wallet address.
// The previous error is cleared before the lookup starts.
func (s *CheckoutService) FetchBalance(ctx context.Context, id uuid.UUID) (models.State, error) {
	state, err := s.dispatch(ctx, id, reducer.Action{Type: reducer.BalanceRequested})
	if err != nil {
		return state, err
	}

	key := callKey(id, actionBalance)
	callCtx, gen := s.calls.begin(ctx, key)
	defer s.calls.end(key, gen)

	action := reducer.Action{Type: reducer.BalanceFetchFailed}
	balance, err := s.balances.GetBalance(callCtx, state.WalletAddress)
	if err == nil {
		action = reducer.Action{Type: reducer.BalanceFetched, Balance: balance}
	}

	return s.commit(ctx, id, key, gen, action)
}

func (s *CheckoutService) dispatch(ctx context.Context, id uuid.UUID, action reducer.Action) (models.State, error) {
	return s.sessions.Update(ctx, id, func(st models.State) models.State {
		return reducer.Reduce(st, action)
	})
}

// commit applies action only if the call identified by gen is still the
// newest for key. A superseded call leaves the state as the newer call set it.
func (s *CheckoutService) commit(ctx context.Context, id uuid.UUID, key string, gen uint64, action reducer.Action) (models.State, error) {
	superseded := false
	state, err := s.sessions.Update(ctx, id, func(st models.State) models.State {
		superseded = !s.calls.current(key, gen)
		if superseded {
			return st
		}
		return reducer.Reduce(st, action)
	})
	if err != nil {
		return state, err
	}
	if superseded {
		logger.Log.Debugw("discarding superseded result", "session_id", id, "action", action.Type)
		return state, models.ErrSuperseded
	}
	return state, nil
}

func callKey(id uuid.UUID, action string) string {
	return id.String() + ":" + action
}
