package handlers

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/ada-checkout/internal/logger"
	"github.com/sbilibin2017/ada-checkout/internal/models"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// noticeWalletNotInstalled is the ?notice= value for a missing wallet provider.
const noticeWalletNotInstalled = "wallet_not_installed"

type pageData struct {
	View    models.SessionView
	Refresh bool
}

// NewPageHandler renders the checkout page for the caller's session,
// mounting a new session when there is none.
func NewPageHandler(svc Checkout, issuer TokenIssuer, getSession SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		state, err := currentOrMount(ctx, w, svc, issuer, getSession)
		if err != nil {
			logger.Log.Errorw("failed to load session", "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		notice := ""
		if r.URL.Query().Get("notice") == noticeWalletNotInstalled {
			notice = models.NoticeWalletNotInstalled
		}

		data := pageData{
			View:    BuildView(state, notice),
			Refresh: state.ConversionRate == nil && state.ErrorMessage == "",
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := pageTemplate.Execute(w, data); err != nil {
			logger.Log.Errorw("failed to render page", "error", err)
		}
	}
}

func currentOrMount(ctx context.Context, w http.ResponseWriter, svc Checkout, issuer TokenIssuer, getSession SessionGetter) (models.State, error) {
	if id, ok := getSession(ctx); ok {
		state, err := svc.State(ctx, id)
		if err == nil {
			return state, nil
		}
		if !errors.Is(err, models.ErrSessionNotFound) {
			return models.State{}, err
		}
	}

	id, state, err := svc.Mount(ctx)
	if err != nil {
		return models.State{}, err
	}
	token, err := issuer.Generate(ctx, id)
	if err != nil {
		return models.State{}, err
	}
	issuer.SetCookie(w, token)
	return state, nil
}

// FormAction applies one form submission to a session.
type FormAction func(ctx context.Context, svc Checkout, id uuid.UUID, r *http.Request) (models.State, error)

// Form submissions of the checkout page.
var (
	SubmitBill FormAction = func(ctx context.Context, svc Checkout, id uuid.UUID, r *http.Request) (models.State, error) {
		return svc.SetBillAmount(ctx, id, r.PostFormValue("bill_amount"))
	}
	SubmitApprove FormAction = func(ctx context.Context, svc Checkout, id uuid.UUID, r *http.Request) (models.State, error) {
		return svc.ApprovePayment(ctx, id)
	}
	SubmitReject FormAction = func(ctx context.Context, svc Checkout, id uuid.UUID, r *http.Request) (models.State, error) {
		return svc.RejectPayment(ctx, id)
	}
	SubmitCloseModal FormAction = func(ctx context.Context, svc Checkout, id uuid.UUID, r *http.Request) (models.State, error) {
		return svc.CloseModal(ctx, id)
	}
	SubmitConnectWallet FormAction = func(ctx context.Context, svc Checkout, id uuid.UUID, r *http.Request) (models.State, error) {
		return svc.ConnectWallet(ctx, id)
	}
	// SubmitBalance stores the typed address, then looks up its balance.
	SubmitBalance FormAction = func(ctx context.Context, svc Checkout, id uuid.UUID, r *http.Request) (models.State, error) {
		if _, err := svc.SetWalletAddress(ctx, id, r.PostFormValue("wallet_address")); err != nil {
			return models.State{}, err
		}
		return svc.FetchBalance(ctx, id)
	}
)

// NewFormActionHandler applies act and redirects back to the page.
func NewFormActionHandler(svc Checkout, getSession SessionGetter, act FormAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := getSession(ctx)
		if !ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		_, err := act(ctx, svc, id, r)
		switch {
		case err == nil,
			errors.Is(err, models.ErrSessionNotFound),
			errors.Is(err, models.ErrSuperseded):
			http.Redirect(w, r, "/", http.StatusSeeOther)
		case errors.Is(err, models.ErrWalletNotInstalled):
			http.Redirect(w, r, "/?notice="+noticeWalletNotInstalled, http.StatusSeeOther)
		default:
			logger.Log.Errorw("form action failed", "session_id", id, "path", r.URL.Path, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
	}
}
