package http

import (
	"net/http"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/pkg/vaultsdk"
)

type EmailAccountsHandler struct {
	crud[domain.EmailAccount, domain.EmailAccountPatch, vaultsdk.CreateEmailAccountRequest, vaultsdk.UpdateEmailAccountRequest, vaultsdk.EmailAccount]
}

func newEmailAccountsHandler(svc *service.EmailAccountsService, errs errorWriter) *EmailAccountsHandler {
	h := &EmailAccountsHandler{}
	h.svc = svc
	h.errs = errs
	h.deleted = "Email account deleted successfully"
	h.view = emailAccountView
	h.secret = func(e *domain.EmailAccount) any {
		return vaultsdk.EmailAccountSecret{EmailID: e.ID, PasswordEncrypted: e.PasswordEncrypted}
	}
	h.fromCreate = func(req vaultsdk.CreateEmailAccountRequest) (domain.EmailAccount, error) {
		return domain.EmailAccount{
			UserID:            req.UserID,
			EmailAddress:      req.EmailAddress,
			Provider:          req.Provider,
			RecoveryEmail:     req.RecoveryEmail,
			TwoFactorEnabled:  req.TwoFactorEnabled,
			PasswordEncrypted: req.PasswordEncrypted,
		}, nil
	}
	h.fromUpdate = func(req vaultsdk.UpdateEmailAccountRequest) (domain.EmailAccountPatch, error) {
		return domain.EmailAccountPatch{
			EmailAddress:      req.EmailAddress,
			Provider:          req.Provider,
			RecoveryEmail:     req.RecoveryEmail,
			TwoFactorEnabled:  req.TwoFactorEnabled,
			PasswordEncrypted: req.PasswordEncrypted,
		}, nil
	}
	return h
}

func emailAccountView(e *domain.EmailAccount) vaultsdk.EmailAccount {
	return vaultsdk.EmailAccount{
		EmailID:          e.ID,
		UserID:           e.UserID,
		EmailAddress:     e.EmailAddress,
		Provider:         e.Provider,
		RecoveryEmail:    e.RecoveryEmail,
		TwoFactorEnabled: e.TwoFactorEnabled,
		CreatedAt:        e.CreatedAt,
	}
}

// List godoc
//
//	@Summary	List email accounts
//	@Tags		EmailAccounts
//	@Produce	json
//	@Success	200	{array}		vaultsdk.EmailAccount
//	@Failure	500	{object}	vaultsdk.ErrorResponse	"Database error"
//	@Router		/email_accounts [get].
func (h *EmailAccountsHandler) List(w http.ResponseWriter, r *http.Request) { h.list(w, r) }

// Get godoc
//
//	@Summary	Get an email account
//	@Tags		EmailAccounts
//	@Produce	json
//	@Param		id	path		int	true	"Email account ID"
//	@Success	200	{object}	vaultsdk.EmailAccount
//	@Failure	404	{object}	vaultsdk.ErrorResponse	"Email account not found"
//	@Router		/email_accounts/{id} [get].
func (h *EmailAccountsHandler) Get(w http.ResponseWriter, r *http.Request) { h.get(w, r) }

// Create godoc
//
//	@Summary	Create an email account
//	@Tags		EmailAccounts
//	@Accept		json
//	@Produce	json
//	@Param		request	body		vaultsdk.CreateEmailAccountRequest	true	"New email account"
//	@Success	201		{object}	vaultsdk.EmailAccount
//	@Failure	400		{object}	vaultsdk.ErrorResponse	"Validation failure"
//	@Failure	404		{object}	vaultsdk.ErrorResponse	"User not found"
//	@Router		/email_accounts [post].
func (h *EmailAccountsHandler) Create(w http.ResponseWriter, r *http.Request) { h.create(w, r) }

// Update godoc
//
//	@Summary		Update an email account
//	@Description	Only supplied fields change. The owning user can never change.
//	@Tags			EmailAccounts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int									true	"Email account ID"
//	@Param			request	body		vaultsdk.UpdateEmailAccountRequest	true	"Fields to change"
//	@Success		200		{object}	vaultsdk.EmailAccount
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"No fields to update"
//	@Failure		404		{object}	vaultsdk.ErrorResponse	"Email account not found"
//	@Router			/email_accounts/{id} [put].
func (h *EmailAccountsHandler) Update(w http.ResponseWriter, r *http.Request) { h.update(w, r) }

// Delete godoc
//
//	@Summary	Delete an email account
//	@Tags		EmailAccounts
//	@Produce	json
//	@Param		id	path		int	true	"Email account ID"
//	@Success	200	{object}	vaultsdk.MessageResponse
//	@Failure	404	{object}	vaultsdk.ErrorResponse	"Email account not found"
//	@Router		/email_accounts/{id} [delete].
func (h *EmailAccountsHandler) Delete(w http.ResponseWriter, r *http.Request) { h.remove(w, r) }

// Secret godoc
//
//	@Summary	Reveal an email account password
//	@Tags		EmailAccounts
//	@Produce	json
//	@Param		id	path		int	true	"Email account ID"
//	@Success	200	{object}	vaultsdk.EmailAccountSecret
//	@Failure	404	{object}	vaultsdk.ErrorResponse	"Email account not found"
//	@Failure	429	{object}	vaultsdk.ErrorResponse	"Rate limit exceeded"
//	@Router		/email_accounts/{id}/secret [get].
func (h *EmailAccountsHandler) Secret(w http.ResponseWriter, r *http.Request) { h.reveal(w, r) }
