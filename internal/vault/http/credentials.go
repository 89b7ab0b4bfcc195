package http

import (
	"net/http"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/pkg/vaultsdk"
)

type CredentialsHandler struct {
	crud[domain.Credential, domain.CredentialPatch, vaultsdk.CreateCredentialRequest, vaultsdk.UpdateCredentialRequest, vaultsdk.Credential]
}

func newCredentialsHandler(svc *service.CredentialsService, errs errorWriter) *CredentialsHandler {
	h := &CredentialsHandler{}
	h.svc = svc
	h.errs = errs
	h.deleted = "Credential deleted successfully"
	h.view = credentialView
	h.secret = func(c *domain.Credential) any {
		return vaultsdk.CredentialSecret{CredentialID: c.ID, PasswordEncrypted: c.PasswordEncrypted}
	}
	h.fromCreate = func(req vaultsdk.CreateCredentialRequest) (domain.Credential, error) {
		return domain.Credential{
			UserID:            req.UserID,
			Title:             req.Title,
			Username:          req.Username,
			URL:               req.URL,
			Notes:             req.Notes,
			PasswordEncrypted: req.PasswordEncrypted,
		}, nil
	}
	h.fromUpdate = func(req vaultsdk.UpdateCredentialRequest) (domain.CredentialPatch, error) {
		return domain.CredentialPatch{
			Title:             req.Title,
			Username:          req.Username,
			URL:               req.URL,
			Notes:             req.Notes,
			PasswordEncrypted: req.PasswordEncrypted,
		}, nil
	}
	return h
}

func credentialView(c *domain.Credential) vaultsdk.Credential {
	return vaultsdk.Credential{
		CredentialID: c.ID,
		UserID:       c.UserID,
		Title:        c.Title,
		Username:     c.Username,
		URL:          c.URL,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
	}
}

// List godoc
//
//	@Summary	List credentials
//	@Tags		Credentials
//	@Produce	json
//	@Success	200	{array}		vaultsdk.Credential
//	@Failure	500	{object}	vaultsdk.ErrorResponse	"Database error"
//	@Router		/credentials [get].
func (h *CredentialsHandler) List(w http.ResponseWriter, r *http.Request) { h.list(w, r) }

// Get godoc
//
//	@Summary	Get a credential
//	@Tags		Credentials
//	@Produce	json
//	@Param		id	path		int	true	"Credential ID"
//	@Success	200	{object}	vaultsdk.Credential
//	@Failure	400	{object}	vaultsdk.ErrorResponse	"Invalid id"
//	@Failure	404	{object}	vaultsdk.ErrorResponse	"Credential not found"
//	@Router		/credentials/{id} [get].
func (h *CredentialsHandler) Get(w http.ResponseWriter, r *http.Request) { h.get(w, r) }

// Create godoc
//
//	@Summary		Create a credential
//	@Description	The owning user must exist; otherwise nothing is stored and 404 is returned.
//	@Tags			Credentials
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.CreateCredentialRequest	true	"New credential"
//	@Success		201		{object}	vaultsdk.Credential
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"Validation failure"
//	@Failure		404		{object}	vaultsdk.ErrorResponse	"User not found"
//	@Router			/credentials [post].
func (h *CredentialsHandler) Create(w http.ResponseWriter, r *http.Request) { h.create(w, r) }

// Update godoc
//
//	@Summary	Update a credential
//	@Tags		Credentials
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int									true	"Credential ID"
//	@Param		request	body		vaultsdk.UpdateCredentialRequest	true	"Fields to change"
//	@Success	200		{object}	vaultsdk.Credential
//	@Failure	400		{object}	vaultsdk.ErrorResponse	"Validation failure or no fields to update"
//	@Failure	404		{object}	vaultsdk.ErrorResponse	"Credential not found"
//	@Router		/credentials/{id} [put].
func (h *CredentialsHandler) Update(w http.ResponseWriter, r *http.Request) { h.update(w, r) }

// Delete godoc
//
//	@Summary	Delete a credential
//	@Tags		Credentials
//	@Produce	json
//	@Param		id	path		int	true	"Credential ID"
//	@Success	200	{object}	vaultsdk.MessageResponse
//	@Failure	404	{object}	vaultsdk.ErrorResponse	"Credential not found"
//	@Router		/credentials/{id} [delete].
func (h *CredentialsHandler) Delete(w http.ResponseWriter, r *http.Request) { h.remove(w, r) }

// Secret godoc
//
//	@Summary	Reveal a credential password
//	@Tags		Credentials
//	@Produce	json
//	@Param		id	path		int	true	"Credential ID"
//	@Success	200	{object}	vaultsdk.CredentialSecret
//	@Failure	404	{object}	vaultsdk.ErrorResponse	"Credential not found"
//	@Failure	429	{object}	vaultsdk.ErrorResponse	"Rate limit exceeded"
//	@Router		/credentials/{id}/secret [get].
func (h *CredentialsHandler) Secret(w http.ResponseWriter, r *http.Request) { h.reveal(w, r) }
