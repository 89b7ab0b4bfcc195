package http

import (
	"net/http"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/pkg/vaultsdk"
)

type UsersHandler struct {
	crud[domain.User, domain.UserPatch, vaultsdk.CreateUserRequest, vaultsdk.UpdateUserRequest, vaultsdk.User]
}

func newUsersHandler(svc *service.UsersService, errs errorWriter) *UsersHandler {
	h := &UsersHandler{}
	h.svc = svc
	h.errs = errs
	h.deleted = "User deleted successfully"
	h.cascade = true
	h.view = userView
	h.fromCreate = func(req vaultsdk.CreateUserRequest) (domain.User, error) {
		return domain.User{
			Username:           req.Username,
			MasterPasswordHash: req.MasterPasswordHash,
			Email:              req.Email,
		}, nil
	}
	h.fromUpdate = func(req vaultsdk.UpdateUserRequest) (domain.UserPatch, error) {
		return domain.UserPatch{
			Username:           req.Username,
			MasterPasswordHash: req.MasterPasswordHash,
			Email:              req.Email,
		}, nil
	}
	return h
}

func userView(u *domain.User) vaultsdk.User {
	return vaultsdk.User{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// List godoc
//
//	@Summary		List users
//	@Description	Returns every user ordered by id. Master password hashes are never returned.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		vaultsdk.User
//	@Failure		500	{object}	vaultsdk.ErrorResponse	"Database error"
//	@Router			/users [get].
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) { h.list(w, r) }

// Get godoc
//
//	@Summary	Get a user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	vaultsdk.User
//	@Failure	400	{object}	vaultsdk.ErrorResponse	"Invalid id"
//	@Failure	404	{object}	vaultsdk.ErrorResponse	"User not found"
//	@Router		/users/{id} [get].
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) { h.get(w, r) }

// Create godoc
//
//	@Summary	Create a user
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		vaultsdk.CreateUserRequest	true	"New user"
//	@Success	201		{object}	vaultsdk.User
//	@Failure	400		{object}	vaultsdk.ErrorResponse	"Validation failure"
//	@Failure	500		{object}	vaultsdk.ErrorResponse	"Database error"
//	@Router		/users [post].
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) { h.create(w, r) }

// Update godoc
//
//	@Summary		Update a user
//	@Description	Changes only the supplied fields. Supplying every field replaces the user.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		vaultsdk.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	vaultsdk.User
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"Validation failure or no fields to update"
//	@Failure		404		{object}	vaultsdk.ErrorResponse	"User not found"
//	@Router			/users/{id} [put].
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) { h.update(w, r) }

// Delete godoc
//
//	@Summary		Delete a user
//	@Description	Refuses with 409 while the user owns credentials, email accounts, credit cards or devices,
//	@Description	unless cascade=true, which deletes them in the same transaction.
//	@Tags			Users
//	@Produce		json
//	@Param			id		path		int		true	"User ID"
//	@Param			cascade	query		bool	false	"Delete owned records too"
//	@Success		200		{object}	vaultsdk.MessageResponse
//	@Failure		404		{object}	vaultsdk.ErrorResponse	"User not found"
//	@Failure		409		{object}	vaultsdk.ErrorResponse	"User has dependent records"
//	@Router			/users/{id} [delete].
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) { h.remove(w, r) }
