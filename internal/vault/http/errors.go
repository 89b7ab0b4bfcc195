package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/pkg/httpx"
	"github.com/aussiebroadwan/passvault/pkg/slogx"
	"github.com/aussiebroadwan/passvault/pkg/vaultsdk"
)

// notFoundDetails are the client-facing messages for missing rows.
var notFoundDetails = map[error]string{
	service.ErrUserNotFound:         "User not found",
	service.ErrCredentialNotFound:   "Credential not found",
	service.ErrEmailAccountNotFound: "Email account not found",
	service.ErrCreditCardNotFound:   "Credit card not found",
	service.ErrDeviceNotFound:       "Device not found",
	service.ErrParentNotFound:       "User not found",
}

// errorWriter turns service errors into responses.
type errorWriter struct {
	// maskStorage hides driver messages from 500 responses.
	maskStorage bool
}

func (e errorWriter) write(w http.ResponseWriter, r *http.Request, err error) {
	for sentinel, detail := range notFoundDetails {
		if errors.Is(err, sentinel) {
			writeError(w, http.StatusNotFound, vaultsdk.ErrorCodeNotFound, detail)
			return
		}
	}

	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNoFieldsToUpdate):
		writeError(w, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest, "No fields to update")
	case errors.As(err, &verr):
		fields := make([]vaultsdk.FieldError, len(verr.Fields))
		for i, f := range verr.Fields {
			fields[i] = vaultsdk.FieldError{Field: f.Field, Message: f.Message}
		}
		httpx.WriteJSON(w, http.StatusBadRequest, vaultsdk.ErrorResponse{
			Error:  vaultsdk.ErrorCodeInvalidRequest,
			Detail: verr.Error(),
			Fields: fields,
		})
	case errors.Is(err, service.ErrUserHasDependents):
		writeError(w, http.StatusConflict, vaultsdk.ErrorCodeConflict, "User has dependent records")
	default:
		slogx.FromContext(r.Context()).Error("storage failure", "error", err)
		detail := "Database error: " + err.Error()
		if e.maskStorage {
			detail = "Internal server error"
		}
		writeError(w, http.StatusInternalServerError, vaultsdk.ErrorCodeServerError, detail)
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	httpx.WriteError(w, status, code, detail)
}

func badRequest(w http.ResponseWriter, detail string) {
	writeError(w, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest, detail)
}
