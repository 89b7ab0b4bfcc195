package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"path/filepath"
	"strings"
	"testing"

	vaulthttp "github.com/aussiebroadwan/passvault/internal/vault/http"
	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/internal/vault/store/drivers/sqlite"
	"github.com/aussiebroadwan/passvault/pkg/idx"
	"github.com/aussiebroadwan/passvault/pkg/vaultsdk"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, opts vaulthttp.Options) http.Handler {
	t.Helper()
	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	r := vaulthttp.NewRouter(st, service.New(st), opts)
	r.ApplyRoutes()
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&out), rec.Body.String())
	return out
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, code, detail string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	resp := decode[vaultsdk.ErrorResponse](t, rec)
	require.Equal(t, code, resp.Error)
	if detail != "" {
		require.Equal(t, detail, resp.Detail)
	}
}

func TestExampleScenario(t *testing.T) {
	h := newTestRouter(t, vaulthttp.Options{})

	rec := do(t, h, http.MethodPost, "/users", `{"username":"alice","master_password_hash":"h1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	user := decode[vaultsdk.User](t, rec)
	require.Equal(t, int64(1), user.UserID)
	require.Nil(t, user.Email)
	require.NotContains(t, rec.Body.String(), "master_password_hash")

	rec = do(t, h, http.MethodPost, "/credentials", `{"user_id":1,"title":"gmail","password_encrypted":"x"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	cred := decode[vaultsdk.Credential](t, rec)
	require.Equal(t, int64(1), cred.CredentialID)
	require.Equal(t, "gmail", *cred.Title)

	rec = do(t, h, http.MethodPost, "/credentials", `{"user_id":999,"password_encrypted":"y"}`)
	requireError(t, rec, http.StatusNotFound, vaultsdk.ErrorCodeNotFound, "User not found")

	rec = do(t, h, http.MethodGet, "/credentials", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[[]vaultsdk.Credential](t, rec), 1)
}

func TestTrailingSlashAliases(t *testing.T) {
	h := newTestRouter(t, vaulthttp.Options{})

	rec := do(t, h, http.MethodPost, "/users/", `{"username":"bob","master_password_hash":"h"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/users/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[[]vaultsdk.User](t, rec), 1)

	rec = do(t, h, http.MethodGet, "/devices", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestNotFoundDetails(t *testing.T) {
	h := newTestRouter(t, vaulthttp.Options{})

	for path, detail := range map[string]string{
		"/users/7":          "User not found",
		"/credentials/7":    "Credential not found",
		"/email_accounts/7": "Email account not found",
		"/credit_cards/7":   "Credit card not found",
		"/devices/7":        "Device not found",
	} {
		requireError(t, do(t, h, http.MethodGet, path, ""), http.StatusNotFound, vaultsdk.ErrorCodeNotFound, detail)
		requireError(t, do(t, h, http.MethodDelete, path, ""), http.StatusNotFound, vaultsdk.ErrorCodeNotFound, detail)
	}
}

func TestBadRequests(t *testing.T) {
	h := newTestRouter(t, vaulthttp.Options{})
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/users", `{"username":"a","master_password_hash":"h"}`).Code)

	t.Run("non-integer id", func(t *testing.T) {
		requireError(t, do(t, h, http.MethodGet, "/users/abc", ""), http.StatusBadRequest,
			vaultsdk.ErrorCodeInvalidRequest, `invalid id "abc": must be an integer`)
	})

	t.Run("malformed json", func(t *testing.T) {
		requireError(t, do(t, h, http.MethodPost, "/users", `{"username":`), http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest, "")
	})

	t.Run("missing required field", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/users", `{"username":"bob"}`)
		requireError(t, rec, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest, "master_password_hash: field required")
		resp := decode[vaultsdk.ErrorResponse](t, rec)
		require.Equal(t, []vaultsdk.FieldError{{Field: "master_password_hash", Message: "field required"}}, resp.Fields)
	})

	t.Run("unknown enum", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/devices", `{"user_id":1,"device_type":"Phone","admin_password_encrypted":"p"}`)
		requireError(t, rec, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest,
			"device_type: must be one of Laptop, Desktop, Tablet, Other")
	})

	t.Run("malformed date", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/credit_cards", `{"user_id":1,"card_number":"1","cvv":"2","expiration_date":"12/30"}`)
		requireError(t, rec, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest, "")
		require.Contains(t, rec.Body.String(), "expiration_date")
	})

	t.Run("over-long field", func(t *testing.T) {
		body := fmt.Sprintf(`{"user_id":1,"card_number":"1","cvv":"2","card_holder_name":%q}`, strings.Repeat("x", 101))
		requireError(t, do(t, h, http.MethodPost, "/credit_cards", body), http.StatusBadRequest,
			vaultsdk.ErrorCodeInvalidRequest, "card_holder_name: must be at most 100 characters")
	})

	t.Run("invalid cascade", func(t *testing.T) {
		requireError(t, do(t, h, http.MethodDelete, "/users/1?cascade=maybe", ""), http.StatusBadRequest,
			vaultsdk.ErrorCodeInvalidRequest, `invalid cascade "maybe": must be a boolean`)
	})
}

func TestEmailAccountUpdate(t *testing.T) {
	h := newTestRouter(t, vaulthttp.Options{})
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/users", `{"username":"a","master_password_hash":"h"}`).Code)

	rec := do(t, h, http.MethodPost, "/email_accounts",
		`{"user_id":1,"email_address":"a@example.com","recovery_email":"r@example.com","password_encrypted":"p"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[vaultsdk.EmailAccount](t, rec)
	require.False(t, created.TwoFactorEnabled)
	require.NotContains(t, rec.Body.String(), "password_encrypted")

	rec = do(t, h, http.MethodPut, "/email_accounts/1", `{"provider":"fastmail","user_id":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[vaultsdk.EmailAccount](t, rec)
	require.Equal(t, "fastmail", *updated.Provider)
	require.Equal(t, created.EmailAddress, updated.EmailAddress)
	require.Equal(t, created.RecoveryEmail, updated.RecoveryEmail)
	require.Equal(t, int64(1), updated.UserID)
	require.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	requireError(t, do(t, h, http.MethodPut, "/email_accounts/1", `{}`), http.StatusBadRequest,
		vaultsdk.ErrorCodeInvalidRequest, "No fields to update")
	requireError(t, do(t, h, http.MethodPut, "/email_accounts/1", `{"provider":null}`), http.StatusBadRequest,
		vaultsdk.ErrorCodeInvalidRequest, "No fields to update")
	requireError(t, do(t, h, http.MethodPut, "/email_accounts/9", `{}`), http.StatusNotFound,
		vaultsdk.ErrorCodeNotFound, "Email account not found")
}

func TestCreditCardSecretsStayHidden(t *testing.T) {
	h := newTestRouter(t, vaulthttp.Options{})
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/users", `{"username":"a","master_password_hash":"h"}`).Code)

	rec := do(t, h, http.MethodPost, "/credit_cards",
		`{"user_id":1,"card_number":"4111111111111111","cvv":"123","expiration_date":"2030-01-31"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotContains(t, rec.Body.String(), "4111111111111111")
	require.NotContains(t, rec.Body.String(), "cvv")

	card := decode[vaultsdk.CreditCard](t, rec)
	require.Equal(t, vaultsdk.CardTypeCredit, card.CardType)
	require.Equal(t, "2030-01-31", *card.ExpirationDate)

	rec = do(t, h, http.MethodGet, "/credit_cards/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "4111111111111111")

	rec = do(t, h, http.MethodGet, "/credit_cards/1/secret", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, vaultsdk.CreditCardSecret{CardID: 1, CardNumber: "4111111111111111", CVV: "123"},
		decode[vaultsdk.CreditCardSecret](t, rec))
}

func TestSecretEndpointIsStrictlyLimited(t *testing.T) {
	h := newTestRouter(t, vaulthttp.Options{})
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/users", `{"username":"a","master_password_hash":"h"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/devices", `{"user_id":1,"admin_password_encrypted":"p"}`).Code)

	for range 5 {
		require.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/devices/1/secret", "").Code)
	}
	rec := do(t, h, http.MethodGet, "/devices/1/secret", "")
	requireError(t, rec, http.StatusTooManyRequests, vaultsdk.ErrorCodeRateLimitExceeded, "")
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestUserDeleteConflictAndCascade(t *testing.T) {
	h := newTestRouter(t, vaulthttp.Options{})
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/users", `{"username":"a","master_password_hash":"h"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/devices", `{"user_id":1,"admin_password_encrypted":"p"}`).Code)

	requireError(t, do(t, h, http.MethodDelete, "/users/1", ""), http.StatusConflict,
		vaultsdk.ErrorCodeConflict, "User has dependent records")

	rec := do(t, h, http.MethodDelete, "/users/1?cascade=true", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.JSONEq(t, `{"detail":"User deleted successfully"}`, rec.Body.String())

	require.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/devices/1", "").Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestRouter(t, vaulthttp.Options{BuildVersion: "test"})

	rec := do(t, h, http.MethodGet, "/livez", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "test", decode[vaultsdk.HealthResponse](t, rec).Version)

	rec = do(t, h, http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decode[vaultsdk.HealthResponse](t, rec).Checks.Database)

	rec = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `passvault_http_requests_total{method="GET",route="GET /livez",status="200"}`)
}

func TestRequestIDIsEchoed(t *testing.T) {
	h := newTestRouter(t, vaulthttp.Options{})

	serve := func(inbound string) string {
		req := httptest.NewRequest(http.MethodGet, "/livez", nil)
		req.Header.Set("X-Request-ID", inbound)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Header().Get("X-Request-ID")
	}

	id := idx.New().String()
	require.Equal(t, id, serve(id))

	got := serve("req-123")
	require.NotEqual(t, "req-123", got)
	_, err := idx.Parse(got)
	require.NoError(t, err)
}

func TestSpoofedForwardingHeadersDoNotResetSecretLimit(t *testing.T) {
	h := newTestRouter(t, vaulthttp.Options{})
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/users", `{"username":"a","master_password_hash":"h"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/devices", `{"user_id":1,"admin_password_encrypted":"p"}`).Code)

	secret := func(i int) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/devices/1/secret", nil)
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	for i := range 5 {
		require.Equal(t, http.StatusOK, secret(i).Code)
	}
	requireError(t, secret(5), http.StatusTooManyRequests, vaultsdk.ErrorCodeRateLimitExceeded, "")
}

func TestTrustedProxyForwardsClientAddress(t *testing.T) {
	// httptest requests arrive from 192.0.2.1.
	h := newTestRouter(t, vaulthttp.Options{
		TrustedProxies: []netip.Prefix{netip.MustParsePrefix("192.0.2.0/24")},
	})
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/users", `{"username":"a","master_password_hash":"h"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/devices", `{"user_id":1,"admin_password_encrypted":"p"}`).Code)

	secret := func(client string) int {
		req := httptest.NewRequest(http.MethodGet, "/devices/1/secret", nil)
		req.Header.Set("X-Forwarded-For", client)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for range 5 {
		require.Equal(t, http.StatusOK, secret("203.0.113.1"))
	}
	require.Equal(t, http.StatusTooManyRequests, secret("203.0.113.1"))
	require.Equal(t, http.StatusOK, secret("203.0.113.2"))
}

func TestUnmatchedRoutesAnswerInJSON(t *testing.T) {
	h := newTestRouter(t, vaulthttp.Options{})

	for _, path := range []string{"/", "/nope", "/users/1/extra"} {
		rec := do(t, h, http.MethodGet, path, "")
		requireError(t, rec, http.StatusNotFound, vaultsdk.ErrorCodeNotFound, "Route not found")
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}

	rec := do(t, h, http.MethodPatch, "/users/1", `{"username":"x"}`)
	requireError(t, rec, http.StatusMethodNotAllowed, vaultsdk.ErrorCodeMethodNotAllowed, "Method PATCH not allowed")
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Allow"), http.MethodPut)
	require.Contains(t, rec.Header().Get("Allow"), http.MethodDelete)

	rec = do(t, h, http.MethodDelete, "/users", "")
	requireError(t, rec, http.StatusMethodNotAllowed, vaultsdk.ErrorCodeMethodNotAllowed, "")
	require.Contains(t, rec.Header().Get("Allow"), http.MethodPost)
}
