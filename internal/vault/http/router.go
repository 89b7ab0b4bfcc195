package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/netip"
	"time"

	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/internal/vault/store"
	"github.com/aussiebroadwan/passvault/pkg/httpx"
	"github.com/aussiebroadwan/passvault/pkg/slogx"
	"github.com/aussiebroadwan/passvault/pkg/vaultsdk"

	_ "github.com/aussiebroadwan/passvault/api/vault" // Swagger docs
	"github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Options tunes the router.
type Options struct {
	BuildVersion string
	Logger       *slog.Logger

	// MaskStorageErrors replaces driver messages in 500 responses.
	MaskStorageErrors bool
	// AllowedOrigins feeds the CORS policy. Empty means "*".
	AllowedOrigins []string
	// TrustedProxies may set the client address through forwarding
	// headers. Everyone else is rate limited by peer address.
	TrustedProxies []netip.Prefix
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	errs         errorWriter
	proxies      []netip.Prefix

	store    store.Store
	services *service.Services
}

func NewRouter(st store.Store, services *service.Services, opts Options) *Router {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: opts.BuildVersion,
		startTime:    time.Now(),
		logger:       logger,
		errs:         errorWriter{maskStorage: opts.MaskStorageErrors},
		proxies:      opts.TrustedProxies,
		store:        st,
		services:     services,
	}

	// Outermost first. Metrics sit closest to the mux so the matched
	// pattern is visible once the handler returns.
	r.middlewares = []httpx.Middleware{
		handlers.RecoveryHandler(
			handlers.RecoveryLogger(recoveryLogger{logger}),
			handlers.PrintRecoveryStack(true),
		),
		slogx.HTTPMiddleware(logger),
		handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
			handlers.AllowedHeaders([]string{"Content-Type", slogx.RequestIDHeader}),
			handlers.ExposedHeaders([]string{slogx.RequestIDHeader, "Retry-After"}),
		),
		metricsMiddleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerCredentials()
	r.registerEmailAccounts()
	r.registerCreditCards()
	r.registerDevices()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			passvault API
//	@version		0.1.0
//	@description	Password manager backend storing users and their credentials, email accounts, credit cards and devices.
//	@description
//	@description	Secret fields are write-only on the resource endpoints and can only be read back through the rate limited /secret endpoints.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/passvault
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(http.HandlerFunc(r.dispatch), r.middlewares...).ServeHTTP(w, req)
}

// dispatch serves matched routes through the mux and answers everything
// else with the JSON error body the handlers use.
func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	h, pattern := r.Mux.Handler(req)
	if pattern != "" {
		r.Mux.ServeHTTP(w, req)
		return
	}

	// The mux's own reply tells 404 from 405 and carries the Allow list.
	peek := &headerWriter{header: http.Header{}}
	h.ServeHTTP(peek, req)

	if peek.status == http.StatusMethodNotAllowed {
		w.Header().Set("Allow", peek.header.Get("Allow"))
		writeError(w, http.StatusMethodNotAllowed, vaultsdk.ErrorCodeMethodNotAllowed,
			"Method "+req.Method+" not allowed")
		return
	}
	writeError(w, http.StatusNotFound, vaultsdk.ErrorCodeNotFound, "Route not found")
}

// headerWriter keeps the status and headers of a response and drops the body.
type headerWriter struct {
	header http.Header
	status int
}

func (w *headerWriter) Header() http.Header { return w.header }

func (w *headerWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
}

func (w *headerWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return len(b), nil
}

func (r *Router) limit(cfg httpx.RateLimitConfig) httpx.Middleware {
	return httpx.RateLimitByIP(cfg, r.proxies...)
}

// resourceRoutes is what every resource handler provides.
type resourceRoutes interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// registerResource mounts the five CRUD routes under prefix. The collection
// is also served with a trailing slash, which older clients use.
func (r *Router) registerResource(prefix string, h resourceRoutes) {
	lenient := r.limit(httpx.LenientLimit)
	handle := func(pattern string, fn http.HandlerFunc) {
		r.Mux.Handle(pattern, httpx.Chain(fn, lenient))
	}

	handle("GET "+prefix, h.List)
	handle("GET "+prefix+"/{$}", h.List)
	handle("POST "+prefix, h.Create)
	handle("POST "+prefix+"/{$}", h.Create)
	handle("GET "+prefix+"/{id}", h.Get)
	handle("PUT "+prefix+"/{id}", h.Update)
	handle("DELETE "+prefix+"/{id}", h.Delete)
}

// registerSecret mounts the reveal route with a strict limit, since it is
// the only way to read stored secrets back.
func (r *Router) registerSecret(prefix string, fn http.HandlerFunc) {
	r.Mux.Handle("GET "+prefix+"/{id}/secret",
		httpx.Chain(fn, r.limit(httpx.StrictLimit)),
	)
}

func (r *Router) registerUsers() {
	r.registerResource("/users", newUsersHandler(r.services.Users, r.errs))
}

func (r *Router) registerCredentials() {
	h := newCredentialsHandler(r.services.Credentials, r.errs)
	r.registerResource("/credentials", h)
	r.registerSecret("/credentials", h.Secret)
}

func (r *Router) registerEmailAccounts() {
	h := newEmailAccountsHandler(r.services.EmailAccounts, r.errs)
	r.registerResource("/email_accounts", h)
	r.registerSecret("/email_accounts", h.Secret)
}

func (r *Router) registerCreditCards() {
	h := newCreditCardsHandler(r.services.CreditCards, r.errs)
	r.registerResource("/credit_cards", h)
	r.registerSecret("/credit_cards", h.Secret)
}

func (r *Router) registerDevices() {
	h := newDevicesHandler(r.services.Devices, r.errs)
	r.registerResource("/devices", h)
	r.registerSecret("/devices", h.Secret)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			r.limit(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			r.limit(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}

// recoveryLogger routes gorilla's panic reports into slog.
type recoveryLogger struct{ log *slog.Logger }

func (l recoveryLogger) Println(v ...any) {
	l.log.Error("panic recovered", "panic", fmt.Sprint(v...))
}
