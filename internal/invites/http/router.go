package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/vouch/internal/invites/service"
	"github.com/aussiebroadwan/vouch/internal/invites/store"
	"github.com/aussiebroadwan/vouch/pkg/httpx"
	"github.com/aussiebroadwan/vouch/pkg/jwtx"
	"github.com/aussiebroadwan/vouch/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/aussiebroadwan/vouch/api/vouch" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	keys         *jwtx.KeySet // nil when tokens are verified with a shared secret
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	registry *prometheus.Registry
	metrics  *httpx.RequestMetrics

	store            store.Store
	InviteService    *service.InviteService
	SignupService    *service.SignupService
	ProfileService   *service.ProfileService
	BootstrapService *service.BootstrapService
}

// NewRouter builds a router. A nil registry disables /metrics and request
// instrumentation.
func NewRouter(
	verifier jwtx.Verifier,
	keys *jwtx.KeySet,
	buildVersion string,
	st store.Store,
	registry *prometheus.Registry,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		registry:     registry,
		store:        st,
		logger:       logger,
	}
	if registry != nil {
		r.metrics = httpx.NewRequestMetrics("vouch", registry)
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvites()
	r.registerSignup()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Vouch Invite Service API
//	@version		0.1.0
//	@description	Invite codes for a trust-gated network. Members issue codes to people they vouch for;
//	@description	new accounts redeem a code while completing signup.
//	@description
//	@description				Access tokens are issued by the identity provider and verified here.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/vouch
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle registers h behind the route's request metrics and mws.
func (r *Router) handle(pattern, route string, h http.Handler, mws ...httpx.Middleware) {
	mws = append([]httpx.Middleware{r.metrics.Instrument(route)}, mws...)
	r.Mux.Handle(pattern, httpx.Chain(h, mws...))
}

func (r *Router) registerInvites() {
	requireProfile := RequireProfile(r.ProfileService)

	// Invite management is for members only: authenticated and onboarded
	createHandler := &InviteCreateHandler{InviteService: r.InviteService}
	r.handle("POST /v1/invites", "/v1/invites", createHandler,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
		requireProfile,
	)

	listHandler := &InviteListHandler{InviteService: r.InviteService}
	r.handle("GET /v1/invites", "/v1/invites", listHandler,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
		requireProfile,
	)

	revokeHandler := &InviteRevokeHandler{InviteService: r.InviteService}
	r.handle("POST /v1/invites/revoke", "/v1/invites/revoke", revokeHandler,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
		requireProfile,
	)

	// POST /invites/validate - public, strict rate limit by IP against code enumeration
	validateHandler := &InviteValidateHandler{InviteService: r.InviteService}
	r.handle("POST /v1/invites/validate", "/v1/invites/validate", validateHandler,
		httpx.RateLimitByIP(httpx.StrictLimit),
	)
}

func (r *Router) registerSignup() {
	// Signup is for accounts without a profile yet, so no RequireProfile here
	signupHandler := &SignupCompleteHandler{SignupService: r.SignupService}
	r.handle("POST /v1/signup/complete", "/v1/signup/complete", signupHandler,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.StrictLimit),
	)

	profileHandler := &ProfileHandler{ProfileService: r.ProfileService}
	r.handle("GET /v1/profile", "/v1/profile", profileHandler,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - one-time setup, strict rate limit by IP
	bootstrapHandler := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.handle("POST /v1/bootstrap", "/v1/bootstrap", bootstrapHandler,
		httpx.RateLimitByIP(httpx.StrictLimit),
		httpx.AuthnMiddleware(r.verifier),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	if r.registry != nil {
		r.Mux.Handle("GET /metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
	}
}
