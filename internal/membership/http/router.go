package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/metrics"
	"github.com/lubana/membership/internal/membership/service"
	"github.com/lubana/membership/internal/membership/store"
	"github.com/lubana/membership/pkg/httpx"
	"github.com/lubana/membership/pkg/jwtx"
	"github.com/lubana/membership/pkg/slogx"

	_ "github.com/lubana/membership/api/membership" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

var (
	anyRole  = []string{string(domain.RoleGuest), string(domain.RoleMember), string(domain.RoleStaff), string(domain.RoleAdmin)}
	deskRole = []string{string(domain.RoleStaff), string(domain.RoleAdmin)}
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.Signer
	verifier     httpx.TokenVerifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
	metrics      *metrics.Metrics

	// Limits defaults to httpx.DefaultRateLimits.
	Limits httpx.RateLimits

	// MetricsHandler serves /metrics when set, behind basic auth when
	// MetricsUser is set.
	MetricsHandler http.Handler
	MetricsUser    string
	MetricsPass    string

	Now service.Clock

	UserService   *service.UserService
	Issuer        *service.RegistrationIssuer
	Validator     *service.QRValidator
	Activator     *service.Activator
	MemberService *service.MemberService
}

func NewRouter(
	signer *jwtx.Signer,
	verifier httpx.TokenVerifier,
	buildVersion string,
	st store.Store,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		metrics:      m,
		Limits:       httpx.DefaultRateLimits(),
	}

	// The metrics middleware must sit directly on the mux to see the
	// matched pattern.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		r.metrics.HTTPMiddleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerPlans()
	r.registerRegistrations()
	r.registerMembers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Lubana Membership Service API
//	@version		0.1.0
//	@description	Gym membership registration. Members buy a plan, receive a registration QR code, and front desk staff validate and activate it.
//	@description
//	@description				Access tokens are EdDSA signed JWTs and can be verified using the JWKS endpoint.
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

// secured chains authentication, a role check and a per-user rate limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig, roles []string) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireRole(roles...),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService, Now: r.Now}

	// Credential endpoints - strict rate limit by IP
	r.Mux.Handle("POST /v1/users/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup), httpx.RateLimitByIP(r.Limits.Strict)))
	r.Mux.Handle("POST /v1/users/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin), httpx.RateLimitByIP(r.Limits.Strict)))

	r.Mux.Handle("GET /v1/users/me", r.secured(h.HandleMe, r.Limits.Lenient, anyRole))
	r.Mux.Handle("PUT /v1/users/me/profile", r.secured(h.HandleUpdateProfile, r.Limits.Moderate, anyRole))

	adminOnly := []string{string(domain.RoleAdmin)}
	r.Mux.Handle("GET /v1/users", r.secured(h.HandleList, r.Limits.Moderate, adminOnly))
	r.Mux.Handle("PUT /v1/users/{id}/role", r.secured(h.HandleSetRole, r.Limits.Moderate, adminOnly))
}

func (r *Router) registerPlans() {
	r.Mux.Handle("GET /v1/plans",
		httpx.Chain(PlansHandler(), httpx.RateLimitByIP(r.Limits.Public)))
}

func (r *Router) registerRegistrations() {
	h := &RegistrationsHandler{
		Issuer:    r.Issuer,
		Validator: r.Validator,
		Activator: r.Activator,
		Now:       r.Now,
	}

	r.Mux.Handle("POST /v1/registrations", r.secured(h.HandleCreate, r.Limits.Moderate, anyRole))
	r.Mux.Handle("GET /v1/registrations/me", r.secured(h.HandleListMine, r.Limits.Lenient, anyRole))
	r.Mux.Handle("GET /v1/registrations/{id}/qr.png", r.secured(h.HandleQR, r.Limits.Lenient, anyRole))

	// Front desk - lenient, scanners poll the validate endpoint
	r.Mux.Handle("POST /v1/registrations/validate", r.secured(h.HandleValidate, r.Limits.Lenient, deskRole))
	r.Mux.Handle("POST /v1/registrations/{id}/activate", r.secured(h.HandleActivate, r.Limits.Moderate, deskRole))
}

func (r *Router) registerMembers() {
	h := &MembersHandler{MemberService: r.MemberService, Now: r.Now}

	r.Mux.Handle("GET /v1/members/me", r.secured(h.HandleMe, r.Limits.Lenient, anyRole))
	r.Mux.Handle("GET /v1/members", r.secured(h.HandleList, r.Limits.Lenient, deskRole))
	r.Mux.Handle("GET /v1/members/scan", r.secured(h.HandleScan, r.Limits.Lenient, deskRole))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion), httpx.RateLimitByIP(r.Limits.Lenient)))
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer), httpx.RateLimitByIP(r.Limits.Lenient)))

	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.signer), httpx.RateLimitByIP(r.Limits.Public)))

	if r.MetricsHandler != nil {
		r.Mux.Handle("GET /metrics",
			httpx.Chain(r.MetricsHandler, httpx.BasicAuth("metrics", r.MetricsUser, r.MetricsPass)))
	}
}
