package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/comodin-ia/invites/internal/invites/domain"
	"github.com/comodin-ia/invites/internal/invites/service"
	"github.com/comodin-ia/invites/internal/invites/store"
	"github.com/comodin-ia/invites/pkg/httpx"
	"github.com/comodin-ia/invites/pkg/jwtx"
	"github.com/comodin-ia/invites/pkg/slogx"

	_ "github.com/comodin-ia/invites/api/invites" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	InvitationService *service.InvitationService
	UserService       *service.UserService
	BootstrapService  *service.BootstrapService
}

func NewRouter(
	verifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvitations()
	r.registerUsers()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			COMODIN IA Invitation Service API
//	@version		0.1.0
//	@description	Issues single-use, time-boxed invitation tokens scoped to an organization and role, and redeems them exactly once into new user accounts.
//	@description
//	@description				Inviter-side endpoints are authenticated with CRM session tokens (HS256 JWT bearer). Invitee-side endpoints are public and rate limited.
//
//	@contact.name				COMODIN IA
//	@contact.url				https://comodinia.com
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				CRM session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerInvitations() {
	inviterRoles := []string{string(domain.RoleOwner), string(domain.RoleAdmin)}

	// POST /invitations - issuance is an inviter-side admin operation
	createHandler := &InvitationCreateHandler{InvitationService: r.InvitationService}
	r.Mux.Handle("POST /v1/invitations",
		httpx.Chain(createHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyRole(inviterRoles...),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /invitations - listing, same audience as issuance
	listHandler := &InvitationListHandler{InvitationService: r.InvitationService}
	r.Mux.Handle("GET /v1/invitations",
		httpx.Chain(listHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyRole(inviterRoles...),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// DELETE /invitations/{id} - cancellation; the service enforces that the
	// caller is the original inviter
	cancelHandler := &InvitationCancelHandler{InvitationService: r.InvitationService}
	r.Mux.Handle("DELETE /v1/invitations/{id}",
		httpx.Chain(cancelHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyRole(inviterRoles...),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /invitations/{token} - public landing page lookup, strict limit by
	// IP to slow token guessing
	lookupHandler := &InvitationLookupHandler{InvitationService: r.InvitationService}
	r.Mux.Handle("GET /v1/invitations/{token}",
		httpx.Chain(lookupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /invitations/accept - public signup endpoint, strict limit by IP
	acceptHandler := &InvitationAcceptHandler{InvitationService: r.InvitationService}
	r.Mux.Handle("POST /v1/invitations/accept",
		httpx.Chain(acceptHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UserInfoHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/userinfo",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - very strict rate limit by IP (one-time setup endpoint)
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
