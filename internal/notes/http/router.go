package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/aussiebroadwan/notes/pkg/slogx"

	_ "github.com/aussiebroadwan/notes/api/notes" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// APIPrefix is the path every API route is mounted under.
const APIPrefix = "/api/v1"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.Keyring
	verifier     jwtx.Verifier
	cookie       httpx.SessionCookie
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store              store.Store
	AuthService        *service.AuthService
	NoteService        *service.NoteService
	TagService         *service.TagService
	AssociationService *service.AssociationService
}

func NewRouter(
	keys *jwtx.Keyring,
	verifier jwtx.Verifier,
	cookie httpx.SessionCookie,
	allowedOrigins []string,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		cookie:       cookie,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(httpx.CORSOptions(allowedOrigins...)),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerNotes()
	r.registerTags()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Notes Service API
//	@version		0.1.0
//	@description	Note taking backend. Users register or log in, then create, edit, tag, archive, bookmark and delete notes.
//	@description
//	@description	Every API response is an envelope: {"success": bool, "message": string, "data": object|null}.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/notes
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:3000
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	CookieAuth
//	@in							cookie
//	@name						jwt
//	@description				Session token set by register and login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with session authentication and a per-user rate limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.SessionMiddleware(r.verifier, r.cookie),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService, Cookie: r.cookie}

	// Signup and login are password guessing targets - strict limit by IP
	r.Mux.Handle("POST "+APIPrefix+"/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST "+APIPrefix+"/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST "+APIPrefix+"/auth/logout", r.secured(h.HandleLogout, httpx.ModerateLimit))
}

func (r *Router) registerNotes() {
	h := &NotesHandler{NoteService: r.NoteService}

	r.Mux.Handle("GET "+APIPrefix+"/notes/my", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST "+APIPrefix+"/notes/new", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PUT "+APIPrefix+"/notes/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE "+APIPrefix+"/notes/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))

	// More specific than /notes/{id}, so the mux prefers it for DELETE
	r.Mux.Handle("DELETE "+APIPrefix+"/notes/batch-delete", r.secured(h.HandleBatchDelete, httpx.ModerateLimit))
}

func (r *Router) registerTags() {
	h := &TagsHandler{TagService: r.TagService, AssociationService: r.AssociationService}

	r.Mux.Handle("GET "+APIPrefix+"/tags/my", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST "+APIPrefix+"/tags/new", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PUT "+APIPrefix+"/tags/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE "+APIPrefix+"/tags/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))

	r.Mux.Handle("POST "+APIPrefix+"/tags/{noteId}/{tagId}", r.secured(h.HandleAttach, httpx.ModerateLimit))
	r.Mux.Handle("DELETE "+APIPrefix+"/tags/{noteId}/{tagId}", r.secured(h.HandleDetach, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
