package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-kit/internal/access"
	"github.com/MKhiriev/go-rest-kit/internal/format"
	"github.com/MKhiriev/go-rest-kit/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Action names shared by the API and web controllers.
const (
	actionRegister = "register"
	actionLogin    = "login"
	actionLogout   = "logout"
	actionMe       = "me"
	actionVersion  = "version"
)

var (
	verbsGet    = []string{http.MethodGet}
	verbsPost   = []string{http.MethodPost}
	verbsUpdate = []string{http.MethodPut, http.MethodPatch}
	verbsDelete = []string{http.MethodDelete}
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.errors.Recoverer)
	router.Use(h.withGZip)

	// bearer token API
	api := h.apiController()
	router.Route("/api", func(r chi.Router) {
		api.Mount(r, "/version", Action{Name: actionVersion, Verbs: verbsGet, Run: h.getServerVersion})

		api.Mount(r, "/auth/register", Action{Name: actionRegister, Verbs: verbsPost, Run: h.register})
		api.Mount(r, "/auth/login", Action{Name: actionLogin, Verbs: verbsPost, Run: h.login})
		api.Mount(r, "/auth/me", Action{Name: actionMe, Verbs: verbsGet, Run: h.me})

		api.Mount(r, "/articles",
			Action{Name: service.ActionIndex, Verbs: verbsGet, Run: h.listArticles},
			Action{Name: service.ActionCreate, Verbs: verbsPost, Run: h.createArticle},
		)
		api.Mount(r, "/articles/{id}",
			Action{Name: service.ActionView, Verbs: verbsGet, Run: h.viewArticle},
			Action{Name: service.ActionUpdate, Verbs: verbsUpdate, Run: h.updateArticle},
			Action{Name: service.ActionDelete, Verbs: verbsDelete, Run: h.deleteArticle},
		)
	})

	// cookie session pages
	web := h.webController()
	router.Route("/web", func(r chi.Router) {
		web.Mount(r, "/auth/login", Action{Name: actionLogin, Verbs: verbsPost, Run: h.sessionLogin})
		web.Mount(r, "/auth/logout", Action{Name: actionLogout, Verbs: verbsPost, Run: h.sessionLogout})

		web.Mount(r, "/articles",
			Action{Name: service.ActionIndex, Verbs: verbsGet, Run: h.listArticles},
			Action{Name: service.ActionCreate, Verbs: verbsPost, Run: h.createArticle},
		)
		web.Mount(r, "/articles/{id}",
			Action{Name: service.ActionView, Verbs: verbsGet, Run: h.viewArticle},
		)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.CheckHTTPMethod(router))

	return router
}

func (h *Handler) apiController() *Controller {
	return NewController(ControllerOptions{
		Access: access.Options{
			EnableBearerAuth: true,
			Optional:         []string{actionVersion, actionRegister, actionLogin, service.ActionIndex, service.ActionView},
		},
		Bearer:     h.services.AuthService,
		Checker:    h.services.ArticleService,
		Formats:    h.apiFormats(),
		Serializer: h.serializerOptions(),
		Limiter:    h.limiter,
		Errors:     h.errors,
	})
}

func (h *Handler) webController() *Controller {
	return NewController(ControllerOptions{
		Access: access.Options{
			Optional: []string{actionLogin, service.ActionIndex, service.ActionView},
		},
		Session:    h.services.AuthService,
		Checker:    h.services.ArticleService,
		Formats:    []format.Format{format.HTML, format.JSON},
		Serializer: h.serializerOptions(),
		Limiter:    h.limiter,
		Errors:     h.errors,
	})
}
