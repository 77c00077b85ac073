// Package http serves the admin console: the login view, the product
// table and the product dialog, rendered on the server.
package http

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	domproduct "example.com/catalog-console/app/internal/domain/product"
	"example.com/catalog-console/app/internal/infra/logging"
	"example.com/catalog-console/app/internal/usecase/console"
)

//go:embed templates/*.html
var templateFS embed.FS

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Web struct {
	backend      console.Backend
	validator    *validator.Validate
	templates    *template.Template
	cookieSecure bool
	logger       *zap.Logger
}

type Dependencies struct {
	Backend      console.Backend
	CookieSecure bool
	Logger       *zap.Logger
}

func NewWeb(deps Dependencies) (*Web, error) {
	tmpl, err := template.New("console").Funcs(template.FuncMap{
		"listURL":     listURL,
		"filterQuery": filterQuery,
		"pageFilter":  pageFilter,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.L()
	}
	return &Web{
		backend:      deps.Backend,
		validator:    validator.New(),
		templates:    tmpl,
		cookieSecure: deps.CookieSecure,
		logger:       logger,
	}, nil
}

func (a *Web) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(logging.AccessLog(a.logger))
	r.Use(chimw.Recoverer)
	r.Use(a.sessionMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/", a.handleIndex)
	r.Post("/login", a.handleLogin)
	r.Post("/logout", a.handleLogout)

	r.Route("/products", func(pr chi.Router) {
		pr.Get("/new", a.handleOpenCreate)
		pr.Get("/{id}/edit", a.handleOpenEdit)
		pr.Get("/{id}/delete", a.handleOpenDelete)
	})
	r.Post("/modal", a.handleModal)

	return r
}

// newConsole builds the per-request console state. The product page and
// category come from the query string or, for form posts, from the
// filter_* fields.
func (a *Web) newConsole(r *http.Request) *console.Console {
	return console.New(a.backend, filterFrom(r), a.validator)
}

func filterFrom(r *http.Request) domproduct.ListFilter {
	page := r.URL.Query().Get("page")
	category := r.URL.Query().Get("category")
	if r.Method == http.MethodPost {
		page = r.PostFormValue("filter_page")
		category = r.PostFormValue("filter_category")
	}
	return domproduct.ListFilter{Page: cast.ToInt(page), Category: category}
}

// listURL is the product table location for filter.
func listURL(filter domproduct.ListFilter) string {
	return "/" + filterQuery(filter)
}

// filterQuery renders filter as a query string with its leading "?", or
// "" for the first unfiltered page.
func filterQuery(filter domproduct.ListFilter) string {
	q := url.Values{}
	if filter.Page > 1 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// pageFilter is the filter for the page delta steps away from p.
func pageFilter(p *domproduct.Pagination, delta int) domproduct.ListFilter {
	return domproduct.ListFilter{Page: p.CurrentPage + delta, Category: p.Category}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}
