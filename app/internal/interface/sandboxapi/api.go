// Package sandboxapi serves a local copy of the remote admin API for
// development and tests.
package sandboxapi

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	domproduct "example.com/catalog-console/app/internal/domain/product"
	domuser "example.com/catalog-console/app/internal/domain/user"
	"example.com/catalog-console/app/internal/infra/logging"
	authuc "example.com/catalog-console/app/internal/usecase/auth"
	productuc "example.com/catalog-console/app/internal/usecase/product"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Pinger is implemented by stores that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type API struct {
	authSvc    *authuc.Service
	productSvc *productuc.Service
	store      Pinger
	apiPath    string
	validator  *validator.Validate
	logger     *zap.Logger
}

type Dependencies struct {
	AuthService    *authuc.Service
	ProductService *productuc.Service
	// Store is optional; without it /health only reports the process.
	Store   Pinger
	APIPath string
	Logger  *zap.Logger
}

func NewAPI(deps Dependencies) *API {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	logger := deps.Logger
	if logger == nil {
		logger = zap.L()
	}
	return &API{
		authSvc:    deps.AuthService,
		productSvc: deps.ProductService,
		store:      deps.Store,
		apiPath:    strings.Trim(deps.APIPath, "/"),
		validator:  validate,
		logger:     logger,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(logging.AccessLog(a.logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", a.handleHealth)
	r.Post("/admin/signin", a.handleSignIn)
	r.Post("/logout", a.handleLogout)

	r.Group(func(pr chi.Router) {
		pr.Use(a.authMiddleware)
		pr.Post("/api/user/check", a.handleCheck)

		pr.Route("/api/"+a.apiPath+"/admin", func(admin chi.Router) {
			admin.Get("/products", a.handleListProducts)
			admin.Post("/product", a.handleCreateProduct)
			admin.Put("/product/{id}", a.handleUpdateProduct)
			admin.Delete("/product/{id}", a.handleDeleteProduct)
		})
	})

	return r
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	if a.store != nil {
		if err := a.store.Ping(r.Context()); err != nil {
			a.logger.Error("store ping failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeAndValidate reads a JSON body into dst. Validation failures are
// returned as validator.ValidationErrors.
func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errMalformedBody
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// envelope is the response shape shared by every endpoint. Message is a
// string or, for validation failures, a list of strings.
type envelope struct {
	Success bool `json:"success"`
	Message any  `json:"message,omitempty"`
}

func respondOK(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: message})
}

func respondError(w http.ResponseWriter, status int, message any) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

var errMalformedBody = errors.New("malformed request body")

// validationMessages renders validator errors one message per field.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			out = append(out, field+" is required")
		case "gte":
			out = append(out, field+" must be at least "+fe.Param())
		case "max":
			out = append(out, field+" allows at most "+fe.Param()+" items")
		case "oneof":
			out = append(out, field+" must be one of "+fe.Param())
		default:
			out = append(out, field+" is invalid")
		}
	}
	return out
}

func (a *API) handleRequestError(w http.ResponseWriter, err error) {
	if errors.Is(err, errMalformedBody) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondError(w, http.StatusBadRequest, validationMessages(err))
}

func (a *API) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, domproduct.ErrMissingProductID),
		errors.Is(err, domproduct.ErrTooManyImages):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domuser.ErrInvalidCredential):
		respondError(w, http.StatusBadRequest, "Sign in failed")
	case errors.Is(err, domuser.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "Please sign in again")
	default:
		a.logger.Error("sandbox request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal error")
	}
}
