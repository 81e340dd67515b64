package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/catalog/internal/domain"
	categoryuc "github.com/kailas-cloud/catalog/internal/usecase/category"
	healthuc "github.com/kailas-cloud/catalog/internal/usecase/health"
	productuc "github.com/kailas-cloud/catalog/internal/usecase/product"
	useruc "github.com/kailas-cloud/catalog/internal/usecase/user"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the catalog HTTP API.
type Server struct {
	products      *productuc.Service
	users         *useruc.Service
	categories    *categoryuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	products *productuc.Service,
	users *useruc.Service,
	categories *categoryuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		products:   products,
		users:      users,
		categories: categories,
		health:     health,
		logger:     logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, codeAlreadyExists),
		sentinelHandler(domain.ErrInvalidProduct, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidFilter, http.StatusBadRequest, codeBadRequest),
	}
	return s
}

// Routes mounts every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.ListProducts)
		r.Post("/", s.CreateProduct)
		r.Get("/facets", s.ProductFacets)
		r.Get("/{id}", s.GetProduct)
	})
	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.ListUsers)
		r.Get("/facets", s.UserFacets)
		r.Get("/{id}", s.GetUser)
	})
	r.Get("/categories", s.ListCategories)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// ListProducts handles GET /products.
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	req, err := bindListRequest(r, s.products.Facets(), s.products.Limits())
	if err != nil {
		s.handleBindError(w, err)
		return
	}

	page, err := s.products.List(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]productResponse, len(page.Items))
	for i, p := range page.Items {
		items[i] = productToResponse(p)
	}
	writeJSON(w, http.StatusOK, newListResponse(items, page.Total, page.Matched, page.ActiveFilters, req))
}

// ProductFacets handles GET /products/facets.
func (s *Server) ProductFacets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, facetsToResponse(s.products.Facets()))
}

// GetProduct handles GET /products/{id}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r)
	if err != nil {
		s.handleBindError(w, err)
		return
	}

	p, err := s.products.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productToResponse(p))
}

// CreateProduct handles POST /products.
func (s *Server) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	p, err := s.products.Create(r.Context(), req.toDraft())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/products/"+p.ID())
	writeJSON(w, http.StatusCreated, productToResponse(p))
}

// ListUsers handles GET /users.
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	req, err := bindListRequest(r, s.users.Facets(), s.users.Limits())
	if err != nil {
		s.handleBindError(w, err)
		return
	}

	page, err := s.users.List(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]userResponse, len(page.Items))
	for i, u := range page.Items {
		items[i] = userToResponse(u)
	}
	writeJSON(w, http.StatusOK, newListResponse(items, page.Total, page.Matched, page.ActiveFilters, req))
}

// UserFacets handles GET /users/facets.
func (s *Server) UserFacets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, facetsToResponse(s.users.Facets()))
}

// GetUser handles GET /users/{id}.
func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := bindID(r)
	if err != nil {
		s.handleBindError(w, err)
		return
	}

	d, err := s.users.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, userDetailResponse{
		userResponse: userToResponse(d.User),
		Permissions:  d.Permissions,
	})
}

// ListCategories handles GET /categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.categories.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]categoryResponse, len(cats))
	for i, c := range cats {
		items[i] = categoryResponse{ID: c.ID(), Name: c.Name(), ProductCount: c.ProductCount()}
	}
	writeJSON(w, http.StatusOK, itemsResponse[categoryResponse]{Items: items})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, healthResponse{Status: string(report.Status), Checks: checks})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a client-facing message without exposing internals.
// Validation errors keep their detail from the sentinel onward.
func safeDomainMessage(err error) string {
	for _, s := range []error{domain.ErrInvalidProduct, domain.ErrInvalidFilter} {
		if !errors.Is(err, s) {
			continue
		}
		msg := err.Error()
		if i := strings.Index(msg, s.Error()); i >= 0 {
			return msg[i:]
		}
		return s.Error()
	}
	for _, s := range []error{domain.ErrNotFound, domain.ErrAlreadyExists} {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

func (s *Server) handleBindError(w http.ResponseWriter, err error) {
	var pe *paramError
	if errors.As(err, &pe) {
		s.logger.Debug("invalid parameter", zap.String("param", pe.name), zap.Error(pe.err))
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid parameter "+pe.name)
		return
	}
	s.handleDomainError(w, err)
}
