package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"hemis/m/domain"
	"hemis/m/internal/auth"
	"hemis/m/internal/inventory"
	"hemis/m/internal/metrics"
)

// Options are the request defaults and CORS settings taken from config.
type Options struct {
	LowStockThreshold  int64
	ExpiryWindowDays   int
	CORSAllowedOrigins []string
}

// Deps are the collaborators a Handler serves requests through.
type Deps struct {
	Service       *inventory.Service
	Reports       *inventory.Reports
	Authenticator *auth.Authenticator
	Tokens        *auth.TokenIssuer
	Policy        auth.Policy
	Metrics       *metrics.Metrics
	Logger        *zap.Logger
}

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	service       *inventory.Service
	reports       *inventory.Reports
	authenticator *auth.Authenticator
	tokens        *auth.TokenIssuer
	policy        auth.Policy
	metrics       *metrics.Metrics
	logger        *zap.Logger
	opts          Options
}

// New constructs a Handler.
func New(deps Deps, opts Options) *Handler {
	if deps.Policy == nil {
		deps.Policy = auth.DefaultPolicy()
	}
	if opts.LowStockThreshold == 0 {
		opts.LowStockThreshold = inventory.DashboardLowStockThreshold
	}
	if opts.ExpiryWindowDays == 0 {
		opts.ExpiryWindowDays = inventory.DashboardWindowDays
	}
	return &Handler{
		service:       deps.Service,
		reports:       deps.Reports,
		authenticator: deps.Authenticator,
		tokens:        deps.Tokens,
		policy:        deps.Policy,
		metrics:       deps.Metrics,
		logger:        deps.Logger,
		opts:          opts,
	}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	if h.metrics != nil {
		r.Use(h.metrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.opts.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.health)
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.login)

		r.Group(func(pr chi.Router) {
			pr.Use(h.authMiddleware)

			pr.Get("/dashboard/stats", h.dashboardStats)

			pr.Route("/medicines", func(r chi.Router) {
				r.Get("/", h.listMedicines)
				r.Post("/", h.createMedicine)
				r.Get("/low-stock", h.lowStockMedicines)
				r.Get("/expiring", h.expiringMedicines)
				r.Get("/expired", h.expiredMedicines)
				r.Get("/{id}", h.getMedicine)
				r.Put("/{id}", h.updateMedicine)
				r.Delete("/{id}", h.deleteMedicine)
			})

			pr.Route("/equipment", func(r chi.Router) {
				r.Get("/", h.listEquipment)
				r.Post("/", h.createEquipment)
				r.Get("/maintenance-due", h.maintenanceDue)
				r.Get("/{id}", h.getEquipment)
				r.Put("/{id}", h.updateEquipment)
				r.Delete("/{id}", h.deleteEquipment)
			})

			pr.Route("/maintenance", func(r chi.Router) {
				r.Get("/", h.listMaintenance)
				r.Post("/", h.createMaintenance)
				r.Get("/equipment/{equipmentID}", h.maintenanceHistory)
				r.Get("/{id}", h.getMaintenance)
				r.Put("/{id}", h.updateMaintenance)
				r.Delete("/{id}", h.deleteMaintenance)
			})

			pr.Route("/suppliers", func(r chi.Router) {
				r.Get("/", h.listSuppliers)
				r.Post("/", h.createSupplier)
				r.Get("/{id}", h.getSupplier)
				r.Put("/{id}", h.updateSupplier)
				r.Delete("/{id}", h.deleteSupplier)
			})

			pr.Route("/orders", func(r chi.Router) {
				r.Get("/", h.listOrders)
				r.Post("/", h.createOrder)
				r.Get("/{id}", h.getOrder)
				r.Put("/{id}", h.updateOrder)
				r.Delete("/{id}", h.deleteOrder)
			})

			pr.Route("/users", func(r chi.Router) {
				r.Get("/", h.listUsers)
				r.Post("/", h.createUser)
				r.Get("/{id}", h.getUser)
				r.Put("/{id}", h.updateUser)
				r.Delete("/{id}", h.deleteUser)
				r.Patch("/{id}/toggle-active", h.toggleUserActive)
			})
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Helpers

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError translates a service error into its HTTP status.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrDuplicateKey):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		respondError(w, http.StatusForbidden, "insufficient permissions")
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrAccountInactive):
		respondError(w, http.StatusUnauthorized, "invalid username or password")
	default:
		h.logger.Error("request failed",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// pathID parses the {id} parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := idParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}

func intQuery(r *http.Request, key string, defaultValue int64) (int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return n, nil
}

func respondDeleted(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}
