package http

import (
	"net/http"

	"smilehub-server/internal/delivery/http/handler"
	"smilehub-server/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	authHandler    *handler.AuthHandler
	patientHandler *handler.PatientHandler
	xrayHandler    *handler.XrayHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	xrayHandler *handler.XrayHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		authHandler:    authHandler,
		patientHandler: patientHandler,
		xrayHandler:    xrayHandler,
		healthHandler:  healthHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health checks (public)
	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)
	api.HandleFunc("/ai-service/health", r.xrayHandler.ServiceHealth).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentTenant).Methods(http.MethodGet)

	// Patient records (protected, tenant-scoped)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.HandleFunc("", r.patientHandler.List).Methods(http.MethodGet)
	patients.HandleFunc("", r.patientHandler.Create).Methods(http.MethodPost)
	patients.HandleFunc("/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)
	// Pristine copy for client-side revert, same read as Get.
	patients.HandleFunc("/{id}/original", r.patientHandler.Get).Methods(http.MethodGet)
	patients.HandleFunc("/{id}/images/{index}", r.patientHandler.ReplaceImage).Methods(http.MethodPut)
	patients.HandleFunc("/{id}/images/{index}", r.patientHandler.DeleteImage).Methods(http.MethodDelete)

	// X-ray analysis boundary (protected)
	xray := api.PathPrefix("/analyze-xray").Subrouter()
	xray.Use(r.authMiddleware.Authenticate)
	xray.HandleFunc("", r.xrayHandler.Analyze).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}
