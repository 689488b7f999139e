package http

import (
	"net/http"

	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router                  *mux.Router
	doctorHandler           *handler.DoctorHandler
	directoryPageHandler    *handler.DirectoryPageHandler
	corsMiddleware          *middleware.CORSMiddleware
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	directoryPageHandler *handler.DirectoryPageHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		doctorHandler:           doctorHandler,
		directoryPageHandler:    directoryPageHandler,
		corsMiddleware:          corsMiddleware,
		requestLoggerMiddleware: requestLoggerMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Directory page
	r.router.HandleFunc("/", r.directoryPageHandler.Show).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctor directory (public, read-only)
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/doctors/suggestions", r.doctorHandler.SuggestDoctors).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/specialties", r.doctorHandler.ListSpecialties).Methods(http.MethodGet, http.MethodOptions)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.MethodNotAllowed(w)
	})

	r.router.Use(r.requestLoggerMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
