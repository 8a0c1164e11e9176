package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"talenthub/internal/repository"
	"talenthub/internal/service"
	"talenthub/internal/transport/rest/handler"
	"talenthub/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	AssessmentService *service.AssessmentService
	SubmissionService *service.SubmissionService
	CandidateService  *service.CandidateService
	JobRepo           repository.JobRepo
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService, c.SubmissionService)
	jobHandler := handler.NewJobHandler(c.JobRepo)
	candidateHandler := handler.NewCandidateHandler(c.CandidateService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Candidates submit assessments without an HR token.
	v1.HandleFunc("/assessments/{jobId}/submit", assessmentHandler.Submit).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// HR routes (require HR auth)
	hrRoutes := v1.NewRoute().Subrouter()
	hrRoutes.Use(authMW.RequireHR)

	hrRoutes.HandleFunc("/jobs", jobHandler.List).Methods("GET", "OPTIONS")
	hrRoutes.HandleFunc("/jobs/{jobId}", jobHandler.Get).Methods("GET", "OPTIONS")
	hrRoutes.HandleFunc("/jobs/{jobId}/candidates", candidateHandler.ListByJob).Methods("GET", "OPTIONS")

	hrRoutes.HandleFunc("/assessments/{jobId}", assessmentHandler.Get).Methods("GET", "OPTIONS")
	hrRoutes.HandleFunc("/assessments/{jobId}", assessmentHandler.Save).Methods("PUT", "OPTIONS")
	hrRoutes.HandleFunc("/assessments/{jobId}", assessmentHandler.Delete).Methods("DELETE", "OPTIONS")

	hrRoutes.HandleFunc("/candidates/{candidateId}", candidateHandler.Get).Methods("GET", "OPTIONS")
	hrRoutes.HandleFunc("/candidates/{candidateId}/stage", candidateHandler.ChangeStage).Methods("PATCH", "OPTIONS")
	hrRoutes.HandleFunc("/candidates/{candidateId}/notes", candidateHandler.Notes).Methods("GET", "OPTIONS")
	hrRoutes.HandleFunc("/candidates/{candidateId}/notes", candidateHandler.AddNote).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
