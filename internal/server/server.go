package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/staffing-engine/internal/db"
	"github.com/jonathan/staffing-engine/internal/llm"
	"github.com/jonathan/staffing-engine/internal/matching"
	"github.com/jonathan/staffing-engine/internal/planner"
	"github.com/jonathan/staffing-engine/internal/reasoner"
	"github.com/jonathan/staffing-engine/internal/types"
)

// Store is the persistence surface the handlers depend on. *db.DB
// implements it; tests substitute a fake.
type Store interface {
	CreateProject(ctx context.Context, p *types.Project) (uuid.UUID, error)
	GetProject(ctx context.Context, id uuid.UUID) (*types.Project, error)
	UpdateProjectTasks(ctx context.Context, id uuid.UUID, tasks []types.Task) error
	ApplyReconciliation(ctx context.Context, id uuid.UUID, tasks []types.Task, assignedTeam []string, notifications []types.Notification) error
	SetAssignedTeam(ctx context.Context, id uuid.UUID, team []string) error
	ListCandidates(ctx context.Context) ([]types.Candidate, error)
	ListNotifications(ctx context.Context, employeeID string) ([]types.Notification, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      Store
	engine     *matching.Engine
	planner    *planner.Planner
	llmClient  llm.Client
	database   *db.DB
}

// Config holds server configuration
type Config struct {
	Addr        string
	DatabaseURL string
	APIKey      string
	Model       string // override for the standard-tier LLM model
	LLMTimeout  time.Duration
}

// New creates a new server instance. An empty APIKey disables the LLM
// collaborator; planning and matching then always take the deterministic
// fallback branch.
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var client llm.Client
	if cfg.APIKey != "" {
		client, err = llm.NewClient(context.Background(), llmConfig(cfg.Model), cfg.APIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	}

	s := newServer(database, client, cfg.LLMTimeout)
	s.database = database

	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // LLM-backed endpoints can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// llmConfig applies an optional standard-tier model override to the
// default LLM configuration.
func llmConfig(model string) *llm.Config {
	cfg := llm.DefaultConfig()
	if model != "" {
		cfg = cfg.WithModel(llm.TierStandard, model)
	}
	return cfg
}

// newServer wires the engine components around a store. Used directly by
// tests to avoid a database connection.
func newServer(store Store, client llm.Client, llmTimeout time.Duration) *Server {
	var scorer matching.Scorer
	var plan *planner.Planner
	if client != nil {
		var reasonerOpts []reasoner.Option
		var plannerOpts []planner.Option
		if llmTimeout > 0 {
			reasonerOpts = append(reasonerOpts, reasoner.WithTimeout(llmTimeout))
			plannerOpts = append(plannerOpts, planner.WithTimeout(llmTimeout))
		}
		scorer = reasoner.New(client, reasonerOpts...)
		plan = planner.New(client, plannerOpts...)
	} else {
		plan = planner.New(nil)
	}

	return &Server{
		store:     store,
		engine:    matching.NewEngine(scorer),
		planner:   plan,
		llmClient: client,
	}
}

// routes builds the request router
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealthz)

	mux.HandleFunc("POST /projects", s.handleCreateProject)
	mux.HandleFunc("GET /projects/{id}", s.handleGetProject)
	mux.HandleFunc("POST /projects/{id}/plan", s.handlePlanProject)
	mux.HandleFunc("POST /projects/{id}/match", s.handleMatchProject)
	mux.HandleFunc("POST /projects/{id}/team/select", s.handleSelectTeam)
	mux.HandleFunc("POST /projects/{id}/reconcile", s.handleReconcile)
	mux.HandleFunc("GET /projects/{id}/health", s.handleProjectHealth)

	mux.HandleFunc("GET /candidates", s.handleListCandidates)
	mux.HandleFunc("GET /employees/{id}/notifications", s.handleListNotifications)
	mux.HandleFunc("POST /notifications/{id}/read", s.handleMarkNotificationRead)

	return mux
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
