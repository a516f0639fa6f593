package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/staffing-engine/internal/health"
	"github.com/jonathan/staffing-engine/internal/matching"
	"github.com/jonathan/staffing-engine/internal/reconcile"
	"github.com/jonathan/staffing-engine/internal/selection"
	"github.com/jonathan/staffing-engine/internal/types"
)

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req types.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	project := &types.Project{
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		TeamSize:       req.TeamSize,
		Priority:       req.Priority,
		Status:         types.ProjectDraft,
	}
	if req.Deadline != "" {
		deadline, err := parseDeadline(req.Deadline)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid deadline: "+err.Error())
			return
		}
		project.Deadline = &deadline
	}

	id, err := s.store.CreateProject(r.Context(), project)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, project)
}

func (s *Server) handlePlanProject(w http.ResponseWriter, r *http.Request) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}

	plan := s.planner.Decompose(r.Context(), project, time.Now().UTC())

	if err := s.store.UpdateProjectTasks(r.Context(), project.ID, plan.Tasks); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, plan)
}

func (s *Server) handleMatchProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	// Project and candidate pool load independently
	var (
		project    *types.Project
		candidates []types.Candidate
	)
	g, gCtx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		project, err = s.store.GetProject(gCtx, id)
		return err
	})
	g.Go(func() error {
		var err error
		candidates, err = s.store.ListCandidates(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if project == nil {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}

	result, err := s.engine.ScoreAndMatch(r.Context(), project, candidates, project.Tasks)
	if err != nil {
		if err == matching.ErrNoCandidates {
			s.errorResponse(w, http.StatusUnprocessableEntity, "No candidates available for matching")
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleSelectTeam(w http.ResponseWriter, r *http.Request) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}

	var req types.SelectTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	mode := selection.Mode(req.Mode)
	if mode == "" {
		mode = selection.ModeAuto
	}
	result, err := selection.SelectTeam(req.Matches, selection.Options{
		TeamSize:  req.TeamSize,
		Mode:      mode,
		LockedIDs: req.LockedIDs,
		Priority:  req.Priority,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.store.SetAssignedTeam(r.Context(), project.ID, result.CandidateIDs()); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleReconcile(w http.ResponseWriter, r *http.Request) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}

	var req types.ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	pool, err := s.store.ListCandidates(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	result := reconcile.Apply(project.Tasks, req.Tasks, req.Assignments, pool)
	notifications := reconcile.BuildNotifications(project.ID, project.Title, result)

	if err := s.store.ApplyReconciliation(r.Context(), project.ID, result.Tasks, result.AssignedTeam, notifications); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleProjectHealth(w http.ResponseWriter, r *http.Request) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}

	report := health.Evaluate(project.Tasks, project.Deadline, project.CreatedAt, time.Now().UTC())
	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.store.ListCandidates(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidates == nil {
		candidates = []types.Candidate{}
	}
	s.jsonResponse(w, http.StatusOK, candidates)
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	employeeID := r.PathValue("id")
	if employeeID == "" {
		s.errorResponse(w, http.StatusBadRequest, "Employee ID is required")
		return
	}

	notifications, err := s.store.ListNotifications(r.Context(), employeeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if notifications == nil {
		notifications = []types.Notification{}
	}
	s.jsonResponse(w, http.StatusOK, notifications)
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid notification ID")
		return
	}

	if err := s.store.MarkNotificationRead(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "read"})
}

// loadProject fetches the project named by the {id} path value, writing
// the error response itself when the id is invalid or unknown.
func (s *Server) loadProject(w http.ResponseWriter, r *http.Request) (*types.Project, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid project ID")
		return nil, false
	}

	project, err := s.store.GetProject(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if project == nil {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return nil, false
	}
	return project, true
}

// parseDeadline accepts RFC 3339 timestamps and bare dates
func parseDeadline(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
