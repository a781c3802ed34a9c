// Package web provides a simple web chat UI for stackadvisor.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/metalagman/stackadvisor/internal/advisor"
	"github.com/metalagman/stackadvisor/internal/session"
)

const sessionCookie = "stackadvisor_session"

// Orchestrator runs one pipeline turn for a session.
type Orchestrator interface {
	HandleTurn(ctx context.Context, sess *session.Session, userQuery string) advisor.Result
}

// Server provides the web UI handlers and state.
type Server struct {
	sessions *session.Manager
	orch     Orchestrator
}

// NewServer creates a new web server.
func NewServer(sessions *session.Manager, orch Orchestrator) (*Server, error) {
	return &Server{sessions: sessions, orch: orch}, nil
}

//go:embed templates/*.html
var templatesFS embed.FS

// Routes returns the router for the web UI.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("POST /details", s.handleDetails)
	mux.HandleFunc("POST /turn", s.handleTurn)
	mux.HandleFunc("POST /clear", s.handleClear)
	return mux
}

type pageData struct {
	Details    advisor.ProjectDetails
	AppTypes   []string
	Skills     []string
	Budgets    []string
	Timelines  []string
	Scales     []string
	Transcript []advisor.Turn
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)

	tmpl, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := pageData{
		Details:    sess.Details,
		AppTypes:   advisor.AppTypes,
		Skills:     advisor.SkillVocabulary,
		Budgets:    []string{advisor.BudgetLow, advisor.BudgetMedium, advisor.BudgetHigh},
		Timelines:  []string{advisor.TimelineVeryShort, advisor.TimelineShort, advisor.TimelineMedium, advisor.TimelineLong},
		Scales:     []string{advisor.ScalabilityLow, advisor.ScalabilityMedium, advisor.ScalabilityHigh, advisor.ScalabilityVeryHigh},
		Transcript: sess.Transcript,
	}
	if err := tmpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleDetails binds the project-details form onto the session snapshot.
func (s *Server) handleDetails(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	details := advisor.ProjectDetails{
		ProjectDescription: strings.TrimSpace(r.PostForm.Get("project_description")),
		AppType:            r.PostForm.Get("app_type"),
		TeamSkills:         r.PostForm["team_skills"],
		Budget:             r.PostForm.Get("budget"),
		Timeline:           r.PostForm.Get("timeline"),
		ScalabilityNeeds:   r.PostForm.Get("scalability_needs"),
	}
	if details.TeamSkills == nil {
		details.TeamSkills = []string{}
	}
	if err := details.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess.Details = details
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := strings.TrimSpace(r.PostForm.Get("query"))
	s.orch.HandleTurn(r.Context(), sess, query)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleClear empties the conversation history; project details stay.
func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	sess.ClearHistory()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// sessionFor resolves the caller's session from the cookie, creating one
// on first contact.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) *session.Session {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if sess, ok := s.sessions.Get(cookie.Value); ok {
			return sess
		}
	}

	sess := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
	})
	log.Debug().Str("session_id", sess.ID).Msg("created web session")
	return sess
}
