package web

import (
	"net/http"
	"strconv"
	"time"

	"ticklist/internal/domain"
	"ticklist/internal/logger"
)

// ServerOptions carries everything the server needs beyond the store.
type ServerOptions struct {
	Logger  *logger.Logger
	Backend string // store backend name, surfaced by /health
	Version string
}

type Server struct {
	store        domain.Store
	router       *http.ServeMux
	handler      http.Handler
	presentation *Presentation
	logger       *logger.Logger
	backend      string
	version      string
	startTime    time.Time
}

func NewServer(store domain.Store, opts ServerOptions) (*Server, error) {
	pres, err := NewPresentation()
	if err != nil {
		return nil, err
	}
	lg := opts.Logger
	if lg == nil {
		lg = logger.New("INFO", nil)
	}
	s := &Server{
		store:        store,
		router:       http.NewServeMux(),
		presentation: pres,
		logger:       lg,
		backend:      opts.Backend,
		version:      opts.Version,
		startTime:    time.Now(),
	}
	s.routes()
	s.handler = loggingMiddleware(lg)(s.router)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() {
	// Static Files (embedded paths already begin with static/)
	s.router.Handle("GET /static/", http.FileServerFS(staticFS))

	// Page Routes
	s.router.HandleFunc("GET /{$}", s.handleIndex)

	// API/HTMX Routes
	s.router.HandleFunc("POST /tasks", s.handleCreateTask)
	s.router.HandleFunc("PATCH /tasks/{id}/toggle", s.handleToggleTask)
	s.router.HandleFunc("DELETE /tasks/{id}", s.handleDeleteTask)

	// Operational Routes
	s.router.HandleFunc("GET /health", s.handleHealth)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.store.ListTasks()
	if err != nil {
		http.Error(w, "Failed to load tasks", http.StatusInternalServerError)
		return
	}
	summary, err := s.store.Summarize()
	if err != nil {
		http.Error(w, "Failed to load summary", http.StatusInternalServerError)
		return
	}

	view := NewPageView(tasks, summary, s.version)
	if err := s.presentation.RenderIndex(w, view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := parseRequestContext(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	task, err := s.store.AddTask(r.FormValue("text"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if task == nil {
		// Whitespace-only text is expected harmless input: nothing was
		// added, nothing re-renders.
		s.logger.Debug("ignored add with empty text")
		s.respondNoOp(w, r, ctx)
		return
	}

	if !ctx.IsHTMX {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// New list item for the form's swap target, counts updated out of band.
	if err := s.presentation.RenderTask(w, NewTaskView(task, false)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.renderSummaryOOB(w)
}

func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	ctx := parseRequestContext(r)
	id := parseTaskID(r)

	task, err := s.store.ToggleTask(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if task == nil {
		s.logger.Debug("ignored toggle for unknown task", map[string]any{
			"task_id": id,
		})
		s.respondNoOp(w, r, ctx)
		return
	}

	if !ctx.IsHTMX {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// Replacement for the toggled list item, counts updated out of band.
	if err := s.presentation.RenderTask(w, NewTaskView(task, false)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.renderSummaryOOB(w)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := parseRequestContext(r)
	id := parseTaskID(r)

	task, err := s.store.DeleteTask(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if task == nil {
		s.logger.Debug("ignored delete for unknown task", map[string]any{
			"task_id": id,
		})
		s.respondNoOp(w, r, ctx)
		return
	}

	if !ctx.IsHTMX {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// Empty swap removes the list item; only the counts come back.
	s.renderSummaryOOB(w)
}

// respondNoOp answers an operation that was silently ignored. HTMX clients
// get 204 so no swap happens; plain requests bounce back to the page.
func (s *Server) respondNoOp(w http.ResponseWriter, r *http.Request, ctx RequestContext) {
	if ctx.IsHTMX {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderSummaryOOB appends an out-of-band counts fragment to a mutation
// response so the page header stays consistent with the list.
func (s *Server) renderSummaryOOB(w http.ResponseWriter) {
	summary, err := s.store.Summarize()
	if err != nil {
		s.logger.Error("failed to summarize after mutation", map[string]any{
			"error": err.Error(),
		})
		return
	}
	if err := s.presentation.RenderSummary(w, NewSummaryView(summary, true)); err != nil {
		s.logger.Error("failed to render summary", map[string]any{
			"error": err.Error(),
		})
	}
}

// parseTaskID reads the {id} path segment. A malformed id behaves like an
// unknown one: the zero value never matches a stored task.
func parseTaskID(r *http.Request) int64 {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
