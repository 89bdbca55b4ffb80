package app

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/vk/nutshell/internal/catalog"
	"github.com/vk/nutshell/internal/host"
	"github.com/vk/nutshell/internal/presenter"
	"github.com/vk/nutshell/internal/unit"
	"github.com/vk/nutshell/internal/view"
)

// stage is a Host together with the Loop that drives it.
type stage struct {
	loop *host.Loop
	host *host.Host
}

func newStage(ctx context.Context, a *App, name string) *stage {
	loop := host.NewLoop(ctx)
	go loop.Run()
	return &stage{loop: loop, host: host.New(name, loop, a.logger)}
}

// do runs fn on the stage's loop and returns its error.
func (s *stage) do(fn func(h *host.Host) error) error {
	var err error
	if lerr := s.loop.Do(func() { err = fn(s.host) }); lerr != nil {
		return lerr
	}
	return err
}

// Server is the web surface: the catalog browser, the presentation driver
// and the presenter hub. The deck and the catalog have their own hosts, so
// the same example shown in both has two independent instances.
type Server struct {
	app     *App
	hub     *presenter.Hub
	catalog *stage
	deck    *stage
	mux     *http.ServeMux
}

// NewServer creates the web surface. Its loops stop when ctx is done.
func NewServer(ctx context.Context, a *App) *Server {
	s := &Server{
		app:     a,
		hub:     presenter.NewHub(a.logger),
		catalog: newStage(ctx, a, "catalog"),
		deck:    newStage(ctx, a, "deck"),
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /health", s.healthHandler)
	s.mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/stories/", http.StatusFound)
	})
	s.mux.HandleFunc("GET /stories/{$}", s.storiesIndex)
	s.mux.HandleFunc("GET /stories/{id}", s.showStory)
	s.mux.HandleFunc("POST /stories/{id}", s.actOnStory)
	s.mux.HandleFunc("GET /deck/{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, stepPath(1), http.StatusFound)
	})
	s.mux.HandleFunc("GET /deck/{n}", s.showStep)
	s.mux.HandleFunc("POST /deck/{n}", s.actOnStep)
	s.mux.Handle("/socket.io/", s.hub.Handler())
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Hub returns the presenter hub.
func (s *Server) Hub() *presenter.Hub { return s.hub }

// Close disconnects presenter followers.
func (s *Server) Close() { s.hub.Close() }

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.app.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (s *Server) storiesIndex(w http.ResponseWriter, r *http.Request) {
	first, ok := s.app.catalog.First()
	if !ok {
		http.Error(w, "no stories registered", http.StatusNotFound)
		return
	}
	s.renderStory(w, first)
}

func (s *Server) story(w http.ResponseWriter, r *http.Request) (*catalog.Story, bool) {
	st, ok := s.app.catalog.Lookup(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
	}
	return st, ok
}

func (s *Server) showStory(w http.ResponseWriter, r *http.Request) {
	if st, ok := s.story(w, r); ok {
		s.renderStory(w, st)
	}
}

// renderStory selects st, unmounting whatever story was selected before.
func (s *Server) renderStory(w http.ResponseWriter, st *catalog.Story) {
	var v view.Node
	err := s.catalog.do(func(h *host.Host) error {
		h.UnmountExcept(st.ID)
		h.Mount(st.ID, st.Example)
		var err error
		v, err = h.Render(st.ID)
		return err
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writePage(w, storyPage(s.app.Title(), s.app.catalog, st, v))
}

func (s *Server) actOnStory(w http.ResponseWriter, r *http.Request) {
	st, ok := s.story(w, r)
	if !ok {
		return
	}
	actions, err := formActions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	err = s.catalog.do(func(h *host.Host) error {
		h.UnmountExcept(st.ID)
		h.Mount(st.ID, st.Example)
		_, err := h.Dispatch(st.ID, actions...)
		return err
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	http.Redirect(w, r, storyPath(st.ID), http.StatusSeeOther)
}

// stepNumber parses the 1-based step number of the request.
func (s *Server) stepNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil || n < 1 || n > len(s.app.deck) {
		http.NotFound(w, r)
		return 0, false
	}
	return n, true
}

func stepKey(n int) string { return "step-" + strconv.Itoa(n) }

func (s *Server) showStep(w http.ResponseWriter, r *http.Request) {
	n, ok := s.stepNumber(w, r)
	if !ok {
		return
	}
	step := s.app.deck[n-1]
	key := stepKey(n)

	var v *view.Node
	err := s.deck.do(func(h *host.Host) error {
		h.UnmountExcept(key)
		if !step.HasExample() {
			h.UnmountAll()
			return nil
		}
		h.Mount(key, step.Example)
		node, err := h.Render(key)
		v = &node
		return err
	})
	if err != nil {
		s.fail(w, err)
		return
	}

	var body string
	if v != nil {
		body = view.String(*v)
	}
	s.hub.Publish(presenter.NewFrame(n-1, len(s.app.deck), step, body))
	s.writePage(w, stepPage(s.app.Title(), n, len(s.app.deck), step, v))
}

func (s *Server) actOnStep(w http.ResponseWriter, r *http.Request) {
	n, ok := s.stepNumber(w, r)
	if !ok {
		return
	}
	step := s.app.deck[n-1]
	if !step.HasExample() {
		http.Redirect(w, r, stepPath(n), http.StatusSeeOther)
		return
	}
	actions, err := formActions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	key := stepKey(n)
	err = s.deck.do(func(h *host.Host) error {
		h.UnmountExcept(key)
		h.Mount(key, step.Example)
		_, err := h.Dispatch(key, actions...)
		return err
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	http.Redirect(w, r, stepPath(n), http.StatusSeeOther)
}

// formActions translates a submitted unit form into actions: edited inputs
// first, in field order, then the pressed button.
func formActions(r *http.Request) ([]unit.Action, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("malformed form: %w", err)
	}
	var fields []string
	for k := range r.PostForm {
		if strings.HasPrefix(k, view.FieldInputPrefix) {
			fields = append(fields, k)
		}
	}
	sort.Strings(fields)

	actions := make([]unit.Action, 0, len(fields)+1)
	for _, k := range fields {
		actions = append(actions, unit.Action{
			Name:  strings.TrimPrefix(k, view.FieldInputPrefix),
			Value: r.PostForm.Get(k),
		})
	}
	if v := r.PostForm.Get(view.FieldAction); v != "" {
		name, arg := view.DecodeAction(v)
		actions = append(actions, unit.Action{Name: name, Value: arg})
	}
	return actions, nil
}

func (s *Server) writePage(w http.ResponseWriter, n view.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.RenderDocument(w, n); err != nil {
		s.app.logger.Error("Failed to write page.", "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.app.logger.Error("Request failed.", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
