// Package server exposes a previously saved calendar week over HTTP: the raw
// JSON for tooling and a rendered day × time grid for browsers.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/mhofbauer/venue-calendar/internal/logger"
	"github.com/mhofbauer/venue-calendar/internal/storage"
)

// CalendarHandler serves a saved week from storage.
type CalendarHandler struct {
	store    *storage.Storage
	filename string
}

// NewCalendarHandler creates a handler reading weeks from store.
func NewCalendarHandler(store *storage.Storage, filename string) *CalendarHandler {
	return &CalendarHandler{store: store, filename: filename}
}

// GetCalendar serves the saved week JSON, the same structure the
// aggregation run writes to disk.
func (h *CalendarHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	week, err := h.store.LoadWeek(h.filename)
	if err != nil {
		logger.Error("Loading week for viewer failed", logger.Fields{"file": h.filename}, err)
		http.Error(w, "calendar data not found; run an aggregation first", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(week); err != nil {
		logger.Error("Encoding calendar response failed", nil, err)
	}
}

// GetViewer renders the week as an HTML day × time grid.
func (h *CalendarHandler) GetViewer(w http.ResponseWriter, r *http.Request) {
	week, err := h.store.LoadWeek(h.filename)
	if err != nil {
		http.Error(w, "calendar data not found; run an aggregation first", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderViewer(w, week); err != nil {
		logger.Error("Rendering viewer failed", nil, err)
	}
}

// Ping is a liveness endpoint.
func (h *CalendarHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

// Router wires the viewer routes.
type Router struct {
	handler   *CalendarHandler
	muxRouter *mux.Router
}

// NewRouter creates a router for the viewer endpoints.
func NewRouter(handler *CalendarHandler, muxRouter *mux.Router) *Router {
	return &Router{handler: handler, muxRouter: muxRouter}
}

// RegisterRoutes attaches the viewer routes to the mux router.
func (r *Router) RegisterRoutes() {
	r.muxRouter.HandleFunc("/api/calendar", r.handler.GetCalendar).Methods("GET")
	r.muxRouter.HandleFunc("/ping", r.handler.Ping).Methods("GET")
	r.muxRouter.HandleFunc("/", r.handler.GetViewer).Methods("GET")
}

// Server runs the viewer until interrupted.
type Server struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

// NewServer creates a viewer server listening on addr.
func NewServer(router *Router, muxRouter *mux.Router, addr string) *Server {
	return &Server{router: router, muxRouter: muxRouter, addr: addr}
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errs := make(chan error, 1)
	go func() {
		logger.Info("Viewer listening", logger.Fields{"addr": s.addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
	}()

	select {
	case err := <-errs:
		return err
	case <-stop:
	}

	logger.Info("Shutting down viewer", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
