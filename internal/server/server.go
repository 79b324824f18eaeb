package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/drakos74/ris-channel/internal/api"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	name     string
	port     int
	debug    bool
	block    api.Block
	routes   []Route
	handlers map[string]http.Handler
	once     *sync.Once
	done     chan struct{}
	stopped  chan struct{}
	close    *sync.Once
}

func NewServer(name string, port int) *Server {
	return &Server{
		name:     name,
		port:     port,
		block:    api.NewBlock(),
		routes:   make([]Route, 0),
		handlers: make(map[string]http.Handler),
		once:     new(sync.Once),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
		close:    new(sync.Once),
	}
}

// Debug sets the server to debug mode
func (s *Server) Debug() *Server {
	s.debug = true
	return s
}

// Add adds the given routes to the server
func (s *Server) Add(route ...Route) *Server {
	s.routes = append(s.routes, route...)
	return s
}

// Handle registers a plain http handler, outside the request serialization.
func (s *Server) Handle(pattern string, handler http.Handler) *Server {
	s.handlers[pattern] = handler
	return s
}

func (s *Server) handle(route Route) func(w http.ResponseWriter, r *http.Request) {
	name := route.pattern()
	return func(w http.ResponseWriter, r *http.Request) {
		if route.Action == Root && r.URL.Path != name {
			http.NotFound(w, r)
			return
		}
		if Method(r.Method) != route.Method {
			w.WriteHeader(http.StatusNotImplemented)
			return
		}
		// we should only handle one request per time,
		// the pipeline and the network cells are not re-entrant.
		request := fmt.Sprintf("%s request : %s", route.Method, name)
		select {
		case s.block.Action <- api.NewSignal(request).Create():
		case <-r.Context().Done():
			log.Warn().Str("request", request).Err(r.Context().Err()).Msg("request cancelled while queued")
			s.error(w, fmt.Errorf("request cancelled: %w", r.Context().Err()), http.StatusServiceUnavailable)
			return
		case <-s.done:
			s.error(w, fmt.Errorf("server '%s' is closed", s.name), http.StatusServiceUnavailable)
			return
		}
		defer func() {
			select {
			case s.block.ReAction <- api.NewSignal(request).Create():
			case <-s.done:
			}
		}()
		if s.debug {
			log.Info().
				Str("url", fmt.Sprintf("%+v", r.URL)).
				Str("remote-address", r.RemoteAddr).
				Str("method", r.Method).
				Msg("received request")
		}
		b, code, err := route.Exec(r.Context(), r)
		if err != nil {
			s.error(w, err, code)
			return
		}
		s.respond(w, route.ContentType, b, code)
	}
}

func (s *Server) serialize() {
	defer close(s.stopped)
	for {
		var action api.Signal
		select {
		case action = <-s.block.Action:
		case <-s.done:
			return
		}
		log.Debug().
			Time("time", action.Time).
			Str("action", action.Name).
			Str("id", action.ID).
			Msg("started execution")
		var reaction api.Signal
		select {
		case reaction = <-s.block.ReAction:
		case <-s.done:
			return
		}
		log.Debug().
			Time("time", action.Time).
			Float64("duration", time.Since(action.Time).Seconds()).
			Str("reaction", reaction.Name).
			Msg("completed execution")
	}
}

// Close stops the request serialization.
// Requests arriving after Close are rejected.
func (s *Server) Close() {
	s.close.Do(func() {
		close(s.done)
	})
}

// Handler returns the http handler for all the routes of the server.
func (s *Server) Handler() http.Handler {
	s.once.Do(func() {
		go s.serialize()
	})
	mux := http.NewServeMux()
	for _, route := range s.routes {
		mux.HandleFunc(route.pattern(), s.handle(route))
	}
	for pattern, handler := range s.handlers {
		mux.Handle(pattern, handler)
	}
	return mux
}

// Run starts the server and blocks until the context is done.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),
	}
	defer s.Close()

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Error().Err(err).Str("server", s.name).Msg("could not shut down server")
		}
	}()

	log.Warn().Str("server", s.name).Int("port", s.port).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not start server: %w", err)
	}
	log.Warn().Str("server", s.name).Msg("server stopped")
	return nil
}

func (s *Server) respond(w http.ResponseWriter, contentType string, b []byte, code int) {
	if code == 0 {
		code = http.StatusOK
	}
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(code)
	_, err := w.Write(b)
	if err != nil {
		log.Error().Err(err).Msg("could not write response")
	}
}

func (s *Server) error(w http.ResponseWriter, err error, code int) {
	if code < http.StatusBadRequest {
		code = http.StatusInternalServerError
	}
	log.Error().Err(err).Int("code", code).Msg("error for http request")
	s.respond(w, ContentText, []byte(err.Error()), code)
}

// Live returns the liveness route.
func Live() Route {
	return Route{
		Action: Data,
		Method: GET,
		Exec: func(ctx context.Context, r *http.Request) (payload []byte, code int, err error) {
			return []byte{}, http.StatusOK, nil
		},
	}
}

// Json encodes the value as a json payload.
func Json(v interface{}) ([]byte, int, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("could not encode response: %w", err)
	}
	return b, http.StatusOK, nil
}
