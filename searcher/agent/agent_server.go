package agent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"teeko/game"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type moveRequest struct {
	Board [][]string `json:"board"`
}

type moveResponse struct {
	Move    [][2]int `json:"move"`
	Piece   string   `json:"piece"`
	Session string   `json:"session"`
}

type sessionResponse struct {
	Piece    string `json:"piece"`
	Opponent string `json:"opponent"`
	Session  string `json:"session"`
}

// NewHandler exposes session over HTTP:
//
//	POST /ai-move  {"board": [[...]]} -> {"move": [[r,c]] | [[toR,toC],[fromR,fromC]]}
//	GET  /session  -> the colours played by the engine and its opponent
func NewHandler(session *Session) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Post("/ai-move", func(w http.ResponseWriter, r *http.Request) {
		var payload moveRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload: " + err.Error()})
			return
		}

		move, err := session.MakeMove(payload.Board)
		if err != nil {
			writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, moveResponse{
			Move:    move,
			Piece:   session.Piece().Marker(),
			Session: session.ID(),
		})
	})

	r.Get("/session", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sessionResponse{
			Piece:    session.Piece().Marker(),
			Opponent: session.Opponent().Marker(),
			Session:  session.ID(),
		})
	})

	return r
}

// StartAgentServer serves session on addr until ctx is cancelled.
func StartAgentServer(ctx context.Context, addr string, session *Session) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           NewHandler(session),
		ReadHeaderTimeout: 5 * time.Second,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	log.Info().Str("addr", addr).Str("piece", session.Piece().Marker()).Str("session", session.ID()).Msg("agent server listening")

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msgf("shutdown signal received: %v", ctx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Warn().Err(err).Msg("graceful shutdown failed")
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Warn().Err(closeErr).Msg("forced close failed")
		}
	}
	return runErr
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrMalformedBoard):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrNoLegalMoves):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
