package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"hillclimb/internal/game"
	"hillclimb/internal/progress"
)

type Server struct {
	eng     *game.Engine
	tracker *progress.Tracker
	mux     *http.ServeMux
}

func NewServer(eng *game.Engine, tracker *progress.Tracker) *Server {
	s := &Server{eng: eng, tracker: tracker, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.health)
	s.mux.HandleFunc("/state", s.state)
	s.mux.HandleFunc("/hud", s.hud)

	s.mux.HandleFunc("/input", s.input)
	s.mux.HandleFunc("/level/start", s.levelStart)
	s.mux.HandleFunc("/level/restart", s.levelRestart)
	s.mux.HandleFunc("/level/pause", s.levelPause)
	s.mux.HandleFunc("/level/resume", s.levelResume)

	s.mux.HandleFunc("/progress", s.progressSnapshot)
	s.mux.HandleFunc("/shop", s.shop)
	s.mux.HandleFunc("/shop/buy", s.shopBuy)
	s.mux.HandleFunc("/achievements", s.achievements)

	s.mux.HandleFunc("/stream", s.streamSSE)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) state(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	st, err := s.eng.State(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestTimeout)
		return
	}
	writeJSON(w, st)
}

func (s *Server) hud(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	hud, err := s.eng.HUD(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestTimeout)
		return
	}
	writeJSON(w, hud)
}

func (s *Server) input(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Accelerate bool `json:"accelerate"`
		Brake      bool `json:"brake"`
		SteerLeft  bool `json:"steerLeft"`
		SteerRight bool `json:"steerRight"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	s.eng.SetInput(game.Input{
		Accelerate: body.Accelerate,
		Brake:      body.Brake,
		SteerLeft:  body.SteerLeft,
		SteerRight: body.SteerRight,
	})

	writeJSON(w, map[string]any{"status": "accepted"})
}

func (s *Server) levelStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Level int `json:"level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if body.Level < 1 {
		http.Error(w, "level must be >= 1", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.eng.StartLevel(ctx, body.Level); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{"status": "accepted", "level": body.Level})
}

func (s *Server) levelRestart(w http.ResponseWriter, r *http.Request) {
	s.simpleControl(w, r, s.eng.Restart, "restart")
}

func (s *Server) levelPause(w http.ResponseWriter, r *http.Request) {
	s.simpleControl(w, r, s.eng.Pause, "pause")
}

func (s *Server) levelResume(w http.ResponseWriter, r *http.Request) {
	s.simpleControl(w, r, s.eng.Resume, "resume")
}

func (s *Server) simpleControl(w http.ResponseWriter, r *http.Request,
	op func(context.Context) error, name string,
) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := op(ctx); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{"status": "accepted", "type": name})
}

func (s *Server) progressSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.tracker.Snapshot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, snap)
}

func (s *Server) shop(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, progress.Catalog())
}

func (s *Server) shopBuy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Item string `json:"item"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if err := s.tracker.Buy(body.Item); err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, progress.ErrInsufficientCoins) {
			code = http.StatusPaymentRequired
		}
		http.Error(w, err.Error(), code)
		return
	}
	writeJSON(w, map[string]any{"status": "purchased", "item": body.Item})
}

func (s *Server) achievements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, progress.Achievements())
}

func (s *Server) streamSSE(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "GET only", http.StatusMethodNotAllowed)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ctx := r.Context()
	ch, unsub := s.eng.Subscribe(ctx)
	defer unsub()

	fmt.Fprintf(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case hud, ok := <-ch:
			if !ok {
				return
			}
			b, _ := json.Marshal(hud)
			fmt.Fprintf(w, "event: hud\n")
			fmt.Fprintf(w, "data: %s\n\n", b)
			flusher.Flush()
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
