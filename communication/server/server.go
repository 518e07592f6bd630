package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// MaxDepth bounds the depth a client may request; the search is exponential.
const MaxDepth = 4

// FindMoveRequest asks for the best move for Side on Position, written in
// game.ParsePosition notation. Depth 0 means the server's default.
type FindMoveRequest struct {
	Position string `json:"position"`
	Side     string `json:"side"`
	Depth    int    `json:"depth"`
}

type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// FindMoveResponse carries null moves for passes.
type FindMoveResponse struct {
	Move  *Move `json:"move"`
	Reply *Move `json:"reply"`
	Depth int   `json:"depth"`
}

// AgentServer answers move queries over HTTP.
type AgentServer struct {
	depth    int
	evaluate game.Evaluate
	mux      *http.ServeMux
}

func NewAgentServer(depth int, evaluate game.Evaluate) *AgentServer {
	if depth < 1 {
		panic(searcher.ErrInvalidDepth)
	}
	s := &AgentServer{depth: depth, evaluate: evaluate, mux: http.NewServeMux()}
	s.mux.HandleFunc("/findmove", s.handleFindMove)
	return s
}

func (s *AgentServer) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves on addr, e.g. ":8080".
func (s *AgentServer) ListenAndServe(addr string) error {
	log.Info().Msgf("starting agent server on %s", addr)
	return http.ListenAndServe(addr, s.mux)
}

func (s *AgentServer) handleFindMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req FindMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	pos, err := game.ParsePosition(req.Position)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	side, err := game.ParseSide(req.Side)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	depth := req.Depth
	if depth == 0 {
		depth = s.depth
	}
	if depth > MaxDepth {
		http.Error(w, "bad request: depth too large", http.StatusBadRequest)
		return
	}

	sr := searcher.NewSearcher(searcher.WithDepth(s.depth), searcher.WithEvaluationFn(s.evaluate))
	choice, _, err := sr.FindMoveAt(pos, side, depth)
	if errors.Is(err, searcher.ErrInvalidDepth) {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Debug().Stringer("side", side).Int("depth", depth).Str("choice", choice.String()).Msg("served move")
	resp := FindMoveResponse{Move: toMove(choice.Move), Reply: toMove(choice.Reply), Depth: depth}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}

func toMove(m *game.Move) *Move {
	if m == nil {
		return nil
	}
	return &Move{X: m.X, Y: m.Y}
}
