package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"othello/communication/server"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher/agent"
	"time"
)

// remoteAgent asks an agent server for its move over HTTP.
type remoteAgent struct {
	url    string
	client *http.Client
}

var _ agent.Agent = (*remoteAgent)(nil)

// NewRemoteAgent returns an agent backed by the agent server at url, e.g. "http://localhost:8080".
func NewRemoteAgent(url string, client *http.Client) agent.Agent {
	if client == nil {
		client = http.DefaultClient
	}
	return &remoteAgent{url: url, client: client}
}

// RemoteEngine plays a game between two agent servers.
func RemoteEngine(blackURL, whiteURL string) *Local {
	return LocalEngine(NewRemoteAgent(blackURL, nil), NewRemoteAgent(whiteURL, nil))
}

func (a *remoteAgent) FindMove(pos *game.Position, side game.Side) (*game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	body, err := json.Marshal(server.FindMoveRequest{Position: pos.String(), Side: side.String()})
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}

	resp, err := a.client.Post(a.url+"/findmove", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, metrics.SearchMetric{}, fmt.Errorf("failed to reach agent at %s: %w", a.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return nil, metrics.SearchMetric{}, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var fm server.FindMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&fm); err != nil {
		return nil, metrics.SearchMetric{}, fmt.Errorf("failed to decode agent response: %w", err)
	}

	metric := metrics.SearchMetric{Depth: fm.Depth, Duration: time.Since(start)}
	if fm.Move == nil {
		return nil, metric, nil
	}
	return game.NewMove(fm.Move.X, fm.Move.Y), metric, nil
}
