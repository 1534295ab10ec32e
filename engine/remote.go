package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"teeko/experiments/metrics"
	"teeko/game"
	"teeko/searcher/agent"
	"time"
)

type remoteAgent struct {
	baseURL string
	client  *http.Client
	piece   game.Cell
}

// NewRemoteAgent connects to an agent server at baseURL and learns which
// piece it plays.
func NewRemoteAgent(ctx context.Context, baseURL string, client *http.Client) (agent.Agent, error) {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	a := &remoteAgent{baseURL: strings.TrimRight(baseURL, "/"), client: client}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/session", nil)
	if err != nil {
		return nil, err
	}
	var session struct {
		Piece string `json:"piece"`
	}
	if err := a.do(req, &session); err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	piece, ok := game.ParseCell(session.Piece)
	if !ok || !piece.IsPiece() {
		return nil, fmt.Errorf("agent reported unknown piece %q", session.Piece)
	}
	a.piece = piece
	return a, nil
}

func (a *remoteAgent) Piece() game.Cell {
	return a.piece
}

// FindMove posts the board to /ai-move. Remote searches report no metrics.
func (a *remoteAgent) FindMove(board game.Board) (game.Move, metrics.SearchMetric, error) {
	payload := struct {
		Board [][]string `json:"board"`
	}{Board: board.Markers()}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}

	req, err := http.NewRequest(http.MethodPost, a.baseURL+"/ai-move", bytes.NewReader(bodyBytes))
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var reply struct {
		Move [][2]int `json:"move"`
	}
	if err := a.do(req, &reply); err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	move, err := game.MoveFromCoords(reply.Move)
	return move, metrics.SearchMetric{}, err
}

func (a *remoteAgent) do(req *http.Request, out any) error {
	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("agent returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
