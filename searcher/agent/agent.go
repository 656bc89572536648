package agent

import (
	"quadra/game"
	"quadra/searcher"
)

// Agent picks one move per turn of a running game.
type Agent interface {
	// FindMove returns the agent's move for the position and metrics from
	// the decision process. ok is false when the position offers no moves.
	FindMove(g *game.Game) (game.Move, searcher.Metrics, bool)
}

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent that plays the searcher's move.
func NewMinimaxAgent(m *searcher.Minimax) Agent {
	return minimaxAgent{minimax: m}
}

func (a minimaxAgent) FindMove(g *game.Game) (game.Move, searcher.Metrics, bool) {
	return a.minimax.FindMove(g)
}
